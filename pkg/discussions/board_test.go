package discussions

import (
	"strings"
	"testing"

	"github.com/heritagexp/heritage-explorer/pkg/storage"
)

func TestBoard_Add(t *testing.T) {
	board := NewBoard(storage.NewMemoryStore())

	post := board.Add("X", "Y", "body text")

	if !strings.HasPrefix(post.ID, "p_") {
		t.Errorf("expected generated id with p_ prefix, got %q", post.ID)
	}
	if post.Likes != 0 || post.Comments != 0 {
		t.Errorf("new post should start with zero counts, got %+v", post)
	}

	list := board.List()
	if len(list) != 2 {
		t.Fatalf("expected 2 posts (new + seed), got %d", len(list))
	}
	if list[0].ID != post.ID {
		t.Errorf("new post should be at the head of the list, got %q", list[0].ID)
	}
	if list[1].ID != "p1" {
		t.Errorf("seed post should remain, got %q", list[1].ID)
	}
}

func TestBoard_AddGeneratesUniqueIDs(t *testing.T) {
	board := NewBoard(storage.NewMemoryStore())

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		p := board.Add("X", "Y", "")
		if seen[p.ID] {
			t.Fatalf("duplicate id %q on iteration %d", p.ID, i)
		}
		seen[p.ID] = true
	}
}

func TestBoard_Remove(t *testing.T) {
	store := storage.NewMemoryStore()
	board := NewBoard(store)

	first := board.Add("X", "First", "")
	second := board.Add("X", "Second", "")

	if !board.Remove(first.ID) {
		t.Fatal("expected removal to succeed")
	}
	if board.Remove(first.ID) {
		t.Error("second removal of same id should report false")
	}

	list := board.List()
	if len(list) != 2 {
		t.Fatalf("expected 2 posts left, got %d", len(list))
	}
	if list[0].ID != second.ID || list[1].ID != "p1" {
		t.Errorf("removal touched the wrong records: %v", []string{list[0].ID, list[1].ID})
	}
}

func TestBoard_PersistsAcrossReload(t *testing.T) {
	store := storage.NewMemoryStore()
	board := NewBoard(store)
	post := board.Add("X", "Survives reload", "")

	reloaded := NewBoard(store)
	list := reloaded.List()
	if len(list) != 2 {
		t.Fatalf("expected 2 posts after reload, got %d", len(list))
	}
	if list[0] != post {
		t.Errorf("post did not round-trip: expected %+v, got %+v", post, list[0])
	}
}
