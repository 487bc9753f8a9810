package favorites

import (
	"testing"

	"github.com/heritagexp/heritage-explorer/pkg/storage"
)

func TestSet_Toggle(t *testing.T) {
	set := NewSet(storage.NewMemoryStore())

	if !set.Toggle("m1") {
		t.Error("first toggle should add")
	}
	if !set.Has("m1") {
		t.Error("m1 should be in the set")
	}
	if set.Count() != 1 {
		t.Errorf("expected count 1, got %d", set.Count())
	}

	if set.Toggle("m1") {
		t.Error("second toggle should remove")
	}
	if set.Has("m1") {
		t.Error("m1 should no longer be in the set")
	}
}

func TestSet_ToggleTwiceIsIdempotent(t *testing.T) {
	set := NewSet(storage.NewMemoryStore())
	set.Toggle("m1")
	set.Toggle("m2")

	before := append([]string{}, set.IDs()...)
	set.Toggle("m3")
	set.Toggle("m3")
	after := set.IDs()

	if len(after) != len(before) {
		t.Fatalf("expected %d ids, got %d", len(before), len(after))
	}
	for i := range before {
		if after[i] != before[i] {
			t.Errorf("id %d: expected %q, got %q", i, before[i], after[i])
		}
	}
}

func TestSet_PersistsAcrossReload(t *testing.T) {
	store := storage.NewMemoryStore()
	set := NewSet(store)
	set.Toggle("m1")
	set.Toggle("m5")

	reloaded := NewSet(store)
	if reloaded.Count() != 2 {
		t.Fatalf("expected 2 ids after reload, got %d", reloaded.Count())
	}
	if !reloaded.Has("m1") || !reloaded.Has("m5") {
		t.Errorf("ids did not round-trip: %v", reloaded.IDs())
	}
}

func TestSet_DanglingIDsAreKept(t *testing.T) {
	// The set stores ids only; deleting the monument elsewhere must not
	// disturb the persisted set.
	set := NewSet(storage.NewMemoryStore())
	set.Toggle("m-deleted")
	if !set.Has("m-deleted") {
		t.Error("dangling id should remain in the set")
	}
}
