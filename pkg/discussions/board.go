// Package discussions implements the community discussion board: create
// and delete over a persisted, most-recent-first post list.
package discussions

import (
	"strconv"
	"sync"
	"time"

	"github.com/heritagexp/heritage-explorer/pkg/state"
	"github.com/heritagexp/heritage-explorer/pkg/storage"
)

// StorageKey is the store key holding the persisted post list
const StorageKey = "posts"

// Board owns the persisted discussion-post collection. New posts are
// prepended; there is no update operation.
type Board struct {
	slice *state.Slice[[]Post]

	mu     sync.Mutex
	lastID int64
	now    func() time.Time
}

// NewBoard creates a Board over the given store, seeding the post list on
// first use.
func NewBoard(store storage.Store) *Board {
	return &Board{
		slice: state.NewSlice(store, StorageKey, seedPosts()),
		now:   time.Now,
	}
}

// Add creates a post at the head of the list and persists it. The id is
// derived from the current timestamp; same-millisecond collisions bump
// forward so ids stay unique.
func (b *Board) Add(author, title, body string) Post {
	b.mu.Lock()
	ms := b.now().UnixMilli()
	if ms <= b.lastID {
		ms = b.lastID + 1
	}
	b.lastID = ms
	b.mu.Unlock()

	post := Post{
		ID:        "p_" + strconv.FormatInt(ms, 10),
		Author:    author,
		Title:     title,
		Body:      body,
		CreatedAt: ms,
	}

	b.slice.Update(func(list []Post) []Post {
		return append([]Post{post}, list...)
	})
	return post
}

// Remove deletes the post with the given id, reporting whether one was
// removed.
func (b *Board) Remove(id string) bool {
	removed := false
	b.slice.Update(func(list []Post) []Post {
		out := make([]Post, 0, len(list))
		for _, p := range list {
			if p.ID == id {
				removed = true
				continue
			}
			out = append(out, p)
		}
		return out
	})
	return removed
}

// List returns the posts, most recent first
func (b *Board) List() []Post {
	return b.slice.Get()
}

// seedPosts is the fixed initial discussion list
func seedPosts() []Post {
	return []Post{
		{
			ID:        "p1",
			Author:    "Anita Sharma",
			Title:     "Preserving traditional folk music",
			Body:      "How can we help local folk musicians preserve and share their art with younger generations?",
			CreatedAt: time.Now().Add(-24 * time.Hour).UnixMilli(),
			Likes:     45,
			Comments:  12,
		},
	}
}
