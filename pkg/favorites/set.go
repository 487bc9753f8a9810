// Package favorites implements the client-wide favorites set: monument
// ids toggled in and out of a persisted list. The set is keyed by
// presence only and is not scoped per user; ids referencing monuments
// that were later deleted are left in place.
package favorites

import (
	"github.com/heritagexp/heritage-explorer/pkg/state"
	"github.com/heritagexp/heritage-explorer/pkg/storage"
)

// StorageKey is the store key holding the persisted id list
const StorageKey = "favorites"

// Set is the persisted favorites id set
type Set struct {
	slice *state.Slice[[]string]
}

// NewSet creates a Set over the given store
func NewSet(store storage.Store) *Set {
	return &Set{
		slice: state.NewSlice(store, StorageKey, []string{}),
	}
}

// Toggle adds the id if absent and removes it if present, returning the
// resulting membership. Toggling twice restores the original set.
func (s *Set) Toggle(id string) bool {
	added := false
	s.slice.Update(func(ids []string) []string {
		out := make([]string, 0, len(ids)+1)
		found := false
		for _, v := range ids {
			if v == id {
				found = true
				continue
			}
			out = append(out, v)
		}
		if !found {
			out = append(out, id)
			added = true
		}
		return out
	})
	return added
}

// Has reports whether the id is in the set
func (s *Set) Has(id string) bool {
	for _, v := range s.slice.Get() {
		if v == id {
			return true
		}
	}
	return false
}

// IDs returns the ids currently in the set
func (s *Set) IDs() []string {
	return s.slice.Get()
}

// Count returns the number of favorited ids
func (s *Set) Count() int {
	return len(s.slice.Get())
}
