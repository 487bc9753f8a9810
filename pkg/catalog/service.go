package catalog

import (
	"context"
	"time"

	"github.com/heritagexp/heritage-explorer/pkg/state"
	"github.com/heritagexp/heritage-explorer/pkg/storage"
)

// Store keys for the two catalog collections
const (
	MonumentsKey = "monuments"
	ToursKey     = "tours"
)

// Service owns the persisted monument and tour collections. Both hydrate
// from the seed catalog on first use. Tours are immutable; monuments
// support deletion only.
type Service struct {
	monuments *state.Slice[[]Monument]
	tours     *state.Slice[[]Tour]

	// fetchLatency simulates a network round-trip on Fetch
	fetchLatency time.Duration
}

// NewService creates a catalog service over the given store
func NewService(store storage.Store, fetchLatency time.Duration) *Service {
	return &Service{
		monuments:    state.NewSlice(store, MonumentsKey, SeedMonuments()),
		tours:        state.NewSlice(store, ToursKey, SeedTours()),
		fetchLatency: fetchLatency,
	}
}

// Monuments returns the current monument collection
func (s *Service) Monuments() []Monument {
	return s.monuments.Get()
}

// Tours returns the tour collection
func (s *Service) Tours() []Tour {
	return s.tours.Get()
}

// Fetch returns the monument collection after the configured artificial
// latency, so callers can exercise loading states the way they would
// against a real backend.
func (s *Service) Fetch(ctx context.Context) ([]Monument, error) {
	if s.fetchLatency > 0 {
		timer := time.NewTimer(s.fetchLatency)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return s.monuments.Get(), nil
}

// Search filters the current monument collection
func (s *Service) Search(query, stateFilter, eraFilter string) []Monument {
	return Filter(s.monuments.Get(), query, stateFilter, eraFilter)
}

// Remove deletes the monument with the given id, reporting whether one
// was removed. There is no update path; deletion is the only mutation.
func (s *Service) Remove(id string) bool {
	removed := false
	s.monuments.Update(func(list []Monument) []Monument {
		out := make([]Monument, 0, len(list))
		for _, m := range list {
			if m.ID == id {
				removed = true
				continue
			}
			out = append(out, m)
		}
		return out
	})
	return removed
}
