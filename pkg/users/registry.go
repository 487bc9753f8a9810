package users

import (
	"sync"

	"github.com/heritagexp/heritage-explorer/pkg/logging"
	"github.com/heritagexp/heritage-explorer/pkg/state"
	"github.com/heritagexp/heritage-explorer/pkg/storage"
)

// StorageKey is the store key holding the persisted user list
const StorageKey = "users"

// Registry provides access to the persisted user list. Every read loads
// the full list from the backing slice; every append rewrites it whole.
type Registry struct {
	slice *state.Slice[[]User]

	// mu serializes Append so the duplicate check and the write form one
	// critical section. Reads go straight to the slice.
	mu sync.Mutex
}

// NewRegistry creates a Registry over the given store
func NewRegistry(store storage.Store) *Registry {
	return &Registry{
		slice: state.NewSlice(store, StorageKey, []User{}),
	}
}

// FindByEmail returns the user with the exact email, case-sensitively.
func (r *Registry) FindByEmail(email string) (User, error) {
	for _, u := range r.slice.Get() {
		if u.Email == email {
			return u, nil
		}
	}
	return User{}, ErrUserNotFound
}

// Append adds a user to the list and persists it. Fails with
// ErrDuplicateEmail when the email is already taken; the list is left
// unchanged in that case.
func (r *Registry) Append(user User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := r.FindByEmail(user.Email); err == nil {
		logging.App.Debug("Rejected duplicate registration", "email", user.Email)
		return ErrDuplicateEmail
	}
	r.slice.Update(func(list []User) []User {
		return append(list, user)
	})
	return nil
}

// Len returns the number of registered users
func (r *Registry) Len() int {
	return len(r.slice.Get())
}
