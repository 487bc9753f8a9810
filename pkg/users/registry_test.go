package users

import (
	"errors"
	"strconv"
	"sync"
	"testing"

	"github.com/heritagexp/heritage-explorer/pkg/storage"
)

func TestRegistry(t *testing.T) {
	store := storage.NewMemoryStore()
	registry := NewRegistry(store)

	alice := User{
		ID:           "1",
		Name:         "Alice",
		Email:        "a@b.com",
		PasswordHash: "hash",
		Role:         RoleVisitor,
	}

	t.Run("append and find", func(t *testing.T) {
		if err := registry.Append(alice); err != nil {
			t.Fatalf("Append failed: %v", err)
		}

		got, err := registry.FindByEmail("a@b.com")
		if err != nil {
			t.Fatalf("FindByEmail failed: %v", err)
		}
		if got != alice {
			t.Errorf("expected %+v, got %+v", alice, got)
		}
	})

	t.Run("lookup is case-sensitive", func(t *testing.T) {
		_, err := registry.FindByEmail("A@B.com")
		if !errors.Is(err, ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		dup := alice
		dup.ID = "2"
		dup.Name = "Other Alice"

		err := registry.Append(dup)
		if !errors.Is(err, ErrDuplicateEmail) {
			t.Fatalf("expected ErrDuplicateEmail, got %v", err)
		}
		if registry.Len() != 1 {
			t.Errorf("expected list length 1, got %d", registry.Len())
		}
	})

	t.Run("list survives reload", func(t *testing.T) {
		reloaded := NewRegistry(store)
		if reloaded.Len() != 1 {
			t.Fatalf("expected 1 user after reload, got %d", reloaded.Len())
		}
		got, err := reloaded.FindByEmail("a@b.com")
		if err != nil {
			t.Fatalf("FindByEmail after reload failed: %v", err)
		}
		if got.PasswordHash != alice.PasswordHash {
			t.Error("password hash did not round-trip")
		}
	})
}

func TestRegistryConcurrentAppend(t *testing.T) {
	store := storage.NewMemoryStore()
	registry := NewRegistry(store)

	const racers = 8
	errs := make(chan error, racers)

	var start sync.WaitGroup
	start.Add(1)
	for i := 0; i < racers; i++ {
		go func(id int) {
			start.Wait()
			errs <- registry.Append(User{
				ID:    strconv.Itoa(id),
				Name:  "Racer",
				Email: "same@b.com",
			})
		}(i)
	}
	start.Done()

	succeeded := 0
	for i := 0; i < racers; i++ {
		if err := <-errs; err == nil {
			succeeded++
		} else if !errors.Is(err, ErrDuplicateEmail) {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if succeeded != 1 {
		t.Errorf("expected exactly 1 successful registration, got %d", succeeded)
	}
	if registry.Len() != 1 {
		t.Errorf("expected 1 user in the list, got %d", registry.Len())
	}
}

func TestUserProfile(t *testing.T) {
	u := User{ID: "1", Name: "Alice", Email: "a@b.com", PasswordHash: "secret-hash", Role: RoleAdmin}
	p := u.Profile()

	if p.ID != u.ID || p.Name != u.Name || p.Email != u.Email || p.Role != u.Role {
		t.Errorf("profile fields mismatch: %+v", p)
	}
}
