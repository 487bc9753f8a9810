// Package authentication implements the simulated auth service: credential
// checks against the persisted user list, behind a configurable artificial
// latency so callers can exercise their loading states.
package authentication

import (
	"context"
	"strconv"
	"time"

	"github.com/heritagexp/heritage-explorer/pkg/logging"
	"github.com/heritagexp/heritage-explorer/pkg/users"
)

// Registration carries the data submitted by the registration form
type Registration struct {
	Name     string
	Email    string
	Password string
	Role     users.Role
}

// Authenticator validates credentials and registers new users
type Authenticator struct {
	registry *users.Registry
	hasher   PasswordHasher
	latency  time.Duration
	now      func() time.Time
}

// NewAuthenticator creates a new authenticator. A nil hasher defaults to
// argon2id. latency is the artificial delay applied to every operation;
// pass zero to disable it.
func NewAuthenticator(registry *users.Registry, hasher PasswordHasher, latency time.Duration) *Authenticator {
	if hasher == nil {
		hasher = NewArgon2ID()
	}
	return &Authenticator{
		registry: registry,
		hasher:   hasher,
		latency:  latency,
		now:      time.Now,
	}
}

// Login checks the credentials against the persisted user list. Email
// matching is exact and case-sensitive. On success the sanitized profile
// is returned; every failure mode collapses into ErrInvalidCredentials so
// callers can't probe which emails are registered.
func (a *Authenticator) Login(ctx context.Context, email, password string) (users.Profile, error) {
	if err := a.wait(ctx); err != nil {
		return users.Profile{}, err
	}

	user, err := a.registry.FindByEmail(email)
	if err != nil {
		logging.Access.LogAuth("login", email, "failed", "reason", "unknown_email")
		return users.Profile{}, ErrInvalidCredentials
	}

	if err := a.hasher.VerifyPassword(password, user.PasswordHash); err != nil {
		logging.Access.LogAuth("login", email, "failed", "reason", "bad_password")
		return users.Profile{}, ErrInvalidCredentials
	}

	logging.Access.LogAuth("login", email, "success")
	return user.Profile(), nil
}

// Register creates a new account. The email must not already be registered
// (case-sensitive exact match). The new user gets a timestamp-derived id
// and an argon2id password hash, and the updated list is persisted before
// returning the sanitized profile.
func (a *Authenticator) Register(ctx context.Context, reg Registration) (users.Profile, error) {
	if err := a.wait(ctx); err != nil {
		return users.Profile{}, err
	}

	hash, err := a.hasher.Hash(reg.Password)
	if err != nil {
		logging.App.Error("Password hashing failed", "error", err)
		return users.Profile{}, err
	}

	role := reg.Role
	if role == "" {
		role = users.RoleVisitor
	}

	user := users.User{
		ID:           strconv.FormatInt(a.now().UnixMilli(), 10),
		Name:         reg.Name,
		Email:        reg.Email,
		PasswordHash: hash,
		Role:         role,
	}

	if err := a.registry.Append(user); err != nil {
		logging.Access.LogAuth("register", reg.Email, "failed", "reason", "duplicate_email")
		return users.Profile{}, ErrEmailTaken
	}

	logging.Access.LogAuth("register", reg.Email, "success", "role", string(role))
	return user.Profile(), nil
}

// wait blocks for the configured artificial latency or until the context
// is done, whichever comes first.
func (a *Authenticator) wait(ctx context.Context) error {
	if a.latency <= 0 {
		return nil
	}
	timer := time.NewTimer(a.latency)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
