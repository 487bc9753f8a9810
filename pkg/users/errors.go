package users

import "errors"

var (
	// ErrUserNotFound is returned when no user matches the given email
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateEmail is returned when appending a user whose email is
	// already registered
	ErrDuplicateEmail = errors.New("email already registered")
)
