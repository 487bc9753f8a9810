package authentication

import "errors"

// PasswordHasher hashes passwords and verifies them against stored hashes
type PasswordHasher interface {
	// Hash derives a storable hash from a plaintext password
	Hash(password string) (string, error)
	// VerifyPassword checks if a password matches its hashed version
	VerifyPassword(password, hashedPassword string) error
}

var (
	// ErrInvalidCredentials is returned when login fails, for any reason
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrEmailTaken is returned when registering an already-registered email
	ErrEmailTaken = errors.New("email already registered")
)

// Message maps an authentication error to the message shown to the user.
// Unknown errors get a generic message so internals never leak out.
func Message(err error) string {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return "Invalid email or password"
	case errors.Is(err, ErrEmailTaken):
		return "Email already registered"
	default:
		return "An error occurred. Please try again."
	}
}
