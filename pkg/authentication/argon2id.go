package authentication

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Argon2ID hashes and verifies Argon2id PHC-formatted password hashes.
// Example format: $argon2id$v=19$m=65536,t=2,p=1$<salt_b64>$<hash_b64>
type Argon2ID struct {
	memory  uint32
	time    uint32
	threads uint8
	saltLen uint32
	keyLen  uint32
}

// NewArgon2ID returns an Argon2ID hasher with standard parameters.
func NewArgon2ID() *Argon2ID {
	return &Argon2ID{
		memory:  64 * 1024,
		time:    2,
		threads: 1,
		saltLen: 16,
		keyLen:  32,
	}
}

// Hash derives a PHC-formatted argon2id hash from a plaintext password.
func (a *Argon2ID) Hash(password string) (string, error) {
	salt := make([]byte, a.saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, a.time, a.memory, a.threads, a.keyLen)

	return fmt.Sprintf("$argon2id$v=19$m=%d,t=%d,p=%d$%s$%s",
		a.memory, a.time, a.threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// VerifyPassword verifies a password against a PHC-formatted argon2id hash.
// Parameters come from the hash itself, so old hashes keep verifying after
// the defaults change.
func (a *Argon2ID) VerifyPassword(password, hashedPassword string) error {
	params, salt, expectedHash, err := parsePHCArgon2ID(hashedPassword)
	if err != nil {
		return err
	}

	derived := argon2.IDKey([]byte(password), salt, params.time, params.memory, params.threads, uint32(len(expectedHash)))
	if subtle.ConstantTimeCompare(derived, expectedHash) == 1 {
		return nil
	}
	return fmt.Errorf("password mismatch")
}

type argon2Params struct {
	memory  uint32
	time    uint32
	threads uint8
}

func parsePHCArgon2ID(s string) (argon2Params, []byte, []byte, error) {
	// Defaults align with common settings
	params := argon2Params{memory: 64 * 1024, time: 2, threads: 1}

	parts := strings.Split(s, "$")
	// Expect: ["", "argon2id", "v=19", "m=..,t=..,p=..", "saltb64", "hashb64"]
	if len(parts) != 6 || parts[1] != "argon2id" {
		return params, nil, nil, fmt.Errorf("unsupported or invalid argon2id format")
	}
	// Every hash minted here carries the version segment; anything else
	// is malformed rather than a legacy form to accommodate
	if !strings.HasPrefix(parts[2], "v=") {
		return params, nil, nil, fmt.Errorf("missing argon2id version segment")
	}

	for _, kv := range strings.Split(parts[3], ",") {
		if kv == "" {
			continue
		}
		pair := strings.SplitN(kv, "=", 2)
		if len(pair) != 2 {
			continue
		}
		key, val := pair[0], pair[1]
		switch key {
		case "m":
			if n, err := strconv.Atoi(val); err == nil && n > 0 {
				params.memory = uint32(n)
			}
		case "t":
			if n, err := strconv.Atoi(val); err == nil && n > 0 {
				params.time = uint32(n)
			}
		case "p":
			if n, err := strconv.Atoi(val); err == nil && n > 0 && n < 256 {
				params.threads = uint8(n)
			}
		}
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return params, nil, nil, fmt.Errorf("invalid argon2id salt: %w", err)
	}
	hash, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return params, nil, nil, fmt.Errorf("invalid argon2id hash: %w", err)
	}
	if len(hash) == 0 {
		return params, nil, nil, fmt.Errorf("invalid argon2id hash: empty")
	}
	return params, salt, hash, nil
}
