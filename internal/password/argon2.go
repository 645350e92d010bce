// Package password provides one-way, salted password hashing. Stored hashes
// use the argon2id PHC string format, so parameters can evolve without
// breaking existing records.
package password

import (
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"

	"github.com/rvault/recipevault/internal/common"
)

// ErrInvalidHash is returned when a stored hash cannot be parsed.
var ErrInvalidHash = errors.New("invalid password hash")

// Hasher hides the concrete hashing scheme from credential verification.
type Hasher interface {
	// Hash derives a salted hash of the password for storage.
	Hash(password []byte) (string, error)

	// Compare reports whether candidate matches the stored hash.
	// The comparison is constant-time in the derived key.
	Compare(encodedHash string, candidate []byte) (bool, error)
}

// Argon2 is the default Hasher.
type Argon2 struct {
	time        uint32
	memory      uint32
	parallelism uint8
	saltLength  uint32
	keyLength   uint32
}

// NewArgon2 returns an Argon2 hasher with interactive-login parameters.
func NewArgon2() *Argon2 {
	return &Argon2{
		time:        1,
		memory:      64 * 1024,
		parallelism: 4,
		saltLength:  16,
		keyLength:   32,
	}
}

func (a *Argon2) Hash(password []byte) (string, error) {
	salt := common.GenerateRandByteArray(int(a.saltLength))
	key := argon2.IDKey(password, salt, a.time, a.memory, a.parallelism, a.keyLength)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, a.memory, a.time, a.parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

func (a *Argon2) Compare(encodedHash string, candidate []byte) (bool, error) {
	memory, time, parallelism, salt, key, err := parseHash(encodedHash)
	if err != nil {
		return false, err
	}

	derived := argon2.IDKey(candidate, salt, time, memory, parallelism, uint32(len(key)))
	return subtle.ConstantTimeCompare(key, derived) == 1, nil
}

func parseHash(encodedHash string) (memory, time uint32, parallelism uint8, salt, key []byte, err error) {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return 0, 0, 0, nil, nil, ErrInvalidHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return 0, 0, 0, nil, nil, ErrInvalidHash
	}
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &parallelism); err != nil {
		return 0, 0, 0, nil, nil, ErrInvalidHash
	}

	salt, err = base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return 0, 0, 0, nil, nil, ErrInvalidHash
	}
	key, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return 0, 0, 0, nil, nil, ErrInvalidHash
	}

	return memory, time, parallelism, salt, key, nil
}
