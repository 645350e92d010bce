package password

import (
	"errors"
	"strings"
	"testing"
)

func TestArgon2_HashAndCompare(t *testing.T) {
	t.Parallel()

	h := NewArgon2()

	encoded, err := h.Hash([]byte("correct horse battery staple"))
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if !strings.HasPrefix(encoded, "$argon2id$") {
		t.Fatalf("unexpected hash format: %q", encoded)
	}

	ok, err := h.Compare(encoded, []byte("correct horse battery staple"))
	if err != nil {
		t.Fatalf("Compare error: %v", err)
	}
	if !ok {
		t.Fatalf("expected match for correct password")
	}

	ok, err = h.Compare(encoded, []byte("wrong password"))
	if err != nil {
		t.Fatalf("Compare error: %v", err)
	}
	if ok {
		t.Fatalf("expected mismatch for wrong password")
	}
}

func TestArgon2_HashesAreSalted(t *testing.T) {
	t.Parallel()

	h := NewArgon2()

	a, err := h.Hash([]byte("pw"))
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	b, err := h.Hash([]byte("pw"))
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if a == b {
		t.Fatalf("two hashes of the same password are identical, salt is not applied")
	}
}

func TestArgon2_Compare_InvalidHash(t *testing.T) {
	t.Parallel()

	h := NewArgon2()

	for _, encoded := range []string{
		"",
		"plaintext",
		"$bcrypt$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA",
		"$argon2id$v=19$garbage$c2FsdA$aGFzaA",
	} {
		if _, err := h.Compare(encoded, []byte("pw")); !errors.Is(err, ErrInvalidHash) {
			t.Fatalf("%q: expected ErrInvalidHash, got %v", encoded, err)
		}
	}
}
