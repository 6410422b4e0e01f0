package hash_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/ferdiebergado/kubodir/internal/config"
	"github.com/ferdiebergado/kubodir/internal/platform/hash"
)

func newHasher() *hash.Argon2Hasher {
	opts := &config.Argon2{
		Memory:     16 * 1024,
		Iterations: 1,
		Threads:    1,
		SaltLength: 16,
		KeyLength:  32,
	}
	return hash.NewArgon2Hasher(opts, "paminta")
}

func TestArgon2Hasher_Hash(t *testing.T) {
	t.Parallel()

	hashed, err := newHasher().Hash("rice")
	if err != nil {
		t.Fatal(err)
	}

	parts := strings.Split(hashed, "$")
	if gotLen, wantLen := len(parts), 6; gotLen != wantLen {
		t.Fatalf("len(parts) = %d, want: %d", gotLen, wantLen)
	}

	if got, want := parts[1], "argon2id"; got != want {
		t.Errorf("parts[1] = %s, want: %s", got, want)
	}

	if got, want := parts[3], "m=16384,t=1,p=1"; got != want {
		t.Errorf("parts[3] = %s, want: %s", got, want)
	}
}

func TestArgon2Hasher_HashEmpty(t *testing.T) {
	t.Parallel()

	hashed, err := newHasher().Hash("")
	if err != nil {
		t.Fatal(err)
	}

	if hashed != "" {
		t.Errorf("hasher.Hash(\"\") = %q, want: %q", hashed, "")
	}
}

func TestArgon2Hasher_Verify(t *testing.T) {
	t.Parallel()

	hasher := newHasher()
	hashed, err := hasher.Hash("rice")
	if err != nil {
		t.Fatal(err)
	}

	matches, err := hasher.Verify("rice", hashed)
	if err != nil {
		t.Fatal(err)
	}
	if !matches {
		t.Errorf("hasher.Verify() = %v, want: %v", matches, true)
	}

	matches, err = hasher.Verify("garlic", hashed)
	if err != nil {
		t.Fatal(err)
	}
	if matches {
		t.Errorf("hasher.Verify() = %v, want: %v", matches, false)
	}

	if _, err := hasher.Verify("rice", "plain"); !errors.Is(err, hash.ErrInvalidHash) {
		t.Errorf("hasher.Verify() = %v, want: %v", err, hash.ErrInvalidHash)
	}
}
