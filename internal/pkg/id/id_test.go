package id_test

import (
	"testing"

	"github.com/ferdiebergado/kubodir/internal/pkg/id"
)

func TestNew(t *testing.T) {
	t.Parallel()

	a, b := id.New(), id.New()
	if a == b {
		t.Fatalf("id.New() returned %q twice", a)
	}

	if !id.Valid(a) {
		t.Errorf("id.Valid(%q) = false, want: true", a)
	}

	if a >= b {
		t.Errorf("id.New() = %q then %q, want ascending", a, b)
	}
}

func TestValid(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"", "not-a-ulid", "01ARZ3NDEKTSV4RRFFQ69G5FA"} {
		if id.Valid(s) {
			t.Errorf("id.Valid(%q) = true, want: false", s)
		}
	}
}
