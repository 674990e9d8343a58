package postgres

import (
	"testing"

	"github.com/oklog/ulid/v2"
)

func TestULIDGenerator(t *testing.T) {
	gen := NewULIDGenerator()

	a := gen.Generate()
	b := gen.Generate()

	if a == b {
		t.Fatalf("expected unique ids, got %s twice", a)
	}
	if _, err := ulid.ParseStrict(a); err != nil {
		t.Fatalf("expected valid ULID, got %v", err)
	}
}
