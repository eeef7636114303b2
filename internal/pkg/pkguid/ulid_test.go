package pkguid

import (
	"testing"

	"github.com/sudoitir/ulid"
)

func TestULIDGenerate(t *testing.T) {
	var gen StringID = NewULID()

	first := gen.Generate()
	if _, err := ulid.Parse(first); err != nil {
		t.Fatalf("expected valid ulid, got %q: %v", first, err)
	}

	prev := first
	for i := 0; i < 100; i++ {
		next := gen.Generate()
		if next <= prev {
			t.Fatalf("expected increasing ids, got %q after %q", next, prev)
		}
		prev = next
	}
}
