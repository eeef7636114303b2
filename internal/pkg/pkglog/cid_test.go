package pkglog

import (
	"context"
	"testing"
)

func TestCorrelationID(t *testing.T) {
	ctx := context.Background()
	if _, ok := CorrelationID(ctx); ok {
		t.Fatalf("expected no correlation id")
	}

	ctx = WithCorrelationID(ctx, "01ARZ3NDEKTSV4RRFFQ69G5FAV")
	got, ok := CorrelationID(ctx)
	if !ok || got != "01ARZ3NDEKTSV4RRFFQ69G5FAV" {
		t.Fatalf("unexpected correlation id %q (%v)", got, ok)
	}

	if _, ok := CorrelationID(WithCorrelationID(ctx, "")); ok {
		t.Fatalf("expected empty correlation id to be ignored")
	}
}
