package ctxutil

import (
	"context"
	"testing"
)

func TestWithUsername_And_UsernameFromCtx(t *testing.T) {
	t.Parallel()

	ctx := WithUsername(context.Background(), "admin")

	got, ok := UsernameFromCtx(ctx)
	if !ok {
		t.Fatal("expected ok=true for stored username")
	}
	if got != "admin" {
		t.Fatalf("expected admin, got %s", got)
	}
}

func TestUsernameFromCtx_EmptyContext(t *testing.T) {
	t.Parallel()

	if _, ok := UsernameFromCtx(context.Background()); ok {
		t.Fatal("expected ok=false for empty context")
	}
}

func TestUsernameFromCtx_EmptyUsername(t *testing.T) {
	t.Parallel()

	ctx := WithUsername(context.Background(), "")
	if _, ok := UsernameFromCtx(ctx); ok {
		t.Fatal("expected ok=false for empty username")
	}
}

func TestRequestID_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := WithRequestID(context.Background(), "req-1")
	if got := RequestIDFromCtx(ctx); got != "req-1" {
		t.Fatalf("expected req-1, got %s", got)
	}
	if got := RequestIDFromCtx(context.Background()); got != "" {
		t.Fatalf("expected empty for absent id, got %s", got)
	}
}
