package ctxutil

import (
	"context"
	"testing"
)

func TestRequesterRoundTrip(t *testing.T) {
	ctx := WithRequester(context.Background(), 42)

	id, ok := RequesterFromContext(ctx)
	if !ok {
		t.Fatal("RequesterFromContext() ok = false, want true")
	}
	if id != 42 {
		t.Errorf("RequesterFromContext() = %d, want 42", id)
	}
}

func TestRequesterFromContext_Unset(t *testing.T) {
	if _, ok := RequesterFromContext(context.Background()); ok {
		t.Error("RequesterFromContext() ok = true on empty context")
	}
	if _, ok := RequesterFromContext(WithRequester(context.Background(), 0)); ok {
		t.Error("RequesterFromContext() ok = true for zero id")
	}
}

func TestLocaleFromContext(t *testing.T) {
	if got := LocaleFromContext(context.Background()); got != "" {
		t.Errorf("LocaleFromContext() = %q, want empty", got)
	}
	ctx := WithLocale(context.Background(), "pt-BR")
	if got := LocaleFromContext(ctx); got != "pt-BR" {
		t.Errorf("LocaleFromContext() = %q, want %q", got, "pt-BR")
	}
}
