// Package ctxutil provides context utilities that can be safely imported anywhere.
// This package has no internal dependencies to avoid import cycles.
package ctxutil

import "context"

// RequesterKey is the context key for the requesting member's ID.
// Exported so it can be used consistently across packages.
type RequesterKey struct{}

// LocaleKey is the context key for the caller's locale (BCP 47 tag).
type LocaleKey struct{}

// WithRequester returns a context carrying the ID of the member performing the call.
func WithRequester(ctx context.Context, memberID int64) context.Context {
	return context.WithValue(ctx, RequesterKey{}, memberID)
}

// RequesterFromContext returns the requesting member's ID, if one was set.
func RequesterFromContext(ctx context.Context) (int64, bool) {
	if v, ok := ctx.Value(RequesterKey{}).(int64); ok && v > 0 {
		return v, true
	}
	return 0, false
}

// WithLocale returns a context carrying the locale messages should be resolved in.
func WithLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, LocaleKey{}, locale)
}

// LocaleFromContext returns the locale from context, or empty string if not set.
func LocaleFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(LocaleKey{}).(string); ok {
		return v
	}
	return ""
}
