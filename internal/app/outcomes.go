package app

import (
	"context"

	"github.com/example/portfolio/internal/core/result"
	"github.com/example/portfolio/internal/core/validation"
	"github.com/example/portfolio/internal/i18n"
	"github.com/example/portfolio/internal/ports/secondary"
)

// outcomes builds localized Results for one entity label.
type outcomes struct {
	catalog secondary.MessageCatalog
	label   i18n.Key
}

// Message resolves key in the caller's locale. Without a catalog it returns the key itself.
func (o outcomes) Message(ctx context.Context, key i18n.Key, args ...any) string {
	if o.catalog == nil {
		return string(key)
	}
	return o.catalog.Resolve(ctx, key, args...)
}

// NotFound reports that the entity itself does not exist.
func (o outcomes) NotFound(ctx context.Context) *result.Result {
	return o.NotFoundOf(ctx, o.label)
}

// NotFoundOf reports that a referenced entity does not exist.
func (o outcomes) NotFoundOf(ctx context.Context, label i18n.Key) *result.Result {
	return result.NotFound(o.Message(ctx, i18n.NotFound, label))
}

// Conflict reports a business-rule violation.
func (o outcomes) Conflict(ctx context.Context, key i18n.Key, args ...any) *result.Result {
	return result.Conflict(o.Message(ctx, key, args...))
}

// Invalid turns field violations into an InvalidData result, or nil when there are none.
func (o outcomes) Invalid(ctx context.Context, violations []validation.Violation) *result.Result {
	if len(violations) == 0 {
		return nil
	}
	errs := make([]string, len(violations))
	for i, v := range violations {
		errs[i] = o.Message(ctx, v.Key, v.Args...)
	}
	return result.InvalidData(o.Message(ctx, i18n.InvalidData), errs)
}

// Failure reports an unexpected error.
func (o outcomes) Failure(ctx context.Context, err error) *result.Result {
	return result.Failure(o.Message(ctx, i18n.UnexpectedError), err)
}

// Guarded converts a denied guard into a Result; nil when allowed.
func (o outcomes) Guarded(ctx context.Context, allowed bool, status result.Status, reason i18n.Key, args ...any) *result.Result {
	if allowed {
		return nil
	}
	msg := o.Message(ctx, reason, args...)
	switch status {
	case result.StatusNotFound:
		return result.NotFound(msg)
	default:
		return result.Conflict(msg)
	}
}
