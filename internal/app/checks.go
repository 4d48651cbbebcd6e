package app

import (
	"context"
	"strings"

	"github.com/example/portfolio/internal/core/result"
	"github.com/example/portfolio/internal/i18n"
)

// check is one relational rule. It returns a non-nil Result when violated.
type check func(ctx context.Context) (*result.Result, error)

// probe answers a yes/no question against storage.
type probe func(ctx context.Context) (bool, error)

// firstFailure runs checks in order and returns the first violation.
// Later checks are not evaluated once one fails.
func firstFailure(ctx context.Context, checks ...check) (*result.Result, error) {
	for _, c := range checks {
		res, err := c(ctx)
		if err != nil {
			return nil, err
		}
		if res != nil {
			return res, nil
		}
	}
	return nil, nil
}

// unique fails with Conflict when taken reports true. Pass skip to bypass the
// probe, e.g. when an update keeps the stored value.
func (o outcomes) unique(field i18n.Key, skip bool, taken probe) check {
	return func(ctx context.Context) (*result.Result, error) {
		if skip {
			return nil, nil
		}
		exists, err := taken(ctx)
		if err != nil {
			return nil, err
		}
		if exists {
			return o.Conflict(ctx, i18n.AlreadyInUse, field), nil
		}
		return nil, nil
	}
}

// exists fails with NotFound for label when found reports false.
func (o outcomes) exists(label i18n.Key, found probe) check {
	return func(ctx context.Context) (*result.Result, error) {
		ok, err := found(ctx)
		if err != nil {
			return nil, err
		}
		if !ok {
			return o.NotFoundOf(ctx, label), nil
		}
		return nil, nil
	}
}

// optional skips c when the reference is unset.
func optional(id int64, c check) check {
	return func(ctx context.Context) (*result.Result, error) {
		if id <= 0 {
			return nil, nil
		}
		return c(ctx)
	}
}

// noDependents fails with Conflict when has reports true.
func (o outcomes) noDependents(has probe) check {
	return func(ctx context.Context) (*result.Result, error) {
		found, err := has(ctx)
		if err != nil {
			return nil, err
		}
		if found {
			return o.Conflict(ctx, i18n.HasDependents, o.label), nil
		}
		return nil, nil
	}
}

// sameKey compares business keys the way storage does: trimmed, case-insensitive.
func sameKey(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
