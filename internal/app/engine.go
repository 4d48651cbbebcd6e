// Package app contains the application layer - the generic entity engine and
// the per-entity services built on it.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/example/portfolio/internal/core/result"
	"github.com/example/portfolio/internal/i18n"
	"github.com/example/portfolio/internal/metrics"
	"github.com/example/portfolio/internal/models"
	"github.com/example/portfolio/internal/ports/secondary"
)

// Operation names used for metrics, logs and audit entries.
const (
	opCreate = "create"
	opUpdate = "update"
	opDelete = "delete"
)

// EngineDeps are the collaborators shared by every engine.
// Tx, Audit, Metrics and Logger are optional.
type EngineDeps struct {
	Tx       secondary.Transactor
	Catalog  secondary.MessageCatalog
	Audit    secondary.LogWriter
	Metrics  *metrics.Recorder
	Logger   *slog.Logger
	PageSize int
}

// PrepareFunc runs inside the write transaction after the stored record has
// been read. A non-nil result aborts the write and is returned unchanged.
type PrepareFunc[P any] func(ctx context.Context, old P) (*result.Result, error)

// Engine implements the create/read/update/delete mechanics shared by every
// entity. It is the unconditional-write tail of each service: it performs no
// field or relational validation of its own.
type Engine[T any, P models.EntityPtr[T], F any] struct {
	outcomes
	kind models.Kind
	repo secondary.Repository[T, F]
	deps EngineDeps
	log  *slog.Logger
}

// NewEngine creates an engine for one entity kind.
func NewEngine[T any, P models.EntityPtr[T], F any](kind models.Kind, label i18n.Key, repo secondary.Repository[T, F], deps EngineDeps) *Engine[T, P, F] {
	logger := deps.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Engine[T, P, F]{
		outcomes: outcomes{catalog: deps.Catalog, label: label},
		kind:     kind,
		repo:     repo,
		deps:     deps,
		log:      logger.With("entity", string(kind)),
	}
}

// Kind returns the entity kind the engine manages.
func (e *Engine[T, P, F]) Kind() models.Kind {
	return e.kind
}

// Create persists item unconditionally.
func (e *Engine[T, P, F]) Create(ctx context.Context, item P) (*result.Result, error) {
	return e.CreateWith(ctx, item, nil)
}

// CreateWith runs check inside the write transaction before persisting item.
// A non-nil result from check aborts the write.
func (e *Engine[T, P, F]) CreateWith(ctx context.Context, item P, check func(ctx context.Context) (*result.Result, error)) (*result.Result, error) {
	if (*T)(item) == nil {
		return nil, result.NilArgument(string(e.kind))
	}

	var outcome *result.Result
	err := e.withinTx(ctx, func(ctx context.Context) error {
		if check != nil {
			res, err := check(ctx)
			if err != nil {
				return err
			}
			if res != nil {
				outcome = res
				return nil
			}
		}
		if err := e.repo.Create(ctx, (*T)(item)); err != nil {
			return fmt.Errorf("failed to create %s: %w", e.kind, err)
		}
		return e.audit(ctx, opCreate, item.EntityID())
	})
	if err != nil {
		return e.Failure(ctx, err), nil
	}
	if outcome != nil {
		return outcome, nil
	}
	return result.Success(e.Message(ctx, i18n.Registered, e.label)), nil
}

// Update replaces the stored record with item.
func (e *Engine[T, P, F]) Update(ctx context.Context, item P) (*result.Result, error) {
	return e.UpdateWith(ctx, item, nil)
}

// UpdateWith reads the stored record, runs prepare against it and writes item,
// all inside one transaction.
func (e *Engine[T, P, F]) UpdateWith(ctx context.Context, item P, prepare PrepareFunc[P]) (*result.Result, error) {
	if (*T)(item) == nil {
		return nil, result.NilArgument(string(e.kind))
	}

	var outcome *result.Result
	err := e.withinTx(ctx, func(ctx context.Context) error {
		old, err := e.repo.GetByID(ctx, item.EntityID())
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", e.kind, err)
		}
		if old == nil {
			outcome = e.NotFound(ctx)
			return nil
		}
		if prepare != nil {
			res, err := prepare(ctx, P(old))
			if err != nil {
				return err
			}
			if res != nil {
				outcome = res
				return nil
			}
		}
		if err := e.repo.Update(ctx, (*T)(item)); err != nil {
			return fmt.Errorf("failed to update %s: %w", e.kind, err)
		}
		return e.audit(ctx, opUpdate, item.EntityID())
	})
	if err != nil {
		return e.Failure(ctx, err), nil
	}
	if outcome != nil {
		return outcome, nil
	}
	return result.Success(e.Message(ctx, i18n.Updated, e.label)), nil
}

// Delete removes the record with the given ID.
func (e *Engine[T, P, F]) Delete(ctx context.Context, id int64) (*result.Result, error) {
	return e.DeleteWith(ctx, id, nil)
}

// DeleteWith reads the stored record and runs guard against it before deleting.
func (e *Engine[T, P, F]) DeleteWith(ctx context.Context, id int64, guard PrepareFunc[P]) (*result.Result, error) {
	var outcome *result.Result
	err := e.withinTx(ctx, func(ctx context.Context) error {
		old, err := e.repo.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", e.kind, err)
		}
		if old == nil {
			outcome = e.NotFound(ctx)
			return nil
		}
		if guard != nil {
			res, err := guard(ctx, P(old))
			if err != nil {
				return err
			}
			if res != nil {
				outcome = res
				return nil
			}
		}
		if err := e.repo.Delete(ctx, id); err != nil {
			return fmt.Errorf("failed to delete %s: %w", e.kind, err)
		}
		return e.audit(ctx, opDelete, id)
	})
	if err != nil {
		return e.Failure(ctx, err), nil
	}
	if outcome != nil {
		return outcome, nil
	}
	return result.Success(e.Message(ctx, i18n.Deleted, e.label)), nil
}

// Get returns the stored record, or nil when it does not exist.
func (e *Engine[T, P, F]) Get(ctx context.Context, id int64) (P, error) {
	rec, err := e.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", e.kind, err)
	}
	return P(rec), nil
}

// List returns one page of records matching filter. Unset paging falls back
// to page 1 and the configured page size.
func (e *Engine[T, P, F]) List(ctx context.Context, filter F, page secondary.Page) (*secondary.PagedResult[T], error) {
	page = page.Normalize(e.deps.PageSize)
	res, err := e.repo.List(ctx, filter, page)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", e.kind, err)
	}
	return res, nil
}

// Track runs one service operation, recording its outcome and latency.
// Argument errors pass through untouched and are not counted.
func (e *Engine[T, P, F]) Track(ctx context.Context, op string, fn func(ctx context.Context) (*result.Result, error)) (*result.Result, error) {
	start := time.Now()
	res, err := fn(ctx)
	elapsed := time.Since(start)
	if err != nil {
		e.log.ErrorContext(ctx, "operation rejected", "op", op, "error", err)
		return nil, err
	}

	e.deps.Metrics.Observe(string(e.kind), op, string(res.Status), elapsed)

	attrs := []any{"op", op, "status", string(res.Status), "duration", elapsed}
	switch res.Status {
	case result.StatusSuccess:
		e.log.DebugContext(ctx, "operation finished", attrs...)
	case result.StatusError:
		e.log.ErrorContext(ctx, "operation failed", append(attrs, "error", res.Cause)...)
	default:
		e.log.InfoContext(ctx, "operation refused", append(attrs, "message", res.Message)...)
	}
	return res, nil
}

func (e *Engine[T, P, F]) withinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if e.deps.Tx == nil {
		return fn(ctx)
	}
	return e.deps.Tx.WithinTx(ctx, fn)
}

func (e *Engine[T, P, F]) audit(ctx context.Context, action string, id int64) error {
	if e.deps.Audit == nil {
		return nil
	}
	var err error
	switch action {
	case opCreate:
		err = e.deps.Audit.LogCreate(ctx, e.kind, id)
	case opUpdate:
		err = e.deps.Audit.LogUpdate(ctx, e.kind, id)
	case opDelete:
		err = e.deps.Audit.LogDelete(ctx, e.kind, id)
	}
	if err != nil {
		return fmt.Errorf("failed to write audit entry: %w", err)
	}
	return nil
}
