package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/example/portfolio/internal/core/lifecycle"
	"github.com/example/portfolio/internal/core/membership"
	"github.com/example/portfolio/internal/core/result"
	"github.com/example/portfolio/internal/core/validation"
	"github.com/example/portfolio/internal/i18n"
	"github.com/example/portfolio/internal/models"
	"github.com/example/portfolio/internal/ports/secondary"
)

// trackedPtr is satisfied by pointers to records that embed models.Tracked.
type trackedPtr[T any] interface {
	*T
	models.Entity
	Base() *models.Tracked
}

// trackedEvents selects which notifications a lifecycle entity emits.
type trackedEvents struct {
	created       bool
	statusChanged bool
	// removedMember is the message sent to each member dropped on update; empty disables it.
	removedMember i18n.Key
}

// trackedCoordinator runs the shared feedback/incident/improvement lifecycle:
// status side effects, squad membership of the linked members and notifications.
type trackedCoordinator[T any, P trackedPtr[T]] struct {
	engine     *Engine[T, P, secondary.TrackedFilters]
	appRepo    secondary.ApplicationRepository
	memberRepo secondary.MemberRepository
	notifier   secondary.Notifier
	events     trackedEvents
	now        func() time.Time
}

func newTrackedCoordinator[T any, P trackedPtr[T]](
	kind models.Kind,
	label i18n.Key,
	repo secondary.Repository[T, secondary.TrackedFilters],
	appRepo secondary.ApplicationRepository,
	memberRepo secondary.MemberRepository,
	notifier secondary.Notifier,
	events trackedEvents,
	deps EngineDeps,
) *trackedCoordinator[T, P] {
	return &trackedCoordinator[T, P]{
		engine:     NewEngine[T, P](kind, label, repo, deps),
		appRepo:    appRepo,
		memberRepo: memberRepo,
		notifier:   notifier,
		events:     events,
		now:        time.Now,
	}
}

// Create validates and registers a new record. The status defaults to open.
func (c *trackedCoordinator[T, P]) Create(ctx context.Context, item *T) (*result.Result, error) {
	return c.engine.Track(ctx, opCreate, func(ctx context.Context) (*result.Result, error) {
		if item == nil {
			return nil, result.NilArgument(string(c.engine.Kind()))
		}
		base := P(item).Base()
		normalizeTracked(base)
		if res := c.engine.Invalid(ctx, validation.Tracked(base)); res != nil {
			return res, nil
		}

		res, err := c.engine.CreateWith(ctx, P(item), func(ctx context.Context) (*result.Result, error) {
			if res, err := firstFailure(ctx, c.relationalChecks(base)...); err != nil || res != nil {
				return res, err
			}
			now := c.now()
			tr := lifecycle.ApplyStatusTransition("", nil, base.Status, now)
			base.Status = tr.NewStatus
			base.ClosedAt = tr.ClosedAt
			base.CreatedAt = now
			return nil, nil
		})
		if err != nil || !res.OK() {
			return res, err
		}

		if c.events.created {
			c.deliver(ctx, "created", c.notifierCall(func(n secondary.Notifier) error {
				return n.NotifyCreated(ctx, c.engine.Kind(), base.ID)
			}))
		}
		return res, nil
	})
}

// Update validates item against the stored record and saves it. Status side
// effects and the member diff are computed from the stored state.
func (c *trackedCoordinator[T, P]) Update(ctx context.Context, item *T) (*result.Result, error) {
	return c.engine.Track(ctx, opUpdate, func(ctx context.Context) (*result.Result, error) {
		if item == nil {
			return nil, result.NilArgument(string(c.engine.Kind()))
		}
		base := P(item).Base()
		normalizeTracked(base)
		if res := c.engine.Invalid(ctx, validation.Tracked(base)); res != nil {
			return res, nil
		}

		var (
			statusChanged bool
			removed       []*models.Member
		)
		res, err := c.engine.UpdateWith(ctx, P(item), func(ctx context.Context, old P) (*result.Result, error) {
			if res, err := firstFailure(ctx, c.relationalChecks(base)...); err != nil || res != nil {
				return res, err
			}
			prev := old.Base()

			tr := lifecycle.ApplyStatusTransition(prev.Status, prev.ClosedAt, base.Status, c.now())
			base.Status = tr.NewStatus
			base.ClosedAt = tr.ClosedAt
			base.CreatedAt = prev.CreatedAt
			statusChanged = tr.Changed

			if c.events.removedMember != "" {
				var err error
				removed, err = c.removedMembers(ctx, prev.MemberIDs, base.MemberIDs)
				if err != nil {
					return nil, err
				}
			}
			return nil, nil
		})
		if err != nil || !res.OK() {
			return res, err
		}

		if c.events.statusChanged && statusChanged {
			c.deliver(ctx, "status_changed", c.notifierCall(func(n secondary.Notifier) error {
				return n.NotifyStatusChanged(ctx, c.engine.Kind(), base.ID, string(base.Status))
			}))
		}
		for _, m := range removed {
			msg := c.engine.Message(ctx, c.events.removedMember, base.Title)
			c.deliver(ctx, "member_removed", c.notifierCall(func(n secondary.Notifier) error {
				return n.NotifyMembers(ctx, []*models.Member{m}, msg)
			}))
		}
		return res, nil
	})
}

// Delete removes a record.
func (c *trackedCoordinator[T, P]) Delete(ctx context.Context, id int64) (*result.Result, error) {
	return c.engine.Track(ctx, opDelete, func(ctx context.Context) (*result.Result, error) {
		return c.engine.Delete(ctx, id)
	})
}

// Get retrieves a record by ID; nil when absent.
func (c *trackedCoordinator[T, P]) Get(ctx context.Context, id int64) (*T, error) {
	rec, err := c.engine.Get(ctx, id)
	return (*T)(rec), err
}

// List retrieves a page of records.
func (c *trackedCoordinator[T, P]) List(ctx context.Context, filters secondary.TrackedFilters, page secondary.Page) (*secondary.PagedResult[T], error) {
	return c.engine.List(ctx, filters, page)
}

// relationalChecks resolves the application, then checks every member against its squad.
func (c *trackedCoordinator[T, P]) relationalChecks(base *models.Tracked) []check {
	var app *models.Application
	return []check{
		c.engine.exists(i18n.EntityApplication, func(ctx context.Context) (bool, error) {
			var err error
			app, err = c.appRepo.GetByID(ctx, base.ApplicationID)
			if err != nil {
				return false, fmt.Errorf("failed to load application: %w", err)
			}
			return app != nil, nil
		}),
		func(ctx context.Context) (*result.Result, error) {
			if len(base.MemberIDs) == 0 {
				return nil, nil
			}
			var squadMembers []int64
			if app.SquadID != 0 {
				members, err := c.memberRepo.ListBySquad(ctx, app.SquadID)
				if err != nil {
					return nil, fmt.Errorf("failed to list squad members: %w", err)
				}
				squadMembers = membership.MemberIDs(members)
			}
			g := membership.CanAssignMembers(membership.MembersContext{
				SuppliedMemberIDs: base.MemberIDs,
				SquadMemberIDs:    squadMembers,
			})
			if !g.Allowed {
				return c.engine.Conflict(ctx, g.Reason, g.Args...), nil
			}
			return nil, nil
		},
	}
}

// removedMembers resolves both member sets and returns the stored members missing from next.
func (c *trackedCoordinator[T, P]) removedMembers(ctx context.Context, prevIDs, nextIDs []int64) ([]*models.Member, error) {
	prev, err := c.memberRepo.GetByIDs(ctx, prevIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load previous members: %w", err)
	}
	next, err := c.memberRepo.GetByIDs(ctx, nextIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load members: %w", err)
	}
	return lifecycle.Removed(prev, next, func(m *models.Member) int64 { return m.ID }), nil
}

func (c *trackedCoordinator[T, P]) notifierCall(fn func(n secondary.Notifier) error) func() error {
	return func() error {
		if c.notifier == nil {
			return nil
		}
		return fn(c.notifier)
	}
}

// deliver sends a notification after the write has committed. Failures are
// logged and never change the operation's result.
func (c *trackedCoordinator[T, P]) deliver(ctx context.Context, event string, send func() error) {
	if err := send(); err != nil {
		c.engine.log.WarnContext(ctx, "notification failed", "event", event, "error", err)
	}
}

func normalizeTracked(t *models.Tracked) {
	t.Title = strings.TrimSpace(t.Title)
	t.Description = strings.TrimSpace(t.Description)
	t.MemberIDs = lifecycle.UniqueIDs(t.MemberIDs)
}
