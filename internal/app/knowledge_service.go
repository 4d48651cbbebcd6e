package app

import (
	"context"
	"fmt"
	"time"

	"github.com/example/portfolio/internal/core/knowledge"
	"github.com/example/portfolio/internal/core/result"
	"github.com/example/portfolio/internal/core/validation"
	"github.com/example/portfolio/internal/ctxutil"
	"github.com/example/portfolio/internal/i18n"
	"github.com/example/portfolio/internal/models"
	"github.com/example/portfolio/internal/ports/primary"
	"github.com/example/portfolio/internal/ports/secondary"
)

// KnowledgeServiceImpl implements the KnowledgeService interface.
type KnowledgeServiceImpl struct {
	engine        *Engine[models.Knowledge, *models.Knowledge, secondary.KnowledgeFilters]
	knowledgeRepo secondary.KnowledgeRepository
	memberRepo    secondary.MemberRepository
	appRepo       secondary.ApplicationRepository
	now           func() time.Time
}

// NewKnowledgeService creates a new KnowledgeService with injected dependencies.
func NewKnowledgeService(
	knowledgeRepo secondary.KnowledgeRepository,
	memberRepo secondary.MemberRepository,
	appRepo secondary.ApplicationRepository,
	deps EngineDeps,
) *KnowledgeServiceImpl {
	return &KnowledgeServiceImpl{
		engine:        NewEngine[models.Knowledge, *models.Knowledge](models.KindKnowledge, i18n.EntityKnowledge, knowledgeRepo, deps),
		knowledgeRepo: knowledgeRepo,
		memberRepo:    memberRepo,
		appRepo:       appRepo,
		now:           time.Now,
	}
}

// Create associates a member with an application of their squad.
// The member's squad is recorded on the association and never recomputed.
func (s *KnowledgeServiceImpl) Create(ctx context.Context, k *models.Knowledge) (*result.Result, error) {
	return s.engine.Track(ctx, opCreate, func(ctx context.Context) (*result.Result, error) {
		if k == nil {
			return nil, result.NilArgument("knowledge")
		}
		if res := s.engine.Invalid(ctx, validation.Knowledge(k)); res != nil {
			return res, nil
		}
		return s.engine.CreateWith(ctx, k, func(ctx context.Context) (*result.Result, error) {
			exists, err := s.knowledgeRepo.AssociationExists(ctx, k.MemberID, k.ApplicationID)
			if err != nil {
				return nil, fmt.Errorf("failed to check association: %w", err)
			}
			member, app, err := s.resolve(ctx, k.MemberID, k.ApplicationID)
			if err != nil {
				return nil, err
			}

			guardCtx := knowledge.CreateContext{
				MemberID:          k.MemberID,
				AssociationExists: exists,
				MemberFound:       member != nil,
				ApplicationFound:  app != nil,
			}
			if member != nil {
				guardCtx.MemberSquadID = member.SquadID
			}
			if app != nil {
				guardCtx.ApplicationSquadID = app.SquadID
			}
			if res := s.guarded(ctx, knowledge.CanCreate(guardCtx)); res != nil {
				return res, nil
			}

			k.SquadIDAtAssociation = member.SquadID
			k.Status = models.KnowledgeCurrent
			k.CreatedAt = s.now()
			return nil, nil
		})
	})
}

// Update moves a current association to another application.
// Keeping the same application succeeds without writing.
func (s *KnowledgeServiceImpl) Update(ctx context.Context, k *models.Knowledge) (*result.Result, error) {
	return s.engine.Track(ctx, opUpdate, func(ctx context.Context) (*result.Result, error) {
		if k == nil {
			return nil, result.NilArgument("knowledge")
		}
		if res := s.engine.Invalid(ctx, validation.KnowledgeTarget(k)); res != nil {
			return res, nil
		}
		return s.engine.UpdateWith(ctx, k, func(ctx context.Context, old *models.Knowledge) (*result.Result, error) {
			guardCtx := knowledge.UpdateContext{
				MemberID:             old.MemberID,
				Status:               old.Status,
				CurrentApplicationID: old.ApplicationID,
				NewApplicationID:     k.ApplicationID,
			}
			if k.ApplicationID == old.ApplicationID {
				return result.Success(s.engine.Message(ctx, i18n.Updated, i18n.EntityKnowledge)), nil
			}

			exists, err := s.knowledgeRepo.AssociationExists(ctx, old.MemberID, k.ApplicationID)
			if err != nil {
				return nil, fmt.Errorf("failed to check association: %w", err)
			}
			member, app, err := s.resolve(ctx, old.MemberID, k.ApplicationID)
			if err != nil {
				return nil, err
			}
			guardCtx.AssociationExists = exists
			guardCtx.ApplicationFound = app != nil
			if member != nil {
				guardCtx.MemberSquadID = member.SquadID
			}
			if app != nil {
				guardCtx.ApplicationSquadID = app.SquadID
			}
			if res := s.guarded(ctx, knowledge.CanUpdate(guardCtx)); res != nil {
				return res, nil
			}

			k.MemberID = old.MemberID
			k.SquadIDAtAssociation = guardCtx.MemberSquadID
			k.Status = old.Status
			k.CreatedAt = old.CreatedAt
			return nil, nil
		})
	})
}

// Delete removes an association on behalf of the requester carried by ctx.
// Only a squad leader may remove current associations within their own squad.
func (s *KnowledgeServiceImpl) Delete(ctx context.Context, id int64) (*result.Result, error) {
	return s.engine.Track(ctx, opDelete, func(ctx context.Context) (*result.Result, error) {
		return s.engine.DeleteWith(ctx, id, func(ctx context.Context, old *models.Knowledge) (*result.Result, error) {
			guardCtx := knowledge.DeleteContext{
				SnapshotSquadID: old.SquadIDAtAssociation,
				Status:          old.Status,
			}
			if requesterID, ok := ctxutil.RequesterFromContext(ctx); ok {
				requester, err := s.memberRepo.GetByID(ctx, requesterID)
				if err != nil {
					return nil, fmt.Errorf("failed to load requester: %w", err)
				}
				if requester != nil {
					guardCtx.RequesterIsLeader = requester.IsSquadLeader()
					guardCtx.RequesterSquadID = requester.SquadID
				}
			}
			if !guardCtx.RequesterIsLeader {
				return s.guarded(ctx, knowledge.CanDelete(guardCtx)), nil
			}

			member, app, err := s.resolve(ctx, old.MemberID, old.ApplicationID)
			if err != nil {
				return nil, err
			}
			if member != nil {
				guardCtx.MemberSquadID = member.SquadID
			}
			if app != nil {
				guardCtx.ApplicationSquadID = app.SquadID
			}
			return s.guarded(ctx, knowledge.CanDelete(guardCtx)), nil
		})
	})
}

// Get retrieves an association by ID; nil when absent.
func (s *KnowledgeServiceImpl) Get(ctx context.Context, id int64) (*models.Knowledge, error) {
	return s.engine.Get(ctx, id)
}

// List retrieves a page of associations.
func (s *KnowledgeServiceImpl) List(ctx context.Context, filters secondary.KnowledgeFilters, page secondary.Page) (*secondary.PagedResult[models.Knowledge], error) {
	return s.engine.List(ctx, filters, page)
}

func (s *KnowledgeServiceImpl) resolve(ctx context.Context, memberID, appID int64) (*models.Member, *models.Application, error) {
	member, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load member: %w", err)
	}
	app, err := s.appRepo.GetByID(ctx, appID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load application: %w", err)
	}
	return member, app, nil
}

func (s *KnowledgeServiceImpl) guarded(ctx context.Context, g knowledge.GuardResult) *result.Result {
	return s.engine.Guarded(ctx, g.Allowed, g.Status, g.Reason, g.Args...)
}

// Ensure KnowledgeServiceImpl implements the interface.
var _ primary.KnowledgeService = (*KnowledgeServiceImpl)(nil)
