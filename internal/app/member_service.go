package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/example/portfolio/internal/core/knowledge"
	"github.com/example/portfolio/internal/core/result"
	"github.com/example/portfolio/internal/core/validation"
	"github.com/example/portfolio/internal/i18n"
	"github.com/example/portfolio/internal/models"
	"github.com/example/portfolio/internal/ports/primary"
	"github.com/example/portfolio/internal/ports/secondary"
)

// MemberServiceImpl implements the MemberService interface.
type MemberServiceImpl struct {
	engine        *Engine[models.Member, *models.Member, secondary.MemberFilters]
	memberRepo    secondary.MemberRepository
	squadRepo     secondary.SquadRepository
	knowledgeRepo secondary.KnowledgeRepository
}

// NewMemberService creates a new MemberService with injected dependencies.
func NewMemberService(
	memberRepo secondary.MemberRepository,
	squadRepo secondary.SquadRepository,
	knowledgeRepo secondary.KnowledgeRepository,
	deps EngineDeps,
) *MemberServiceImpl {
	return &MemberServiceImpl{
		engine:        NewEngine[models.Member, *models.Member](models.KindMember, i18n.EntityMember, memberRepo, deps),
		memberRepo:    memberRepo,
		squadRepo:     squadRepo,
		knowledgeRepo: knowledgeRepo,
	}
}

// Create validates and registers a new member.
func (s *MemberServiceImpl) Create(ctx context.Context, member *models.Member) (*result.Result, error) {
	return s.engine.Track(ctx, opCreate, func(ctx context.Context) (*result.Result, error) {
		if member == nil {
			return nil, result.NilArgument("member")
		}
		normalizeMember(member)
		if res := s.engine.Invalid(ctx, validation.Member(member)); res != nil {
			return res, nil
		}
		return s.engine.CreateWith(ctx, member, func(ctx context.Context) (*result.Result, error) {
			return firstFailure(ctx, s.relationalChecks(member, false)...)
		})
	})
}

// Update validates member against the stored record and saves it.
// Moving a member to another squad turns their current knowledge of the old
// squad's applications into past associations.
func (s *MemberServiceImpl) Update(ctx context.Context, member *models.Member) (*result.Result, error) {
	return s.engine.Track(ctx, opUpdate, func(ctx context.Context) (*result.Result, error) {
		if member == nil {
			return nil, result.NilArgument("member")
		}
		normalizeMember(member)
		if res := s.engine.Invalid(ctx, validation.Member(member)); res != nil {
			return res, nil
		}
		return s.engine.UpdateWith(ctx, member, func(ctx context.Context, old *models.Member) (*result.Result, error) {
			res, err := firstFailure(ctx, s.relationalChecks(member, sameKey(member.Email, old.Email))...)
			if err != nil || res != nil {
				return res, err
			}
			if old.SquadID != member.SquadID {
				if err := s.retireKnowledge(ctx, member.ID, member.SquadID); err != nil {
					return nil, err
				}
			}
			return nil, nil
		})
	})
}

// Delete removes a member.
func (s *MemberServiceImpl) Delete(ctx context.Context, id int64) (*result.Result, error) {
	return s.engine.Track(ctx, opDelete, func(ctx context.Context) (*result.Result, error) {
		return s.engine.Delete(ctx, id)
	})
}

// Get retrieves a member by ID; nil when absent.
func (s *MemberServiceImpl) Get(ctx context.Context, id int64) (*models.Member, error) {
	return s.engine.Get(ctx, id)
}

// List retrieves a page of members.
func (s *MemberServiceImpl) List(ctx context.Context, filters secondary.MemberFilters, page secondary.Page) (*secondary.PagedResult[models.Member], error) {
	return s.engine.List(ctx, filters, page)
}

func (s *MemberServiceImpl) relationalChecks(member *models.Member, emailUnchanged bool) []check {
	return []check{
		s.engine.unique(i18n.FieldEmail, emailUnchanged, func(ctx context.Context) (bool, error) {
			return s.memberRepo.EmailExists(ctx, member.Email)
		}),
		s.engine.exists(i18n.EntitySquad, func(ctx context.Context) (bool, error) {
			sq, err := s.squadRepo.GetByID(ctx, member.SquadID)
			return sq != nil, err
		}),
	}
}

func (s *MemberServiceImpl) retireKnowledge(ctx context.Context, memberID, newSquadID int64) error {
	current, err := s.knowledgeRepo.ListCurrentByMember(ctx, memberID)
	if err != nil {
		return fmt.Errorf("failed to list knowledge: %w", err)
	}
	for _, k := range current {
		if !knowledge.ShouldRetire(k, newSquadID) {
			continue
		}
		k.Status = models.KnowledgePast
		if err := s.knowledgeRepo.Update(ctx, k); err != nil {
			return fmt.Errorf("failed to retire knowledge %d: %w", k.ID, err)
		}
	}
	return nil
}

func normalizeMember(m *models.Member) {
	m.Name = strings.TrimSpace(m.Name)
	m.Email = strings.ToLower(strings.TrimSpace(m.Email))
}

// Ensure MemberServiceImpl implements the interface.
var _ primary.MemberService = (*MemberServiceImpl)(nil)
