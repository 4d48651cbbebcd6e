// Package knowledge contains the pure business logic for member/application
// knowledge associations.
// Guards are pure functions that evaluate preconditions without side effects.
// Callers pre-fetch every fact a guard needs; guards check them in a fixed order
// and report the first failure only.
package knowledge

import (
	"github.com/example/portfolio/internal/core/membership"
	"github.com/example/portfolio/internal/core/result"
	"github.com/example/portfolio/internal/i18n"
	"github.com/example/portfolio/internal/models"
)

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	// NoChange is set by CanUpdate when the update would not alter anything.
	NoChange bool
	Status   result.Status // Outcome to report (populated when not allowed)
	Reason   i18n.Key
	Args     []any
}

func allowed() GuardResult {
	return GuardResult{Allowed: true}
}

func denied(status result.Status, reason i18n.Key, args ...any) GuardResult {
	return GuardResult{Status: status, Reason: reason, Args: args}
}

// CreateContext provides context for association creation guards.
type CreateContext struct {
	MemberID           int64
	AssociationExists  bool
	MemberFound        bool
	ApplicationFound   bool
	MemberSquadID      int64
	ApplicationSquadID int64
}

// CanCreate evaluates whether a member may be associated with an application.
// Rules:
// - No current association for the same member and application may exist
// - Member must exist
// - Application must exist
// - Member and application must share a squad
func CanCreate(ctx CreateContext) GuardResult {
	if ctx.AssociationExists {
		return denied(result.StatusConflict, i18n.AssociationExists)
	}
	if !ctx.MemberFound {
		return denied(result.StatusNotFound, i18n.NotFound, i18n.EntityMember)
	}
	if !ctx.ApplicationFound {
		return denied(result.StatusNotFound, i18n.NotFound, i18n.EntityApplication)
	}
	return checkSquad(ctx.MemberID, ctx.MemberSquadID, ctx.ApplicationSquadID)
}

// UpdateContext provides context for retargeting an association.
type UpdateContext struct {
	MemberID             int64
	Status               models.KnowledgeStatus
	CurrentApplicationID int64
	NewApplicationID     int64
	AssociationExists    bool // for the member and the new application
	ApplicationFound     bool
	MemberSquadID        int64
	ApplicationSquadID   int64
}

// CanUpdate evaluates whether an association may be moved to another application.
// Rules:
// - Keeping the same application is a no-op
// - Past associations cannot be edited
// - No current association for the member and the new application may exist
// - The new application must exist
// - Member and new application must share a squad
func CanUpdate(ctx UpdateContext) GuardResult {
	if ctx.NewApplicationID == ctx.CurrentApplicationID {
		return GuardResult{Allowed: true, NoChange: true}
	}
	if ctx.Status == models.KnowledgePast {
		return denied(result.StatusConflict, i18n.PastAssociation)
	}
	if ctx.AssociationExists {
		return denied(result.StatusConflict, i18n.AssociationExists)
	}
	if !ctx.ApplicationFound {
		return denied(result.StatusNotFound, i18n.NotFound, i18n.EntityApplication)
	}
	return checkSquad(ctx.MemberID, ctx.MemberSquadID, ctx.ApplicationSquadID)
}

// DeleteContext provides context for association removal guards.
// Squad IDs are the live values at the time of the request, except
// SnapshotSquadID which is the squad recorded when the association was made.
type DeleteContext struct {
	RequesterIsLeader  bool
	RequesterSquadID   int64
	MemberSquadID      int64
	ApplicationSquadID int64
	SnapshotSquadID    int64
	Status             models.KnowledgeStatus
}

// CanDelete evaluates whether the requester may remove an association.
// Rules:
// - Requester must be a squad leader
// - Member and application must currently belong to the requester's squad
// - The association must be current and recorded under the requester's squad
func CanDelete(ctx DeleteContext) GuardResult {
	if !ctx.RequesterIsLeader {
		return denied(result.StatusConflict, i18n.OnlySquadLeader)
	}
	if ctx.MemberSquadID != ctx.RequesterSquadID || ctx.ApplicationSquadID != ctx.RequesterSquadID {
		return denied(result.StatusConflict, i18n.NotLeadersSquad)
	}
	if ctx.Status == models.KnowledgePast || ctx.SnapshotSquadID != ctx.RequesterSquadID {
		return denied(result.StatusConflict, i18n.PastAssociation)
	}
	return allowed()
}

// ShouldRetire reports whether a current association becomes past once its
// member moves to newSquadID.
func ShouldRetire(k *models.Knowledge, newSquadID int64) bool {
	return k.Status == models.KnowledgeCurrent && k.SquadIDAtAssociation != newSquadID
}

func checkSquad(memberID, memberSquadID, applicationSquadID int64) GuardResult {
	g := membership.CanAssociate(membership.SameSquadContext{
		MemberID:           memberID,
		MemberSquadID:      memberSquadID,
		ApplicationSquadID: applicationSquadID,
	})
	if !g.Allowed {
		return denied(result.StatusConflict, g.Reason, g.Args...)
	}
	return allowed()
}
