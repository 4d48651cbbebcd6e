// Package membership contains the squad-membership consistency rules.
// Guards are pure functions that evaluate preconditions without side effects.
package membership

import (
	"github.com/example/portfolio/internal/i18n"
	"github.com/example/portfolio/internal/models"
)

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  i18n.Key // Message key (populated when not allowed)
	Args    []any
	// Invalid lists the member IDs that failed the check.
	Invalid []int64
}

// InvalidMembers returns the supplied IDs that are not in squadMembers, in supplied order.
func InvalidMembers(supplied, squadMembers []int64) []int64 {
	allowed := make(map[int64]struct{}, len(squadMembers))
	for _, id := range squadMembers {
		allowed[id] = struct{}{}
	}

	var invalid []int64
	for _, id := range supplied {
		if _, ok := allowed[id]; !ok {
			invalid = append(invalid, id)
		}
	}
	return invalid
}

// MembersContext provides context for member-set guards on an application's records.
type MembersContext struct {
	SuppliedMemberIDs []int64
	// SquadMemberIDs are the members of the application's squad; empty when
	// the application has no squad.
	SquadMemberIDs []int64
}

// CanAssignMembers evaluates whether every supplied member belongs to the application's squad.
// Rules:
// - Each supplied member must be a member of the application's squad
func CanAssignMembers(ctx MembersContext) GuardResult {
	invalid := InvalidMembers(ctx.SuppliedMemberIDs, ctx.SquadMemberIDs)
	if len(invalid) > 0 {
		return GuardResult{
			Allowed: false,
			Reason:  i18n.InvalidMembers,
			Args:    []any{FormatIDs(invalid)},
			Invalid: invalid,
		}
	}
	return GuardResult{Allowed: true}
}

// SameSquadContext provides context for a single member/application association.
type SameSquadContext struct {
	MemberID           int64
	MemberSquadID      int64
	ApplicationSquadID int64
}

// CanAssociate evaluates whether a member may be linked to an application.
// Rules:
// - The application must have a squad
// - The member's squad must equal the application's squad
func CanAssociate(ctx SameSquadContext) GuardResult {
	if ctx.ApplicationSquadID == 0 || ctx.MemberSquadID != ctx.ApplicationSquadID {
		return GuardResult{
			Allowed: false,
			Reason:  i18n.InvalidMembers,
			Args:    []any{FormatIDs([]int64{ctx.MemberID})},
			Invalid: []int64{ctx.MemberID},
		}
	}
	return GuardResult{Allowed: true}
}

// MemberIDs extracts IDs from member records.
func MemberIDs(members []*models.Member) []int64 {
	ids := make([]int64, len(members))
	for i, m := range members {
		ids[i] = m.ID
	}
	return ids
}
