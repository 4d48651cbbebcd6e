package models

import "time"

// KnowledgeStatus tells whether an association still reflects the member's squad.
type KnowledgeStatus string

const (
	KnowledgeCurrent KnowledgeStatus = "current"
	KnowledgePast    KnowledgeStatus = "past"
)

// Knowledge links a member to an application they know.
// SquadIDAtAssociation is copied from the member when the link is made and is
// never recomputed from the live member or application.
type Knowledge struct {
	ID                   int64
	MemberID             int64
	ApplicationID        int64
	SquadIDAtAssociation int64
	Status               KnowledgeStatus
	CreatedAt            time.Time
}

func (k *Knowledge) EntityID() int64 { return k.ID }
