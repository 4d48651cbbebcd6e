package models

import "time"

// TrackedStatus is the lifecycle state shared by feedback, incidents and improvements.
type TrackedStatus string

const (
	StatusOpen     TrackedStatus = "open"
	StatusClosed   TrackedStatus = "closed"
	StatusReopened TrackedStatus = "reopened"
)

// TrackedStatuses lists every valid lifecycle state.
var TrackedStatuses = []TrackedStatus{StatusOpen, StatusClosed, StatusReopened}

// Tracked holds the fields common to lifecycle records.
type Tracked struct {
	ID            int64
	Title         string
	Description   string
	ApplicationID int64
	MemberIDs     []int64
	Status        TrackedStatus
	CreatedAt     time.Time
	ClosedAt      *time.Time
}

func (t *Tracked) EntityID() int64 { return t.ID }

// Base exposes the shared lifecycle fields of an embedding record.
func (t *Tracked) Base() *Tracked { return t }

// Feedback is a lifecycle record raised against an application.
type Feedback struct {
	Tracked
}

// Incident is a lifecycle record for an application outage or defect.
type Incident struct {
	Tracked
}

// Improvement is a lifecycle record for planned application work.
type Improvement struct {
	Tracked
}
