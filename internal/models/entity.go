// Package models defines the records managed by the portfolio services.
// Every record has a storage-assigned integer identity; zero means "not yet persisted".
package models

// Kind names an entity type. It is used for audit entries, metrics labels and notifications.
type Kind string

const (
	KindArea        Kind = "area"
	KindSquad       Kind = "squad"
	KindMember      Kind = "member"
	KindApplication Kind = "application"
	KindDocument    Kind = "document"
	KindKnowledge   Kind = "knowledge"
	KindFeedback    Kind = "feedback"
	KindIncident    Kind = "incident"
	KindImprovement Kind = "improvement"
	KindSupplier    Kind = "supplier"
	KindVehicle     Kind = "vehicle"
	KindPartNumber  Kind = "part_number"
)

// Entity is implemented by every persisted record.
type Entity interface {
	EntityID() int64
}

// EntityPtr constrains a type parameter to a pointer to an entity struct.
type EntityPtr[T any] interface {
	*T
	Entity
}
