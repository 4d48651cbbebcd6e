// Package i18n resolves symbolic message keys to localized strings.
package i18n

// Key identifies a localizable message. A Key passed as a format argument to
// Resolve is itself resolved before formatting, so field and entity labels
// follow the caller's locale.
type Key string

// Entity labels.
const (
	EntityArea        Key = "entity.area"
	EntitySquad       Key = "entity.squad"
	EntityMember      Key = "entity.member"
	EntityApplication Key = "entity.application"
	EntityDocument    Key = "entity.document"
	EntityKnowledge   Key = "entity.knowledge"
	EntityFeedback    Key = "entity.feedback"
	EntityIncident    Key = "entity.incident"
	EntityImprovement Key = "entity.improvement"
	EntitySupplier    Key = "entity.supplier"
	EntityVehicle     Key = "entity.vehicle"
	EntityPartNumber  Key = "entity.part_number"
)

// Field labels.
const (
	FieldName        Key = "field.name"
	FieldDescription Key = "field.description"
	FieldEmail       Key = "field.email"
	FieldRole        Key = "field.role"
	FieldSquad       Key = "field.squad"
	FieldArea        Key = "field.area"
	FieldManager     Key = "field.manager"
	FieldApplication Key = "field.application"
	FieldMember      Key = "field.member"
	FieldURL         Key = "field.url"
	FieldTitle       Key = "field.title"
	FieldStatus      Key = "field.status"
	FieldCode        Key = "field.code"
	FieldChassis     Key = "field.chassis"
	FieldModel       Key = "field.model"
	FieldYear        Key = "field.year"
	FieldType        Key = "field.type"
	FieldSupplier    Key = "field.supplier"
)

// Operation outcomes.
const (
	Registered      Key = "result.registered"
	Updated         Key = "result.updated"
	Deleted         Key = "result.deleted"
	NotFound        Key = "result.not_found"
	InvalidData     Key = "result.invalid_data"
	UnexpectedError Key = "result.unexpected_error"
)

// Field validation.
const (
	Required    Key = "validation.required"
	Length      Key = "validation.length"
	MaxLength   Key = "validation.max_length"
	ExactLength Key = "validation.exact_length"
	Email       Key = "validation.email"
	URL         Key = "validation.url"
	Positive    Key = "validation.positive"
	OneOf       Key = "validation.one_of"
	Format      Key = "validation.format"
)

// Relational and business-rule conflicts.
const (
	AlreadyInUse      Key = "conflict.already_in_use"
	InvalidMembers    Key = "conflict.invalid_members"
	AssociationExists Key = "conflict.association_exists"
	OnlySquadLeader   Key = "conflict.only_squad_leader"
	NotLeadersSquad   Key = "conflict.not_leaders_squad"
	PastAssociation   Key = "conflict.past_association"
	HasDependents     Key = "conflict.has_dependents"
)

// Notification bodies.
const (
	RemovedFromFeedback Key = "notify.removed_from_feedback"
	RemovedFromIncident Key = "notify.removed_from_incident"
)
