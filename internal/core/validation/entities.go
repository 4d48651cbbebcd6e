package validation

import (
	"regexp"

	"github.com/example/portfolio/internal/i18n"
	"github.com/example/portfolio/internal/models"
)

// Field limits shared by the entity validators.
const (
	NameMin        = 3
	NameMax        = 255
	DescriptionMax = 4000
	CodeMin        = 3
	CodeMax        = 50
	ChassisLength  = 17
)

// vinPattern accepts the VIN alphabet (no I, O or Q).
var vinPattern = regexp.MustCompile(`^[A-HJ-NPR-Z0-9]+$`)

// Area validates an area's fields.
func Area(a *models.Area) []Violation {
	return Run(
		Required(i18n.FieldName, a.Name),
		Length(i18n.FieldName, a.Name, NameMin, NameMax),
	)
}

// Squad validates a squad's fields.
func Squad(s *models.Squad) []Violation {
	return Run(
		Required(i18n.FieldName, s.Name),
		Length(i18n.FieldName, s.Name, NameMin, NameMax),
		MaxLength(i18n.FieldDescription, s.Description, DescriptionMax),
	)
}

// Member validates a member's fields.
func Member(m *models.Member) []Violation {
	return Run(
		Required(i18n.FieldName, m.Name),
		Length(i18n.FieldName, m.Name, NameMin, NameMax),
		Required(i18n.FieldEmail, m.Email),
		Email(i18n.FieldEmail, m.Email),
		OneOf(i18n.FieldRole, m.Role, models.Roles),
		RequiredID(i18n.FieldSquad, m.SquadID),
	)
}

// Application validates an application's fields.
func Application(a *models.Application) []Violation {
	return Run(
		Required(i18n.FieldName, a.Name),
		Length(i18n.FieldName, a.Name, NameMin, NameMax),
		MaxLength(i18n.FieldDescription, a.Description, DescriptionMax),
		RequiredID(i18n.FieldArea, a.AreaID),
	)
}

// Document validates a document's fields.
func Document(d *models.Document) []Violation {
	return Run(
		RequiredID(i18n.FieldApplication, d.ApplicationID),
		Required(i18n.FieldName, d.Name),
		Length(i18n.FieldName, d.Name, NameMin, NameMax),
		Required(i18n.FieldURL, d.URL),
		URL(i18n.FieldURL, d.URL),
	)
}

// Knowledge validates an association's references.
func Knowledge(k *models.Knowledge) []Violation {
	return Run(
		RequiredID(i18n.FieldMember, k.MemberID),
		RequiredID(i18n.FieldApplication, k.ApplicationID),
	)
}

// KnowledgeTarget validates an association retarget; the member is fixed once created.
func KnowledgeTarget(k *models.Knowledge) []Violation {
	return Run(RequiredID(i18n.FieldApplication, k.ApplicationID))
}

// Tracked validates the shared feedback/incident/improvement fields.
// An empty status is accepted; the lifecycle rules supply the default.
func Tracked(t *models.Tracked) []Violation {
	return Run(
		Required(i18n.FieldTitle, t.Title),
		Length(i18n.FieldTitle, t.Title, NameMin, NameMax),
		Required(i18n.FieldDescription, t.Description),
		MaxLength(i18n.FieldDescription, t.Description, DescriptionMax),
		RequiredID(i18n.FieldApplication, t.ApplicationID),
		When(t.Status != "", OneOf(i18n.FieldStatus, t.Status, models.TrackedStatuses)),
	)
}

// Supplier validates a supplier's fields.
func Supplier(s *models.Supplier) []Violation {
	return Run(
		Required(i18n.FieldName, s.Name),
		Length(i18n.FieldName, s.Name, NameMin, NameMax),
		Required(i18n.FieldCode, s.Code),
		Length(i18n.FieldCode, s.Code, CodeMin, CodeMax),
		Email(i18n.FieldEmail, s.Email),
	)
}

// Vehicle validates a vehicle's fields.
func Vehicle(v *models.Vehicle) []Violation {
	return Run(
		Required(i18n.FieldChassis, v.Chassis),
		ExactLength(i18n.FieldChassis, v.Chassis, ChassisLength),
		Matches(i18n.FieldChassis, v.Chassis, vinPattern),
		Required(i18n.FieldModel, v.Model),
		Length(i18n.FieldModel, v.Model, NameMin, NameMax),
		Positive(i18n.FieldYear, v.Year),
	)
}

// PartNumber validates a part number's fields.
func PartNumber(p *models.PartNumber) []Violation {
	return Run(
		Required(i18n.FieldCode, p.Code),
		Length(i18n.FieldCode, p.Code, CodeMin, CodeMax),
		Required(i18n.FieldDescription, p.Description),
		MaxLength(i18n.FieldDescription, p.Description, DescriptionMax),
		OneOf(i18n.FieldType, p.Type, models.PartNumberTypes),
	)
}
