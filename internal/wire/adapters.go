package wire

import (
	"io"

	cliadapter "github.com/example/portfolio/internal/adapters/cli"
	"github.com/example/portfolio/internal/models"
	"github.com/example/portfolio/internal/ports/secondary"
)

// Adapters are stateless translators; each call creates a new one writing to out.

// AreaAdapter returns an adapter for area commands.
func AreaAdapter(out io.Writer) *cliadapter.EntityAdapter[models.Area, *models.Area, secondary.AreaFilters] {
	return cliadapter.NewEntityAdapter[models.Area, *models.Area, secondary.AreaFilters](AreaService(), cliadapter.AreaView, out)
}

// SquadAdapter returns an adapter for squad commands.
func SquadAdapter(out io.Writer) *cliadapter.EntityAdapter[models.Squad, *models.Squad, secondary.SquadFilters] {
	return cliadapter.NewEntityAdapter[models.Squad, *models.Squad, secondary.SquadFilters](SquadService(), cliadapter.SquadView, out)
}

// MemberAdapter returns an adapter for member commands.
func MemberAdapter(out io.Writer) *cliadapter.EntityAdapter[models.Member, *models.Member, secondary.MemberFilters] {
	return cliadapter.NewEntityAdapter[models.Member, *models.Member, secondary.MemberFilters](MemberService(), cliadapter.MemberView, out)
}

// ApplicationAdapter returns an adapter for application commands.
func ApplicationAdapter(out io.Writer) *cliadapter.EntityAdapter[models.Application, *models.Application, secondary.ApplicationFilters] {
	return cliadapter.NewEntityAdapter[models.Application, *models.Application, secondary.ApplicationFilters](ApplicationService(), cliadapter.ApplicationView, out)
}

// DocumentAdapter returns an adapter for document commands.
func DocumentAdapter(out io.Writer) *cliadapter.EntityAdapter[models.Document, *models.Document, secondary.DocumentFilters] {
	return cliadapter.NewEntityAdapter[models.Document, *models.Document, secondary.DocumentFilters](DocumentService(), cliadapter.DocumentView, out)
}

// KnowledgeAdapter returns an adapter for knowledge commands.
func KnowledgeAdapter(out io.Writer) *cliadapter.EntityAdapter[models.Knowledge, *models.Knowledge, secondary.KnowledgeFilters] {
	return cliadapter.NewEntityAdapter[models.Knowledge, *models.Knowledge, secondary.KnowledgeFilters](KnowledgeService(), cliadapter.KnowledgeView, out)
}

// FeedbackAdapter returns an adapter for feedback commands.
func FeedbackAdapter(out io.Writer) *cliadapter.EntityAdapter[models.Feedback, *models.Feedback, secondary.TrackedFilters] {
	return cliadapter.NewEntityAdapter[models.Feedback, *models.Feedback, secondary.TrackedFilters](FeedbackService(), cliadapter.FeedbackView, out)
}

// IncidentAdapter returns an adapter for incident commands.
func IncidentAdapter(out io.Writer) *cliadapter.EntityAdapter[models.Incident, *models.Incident, secondary.TrackedFilters] {
	return cliadapter.NewEntityAdapter[models.Incident, *models.Incident, secondary.TrackedFilters](IncidentService(), cliadapter.IncidentView, out)
}

// ImprovementAdapter returns an adapter for improvement commands.
func ImprovementAdapter(out io.Writer) *cliadapter.EntityAdapter[models.Improvement, *models.Improvement, secondary.TrackedFilters] {
	return cliadapter.NewEntityAdapter[models.Improvement, *models.Improvement, secondary.TrackedFilters](ImprovementService(), cliadapter.ImprovementView, out)
}

// SupplierAdapter returns an adapter for supplier commands.
func SupplierAdapter(out io.Writer) *cliadapter.EntityAdapter[models.Supplier, *models.Supplier, secondary.SupplierFilters] {
	return cliadapter.NewEntityAdapter[models.Supplier, *models.Supplier, secondary.SupplierFilters](SupplierService(), cliadapter.SupplierView, out)
}

// VehicleAdapter returns an adapter for vehicle commands.
func VehicleAdapter(out io.Writer) *cliadapter.EntityAdapter[models.Vehicle, *models.Vehicle, secondary.VehicleFilters] {
	return cliadapter.NewEntityAdapter[models.Vehicle, *models.Vehicle, secondary.VehicleFilters](VehicleService(), cliadapter.VehicleView, out)
}

// PartNumberAdapter returns an adapter for part number commands.
func PartNumberAdapter(out io.Writer) *cliadapter.EntityAdapter[models.PartNumber, *models.PartNumber, secondary.PartNumberFilters] {
	return cliadapter.NewEntityAdapter[models.PartNumber, *models.PartNumber, secondary.PartNumberFilters](PartNumberService(), cliadapter.PartNumberView, out)
}

// FeedAdapter returns an adapter for the audit and notification feeds.
func FeedAdapter(out io.Writer) *cliadapter.FeedAdapter {
	return cliadapter.NewFeedAdapter(AuditService(), NotificationService(), out)
}
