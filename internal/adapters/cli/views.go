package cli

import (
	"strconv"
	"strings"
	"time"

	"github.com/example/portfolio/internal/models"
)

const timeLayout = "2006-01-02 15:04"

func id(v int64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatInt(v, 10)
}

func ids(v []int64) string {
	parts := make([]string, len(v))
	for i, n := range v {
		parts[i] = strconv.FormatInt(n, 10)
	}
	return strings.Join(parts, ",")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func when(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Local().Format(timeLayout)
}

// AreaView prints areas.
var AreaView = View[models.Area]{
	Name:    "area",
	Columns: []string{"ID", "NAME", "MANAGER"},
	Row: func(a *models.Area) []string {
		return []string{id(a.ID), a.Name, id(a.ManagerID)}
	},
	Detail: func(a *models.Area) []Field {
		return []Field{{"Name", a.Name}, {"Manager", id(a.ManagerID)}}
	},
}

// SquadView prints squads.
var SquadView = View[models.Squad]{
	Name:    "squad",
	Columns: []string{"ID", "NAME"},
	Row: func(s *models.Squad) []string {
		return []string{id(s.ID), s.Name}
	},
	Detail: func(s *models.Squad) []Field {
		return []Field{{"Name", s.Name}, {"Description", s.Description}}
	},
}

// MemberView prints members.
var MemberView = View[models.Member]{
	Name:    "member",
	Columns: []string{"ID", "NAME", "EMAIL", "ROLE", "SQUAD"},
	Row: func(m *models.Member) []string {
		return []string{id(m.ID), m.Name, m.Email, string(m.Role), id(m.SquadID)}
	},
	Detail: func(m *models.Member) []Field {
		return []Field{{"Name", m.Name}, {"Email", m.Email}, {"Role", string(m.Role)}, {"Squad", id(m.SquadID)}}
	},
}

// ApplicationView prints applications.
var ApplicationView = View[models.Application]{
	Name:    "application",
	Columns: []string{"ID", "NAME", "AREA", "SQUAD", "EXTERNAL"},
	Row: func(a *models.Application) []string {
		return []string{id(a.ID), a.Name, id(a.AreaID), id(a.SquadID), yesNo(a.External)}
	},
	Detail: func(a *models.Application) []Field {
		return []Field{
			{"Name", a.Name},
			{"Description", a.Description},
			{"Area", id(a.AreaID)},
			{"Squad", id(a.SquadID)},
			{"External", yesNo(a.External)},
		}
	},
}

// DocumentView prints documents.
var DocumentView = View[models.Document]{
	Name:    "document",
	Columns: []string{"ID", "APPLICATION", "NAME", "URL"},
	Row: func(d *models.Document) []string {
		return []string{id(d.ID), id(d.ApplicationID), d.Name, d.URL}
	},
	Detail: func(d *models.Document) []Field {
		return []Field{{"Application", id(d.ApplicationID)}, {"Name", d.Name}, {"URL", d.URL}}
	},
}

// KnowledgeView prints knowledge associations.
var KnowledgeView = View[models.Knowledge]{
	Name:    "knowledge",
	Columns: []string{"ID", "MEMBER", "APPLICATION", "SQUAD", "STATUS", "SINCE"},
	Row: func(k *models.Knowledge) []string {
		return []string{id(k.ID), id(k.MemberID), id(k.ApplicationID), id(k.SquadIDAtAssociation), string(k.Status), when(&k.CreatedAt)}
	},
	Detail: func(k *models.Knowledge) []Field {
		return []Field{
			{"Member", id(k.MemberID)},
			{"Application", id(k.ApplicationID)},
			{"Squad at association", id(k.SquadIDAtAssociation)},
			{"Status", string(k.Status)},
			{"Created", when(&k.CreatedAt)},
		}
	},
}

func trackedView[T any](name string, base func(*T) *models.Tracked) View[T] {
	return View[T]{
		Name:    name,
		Columns: []string{"ID", "TITLE", "APPLICATION", "STATUS", "MEMBERS"},
		Row: func(item *T) []string {
			t := base(item)
			return []string{id(t.ID), t.Title, id(t.ApplicationID), string(t.Status), ids(t.MemberIDs)}
		},
		Detail: func(item *T) []Field {
			t := base(item)
			return []Field{
				{"Title", t.Title},
				{"Description", t.Description},
				{"Application", id(t.ApplicationID)},
				{"Status", string(t.Status)},
				{"Members", ids(t.MemberIDs)},
				{"Created", when(&t.CreatedAt)},
				{"Closed", when(t.ClosedAt)},
			}
		},
	}
}

// Lifecycle record views.
var (
	FeedbackView    = trackedView("feedback", func(f *models.Feedback) *models.Tracked { return f.Base() })
	IncidentView    = trackedView("incident", func(i *models.Incident) *models.Tracked { return i.Base() })
	ImprovementView = trackedView("improvement", func(i *models.Improvement) *models.Tracked { return i.Base() })
)

// SupplierView prints suppliers.
var SupplierView = View[models.Supplier]{
	Name:    "supplier",
	Columns: []string{"ID", "CODE", "NAME", "EMAIL"},
	Row: func(s *models.Supplier) []string {
		return []string{id(s.ID), s.Code, s.Name, s.Email}
	},
	Detail: func(s *models.Supplier) []Field {
		return []Field{{"Name", s.Name}, {"Code", s.Code}, {"Email", s.Email}}
	},
}

// VehicleView prints vehicles.
var VehicleView = View[models.Vehicle]{
	Name:    "vehicle",
	Columns: []string{"ID", "CHASSIS", "MODEL", "YEAR"},
	Row: func(v *models.Vehicle) []string {
		return []string{id(v.ID), v.Chassis, v.Model, strconv.Itoa(v.Year)}
	},
	Detail: func(v *models.Vehicle) []Field {
		return []Field{{"Chassis", v.Chassis}, {"Model", v.Model}, {"Year", strconv.Itoa(v.Year)}}
	},
}

// PartNumberView prints part numbers.
var PartNumberView = View[models.PartNumber]{
	Name:    "part number",
	Columns: []string{"ID", "CODE", "TYPE", "SUPPLIER", "DESCRIPTION"},
	Row: func(p *models.PartNumber) []string {
		return []string{id(p.ID), p.Code, string(p.Type), id(p.SupplierID), p.Description}
	},
	Detail: func(p *models.PartNumber) []Field {
		return []Field{{"Code", p.Code}, {"Type", string(p.Type)}, {"Supplier", id(p.SupplierID)}, {"Description", p.Description}}
	},
}
