package models

// Application is the aggregate most other records point to.
type Application struct {
	ID          int64
	Name        string
	Description string
	AreaID      int64
	SquadID     int64 // 0 means unassigned
	External    bool
}

func (a *Application) EntityID() int64 { return a.ID }

// Document is a named link attached to an application.
type Document struct {
	ID            int64
	ApplicationID int64
	Name          string
	URL           string
}

func (d *Document) EntityID() int64 { return d.ID }
