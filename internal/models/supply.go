package models

// Supplier provides part numbers.
type Supplier struct {
	ID    int64
	Name  string
	Code  string
	Email string
}

func (s *Supplier) EntityID() int64 { return s.ID }

// Vehicle is identified by its 17-character chassis number.
type Vehicle struct {
	ID      int64
	Chassis string
	Model   string
	Year    int
}

func (v *Vehicle) EntityID() int64 { return v.ID }

// PartNumberType tells whether a part is produced in house.
type PartNumberType string

const (
	PartInternal PartNumberType = "internal"
	PartExternal PartNumberType = "external"
)

// PartNumberTypes lists every valid part number type.
var PartNumberTypes = []PartNumberType{PartInternal, PartExternal}

// PartNumber is a catalogued part, optionally tied to a supplier.
type PartNumber struct {
	ID          int64
	Code        string
	Description string
	Type        PartNumberType
	SupplierID  int64 // 0 means none
}

func (p *PartNumber) EntityID() int64 { return p.ID }
