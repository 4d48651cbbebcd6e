package models

// Role is a member's function inside their squad.
type Role string

const (
	RoleDeveloper      Role = "developer"
	RoleSquadLeader    Role = "squad_leader"
	RoleProductOwner   Role = "product_owner"
	RoleServiceManager Role = "service_manager"
)

// Roles lists every valid role.
var Roles = []Role{RoleDeveloper, RoleSquadLeader, RoleProductOwner, RoleServiceManager}

// Area groups applications under a manager.
type Area struct {
	ID        int64
	Name      string
	ManagerID int64 // 0 means none
}

func (a *Area) EntityID() int64 { return a.ID }

// Squad is a team of members that owns applications.
type Squad struct {
	ID          int64
	Name        string
	Description string
}

func (s *Squad) EntityID() int64 { return s.ID }

// Member belongs to exactly one squad at a time.
type Member struct {
	ID      int64
	Name    string
	Email   string
	Role    Role
	SquadID int64
}

func (m *Member) EntityID() int64 { return m.ID }

// IsSquadLeader reports whether the member leads their squad.
func (m *Member) IsSquadLeader() bool { return m.Role == RoleSquadLeader }
