package models

// Role values assigned by the backend at account creation. Roles never
// change client-side.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
)

// User represents the authenticated account as returned by the backend's
// login endpoint. Managers are scoped to exactly one team; admins span all
// teams.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	TeamID   string `json:"teamId,omitempty"`
	TeamName string `json:"teamName,omitempty"`
}

// IsAdmin reports whether the user has the admin role. Role flags are pure
// projections of Role and are never stored separately.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// IsManager reports whether the user has the manager role.
func (u *User) IsManager() bool {
	return u != nil && u.Role == RoleManager
}

// ScopedTeamID returns the team a data query must be scoped to: managers
// always use their own team, admins use whatever team they selected.
func (u *User) ScopedTeamID(selected string) string {
	if u.IsAdmin() {
		return selected
	}
	return u.TeamID
}

// Team is read-only from this application's perspective; the backend owns
// team membership.
type Team struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ManagerID string `json:"managerId"`
}
