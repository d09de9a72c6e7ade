// File: models/role.go
package models

// Role is the access level carried by an authenticated caller.
type Role string

const (
	RoleAmbassador  Role = "ambassador"
	RoleTeamLead    Role = "team_lead"
	RoleAreaManager Role = "area_manager"
	RoleAdmin       Role = "admin"
)

var roleRank = map[Role]int{
	RoleAmbassador:  1,
	RoleTeamLead:    2,
	RoleAreaManager: 3,
	RoleAdmin:       4,
}

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	_, ok := roleRank[r]
	return ok
}

// AtLeast reports whether r grants at least the access of min.
func (r Role) AtLeast(min Role) bool {
	return roleRank[r] >= roleRank[min] && r.Valid()
}
