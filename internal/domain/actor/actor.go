package actor

type Role string

const (
	RoleCustomer  Role = "customer"
	RoleAuditor   Role = "auditor"
	RoleAdmin     Role = "admin"
	RoleAnonymous Role = "anonymous"
)

// Actor is the authenticated principal an operation runs as.
// Authentication itself happens upstream; we only carry the result.
type Actor struct {
	ID   string
	Role Role
}

func (a Actor) IsReviewer() bool {
	return a.Role == RoleAuditor || a.Role == RoleAdmin
}

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleCustomer, RoleAuditor, RoleAdmin, RoleAnonymous:
		return Role(s), true
	}
	return "", false
}
