package auth

// Role is the closed, totally ordered privilege level of a user:
// admin > manager > user.
type Role string

const (
	RoleUser    Role = "user"
	RoleManager Role = "manager"
	RoleAdmin   Role = "admin"
)

var Roles = []Role{RoleAdmin, RoleManager, RoleUser}

func (r Role) Valid() bool {
	return r.level() > 0
}

// AtLeast is the single ordering comparison: does r carry at least the
// privilege of min? Unknown roles never pass.
func (r Role) AtLeast(min Role) bool {
	return r.level() > 0 && r.level() >= min.level()
}

func (r Role) level() int {
	switch r {
	case RoleUser:
		return 1
	case RoleManager:
		return 2
	case RoleAdmin:
		return 3
	default:
		return 0
	}
}
