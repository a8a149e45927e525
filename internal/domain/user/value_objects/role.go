package value_objects

import "fmt"

type Role string

const (
	RoleUser  Role = "user"
	RoleAgent Role = "agent"
	RoleAdmin Role = "admin"
)

var validRoles = map[Role]bool{
	RoleUser:  true,
	RoleAgent: true,
	RoleAdmin: true,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return validRoles[r]
}

func (r Role) IsUser() bool {
	return r == RoleUser
}

func (r Role) IsAgent() bool {
	return r == RoleAgent
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// IsStaff reports whether the role grants agent-level access.
func (r Role) IsStaff() bool {
	return r == RoleAgent || r == RoleAdmin
}

func NewRole(s string) (Role, error) {
	r := Role(s)
	if !r.IsValid() {
		return "", fmt.Errorf("invalid role: %s", s)
	}
	return r, nil
}
