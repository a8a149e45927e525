package user

import (
	"fmt"
	"strings"
	"time"

	vo "helpdesk/internal/domain/user/value_objects"
	"helpdesk/internal/shared/biztime"
)

// User is the internal record behind an external identity. One user maps
// to exactly one external identity, enforced by a unique index on the
// external id.
type User struct {
	id         uint
	externalID string
	email      string
	name       string
	role       vo.Role
	createdAt  time.Time
	updatedAt  time.Time
}

func NewUser(externalID, email, name string, role vo.Role) (*User, error) {
	externalID = strings.TrimSpace(externalID)
	if externalID == "" {
		return nil, fmt.Errorf("external ID is required")
	}
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	now := biztime.NowUTC()
	return &User{
		externalID: externalID,
		email:      email,
		name:       name,
		role:       role,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructUser(
	id uint,
	externalID string,
	email string,
	name string,
	role vo.Role,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if externalID == "" {
		return nil, fmt.Errorf("external ID is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		id:         id,
		externalID: externalID,
		email:      email,
		name:       name,
		role:       role,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) ExternalID() string {
	return u.externalID
}

func (u *User) Email() string {
	return u.email
}

func (u *User) Name() string {
	return u.name
}

func (u *User) Role() vo.Role {
	return u.role
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// ChangeRole replaces the user's role. Authorization is decided by the
// caller; the aggregate only guards against invalid values.
func (u *User) ChangeRole(newRole vo.Role) error {
	if !newRole.IsValid() {
		return fmt.Errorf("invalid role: %s", newRole)
	}
	if u.role == newRole {
		return nil
	}

	u.role = newRole
	u.updatedAt = biztime.NowUTC()
	return nil
}
