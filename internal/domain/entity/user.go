package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/kudoswall/kudos-wall-backend/internal/domain/valueobject"
)

// Role types resolved from the role table at load time.
const (
	RoleTypeTeamLead = "TEAMLEAD"
	RoleTypeMember   = "MEMBER"
)

// User is the aggregate root for the user domain. RoleType is derived from
// RoleID via the roles table when the user is loaded; the roles table stays
// the source of truth, this field is just the in-memory cache of the lookup.
type User struct {
	ID              string
	Name            string
	Email           valueobject.Email
	Password        valueobject.Password
	IsEmailVerified bool
	RoleID          int
	RoleType        string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewUser creates a user at registration time. Inputs are expected to be
// already-validated value objects; new users always start unverified unless
// the caller says otherwise (test fixtures do).
func NewUser(name string, email valueobject.Email, password valueobject.Password, roleID int, verified bool) *User {
	return &User{
		ID:              uuid.NewString(),
		Name:            name,
		Email:           email,
		Password:        password,
		IsEmailVerified: verified,
		RoleID:          roleID,
	}
}

// UserSnapshot is the stored form of a user row, including the role type
// resolved by the repository's join.
type UserSnapshot struct {
	ID              string
	Name            string
	Email           string
	PasswordHash    string
	IsEmailVerified bool
	RoleID          int
	RoleType        string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ReconstituteUser rebuilds a user from storage without re-running input
// validation; already-persisted rows must load even if a rule has since
// tightened. Only an empty password hash is rejected.
func ReconstituteUser(s UserSnapshot) (*User, error) {
	pwd, err := valueobject.ReconstitutePassword(s.PasswordHash)
	if err != nil {
		return nil, err
	}
	return &User{
		ID:              s.ID,
		Name:            s.Name,
		Email:           valueobject.ReconstituteEmail(s.Email),
		Password:        pwd,
		IsEmailVerified: s.IsEmailVerified,
		RoleID:          s.RoleID,
		RoleType:        s.RoleType,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}, nil
}

// IsTeamLead reports whether the user may author kudos.
func (u *User) IsTeamLead() bool {
	return u.RoleType == RoleTypeTeamLead
}
