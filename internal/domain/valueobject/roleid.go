package valueobject

import (
	"github.com/kudoswall/kudos-wall-backend/internal/domain"
)

// RoleId identifies a role. Seed data uses 1 = TEAMLEAD, 2 = MEMBER.
type RoleId struct {
	value int
}

func NewRoleId(id int) (RoleId, error) {
	if id == 0 {
		return RoleId{}, domain.NewValidationError("Role Id is required")
	}
	if id < 1 {
		return RoleId{}, domain.NewValidationError("RoleId must be a positive integer.")
	}
	return RoleId{value: id}, nil
}

func (r RoleId) Value() int { return r.value }
