package memory

import (
	"sync"

	"github.com/kudoswall/kudos-wall-backend/internal/domain/entity"
	"github.com/kudoswall/kudos-wall-backend/internal/domain/repository"
)

type RoleRepository struct {
	mu    sync.RWMutex
	roles map[int]*entity.Role
}

// NewRoleRepository starts pre-seeded with the two product roles.
func NewRoleRepository() *RoleRepository {
	return &RoleRepository{roles: map[int]*entity.Role{
		1: {ID: 1, Name: entity.RoleTypeTeamLead},
		2: {ID: 2, Name: entity.RoleTypeMember},
	}}
}

func (r *RoleRepository) GetByID(id int) (*entity.Role, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	role, ok := r.roles[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *role
	return &cp, nil
}

var _ repository.RoleRepository = (*RoleRepository)(nil)
