package repository

import "github.com/kudoswall/kudos-wall-backend/internal/domain/entity"

type RoleRepository interface {
	GetByID(id int) (*entity.Role, error)
}
