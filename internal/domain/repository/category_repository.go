package repository

import "github.com/kudoswall/kudos-wall-backend/internal/domain/entity"

type CategoryRepository interface {
	GetByID(id int) (*entity.Category, error)
	GetAll() ([]*entity.Category, error)
}
