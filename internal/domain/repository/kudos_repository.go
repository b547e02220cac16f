package repository

import "github.com/kudoswall/kudos-wall-backend/internal/domain/entity"

type KudosRepository interface {
	Create(k *entity.Kudos) error
	DeleteAll() error
}
