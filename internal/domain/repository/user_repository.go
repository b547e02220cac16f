package repository

import "github.com/kudoswall/kudos-wall-backend/internal/domain/entity"

// UserRepository defines the persistence contract for the user aggregate.
// Save is responsible for hashing a plaintext password before storing it;
// lookups return users with the role type already resolved.
type UserRepository interface {
	Save(u *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	FindAllExcept(userID string) ([]*entity.User, error)
	DeleteAll() error
}
