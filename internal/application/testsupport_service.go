package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/kudoswall/kudos-wall-backend/internal/domain/entity"
	repo "github.com/kudoswall/kudos-wall-backend/internal/domain/repository"
	"github.com/kudoswall/kudos-wall-backend/internal/domain/valueobject"
)

// TestSupportService backs the UAT-only endpoints used by acceptance tests
// to arrange fixtures and clean up afterwards. Never wired in production.
type TestSupportService struct {
	Users repo.UserRepository
	Kudos repo.KudosRepository
}

func NewTestSupportService(users repo.UserRepository, kudos repo.KudosRepository) *TestSupportService {
	return &TestSupportService{Users: users, Kudos: kudos}
}

// CreateTestUser creates a pre-verified user, returning the existing one if
// the email is already registered so fixture setup is idempotent.
func (s *TestSupportService) CreateTestUser(ctx context.Context, in RegisterInput) (*entity.User, error) {
	existing, err := s.Users.GetByEmail(in.Email)
	if err != nil && !errors.Is(err, repo.ErrNotFound) {
		return nil, fmt.Errorf("test user: lookup by email: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	email, err := valueobject.NewEmail(in.Email)
	if err != nil {
		return nil, err
	}
	password, err := valueobject.NewPassword(in.Password)
	if err != nil {
		return nil, err
	}
	roleID, err := valueobject.NewRoleId(in.RoleID)
	if err != nil {
		return nil, err
	}

	user := entity.NewUser(in.Name, email, password, roleID.Value(), true)
	if err := s.Users.Save(user); err != nil {
		return nil, fmt.Errorf("test user: save: %w", err)
	}
	return user, nil
}

// Cleanup wipes kudos before users so foreign keys never block the delete.
func (s *TestSupportService) Cleanup(ctx context.Context) error {
	if err := s.Kudos.DeleteAll(); err != nil {
		return fmt.Errorf("cleanup kudos: %w", err)
	}
	if err := s.Users.DeleteAll(); err != nil {
		return fmt.Errorf("cleanup users: %w", err)
	}
	return nil
}
