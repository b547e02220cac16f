package application

import (
	"context"
	"fmt"

	repo "github.com/kudoswall/kudos-wall-backend/internal/domain/repository"
)

// UserService serves the recipient picker: everyone except the caller.
// Unfiltered and unpaginated, which is fine at org-roster scale.
type UserService struct {
	Users repo.UserRepository
}

func NewUserService(users repo.UserRepository) *UserService {
	return &UserService{Users: users}
}

type RecipientView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (s *UserService) GetRecipients(ctx context.Context, callerID string) ([]RecipientView, error) {
	users, err := s.Users.FindAllExcept(callerID)
	if err != nil {
		return nil, fmt.Errorf("get recipients: %w", err)
	}
	out := make([]RecipientView, 0, len(users))
	for _, u := range users {
		out = append(out, RecipientView{ID: u.ID, Name: u.Name, Email: u.Email.String()})
	}
	return out, nil
}
