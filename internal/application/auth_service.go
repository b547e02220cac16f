package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/kudoswall/kudos-wall-backend/internal/domain"
	"github.com/kudoswall/kudos-wall-backend/internal/domain/entity"
	repo "github.com/kudoswall/kudos-wall-backend/internal/domain/repository"
	"github.com/kudoswall/kudos-wall-backend/internal/domain/service"
	"github.com/kudoswall/kudos-wall-backend/internal/domain/valueobject"
	"github.com/kudoswall/kudos-wall-backend/pkg/helpers"
)

// AuthService implements the register and login use cases.
type AuthService struct {
	Users  repo.UserRepository
	Roles  repo.RoleRepository
	Email  service.EmailService
	Tokens *helpers.TokenManager
	Logger *logrus.Logger
}

func NewAuthService(users repo.UserRepository, roles repo.RoleRepository, email service.EmailService, tokens *helpers.TokenManager, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, Roles: roles, Email: email, Tokens: tokens, Logger: logger}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	RoleID   int
}

type RegisterResult struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Register validates the input, creates the user and sends the confirmation
// email. Format and strength checks run before any repository call so
// malformed input never costs a database roundtrip.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*RegisterResult, error) {
	if in.Name == "" {
		return nil, domain.NewValidationError("Name is required.")
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

	existing, err := s.Users.GetByEmail(email.String())
	if err != nil && !errors.Is(err, repo.ErrNotFound) {
		return nil, fmt.Errorf("register: lookup by email: %w", err)
	}
	if existing != nil {
		return nil, ErrUserAlreadyExists
	}

	if _, err := s.Roles.GetByID(roleID.Value()); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, domain.NewValidationError("Role does not exist.")
		}
		return nil, fmt.Errorf("register: lookup role: %w", err)
	}

	user := entity.NewUser(in.Name, email, password, roleID.Value(), false)
	if err := s.Users.Save(user); err != nil {
		// Two concurrent registrations can pass the lookup above; the
		// unique constraint on users.email decides the loser.
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("register: save user: %w", err)
	}

	// Best-effort: a failed confirmation email never rolls back the
	// registration.
	if s.Email != nil {
		if err := s.Email.SendConfirmationEmail(ctx, email.String()); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("email", email.String()).Warn("confirmation email failed")
		}
	}

	return &RegisterResult{ID: user.ID, Name: user.Name, Email: email.String()}, nil
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginUser struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	IsTeamLead bool   `json:"isTeamLead"`
}

type LoginResult struct {
	Token string    `json:"token"`
	User  LoginUser `json:"user"`
}

// Login authenticates by email and password and issues a bearer token.
// Unknown email and wrong password produce the same ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	if _, err := valueobject.NewEmail(in.Email); err != nil {
		return nil, domain.NewValidationError("Invalid email format")
	}

	user, err := s.Users.GetByEmail(in.Email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: lookup by email: %w", err)
	}

	if !user.Password.Compare(in.Password) {
		return nil, ErrInvalidCredentials
	}

	token := s.Tokens.Generate(user.ID)
	return &LoginResult{
		Token: token,
		User: LoginUser{
			ID:         user.ID,
			Name:       user.Name,
			Email:      user.Email.String(),
			IsTeamLead: user.IsTeamLead(),
		},
	}, nil
}
