package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kudoswall/kudos-wall-backend/internal/domain/entity"
	repo "github.com/kudoswall/kudos-wall-backend/internal/domain/repository"
)

// KudosService implements the create-kudos use case, including the core
// authorization rule that only team leads may author kudos. Receiving is
// not role-gated.
type KudosService struct {
	Kudos      repo.KudosRepository
	Users      repo.UserRepository
	Categories repo.CategoryRepository
	Logger     *logrus.Logger
}

func NewKudosService(kudos repo.KudosRepository, users repo.UserRepository, categories repo.CategoryRepository, logger *logrus.Logger) *KudosService {
	return &KudosService{Kudos: kudos, Users: users, Categories: categories, Logger: logger}
}

type CreateKudosInput struct {
	SenderID    string // from the authenticated token, never the body
	RecipientID string
	CategoryID  int
	Message     string
}

// CreateKudosResult denormalizes names for direct client consumption; it is
// a read projection, not the stored shape.
type CreateKudosResult struct {
	ID           string    `json:"id"`
	SenderName   string    `json:"senderName"`
	ReceiverName string    `json:"receiverName"`
	CategoryName string    `json:"categoryName"`
	Message      string    `json:"message"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (s *KudosService) CreateKudos(ctx context.Context, in CreateKudosInput) (*CreateKudosResult, error) {
	sender, err := s.Users.GetByID(in.SenderID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrInvalidSender
		}
		return nil, fmt.Errorf("create kudos: lookup sender: %w", err)
	}
	if !sender.IsTeamLead() {
		return nil, ErrSenderNotLead
	}

	category, err := s.Categories.GetByID(in.CategoryID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrInvalidCategory
		}
		return nil, fmt.Errorf("create kudos: lookup category: %w", err)
	}

	recipient, err := s.Users.GetByID(in.RecipientID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrInvalidRecipient
		}
		return nil, fmt.Errorf("create kudos: lookup recipient: %w", err)
	}

	kudos, err := entity.NewKudos(in.SenderID, in.RecipientID, in.CategoryID, in.Message)
	if err != nil {
		return nil, err
	}

	if err := s.Kudos.Create(kudos); err != nil {
		return nil, fmt.Errorf("create kudos: persist: %w", err)
	}

	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{
			"kudos_id":  kudos.ID,
			"sender":    sender.ID,
			"recipient": recipient.ID,
			"category":  category.Name,
		}).Info("kudos created")
	}

	return &CreateKudosResult{
		ID:           kudos.ID,
		SenderName:   sender.Name,
		ReceiverName: recipient.Name,
		CategoryName: category.Name,
		Message:      kudos.Message,
		CreatedAt:    kudos.CreatedAt,
	}, nil
}
