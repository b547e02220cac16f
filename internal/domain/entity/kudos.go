package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kudoswall/kudos-wall-backend/internal/domain"
)

const (
	kudosMessageMin = 20
	kudosMessageMax = 200
)

// Kudos is a recognition message from a team lead to a teammate. Sender,
// recipient and category are weak references by id; their existence is the
// use case's job to check, since the entity has no repository access.
type Kudos struct {
	ID          string
	SenderID    string
	RecipientID string
	CategoryID  int
	Message     string
	CreatedAt   time.Time
}

// NewKudos enforces the construction invariants: message length bounds on
// the trimmed message and no self-kudos.
func NewKudos(senderID, recipientID string, categoryID int, message string) (*Kudos, error) {
	msg := strings.TrimSpace(message)
	if len(msg) < kudosMessageMin {
		return nil, domain.NewValidationError("Message must be at least 20 characters long")
	}
	if len(msg) > kudosMessageMax {
		return nil, domain.NewValidationError("Message cannot exceed 200 characters")
	}
	if senderID == recipientID {
		return nil, domain.NewValidationError("Cannot create kudos for yourself")
	}
	return &Kudos{
		ID:          uuid.NewString(),
		SenderID:    senderID,
		RecipientID: recipientID,
		CategoryID:  categoryID,
		Message:     msg,
		CreatedAt:   time.Now().UTC(),
	}, nil
}

// ReconstituteKudos rebuilds a stored kudos without re-validation.
func ReconstituteKudos(id, senderID, recipientID string, categoryID int, message string, createdAt time.Time) *Kudos {
	return &Kudos{
		ID:          id,
		SenderID:    senderID,
		RecipientID: recipientID,
		CategoryID:  categoryID,
		Message:     message,
		CreatedAt:   createdAt,
	}
}
