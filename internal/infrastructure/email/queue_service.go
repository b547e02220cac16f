// Package email implements the EmailService port on top of the RabbitMQ
// queue drained by cmd/email_worker.
package email

import (
	"context"

	"github.com/kudoswall/kudos-wall-backend/internal/domain/service"
	"github.com/kudoswall/kudos-wall-backend/pkg/helpers"
	"github.com/kudoswall/kudos-wall-backend/pkg/mailer"
)

// QueueService publishes confirmation-email jobs. Delivery itself happens
// asynchronously in the worker, so a broker hiccup here is the only failure
// the caller ever sees, and registration treats it as best-effort.
type QueueService struct {
	Pub         *helpers.RabbitPublisher
	FrontendURL string
	Enabled     bool
}

func NewQueueService(pub *helpers.RabbitPublisher, frontendURL string, enabled bool) *QueueService {
	return &QueueService{Pub: pub, FrontendURL: frontendURL, Enabled: enabled}
}

func (s *QueueService) SendConfirmationEmail(ctx context.Context, to string) error {
	if !s.Enabled || s.Pub == nil {
		return nil
	}
	job := mailer.EmailJob{
		To:       to,
		Template: "confirmation",
		Data: map[string]any{
			"recipient":   to,
			"confirm_url": s.FrontendURL + "/confirm-email",
		},
	}
	return s.Pub.PublishJSON(ctx, job)
}

var _ service.EmailService = (*QueueService)(nil)
