// Package service declares the external collaborator ports consumed by the
// use cases.
package service

import "context"

// EmailService sends the registration confirmation email. Implementations:
// a RabbitMQ-backed publisher in production and a capturing fake for tests
// and UAT (see internal/infrastructure/memory).
type EmailService interface {
	SendConfirmationEmail(ctx context.Context, email string) error
}
