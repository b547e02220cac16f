package memory

import (
	"context"
	"sync"

	"github.com/kudoswall/kudos-wall-backend/internal/domain/service"
)

// EmailCapture records confirmation emails instead of sending them. It is
// injected through the same EmailService port as the real sender (no
// process-wide singleton) and shared between the register use case and the
// test-support endpoints under UAT.
type EmailCapture struct {
	mu   sync.Mutex
	sent []string
}

func NewEmailCapture() *EmailCapture {
	return &EmailCapture{}
}

func (c *EmailCapture) SendConfirmationEmail(ctx context.Context, email string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sent = append(c.sent, email)
	return nil
}

// Sent returns a copy of all recorded recipient addresses.
func (c *EmailCapture) Sent() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.sent))
	copy(out, c.sent)
	return out
}

// WasSentTo reports whether a confirmation email went to the address.
func (c *EmailCapture) WasSentTo(email string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, e := range c.sent {
		if e == email {
			return true
		}
	}
	return false
}

// Reset clears the capture between test runs.
func (c *EmailCapture) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sent = nil
}

var _ service.EmailService = (*EmailCapture)(nil)
