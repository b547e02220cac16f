package valueobject

import (
	"regexp"

	"github.com/kudoswall/kudos-wall-backend/internal/domain"
)

// local@domain.tld, no whitespace or extra @ in either part
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Email is an immutable, validated email address.
type Email struct {
	value string
}

// NewEmail validates the raw address and wraps it.
func NewEmail(raw string) (Email, error) {
	if raw == "" {
		return Email{}, domain.NewValidationError("Email is required")
	}
	if !emailPattern.MatchString(raw) {
		return Email{}, domain.NewValidationError("Invalid email format")
	}
	return Email{value: raw}, nil
}

// ReconstituteEmail wraps an address loaded from storage without
// re-validating it. Tightening the format rule must not make previously
// persisted users unloadable.
func ReconstituteEmail(stored string) Email {
	return Email{value: stored}
}

func (e Email) String() string { return e.value }

func (e Email) Equals(other Email) bool { return e.value == other.value }
