package valueobject

import (
	"strings"

	"github.com/kudoswall/kudos-wall-backend/internal/domain"
	"github.com/kudoswall/kudos-wall-backend/pkg/helpers"
)

const specialChars = `!@#$%^&*(),.?":{}|<>`

// Password is either a validated plaintext password (only between input
// validation and persistence) or a bcrypt hash loaded from / destined for
// storage. The repository must hash before persisting.
type Password struct {
	value  string
	hashed bool
}

// NewPassword validates a plaintext password against the strength rules.
func NewPassword(plain string) (Password, error) {
	if len(plain) < 8 {
		return Password{}, domain.NewValidationError("Password must be at least 8 characters long")
	}
	if !strings.ContainsAny(plain, "0123456789") {
		return Password{}, domain.NewValidationError("Password must contain at least one number")
	}
	if !strings.ContainsAny(plain, specialChars) {
		return Password{}, domain.NewValidationError("Password must contain at least one special character")
	}
	return Password{value: plain, hashed: false}, nil
}

// NewHashedPassword wraps an already-hashed value, skipping validation.
func NewHashedPassword(hash string) Password {
	return Password{value: hash, hashed: true}
}

// ReconstitutePassword wraps a stored hash. Empty stored values indicate a
// corrupt row and are rejected.
func ReconstitutePassword(stored string) (Password, error) {
	if stored == "" {
		return Password{}, domain.NewValidationError("Stored password cannot be empty.")
	}
	return Password{value: stored, hashed: true}, nil
}

func (p Password) Value() string { return p.value }

func (p Password) Hashed() bool { return p.hashed }

// Hash returns the hashed form of the password. Hashing an already hashed
// password is a no-op.
func (p Password) Hash() (Password, error) {
	if p.hashed {
		return p, nil
	}
	h, err := helpers.HashPassword(p.value)
	if err != nil {
		return Password{}, err
	}
	return NewHashedPassword(h), nil
}

// Compare reports whether plain matches this password. For hashed passwords
// this is a constant-time bcrypt comparison; the direct-equality path only
// exists for the short-lived pre-hash state.
func (p Password) Compare(plain string) bool {
	if p.hashed {
		return helpers.CompareHashAndPassword(p.value, plain)
	}
	return p.value == plain
}
