package valueobject

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kudoswall/kudos-wall-backend/internal/domain"
)

func TestNewEmailValid(t *testing.T) {
	e, err := NewEmail("alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", e.String())
}

func TestNewEmailRequired(t *testing.T) {
	_, err := NewEmail("")
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	assert.EqualError(t, err, "Email is required")
}

func TestNewEmailInvalidFormat(t *testing.T) {
	for _, raw := range []string{
		"plainaddress",
		"missing-at.example.com",
		"no-domain@",
		"@no-local.com",
		"two@@example.com",
		"spaces in@example.com",
		"no-tld@example",
	} {
		_, err := NewEmail(raw)
		require.Error(t, err, raw)
		assert.EqualError(t, err, "Invalid email format", raw)
	}
}

func TestReconstituteEmailSkipsValidation(t *testing.T) {
	e := ReconstituteEmail("legacy-not-an-email")
	assert.Equal(t, "legacy-not-an-email", e.String())
}

func TestEmailEquals(t *testing.T) {
	a, _ := NewEmail("a@example.com")
	b := ReconstituteEmail("a@example.com")
	c, _ := NewEmail("c@example.com")

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
}
