package valueobject

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoleId(t *testing.T) {
	r, err := NewRoleId(1)
	require.NoError(t, err)
	assert.Equal(t, 1, r.Value())
}

func TestNewRoleIdZeroIsRequired(t *testing.T) {
	_, err := NewRoleId(0)
	assert.EqualError(t, err, "Role Id is required")
}

func TestNewRoleIdNegative(t *testing.T) {
	_, err := NewRoleId(-3)
	assert.EqualError(t, err, "RoleId must be a positive integer.")
}
