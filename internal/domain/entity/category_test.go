package entity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCategory(t *testing.T) {
	c, err := NewCategory(1, "Teamwork")
	require.NoError(t, err)
	assert.Equal(t, 1, c.ID)
	assert.Equal(t, "Teamwork", c.Name)
}

func TestNewCategoryNameBounds(t *testing.T) {
	_, err := NewCategory(1, "A")
	assert.Error(t, err)

	_, err = NewCategory(1, strings.Repeat("x", 51))
	assert.Error(t, err)

	_, err = NewCategory(1, "  Teamwork  ")
	assert.NoError(t, err)
}

func TestReconstituteCategorySkipsValidation(t *testing.T) {
	c := ReconstituteCategory(7, "X")
	assert.Equal(t, 7, c.ID)
	assert.Equal(t, "X", c.Name)
}
