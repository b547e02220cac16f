package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kudoswall/kudos-wall-backend/internal/domain/entity"
	"github.com/kudoswall/kudos-wall-backend/internal/infrastructure/memory"
)

func TestGetCategories(t *testing.T) {
	categories := memory.NewCategoryRepository(
		entity.ReconstituteCategory(2, "Innovation"),
		entity.ReconstituteCategory(1, "Teamwork"),
	)
	svc := NewCategoryService(categories)

	got, err := svc.GetCategories(context.Background())
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, CategoryView{ID: 1, Name: "Teamwork"}, got[0])
	assert.Equal(t, CategoryView{ID: 2, Name: "Innovation"}, got[1])
}

func TestGetCategoriesEmpty(t *testing.T) {
	svc := NewCategoryService(memory.NewCategoryRepository())

	got, err := svc.GetCategories(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}
