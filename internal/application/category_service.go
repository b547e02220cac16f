package application

import (
	"context"
	"fmt"

	repo "github.com/kudoswall/kudos-wall-backend/internal/domain/repository"
)

// CategoryService serves the category picker. No pagination: categories are
// a fixed seeded set.
type CategoryService struct {
	Categories repo.CategoryRepository
}

func NewCategoryService(categories repo.CategoryRepository) *CategoryService {
	return &CategoryService{Categories: categories}
}

type CategoryView struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func (s *CategoryService) GetCategories(ctx context.Context) ([]CategoryView, error) {
	categories, err := s.Categories.GetAll()
	if err != nil {
		return nil, fmt.Errorf("get categories: %w", err)
	}
	out := make([]CategoryView, 0, len(categories))
	for _, c := range categories {
		out = append(out, CategoryView{ID: c.ID, Name: c.Name})
	}
	return out, nil
}
