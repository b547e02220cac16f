package entity

import (
	"strings"

	"github.com/kudoswall/kudos-wall-backend/internal/domain"
)

// Category is a fixed label attached to kudos. Seeded, effectively
// read-only reference data.
type Category struct {
	ID   int
	Name string
}

// NewCategory validates and trims the name.
func NewCategory(id int, name string) (*Category, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, domain.NewValidationError("Category name is required")
	}
	if len(trimmed) < 2 {
		return nil, domain.NewValidationError("Category name must be at least 2 characters long")
	}
	if len(trimmed) > 50 {
		return nil, domain.NewValidationError("Category name cannot exceed 50 characters")
	}
	return &Category{ID: id, Name: trimmed}, nil
}

// ReconstituteCategory rebuilds a seeded category without re-validation.
func ReconstituteCategory(id int, name string) *Category {
	return &Category{ID: id, Name: name}
}
