package memory

import (
	"sort"
	"sync"

	"github.com/kudoswall/kudos-wall-backend/internal/domain/entity"
	"github.com/kudoswall/kudos-wall-backend/internal/domain/repository"
)

type CategoryRepository struct {
	mu         sync.RWMutex
	categories map[int]*entity.Category
}

func NewCategoryRepository(categories ...*entity.Category) *CategoryRepository {
	m := make(map[int]*entity.Category, len(categories))
	for _, c := range categories {
		m[c.ID] = c
	}
	return &CategoryRepository{categories: m}
}

func (r *CategoryRepository) GetByID(id int) (*entity.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.categories[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *CategoryRepository) GetAll() ([]*entity.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Category, 0, len(r.categories))
	for _, c := range r.categories {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

var _ repository.CategoryRepository = (*CategoryRepository)(nil)
