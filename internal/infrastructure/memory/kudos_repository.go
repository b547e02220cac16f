package memory

import (
	"sync"

	"github.com/kudoswall/kudos-wall-backend/internal/domain/entity"
	"github.com/kudoswall/kudos-wall-backend/internal/domain/repository"
)

type KudosRepository struct {
	mu    sync.RWMutex
	kudos []*entity.Kudos
}

func NewKudosRepository() *KudosRepository {
	return &KudosRepository{}
}

func (r *KudosRepository) Create(k *entity.Kudos) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *k
	r.kudos = append(r.kudos, &cp)
	return nil
}

// All returns the stored kudos; test assertions only.
func (r *KudosRepository) All() []*entity.Kudos {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Kudos, len(r.kudos))
	copy(out, r.kudos)
	return out
}

func (r *KudosRepository) DeleteAll() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.kudos = nil
	return nil
}

var _ repository.KudosRepository = (*KudosRepository)(nil)
