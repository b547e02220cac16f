// Package memory holds in-memory implementations of the repository and
// email-service ports. They back unit tests and the UAT test-support
// endpoints; production always runs on the postgres adapters.
package memory

import (
	"sort"
	"sync"

	"github.com/kudoswall/kudos-wall-backend/internal/domain/entity"
	"github.com/kudoswall/kudos-wall-backend/internal/domain/repository"
)

type UserRepository struct {
	mu    sync.RWMutex
	users map[string]*entity.User
	roles *RoleRepository
}

func NewUserRepository(roles *RoleRepository) *UserRepository {
	return &UserRepository{users: make(map[string]*entity.User), roles: roles}
}

// Save mirrors the postgres adapter: the password is hashed before the user
// is stored, and the role type is resolved from the role repository.
func (r *UserRepository) Save(u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email.Equals(u.Email) && existing.ID != u.ID {
			return repository.ErrDuplicate
		}
	}

	hashed, err := u.Password.Hash()
	if err != nil {
		return err
	}
	u.Password = hashed

	if u.RoleType == "" && r.roles != nil {
		if role, err := r.roles.GetByID(u.RoleID); err == nil {
			u.RoleType = role.Name
		}
	}

	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *UserRepository) GetByID(id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *UserRepository) GetByEmail(email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Email.String() == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *UserRepository) FindAllExcept(userID string) ([]*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		if u.ID == userID {
			continue
		}
		cp := *u
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *UserRepository) DeleteAll() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users = make(map[string]*entity.User)
	return nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
