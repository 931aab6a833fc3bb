package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/procobro/usuarios-api/internal/domain/entity"
	"github.com/procobro/usuarios-api/internal/domain/repository"
)

// UserRepository is an in-memory implementation of repository.UserRepository.
// It mirrors the postgres behaviour, including the unique email constraint,
// and backs the test suite and local development without a database.
type UserRepository struct {
	mu     sync.RWMutex
	nextID int64
	store  map[int64]*entity.User
}

var _ repository.UserRepository = (*UserRepository)(nil)

func NewUserRepository() *UserRepository {
	return &UserRepository{
		nextID: 1,
		store:  make(map[int64]*entity.User),
	}
}

func (r *UserRepository) List(ctx context.Context, f repository.ListFilter) ([]entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]entity.User, 0, len(r.store))
	for _, u := range r.store {
		if f.Active != nil && u.Active != *f.Active {
			continue
		}
		all = append(all, *u)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	if f.Skip >= len(all) {
		return []entity.User{}, nil
	}
	all = all[f.Skip:]
	if f.Limit >= 0 && f.Limit < len(all) {
		all = all[:f.Limit]
	}
	return all, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.store[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.store {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.store {
		if existing.Email == u.Email {
			return repository.ErrDuplicateEmail
		}
	}

	now := time.Now()
	u.ID = r.nextID
	r.nextID++
	u.CreatedAt = now
	u.UpdatedAt = now

	cp := *u
	r.store[cp.ID] = &cp
	return nil
}

func (r *UserRepository) Update(ctx context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[u.ID]; !ok {
		return repository.ErrNotFound
	}
	for id, existing := range r.store {
		if id != u.ID && existing.Email == u.Email {
			return repository.ErrDuplicateEmail
		}
	}

	u.UpdatedAt = time.Now()
	cp := *u
	r.store[cp.ID] = &cp
	return nil
}

func (r *UserRepository) Stats(ctx context.Context, todayStart time.Time) (repository.UserStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var s repository.UserStats
	for _, u := range r.store {
		s.Total++
		if u.Active {
			s.Active++
		} else {
			s.Inactive++
		}
		if !u.CreatedAt.Before(todayStart) {
			s.CreatedToday++
		}
	}
	return s, nil
}
