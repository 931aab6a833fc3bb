package repository

import (
	"context"
	"errors"
	"time"

	"github.com/procobro/usuarios-api/internal/domain/entity"
)

var (
	// ErrNotFound is returned when no row matches the lookup.
	ErrNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when a write violates the unique
	// email constraint. The constraint is the authoritative conflict
	// signal; the service pre-check only narrows the race window.
	ErrDuplicateEmail = errors.New("email already registered")
)

// ListFilter bounds and filters List results. Active nil means no filter.
type ListFilter struct {
	Active *bool
	Skip   int
	Limit  int
}

// UserStats is a point-in-time aggregate over the usuarios table.
type UserStats struct {
	Total        int64
	Active       int64
	Inactive     int64
	CreatedToday int64
}

// UserRepository defines the interface for user persistence operations.
type UserRepository interface {
	List(ctx context.Context, f ListFilter) ([]entity.User, error)
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Create(ctx context.Context, u *entity.User) error
	Update(ctx context.Context, u *entity.User) error
	Stats(ctx context.Context, todayStart time.Time) (UserStats, error)
}
