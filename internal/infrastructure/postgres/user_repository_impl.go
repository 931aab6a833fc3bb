package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/procobro/usuarios-api/internal/domain/entity"
	"github.com/procobro/usuarios-api/internal/domain/repository"
)

const uniqueViolation = "23505"

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) List(ctx context.Context, f repository.ListFilter) ([]entity.User, error) {
	q := `
		SELECT id, nombre, email, edad, activo, created_at, updated_at
		FROM usuarios
	`
	args := []any{}
	if f.Active != nil {
		q += ` WHERE activo = $1`
		args = append(args, *f.Active)
	}
	q += ` ORDER BY id`
	if f.Active != nil {
		q += ` OFFSET $2 LIMIT $3`
	} else {
		q += ` OFFSET $1 LIMIT $2`
	}
	args = append(args, f.Skip, f.Limit)

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]entity.User, 0)
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Age, &u.Active,
			&u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, nombre, email, edad, activo, created_at, updated_at
		FROM usuarios
		WHERE id = $1
	`, id)
	return scanUser(row)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, nombre, email, edad, activo, created_at, updated_at
		FROM usuarios
		WHERE email = $1
	`, email)
	return scanUser(row)
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO usuarios (nombre, email, edad, activo)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, u.Name, u.Email, u.Age, u.Active)

	if err := row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return mapWriteErr(err)
	}
	return nil
}

func (r *UserRepository) Update(ctx context.Context, u *entity.User) error {
	u.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE usuarios
		SET nombre = $1, email = $2, edad = $3, activo = $4, updated_at = $5
		WHERE id = $6
	`, u.Name, u.Email, u.Age, u.Active, u.UpdatedAt, u.ID)
	if err != nil {
		return mapWriteErr(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *UserRepository) Stats(ctx context.Context, todayStart time.Time) (repository.UserStats, error) {
	var s repository.UserStats
	row := r.pool.QueryRow(ctx, `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE activo),
		       COUNT(*) FILTER (WHERE NOT activo),
		       COUNT(*) FILTER (WHERE created_at >= $1)
		FROM usuarios
	`, todayStart)
	if err := row.Scan(&s.Total, &s.Active, &s.Inactive, &s.CreatedToday); err != nil {
		return repository.UserStats{}, err
	}
	return s, nil
}

func scanUser(row pgx.Row) (*entity.User, error) {
	u := &entity.User{}
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Age, &u.Active,
		&u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func mapWriteErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return repository.ErrDuplicateEmail
	}
	return err
}

var _ repository.UserRepository = (*UserRepository)(nil)
