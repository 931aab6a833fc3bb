package application

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/procobro/usuarios-api/internal/domain/entity"
	"github.com/procobro/usuarios-api/internal/domain/repository"
	"github.com/procobro/usuarios-api/pkg/helpers"
	"github.com/procobro/usuarios-api/pkg/validation"
)

var (
	ErrUserNotFound = errors.New("usuario not found")
	ErrEmailTaken   = errors.New("email already registered")
)

// ValidationError reports the offending fields and why each was rejected.
type ValidationError struct {
	Details map[string]string
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Details))
	for f := range e.Details {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fmt.Sprintf("invalid fields: %s", strings.Join(fields, ", "))
}

// CreateUserInput carries the raw candidate fields for a new usuario.
// Active nil defaults to true.
type CreateUserInput struct {
	Name   string `json:"nombre" validate:"required,min=2"`
	Email  string `json:"email" validate:"required,email"`
	Age    *int   `json:"edad" validate:"omitnil,gte=0,lte=120"`
	Active *bool  `json:"activo"`
}

// UpdateUserInput is the partial-update payload. Only non-nil fields are
// validated and applied; nil fields leave the stored value untouched.
type UpdateUserInput struct {
	Name   *string `json:"nombre" validate:"omitnil,min=2"`
	Email  *string `json:"email" validate:"omitnil,email"`
	Age    *int    `json:"edad" validate:"omitnil,gte=0,lte=120"`
	Active *bool   `json:"activo"`
}

// ListInput bounds and filters the List operation.
type ListInput struct {
	Active *bool
	Skip   int
	Limit  int
}

type Service struct {
	Repo   repository.UserRepository
	Logger *logrus.Logger
}

func NewService(repo repository.UserRepository, logger *logrus.Logger) *Service {
	return &Service{Repo: repo, Logger: logger}
}

// List returns usuarios in natural (id) order, optionally filtered by
// activo, bounded by skip/limit. An empty result is valid.
func (s *Service) List(ctx context.Context, in ListInput) ([]entity.User, error) {
	if in.Skip < 0 {
		in.Skip = 0
	}
	if in.Limit <= 0 {
		in.Limit = 100
	}
	return s.Repo.List(ctx, repository.ListFilter{Active: in.Active, Skip: in.Skip, Limit: in.Limit})
}

func (s *Service) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

// Create validates and normalizes the candidate, rejects duplicate emails
// and persists a new usuario. The returned value is what persistence
// actually stored, including the assigned id and timestamps.
func (s *Service) Create(ctx context.Context, in CreateUserInput) (*entity.User, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validation.Struct(in); err != nil {
		return nil, &ValidationError{Details: validation.ToDetails(err)}
	}

	u := &entity.User{
		Name:   titleCase(in.Name),
		Email:  in.Email,
		Age:    in.Age,
		Active: true,
	}
	if in.Active != nil {
		u.Active = *in.Active
	}

	// Pre-insert existence check. Not atomic against a concurrent create;
	// the unique constraint in storage closes that window and surfaces as
	// ErrDuplicateEmail below.
	if _, err := s.Repo.GetByEmail(ctx, u.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": u.ID, "email": u.Email}).Info("usuario created")
	}
	return u, nil
}

// Update applies the non-nil fields of in to the stored usuario and
// refreshes updated_at. Absent fields retain their prior values.
func (s *Service) Update(ctx context.Context, id int64, in UpdateUserInput) (*entity.User, error) {
	if in.Name != nil {
		trimmed := strings.TrimSpace(*in.Name)
		in.Name = &trimmed
	}
	if err := validation.Struct(in); err != nil {
		return nil, &ValidationError{Details: validation.ToDetails(err)}
	}

	u, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		u.Name = titleCase(*in.Name)
	}
	if in.Email != nil {
		u.Email = *in.Email
	}
	if in.Age != nil {
		u.Age = in.Age
	}
	if in.Active != nil {
		u.Active = *in.Active
	}

	if err := s.Repo.Update(ctx, u); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrUserNotFound
		case errors.Is(err, repository.ErrDuplicateEmail):
			return nil, ErrEmailTaken
		default:
			return nil, err
		}
	}
	return u, nil
}

// Delete soft-deletes: the row stays in storage with activo=false so the
// statistics endpoint and audits keep seeing it.
func (s *Service) Delete(ctx context.Context, id int64) error {
	u, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	u.Active = false
	if err := s.Repo.Update(ctx, u); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if s.Logger != nil {
		s.Logger.WithField("user_id", id).Info("usuario deactivated")
	}
	return nil
}

// Stats is a point-in-time read; "today" means created_at at or after
// local midnight of the current date.
func (s *Service) Stats(ctx context.Context) (repository.UserStats, error) {
	return s.Repo.Stats(ctx, helpers.StartOfDay(time.Now()))
}

func titleCase(name string) string {
	return cases.Title(language.Spanish).String(name)
}
