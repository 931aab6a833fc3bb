package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/procobro/usuarios-api/internal/domain/entity"
	"github.com/procobro/usuarios-api/internal/domain/repository"
)

func seedUsers(t *testing.T, r *UserRepository, emails ...string) []entity.User {
	t.Helper()
	out := make([]entity.User, 0, len(emails))
	for _, email := range emails {
		u := &entity.User{Name: "Usuario", Email: email, Active: true}
		if err := r.Create(context.Background(), u); err != nil {
			t.Fatalf("seed create %s failed: %v", email, err)
		}
		out = append(out, *u)
	}
	return out
}

func TestCreate_RejectsDuplicateEmail(t *testing.T) {
	r := NewUserRepository()
	seedUsers(t, r, "a@example.com")

	err := r.Create(context.Background(), &entity.User{Name: "Otro", Email: "a@example.com"})
	if !errors.Is(err, repository.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestUpdate_RejectsEmailOfAnotherUser(t *testing.T) {
	r := NewUserRepository()
	users := seedUsers(t, r, "a@example.com", "b@example.com")

	second := users[1]
	second.Email = "a@example.com"
	if err := r.Update(context.Background(), &second); !errors.Is(err, repository.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}

	// keeping its own email is fine
	second = users[1]
	second.Name = "Renombrado"
	if err := r.Update(context.Background(), &second); err != nil {
		t.Fatalf("expected self-update to succeed, got %v", err)
	}
}

func TestList_SkipBeyondEnd(t *testing.T) {
	r := NewUserRepository()
	seedUsers(t, r, "a@example.com", "b@example.com")

	got, err := r.List(context.Background(), repository.ListFilter{Skip: 5, Limit: 10})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty page past the end, got %d", len(got))
	}
}

func TestStats_TodayBoundary(t *testing.T) {
	r := NewUserRepository()
	seedUsers(t, r, "a@example.com", "b@example.com")

	s, err := r.Stats(context.Background(), time.Now().Add(-time.Minute))
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if s.CreatedToday != 2 {
		t.Fatalf("expected both rows at or after the cutoff, got %d", s.CreatedToday)
	}

	s, err = r.Stats(context.Background(), time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if s.CreatedToday != 0 {
		t.Fatalf("expected no rows after a future cutoff, got %d", s.CreatedToday)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	r := NewUserRepository()
	if _, err := r.GetByID(context.Background(), 7); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
