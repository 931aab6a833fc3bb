package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/procobro/usuarios-api/config"
)

// Seeds a handful of demo usuarios for local development.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	seed := []struct {
		nombre string
		email  string
		edad   *int
		activo bool
	}{
		{"Juan Pérez", "juan.perez@example.com", intp(30), true},
		{"María García", "maria.garcia@example.com", intp(25), true},
		{"Carlos López", "carlos.lopez@example.com", nil, false},
	}

	for _, u := range seed {
		var id int64
		err := db.QueryRow(`
			INSERT INTO usuarios (nombre, email, edad, activo)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (email) DO UPDATE SET nombre = EXCLUDED.nombre
			RETURNING id
		`, u.nombre, u.email, u.edad, u.activo).Scan(&id)
		if err != nil {
			log.Fatalf("failed to seed usuario %s: %v", u.email, err)
		}
		fmt.Printf("seeded usuario: id=%d email=%s\n", id, u.email)
	}
}

func intp(v int) *int { return &v }
