package entity

import (
	"time"
)

// User is the single aggregate of this service; it maps 1-to-1 onto the
// usuarios table. Age is a pointer because the column is nullable.
type User struct {
	ID        int64
	Name      string
	Email     string
	Age       *int
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
