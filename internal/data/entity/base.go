package entity

import (
	"time"

	"github.com/google/uuid"
)

type BaseSimple struct {
	ID        uuid.UUID `db:"id"`
	CreatedAt time.Time `db:"created_at"`
}

// Category is the passenger or guest fare class.
type Category string

const (
	CategoryAdult  Category = "adult"
	CategoryChild  Category = "child"
	CategoryInfant Category = "infant"
)
