package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category groups products in the catalog.
type Category struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}
