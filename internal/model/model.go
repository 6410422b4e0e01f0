package model

import (
	"time"
)

// Model holds the identity and audit fields shared by persisted entities.
type Model struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
