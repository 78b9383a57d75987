package model

import (
	"time"

	"github.com/google/uuid"
)

// Category is a named classification used to group items and namespace their
// product codes. Prefix is at most three characters, upper-cased at the store
// boundary.
type Category struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Prefix string    `json:"prefix"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
