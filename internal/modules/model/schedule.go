package model

import (
	"time"

	"github.com/google/uuid"
)

// Schedule is a named, budgeted grouping of items within a project, typically
// one per room or phase.
type Schedule struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`

	// Budget == 0 means no schedule-level cap.
	Budget float64 `json:"budget"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Schedule <-> Item
	Items []Item `json:"items"`
}
