package model

import (
	"time"

	"github.com/google/uuid"
)

// Project is the root of the ownership tree. A project exclusively owns its
// schedules and its category definitions; nothing outside the tree references
// them.
type Project struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	ClientName string    `json:"client_name,omitempty"`

	// TotalBudget == 0 means the project runs without a fixed budget.
	// A positive value caps the sum of schedule budgets, checked at
	// schedule creation only.
	TotalBudget float64 `json:"total_budget"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Project <-> Schedule
	Schedules []Schedule `json:"schedules"`

	// Project <-> Category
	Categories []Category `json:"categories"`
}

// ProjectPatch carries a partial project update. Nil fields are left alone.
type ProjectPatch struct {
	Name        *string  `json:"name,omitempty"`
	ClientName  *string  `json:"client_name,omitempty"`
	TotalBudget *float64 `json:"total_budget,omitempty"`
}
