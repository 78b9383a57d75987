package model

import (
	"time"

	"github.com/google/uuid"
)

// ItemStatus is the procurement state of a scheduled item.
type ItemStatus string

const (
	StatusApproved     ItemStatus = "Approved"
	StatusPending      ItemStatus = "Pending"
	StatusInProduction ItemStatus = "In Production"
)

// Valid reports whether s is one of the known statuses.
func (s ItemStatus) Valid() bool {
	switch s {
	case StatusApproved, StatusPending, StatusInProduction:
		return true
	}
	return false
}

// Item is a scheduled FFE line item, materialized from a catalog product.
// Category holds the category name, not its id: renaming a category does not
// relabel items already tagged with the old name.
type Item struct {
	ID       uuid.UUID `json:"id"`
	Category string    `json:"category"`
	Name     string    `json:"name"`

	// Product is the name of the catalog product this item was
	// materialized from; ProductCode is "{category prefix}-{6 alnum}".
	Product     string `json:"product"`
	ProductCode string `json:"product_code"`

	Brand      string     `json:"brand"`
	Dimensions string     `json:"dimensions"`
	Material   string     `json:"material"`
	Finish     string     `json:"finish"`
	Quantity   int        `json:"quantity"`
	LeadTime   string     `json:"lead_time"`
	Supplier   string     `json:"supplier"`
	Status     ItemStatus `json:"status"`
	Image      string     `json:"image"`
	Price      float64    `json:"price"`

	ModelNumber int    `json:"model_number,omitempty"`
	Location    string `json:"location,omitempty"`
	Website     string `json:"website,omitempty"`

	Alternatives []string `json:"alternatives"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LineTotal is always derived, never stored.
func (i Item) LineTotal() float64 { return i.Price * float64(i.Quantity) }

// ItemPatch carries a partial item update. Nil fields are left alone.
type ItemPatch struct {
	Category     *string     `json:"category,omitempty"`
	Name         *string     `json:"name,omitempty"`
	Product      *string     `json:"product,omitempty"`
	ProductCode  *string     `json:"product_code,omitempty"`
	Brand        *string     `json:"brand,omitempty"`
	Dimensions   *string     `json:"dimensions,omitempty"`
	Material     *string     `json:"material,omitempty"`
	Finish       *string     `json:"finish,omitempty"`
	Quantity     *int        `json:"quantity,omitempty"`
	LeadTime     *string     `json:"lead_time,omitempty"`
	Supplier     *string     `json:"supplier,omitempty"`
	Status       *ItemStatus `json:"status,omitempty"`
	Image        *string     `json:"image,omitempty"`
	Price        *float64    `json:"price,omitempty"`
	Location     *string     `json:"location,omitempty"`
	Website      *string     `json:"website,omitempty"`
	Alternatives *[]string   `json:"alternatives,omitempty"`
}
