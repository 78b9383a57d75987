package model

import "github.com/google/uuid"

// Specifications is the physical spec block of a catalog product.
type Specifications struct {
	Material   string `json:"material"`
	Dimensions string `json:"dimensions"`
	Weight     string `json:"weight"`
}

// Product is a catalog entry. The catalog is a read-only collaborator: the
// core copies product fields into items and never mutates catalog data.
type Product struct {
	ID             uuid.UUID      `json:"id"`
	Name           string         `json:"name"`
	Category       string         `json:"category"`
	Brand          string         `json:"brand"`
	Price          float64        `json:"price"`
	Image          string         `json:"image"`
	Description    string         `json:"description"`
	Specifications Specifications `json:"specifications"`
	LeadTime       string         `json:"lead_time,omitempty"`
	Stock          int            `json:"stock"`
	DateAdded      string         `json:"date_added"`
}
