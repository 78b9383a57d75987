package catalog

import (
	"github.com/google/uuid"
	"github.com/specbook-io/specbook/internal/modules/model"
)

// Seed is the built-in sample catalog used until a real product source is
// plugged in.
func Seed() []model.Product {
	return []model.Product{
		{
			ID:          uuid.New(),
			Name:        "Modern Lounge Chair",
			Category:    "Seating",
			Brand:       "ComfortPlus",
			Price:       599.99,
			Image:       "https://images.unsplash.com/photo-1592078615290-033ee584e267?q=80&w=1964&auto=format&fit=crop",
			Description: "Contemporary lounge chair with premium comfort",
			Specifications: model.Specifications{
				Material:   "Leather",
				Dimensions: "76x82x85cm",
				Weight:     "15kg",
			},
			Stock:     12,
			DateAdded: "2024-03-15",
		},
		{
			ID:          uuid.New(),
			Name:        "Pendant Light",
			Category:    "Lighting",
			Brand:       "BrightLife",
			Price:       299.99,
			Image:       "https://images.unsplash.com/photo-1530603907829-659dc1b3f567?q=80&w=1964&auto=format&fit=crop",
			Description: "Modern pendant light with adjustable height",
			Specifications: model.Specifications{
				Material:   "Metal and Glass",
				Dimensions: "30x30x100cm",
				Weight:     "2.5kg",
			},
			Stock:     20,
			DateAdded: "2024-03-14",
		},
		{
			ID:          uuid.New(),
			Name:        "Coffee Table",
			Category:    "Tables",
			Brand:       "ErgoDesk",
			Price:       449.99,
			Image:       "https://images.unsplash.com/photo-1577140917170-285929fb55b7?q=80&w=1964&auto=format&fit=crop",
			Description: "Minimalist coffee table with storage",
			Specifications: model.Specifications{
				Material:   "Oak Wood",
				Dimensions: "120x60x45cm",
				Weight:     "25kg",
			},
			Stock:     8,
			DateAdded: "2024-03-13",
		},
		{
			ID:          uuid.New(),
			Name:        "Panton Chair",
			Category:    "Seating",
			Brand:       "Virta",
			Price:       450,
			Image:       "https://images.unsplash.com/photo-1503602642458-232111445657",
			Description: "Cantilevered stacking chair in molded polypropylene",
			Specifications: model.Specifications{
				Material:   "Polypropylene",
				Dimensions: "500W x 860H x 610D",
				Weight:     "5.6kg",
			},
			LeadTime:  "10-12 wks",
			Stock:     30,
			DateAdded: "2024-03-10",
		},
	}
}
