package models

import (
	"time"

	"github.com/google/uuid"
)

type Property struct {
	ID           uuid.UUID  `json:"id"`
	SellerID     uuid.UUID  `json:"seller_id"`
	Location     string     `json:"location"`
	Description  string     `json:"description"`
	SquareMeters string     `json:"squaremeters"`
	PropertyType string     `json:"property_type"`
	Price        float64    `json:"price"`
	IsSold       bool       `json:"is_sold"`
	IsActive     bool       `json:"is_active"`
	SoldAt       *time.Time `json:"sold_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// PropertyImage rows are cascade-deleted with their property.
type PropertyImage struct {
	ID         uuid.UUID `json:"id"`
	PropertyID uuid.UUID `json:"property_id"`
	FilePath   string    `json:"file_path"`
	CreatedAt  time.Time `json:"created_at"`
}

// PropertyDocument rows are cascade-deleted with their property.
type PropertyDocument struct {
	ID           uuid.UUID `json:"id"`
	PropertyID   uuid.UUID `json:"property_id"`
	DocumentType string    `json:"document_type"`
	FilePath     string    `json:"file_path"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
