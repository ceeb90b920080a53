package dtos

import (
	"github.com/InternPulse/property-hive-backend/internal/models"
)

type CreatePropertyRequest struct {
	Location     string  `json:"location" validate:"required"`
	Description  string  `json:"description" validate:"required"`
	SquareMeters string  `json:"square_meters" validate:"required"`
	PropertyType string  `json:"property_type" validate:"required"`
	Price        float64 `json:"price" validate:"required,gt=0"`
}

type UpdatePropertyRequest struct {
	Location     string  `json:"location,omitempty"`
	Description  string  `json:"description,omitempty"`
	SquareMeters string  `json:"square_meters,omitempty"`
	PropertyType string  `json:"property_type,omitempty"`
	Price        float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
}

type PropertyDetailResponse struct {
	Property  *models.Property          `json:"property"`
	Images    []models.PropertyImage    `json:"images"`
	Documents []models.PropertyDocument `json:"documents"`
}

type PurchasePropertyRequest struct {
	PaymentMethod string `json:"payment_method" validate:"required"`
}

type CreateRatingRequest struct {
	Rating   int    `json:"rating" validate:"required,min=1,max=5"`
	Feedback string `json:"feedback,omitempty"`
}
