package dtos

import (
	"github.com/InternPulse/property-hive-backend/internal/models"
	"github.com/InternPulse/property-hive-backend/internal/repositories"
)

type CreateCompanyRequest struct {
	Name        string `json:"name" validate:"required"`
	Address     string `json:"address,omitempty"`
	Website     string `json:"website,omitempty" validate:"omitempty,url"`
	Description string `json:"description,omitempty"`
}

type UpdateCompanyRequest struct {
	Name        string `json:"name,omitempty"`
	Address     string `json:"address,omitempty"`
	Website     string `json:"website,omitempty" validate:"omitempty,url"`
	Description string `json:"description,omitempty"`
}

type GenerateCustomURLResponse struct {
	CustomURL string `json:"custom_url"`
}

type DailyViewPoint struct {
	Date  string `json:"date"`
	Views int64  `json:"views"`
}

type DashboardResponse struct {
	Views    []DailyViewPoint           `json:"views"`
	Listings repositories.ListingCounts `json:"listings"`
}

type CompanyPublicResponse struct {
	Company    *models.Company   `json:"company"`
	Properties []models.Property `json:"properties"`
}
