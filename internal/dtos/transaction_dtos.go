package dtos

import (
	"github.com/google/uuid"

	"github.com/InternPulse/property-hive-backend/internal/models"
)

type CreateTransactionRequest struct {
	PropertyID    uuid.UUID `json:"property_id" validate:"required"`
	Amount        float64   `json:"amount" validate:"required,gt=0"`
	PaymentMethod string    `json:"payment_method" validate:"required"`
	Status        string    `json:"status,omitempty" validate:"omitempty,oneof=pending credit_success debit_success failed"`
	Note          string    `json:"note,omitempty"`
}

type UpdateTransactionRequest struct {
	Status string `json:"status,omitempty" validate:"omitempty,oneof=pending credit_success debit_success failed"`
	Note   string `json:"note,omitempty"`
}

type TransactionDetailResponse struct {
	Transaction *models.Transaction `json:"transaction"`
	Invoice     *models.Invoice     `json:"invoice,omitempty"`
}

type EarningsSummaryResponse struct {
	TotalEarnings     float64 `json:"total_earnings"`
	AvailableEarnings float64 `json:"available_earnings"`
	PendingEarnings   float64 `json:"pending_earnings"`
	WithdrawnEarnings float64 `json:"withdrawn_earnings"`
}
