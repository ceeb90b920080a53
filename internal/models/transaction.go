package models

import (
	"time"

	"github.com/google/uuid"
)

type TransactionStatusType string

const (
	TransactionStatusPending       TransactionStatusType = "pending"
	TransactionStatusCreditSuccess TransactionStatusType = "credit_success"
	TransactionStatusDebitSuccess  TransactionStatusType = "debit_success"
	TransactionStatusFailed        TransactionStatusType = "failed"
)

const PaymentMethodDebit = "debit"

type Transaction struct {
	ID            uuid.UUID             `json:"id"`
	UserID        uuid.UUID             `json:"user_id"`
	PropertyID    uuid.UUID             `json:"property_id"`
	Status        TransactionStatusType `json:"status"`
	PaymentMethod string                `json:"payment_method"`
	TotalAmount   float64               `json:"total_amount"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
}

// Invoice is the billing record for a transaction; at most one per
// transaction, cascade-deleted with it.
type Invoice struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	PropertyID    uuid.UUID `json:"property_id"`
	TransactionID uuid.UUID `json:"transaction_id"`
	Amount        float64   `json:"amount"`
	PaymentStatus string    `json:"payment_status"`
	PaymentMethod string    `json:"payment_method"`
	Note          *string   `json:"note,omitempty"`
	FilePath      *string   `json:"file_path,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
