package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/InternPulse/property-hive-backend/internal/models"
)

func txn(status models.TransactionStatusType, method string, amount float64) *models.Transaction {
	return &models.Transaction{
		ID:            uuid.New(),
		UserID:        uuid.New(),
		PropertyID:    uuid.New(),
		Status:        status,
		PaymentMethod: method,
		TotalAmount:   amount,
	}
}

func TestComputeEarnings(t *testing.T) {
	tests := []struct {
		name          string
		txns          []*models.Transaction
		wantTotal     float64
		wantAvailable float64
		wantPending   float64
		wantWithdrawn float64
	}{
		{
			name: "mixed history",
			txns: []*models.Transaction{
				txn(models.TransactionStatusCreditSuccess, "card", 100),
				txn(models.TransactionStatusDebitSuccess, models.PaymentMethodDebit, 30),
				txn(models.TransactionStatusPending, models.PaymentMethodDebit, 20),
				txn(models.TransactionStatusFailed, models.PaymentMethodDebit, 15),
			},
			wantTotal:     100,
			wantAvailable: 70,
			wantPending:   20,
			wantWithdrawn: 30,
		},
		{
			name:          "no transactions",
			txns:          nil,
			wantTotal:     0,
			wantAvailable: 0,
			wantPending:   0,
			wantWithdrawn: 0,
		},
		{
			name: "pending credit does not count as pending earnings",
			txns: []*models.Transaction{
				txn(models.TransactionStatusPending, "card", 50),
			},
			wantTotal:     0,
			wantAvailable: 0,
			wantPending:   0,
			wantWithdrawn: 0,
		},
		{
			name: "withdrawals exceed credits",
			txns: []*models.Transaction{
				txn(models.TransactionStatusCreditSuccess, "card", 40),
				txn(models.TransactionStatusDebitSuccess, models.PaymentMethodDebit, 60),
			},
			wantTotal:     40,
			wantAvailable: -20,
			wantPending:   0,
			wantWithdrawn: 60,
		},
		{
			name: "multiple credits accumulate",
			txns: []*models.Transaction{
				txn(models.TransactionStatusCreditSuccess, "card", 10.5),
				txn(models.TransactionStatusCreditSuccess, "transfer", 20.25),
				txn(models.TransactionStatusFailed, "card", 999),
			},
			wantTotal:     30.75,
			wantAvailable: 30.75,
			wantPending:   0,
			wantWithdrawn: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeEarnings(tc.txns)
			require.Equal(t, tc.wantTotal, got.TotalEarnings)
			require.Equal(t, tc.wantAvailable, got.AvailableEarnings)
			require.Equal(t, tc.wantPending, got.PendingEarnings)
			require.Equal(t, tc.wantWithdrawn, got.WithdrawnEarnings)
		})
	}
}
