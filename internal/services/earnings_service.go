package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/InternPulse/property-hive-backend/internal/dtos"
	"github.com/InternPulse/property-hive-backend/internal/models"
	"github.com/InternPulse/property-hive-backend/internal/repositories"
)

type EarningsService interface {
	// GetEarningsSummary folds a user's transaction history into the four
	// earnings figures shown on the dashboard.
	GetEarningsSummary(ctx context.Context, userID uuid.UUID) (*dtos.EarningsSummaryResponse, error)
}

type earningsService struct {
	transactions repositories.TransactionRepository
}

func NewEarningsService(transactions repositories.TransactionRepository) EarningsService {
	return &earningsService{transactions: transactions}
}

func (s *earningsService) GetEarningsSummary(ctx context.Context, userID uuid.UUID) (*dtos.EarningsSummaryResponse, error) {
	txns, err := s.transactions.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	summary := ComputeEarnings(txns)
	return &summary, nil
}

// ComputeEarnings reduces a transaction list to the earnings summary.
// Total counts successful credits, withdrawn counts successful debits,
// pending counts debits still in flight, and available is what remains
// after withdrawals. All four sums are taken over the full list before
// any of them is combined.
func ComputeEarnings(txns []*models.Transaction) dtos.EarningsSummaryResponse {
	var total, withdrawn, pending float64

	for _, t := range txns {
		switch {
		case t.Status == models.TransactionStatusCreditSuccess:
			total += t.TotalAmount
		case t.Status == models.TransactionStatusDebitSuccess:
			withdrawn += t.TotalAmount
		case t.Status == models.TransactionStatusPending && t.PaymentMethod == models.PaymentMethodDebit:
			pending += t.TotalAmount
		}
	}

	return dtos.EarningsSummaryResponse{
		TotalEarnings:     total,
		AvailableEarnings: total - withdrawn,
		PendingEarnings:   pending,
		WithdrawnEarnings: withdrawn,
	}
}
