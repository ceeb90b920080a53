package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/InternPulse/property-hive-backend/internal/dtos"
	"github.com/InternPulse/property-hive-backend/internal/models"
	"github.com/InternPulse/property-hive-backend/internal/utils"
)

func newTestTransactionService(t *testing.T) (TransactionService, *fakeTransactionRepo, *fakeInvoiceRepo) {
	t.Helper()
	transactions := newFakeTransactionRepo()
	invoices := newFakeInvoiceRepo()
	return NewTransactionService(transactions, invoices), transactions, invoices
}

func TestCreateTransactionWritesInvoice(t *testing.T) {
	svc, _, invoices := newTestTransactionService(t)
	userID := uuid.New()

	detail, err := svc.CreateTransaction(context.Background(), userID, &dtos.CreateTransactionRequest{
		PropertyID:    uuid.New(),
		Amount:        250000,
		PaymentMethod: "card",
		Note:          "first installment",
	})
	require.NoError(t, err)

	require.Equal(t, models.TransactionStatusPending, detail.Transaction.Status)
	require.NotNil(t, detail.Invoice)
	require.Equal(t, detail.Transaction.ID, detail.Invoice.TransactionID)
	require.Equal(t, "pending", detail.Invoice.PaymentStatus)
	require.Equal(t, "first installment", *detail.Invoice.Note)

	stored, err := invoices.GetByTransactionID(context.Background(), detail.Transaction.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.InDelta(t, 250000, stored.Amount, 0.001)
}

func TestGetTransactionIncludesInvoice(t *testing.T) {
	svc, _, _ := newTestTransactionService(t)
	userID := uuid.New()

	created, err := svc.CreateTransaction(context.Background(), userID, &dtos.CreateTransactionRequest{
		PropertyID:    uuid.New(),
		Amount:        100,
		PaymentMethod: "transfer",
		Status:        "credit_success",
	})
	require.NoError(t, err)

	detail, err := svc.GetTransaction(context.Background(), created.Transaction.ID)
	require.NoError(t, err)
	require.Equal(t, models.TransactionStatusCreditSuccess, detail.Transaction.Status)
	require.NotNil(t, detail.Invoice)
}

func TestGetTransactionUnknown(t *testing.T) {
	svc, _, _ := newTestTransactionService(t)
	_, err := svc.GetTransaction(context.Background(), uuid.New())
	require.ErrorIs(t, err, utils.ErrNotFound)
}

func TestGetInvoice(t *testing.T) {
	svc, _, _ := newTestTransactionService(t)

	created, err := svc.CreateTransaction(context.Background(), uuid.New(), &dtos.CreateTransactionRequest{
		PropertyID:    uuid.New(),
		Amount:        100,
		PaymentMethod: "card",
	})
	require.NoError(t, err)

	inv, err := svc.GetInvoice(context.Background(), created.Invoice.ID)
	require.NoError(t, err)
	require.Equal(t, created.Invoice.ID, inv.ID)

	_, err = svc.GetInvoice(context.Background(), uuid.New())
	require.ErrorIs(t, err, utils.ErrNotFound)
}

func TestUpdateTransactionStatus(t *testing.T) {
	svc, transactions, _ := newTestTransactionService(t)

	created, err := svc.CreateTransaction(context.Background(), uuid.New(), &dtos.CreateTransactionRequest{
		PropertyID:    uuid.New(),
		Amount:        500,
		PaymentMethod: "card",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateTransaction(context.Background(), created.Transaction.ID,
		&dtos.UpdateTransactionRequest{Status: "failed"})
	require.NoError(t, err)
	require.Equal(t, models.TransactionStatusFailed, updated.Status)

	stored, err := transactions.GetByID(context.Background(), created.Transaction.ID)
	require.NoError(t, err)
	require.Equal(t, models.TransactionStatusFailed, stored.Status)
}

func TestUpdateTransactionUnknown(t *testing.T) {
	svc, _, _ := newTestTransactionService(t)
	_, err := svc.UpdateTransaction(context.Background(), uuid.New(),
		&dtos.UpdateTransactionRequest{Status: "failed"})
	require.ErrorIs(t, err, utils.ErrNotFound)
}

func TestDeleteTransactionUnknown(t *testing.T) {
	svc, _, _ := newTestTransactionService(t)
	err := svc.DeleteTransaction(context.Background(), uuid.New())
	require.ErrorIs(t, err, utils.ErrNotFound)
}
