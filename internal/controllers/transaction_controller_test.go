package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/InternPulse/property-hive-backend/internal/dtos"
	"github.com/InternPulse/property-hive-backend/internal/models"
	"github.com/InternPulse/property-hive-backend/internal/services"
	"github.com/InternPulse/property-hive-backend/internal/utils"
)

type fakeTransactionService struct {
	detail    *dtos.TransactionDetailResponse
	deleteErr error
}

func (f *fakeTransactionService) CreateTransaction(_ context.Context, _ uuid.UUID, _ *dtos.CreateTransactionRequest) (*dtos.TransactionDetailResponse, error) {
	return f.detail, nil
}

func (f *fakeTransactionService) GetTransaction(_ context.Context, _ uuid.UUID) (*dtos.TransactionDetailResponse, error) {
	return f.detail, nil
}

func (f *fakeTransactionService) GetInvoice(_ context.Context, _ uuid.UUID) (*models.Invoice, error) {
	return nil, nil
}

func (f *fakeTransactionService) ListUserTransactions(_ context.Context, _ uuid.UUID) ([]*models.Transaction, error) {
	return nil, nil
}

func (f *fakeTransactionService) ListAllTransactions(_ context.Context) ([]*models.Transaction, error) {
	return nil, nil
}

func (f *fakeTransactionService) UpdateTransaction(_ context.Context, _ uuid.UUID, _ *dtos.UpdateTransactionRequest) (*models.Transaction, error) {
	return nil, nil
}

func (f *fakeTransactionService) DeleteTransaction(_ context.Context, _ uuid.UUID) error {
	return f.deleteErr
}

var _ services.TransactionService = (*fakeTransactionService)(nil)

func TestDeleteTransactionMissingRowMapsToNotFound(t *testing.T) {
	c := NewTransactionController(&fakeTransactionService{deleteErr: utils.ErrNotFound}, nil)

	id := uuid.New().String()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/transactions/"+id, nil)
	req = mux.SetURLVars(req, map[string]string{"id": id})
	rec := httptest.NewRecorder()
	c.Delete(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeEnvelope(t, rec)
	require.Equal(t, utils.ErrCodeNotFound, body["code"])
}
