package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/InternPulse/property-hive-backend/internal/dtos"
	"github.com/InternPulse/property-hive-backend/internal/models"
	"github.com/InternPulse/property-hive-backend/internal/repositories"
	"github.com/InternPulse/property-hive-backend/internal/utils"
)

type TransactionService interface {
	// CreateTransaction records a payment and writes its invoice.
	CreateTransaction(ctx context.Context, userID uuid.UUID, req *dtos.CreateTransactionRequest) (*dtos.TransactionDetailResponse, error)

	GetTransaction(ctx context.Context, id uuid.UUID) (*dtos.TransactionDetailResponse, error)
	GetInvoice(ctx context.Context, id uuid.UUID) (*models.Invoice, error)
	ListUserTransactions(ctx context.Context, userID uuid.UUID) ([]*models.Transaction, error)
	ListAllTransactions(ctx context.Context) ([]*models.Transaction, error)

	UpdateTransaction(ctx context.Context, id uuid.UUID, req *dtos.UpdateTransactionRequest) (*models.Transaction, error)
	DeleteTransaction(ctx context.Context, id uuid.UUID) error
}

type transactionService struct {
	transactions repositories.TransactionRepository
	invoices     repositories.InvoiceRepository
}

func NewTransactionService(
	transactions repositories.TransactionRepository,
	invoices repositories.InvoiceRepository,
) TransactionService {
	return &transactionService{
		transactions: transactions,
		invoices:     invoices,
	}
}

func (s *transactionService) CreateTransaction(ctx context.Context, userID uuid.UUID, req *dtos.CreateTransactionRequest) (*dtos.TransactionDetailResponse, error) {
	status := models.TransactionStatusPending
	if req.Status != "" {
		status = models.TransactionStatusType(req.Status)
	}

	txn := &models.Transaction{
		ID:            uuid.New(),
		UserID:        userID,
		PropertyID:    req.PropertyID,
		Status:        status,
		PaymentMethod: req.PaymentMethod,
		TotalAmount:   req.Amount,
	}
	if err := s.transactions.Create(ctx, txn); err != nil {
		return nil, err
	}

	inv := &models.Invoice{
		ID:            uuid.New(),
		UserID:        userID,
		PropertyID:    req.PropertyID,
		TransactionID: txn.ID,
		Amount:        req.Amount,
		PaymentStatus: string(status),
		PaymentMethod: req.PaymentMethod,
	}
	if req.Note != "" {
		inv.Note = &req.Note
	}
	if err := s.invoices.Create(ctx, inv); err != nil {
		return nil, err
	}

	return &dtos.TransactionDetailResponse{Transaction: txn, Invoice: inv}, nil
}

func (s *transactionService) GetTransaction(ctx context.Context, id uuid.UUID) (*dtos.TransactionDetailResponse, error) {
	txn, err := s.transactions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if txn == nil {
		return nil, utils.ErrNotFound
	}

	inv, err := s.invoices.GetByTransactionID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &dtos.TransactionDetailResponse{Transaction: txn, Invoice: inv}, nil
}

func (s *transactionService) GetInvoice(ctx context.Context, id uuid.UUID) (*models.Invoice, error) {
	inv, err := s.invoices.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, utils.ErrNotFound
	}
	return inv, nil
}

func (s *transactionService) ListUserTransactions(ctx context.Context, userID uuid.UUID) ([]*models.Transaction, error) {
	return s.transactions.ListByUserID(ctx, userID)
}

func (s *transactionService) ListAllTransactions(ctx context.Context) ([]*models.Transaction, error) {
	return s.transactions.ListAll(ctx)
}

func (s *transactionService) UpdateTransaction(ctx context.Context, id uuid.UUID, req *dtos.UpdateTransactionRequest) (*models.Transaction, error) {
	txn, err := s.transactions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if txn == nil {
		return nil, utils.ErrNotFound
	}

	if req.Status != "" {
		txn.Status = models.TransactionStatusType(req.Status)
	}

	if err := s.transactions.Update(ctx, txn); err != nil {
		return nil, err
	}
	return txn, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	return s.transactions.Delete(ctx, id)
}
