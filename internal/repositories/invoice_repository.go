package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/InternPulse/property-hive-backend/internal/models"
)

type InvoiceRepository interface {
	Create(ctx context.Context, inv *models.Invoice) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Invoice, error)
	GetByTransactionID(ctx context.Context, transactionID uuid.UUID) (*models.Invoice, error)
}

type invoiceRepo struct {
	db DB
}

func NewInvoiceRepository(db DB) InvoiceRepository {
	return &invoiceRepo{db: db}
}

func (r *invoiceRepo) Create(ctx context.Context, inv *models.Invoice) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO invoices (
            id, user_id, property_id, transaction_id, amount,
            payment_status, payment_method, note, file_path, created_at
        ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9, NOW())
    `,
		inv.ID, inv.UserID, inv.PropertyID, inv.TransactionID, inv.Amount,
		inv.PaymentStatus, inv.PaymentMethod, inv.Note, inv.FilePath,
	)
	return err
}

func (r *invoiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Invoice, error) {
	return scanInvoice(r.db.QueryRow(ctx, baseSelectInvoice()+" WHERE id=$1", id))
}

func (r *invoiceRepo) GetByTransactionID(ctx context.Context, transactionID uuid.UUID) (*models.Invoice, error) {
	return scanInvoice(r.db.QueryRow(ctx, baseSelectInvoice()+" WHERE transaction_id=$1", transactionID))
}

func baseSelectInvoice() string {
	return `
        SELECT id, user_id, property_id, transaction_id, amount,
               payment_status, payment_method, note, file_path, created_at
        FROM invoices
    `
}

func scanInvoice(row pgx.Row) (*models.Invoice, error) {
	var inv models.Invoice
	err := row.Scan(
		&inv.ID,
		&inv.UserID,
		&inv.PropertyID,
		&inv.TransactionID,
		&inv.Amount,
		&inv.PaymentStatus,
		&inv.PaymentMethod,
		&inv.Note,
		&inv.FilePath,
		&inv.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &inv, nil
}
