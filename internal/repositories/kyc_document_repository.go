package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/InternPulse/property-hive-backend/internal/models"
)

type KycDocumentRepository interface {
	Create(ctx context.Context, d *models.KycDocument) error
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*models.KycDocument, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.KycStatusType) error
}

type kycDocumentRepo struct {
	db DB
}

func NewKycDocumentRepository(db DB) KycDocumentRepository {
	return &kycDocumentRepo{db: db}
}

func (r *kycDocumentRepo) Create(ctx context.Context, d *models.KycDocument) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO kyc_documents (id, user_id, document_type, file_path, status, uploaded_at)
        VALUES ($1, $2, $3, $4, $5, NOW())
    `, d.ID, d.UserID, d.DocumentType, d.FilePath, d.Status)
	return err
}

func (r *kycDocumentRepo) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*models.KycDocument, error) {
	rows, err := r.db.Query(ctx, `
        SELECT id, user_id, document_type, file_path, status, uploaded_at
        FROM kyc_documents
        WHERE user_id = $1
        ORDER BY uploaded_at DESC
    `, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.KycDocument
	for rows.Next() {
		var d models.KycDocument
		if err := rows.Scan(&d.ID, &d.UserID, &d.DocumentType, &d.FilePath, &d.Status, &d.UploadedAt); err != nil {
			return nil, err
		}
		out = append(out, &d)
	}
	return out, rows.Err()
}

func (r *kycDocumentRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status models.KycStatusType) error {
	_, err := r.db.Exec(ctx, `UPDATE kyc_documents SET status=$1 WHERE id=$2`, status, id)
	return err
}
