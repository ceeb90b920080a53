package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/InternPulse/property-hive-backend/internal/models"
)

// PropertyAssetRepository manages the image and document rows attached to
// a property. Both tables cascade-delete with the property row.
type PropertyAssetRepository interface {
	AddImage(ctx context.Context, img *models.PropertyImage) error
	ListImages(ctx context.Context, propertyID uuid.UUID) ([]*models.PropertyImage, error)
	DeleteImage(ctx context.Context, id uuid.UUID) error

	AddDocument(ctx context.Context, doc *models.PropertyDocument) error
	ListDocuments(ctx context.Context, propertyID uuid.UUID) ([]*models.PropertyDocument, error)
}

type propertyAssetRepo struct {
	db DB
}

func NewPropertyAssetRepository(db DB) PropertyAssetRepository {
	return &propertyAssetRepo{db: db}
}

func (r *propertyAssetRepo) AddImage(ctx context.Context, img *models.PropertyImage) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO property_images (id, property_id, file_path, created_at)
        VALUES ($1, $2, $3, NOW())
    `, img.ID, img.PropertyID, img.FilePath)
	return err
}

func (r *propertyAssetRepo) ListImages(ctx context.Context, propertyID uuid.UUID) ([]*models.PropertyImage, error) {
	rows, err := r.db.Query(ctx, `
        SELECT id, property_id, file_path, created_at
        FROM property_images
        WHERE property_id = $1
        ORDER BY created_at
    `, propertyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.PropertyImage
	for rows.Next() {
		var img models.PropertyImage
		if err := rows.Scan(&img.ID, &img.PropertyID, &img.FilePath, &img.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &img)
	}
	return out, rows.Err()
}

func (r *propertyAssetRepo) DeleteImage(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM property_images WHERE id = $1`, id)
	return err
}

func (r *propertyAssetRepo) AddDocument(ctx context.Context, doc *models.PropertyDocument) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO property_documents (id, property_id, document_type, file_path, created_at, updated_at)
        VALUES ($1, $2, $3, $4, NOW(), NOW())
    `, doc.ID, doc.PropertyID, doc.DocumentType, doc.FilePath)
	return err
}

func (r *propertyAssetRepo) ListDocuments(ctx context.Context, propertyID uuid.UUID) ([]*models.PropertyDocument, error) {
	rows, err := r.db.Query(ctx, `
        SELECT id, property_id, document_type, file_path, created_at, updated_at
        FROM property_documents
        WHERE property_id = $1
        ORDER BY created_at
    `, propertyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.PropertyDocument
	for rows.Next() {
		var doc models.PropertyDocument
		if err := rows.Scan(&doc.ID, &doc.PropertyID, &doc.DocumentType, &doc.FilePath, &doc.CreatedAt, &doc.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, &doc)
	}
	return out, rows.Err()
}
