package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/InternPulse/property-hive-backend/internal/models"
	"github.com/InternPulse/property-hive-backend/internal/utils"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

// ListingCounts are the dashboard listing figures for one seller.
type ListingCounts struct {
	Total  int64 `json:"total"`
	Active int64 `json:"active"`
	Sold   int64 `json:"sold"`
}

type PropertyRepository interface {
	Create(ctx context.Context, p *models.Property) error

	GetByID(ctx context.Context, id uuid.UUID) (*models.Property, error)
	ListBySellerID(ctx context.Context, sellerID uuid.UUID) ([]*models.Property, error)
	ListAll(ctx context.Context) ([]*models.Property, error)

	Update(ctx context.Context, p *models.Property) error
	Delete(ctx context.Context, id uuid.UUID) error

	// MarkSold sets is_sold and the sale timestamp in one statement.
	MarkSold(ctx context.Context, id uuid.UUID) error

	CountBySeller(ctx context.Context, sellerID uuid.UUID) (ListingCounts, error)
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type propertyRepo struct {
	db DB
}

func NewPropertyRepository(db DB) PropertyRepository {
	return &propertyRepo{db: db}
}

func (r *propertyRepo) Create(ctx context.Context, p *models.Property) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO properties (
            id, seller_id, location, description, squaremeters, property_type,
            price, is_sold, is_active, created_at, updated_at
        ) VALUES ($1,$2,$3,$4,$5,$6,$7,FALSE,TRUE, NOW(), NOW())
    `,
		p.ID,
		p.SellerID,
		p.Location,
		p.Description,
		p.SquareMeters,
		p.PropertyType,
		p.Price,
	)
	return err
}

func (r *propertyRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Property, error) {
	return scanProperty(r.db.QueryRow(ctx, baseSelectProperty()+" WHERE id=$1", id))
}

func (r *propertyRepo) ListBySellerID(ctx context.Context, sellerID uuid.UUID) ([]*models.Property, error) {
	rows, err := r.db.Query(ctx, baseSelectProperty()+" WHERE seller_id=$1 ORDER BY created_at", sellerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectProperties(rows)
}

func (r *propertyRepo) ListAll(ctx context.Context) ([]*models.Property, error) {
	rows, err := r.db.Query(ctx, baseSelectProperty()+" WHERE is_active=TRUE ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectProperties(rows)
}

func (r *propertyRepo) Update(ctx context.Context, p *models.Property) error {
	_, err := r.db.Exec(ctx, `
        UPDATE properties SET
            location=$1, description=$2, squaremeters=$3, property_type=$4,
            price=$5, is_active=$6, updated_at=NOW()
        WHERE id=$7
    `,
		p.Location, p.Description, p.SquareMeters, p.PropertyType,
		p.Price, p.IsActive, p.ID,
	)
	return err
}

func (r *propertyRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM properties WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return utils.ErrNotFound
	}
	return nil
}

func (r *propertyRepo) MarkSold(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `
        UPDATE properties SET is_sold=TRUE, is_active=FALSE, sold_at=NOW(), updated_at=NOW()
        WHERE id=$1
    `, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return utils.ErrNotFound
	}
	return nil
}

func (r *propertyRepo) CountBySeller(ctx context.Context, sellerID uuid.UUID) (ListingCounts, error) {
	q := `
        SELECT
            COUNT(*),
            COUNT(*) FILTER (WHERE is_sold = FALSE AND is_active = TRUE),
            COUNT(*) FILTER (WHERE is_sold = TRUE)
        FROM properties
        WHERE seller_id = $1
    `
	var c ListingCounts
	err := r.db.QueryRow(ctx, q, sellerID).Scan(&c.Total, &c.Active, &c.Sold)
	return c, err
}

func baseSelectProperty() string {
	return `
        SELECT
            id, seller_id, location, description, squaremeters, property_type,
            price, is_sold, is_active, sold_at, created_at, updated_at
        FROM properties
    `
}

func scanProperty(row pgx.Row) (*models.Property, error) {
	var p models.Property
	err := row.Scan(
		&p.ID,
		&p.SellerID,
		&p.Location,
		&p.Description,
		&p.SquareMeters,
		&p.PropertyType,
		&p.Price,
		&p.IsSold,
		&p.IsActive,
		&p.SoldAt,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func collectProperties(rows pgx.Rows) ([]*models.Property, error) {
	var out []*models.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
