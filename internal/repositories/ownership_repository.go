package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/InternPulse/property-hive-backend/internal/models"
	"github.com/InternPulse/property-hive-backend/internal/utils"
)

type OwnershipRepository interface {
	// RecordSale inserts a sold-properties row. The insert is guarded so it
	// only succeeds when the property's is_sold flag is already set;
	// otherwise ErrPropertyUnsold is returned.
	RecordSale(ctx context.Context, userID, propertyID uuid.UUID) error
	ListSalesByUser(ctx context.Context, userID uuid.UUID) ([]*models.SoldProperty, error)

	RecordPurchase(ctx context.Context, userID, propertyID uuid.UUID) error
	ListPurchasesByUser(ctx context.Context, userID uuid.UUID) ([]*models.UserProperty, error)
}

type ownershipRepo struct {
	db DB
}

func NewOwnershipRepository(db DB) OwnershipRepository {
	return &ownershipRepo{db: db}
}

func (r *ownershipRepo) RecordSale(ctx context.Context, userID, propertyID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `
        INSERT INTO sold_properties (id, user_id, property_id, date_sold)
        SELECT $1, $2, p.id, NOW()
        FROM properties p
        WHERE p.id = $3 AND p.is_sold = TRUE
    `, uuid.New(), userID, propertyID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return utils.ErrPropertyUnsold
	}
	return nil
}

func (r *ownershipRepo) ListSalesByUser(ctx context.Context, userID uuid.UUID) ([]*models.SoldProperty, error) {
	rows, err := r.db.Query(ctx, `
        SELECT id, user_id, property_id, date_sold
        FROM sold_properties
        WHERE user_id = $1
        ORDER BY date_sold DESC
    `, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.SoldProperty
	for rows.Next() {
		var sp models.SoldProperty
		if err := rows.Scan(&sp.ID, &sp.UserID, &sp.PropertyID, &sp.DateSold); err != nil {
			return nil, err
		}
		out = append(out, &sp)
	}
	return out, rows.Err()
}

func (r *ownershipRepo) RecordPurchase(ctx context.Context, userID, propertyID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO user_properties (id, user_id, property_id, date_purchased)
        VALUES ($1, $2, $3, NOW())
    `, uuid.New(), userID, propertyID)
	return err
}

func (r *ownershipRepo) ListPurchasesByUser(ctx context.Context, userID uuid.UUID) ([]*models.UserProperty, error) {
	rows, err := r.db.Query(ctx, `
        SELECT id, user_id, property_id, date_purchased
        FROM user_properties
        WHERE user_id = $1
        ORDER BY date_purchased DESC
    `, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.UserProperty
	for rows.Next() {
		var up models.UserProperty
		if err := rows.Scan(&up.ID, &up.UserID, &up.PropertyID, &up.DatePurchased); err != nil {
			return nil, err
		}
		out = append(out, &up)
	}
	return out, rows.Err()
}
