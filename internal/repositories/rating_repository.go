package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/InternPulse/property-hive-backend/internal/models"
)

type RatingRepository interface {
	Create(ctx context.Context, rt *models.Rating) error
	ListByPropertyID(ctx context.Context, propertyID uuid.UUID) ([]*models.Rating, error)
}

type ratingRepo struct {
	db DB
}

func NewRatingRepository(db DB) RatingRepository {
	return &ratingRepo{db: db}
}

func (r *ratingRepo) Create(ctx context.Context, rt *models.Rating) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO ratings (id, user_id, property_id, rating, feedback, created_at)
        VALUES ($1, $2, $3, $4, $5, NOW())
    `, rt.ID, rt.UserID, rt.PropertyID, rt.Rating, rt.Feedback)
	return err
}

func (r *ratingRepo) ListByPropertyID(ctx context.Context, propertyID uuid.UUID) ([]*models.Rating, error) {
	rows, err := r.db.Query(ctx, `
        SELECT id, user_id, property_id, rating, feedback, created_at
        FROM ratings
        WHERE property_id = $1
        ORDER BY created_at DESC
    `, propertyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Rating
	for rows.Next() {
		var rt models.Rating
		if err := rows.Scan(&rt.ID, &rt.UserID, &rt.PropertyID, &rt.Rating, &rt.Feedback, &rt.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &rt)
	}
	return out, rows.Err()
}
