package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/InternPulse/property-hive-backend/internal/models"
)

type CompanyViewRepository interface {
	// IncrementDailyView bumps today's counter for the company in a single
	// upsert keyed by (company_id, view_date). Concurrent viewers on the
	// same day land on the same row; no read-then-write window exists.
	IncrementDailyView(ctx context.Context, companyID uuid.UUID, day time.Time) error

	// ListViewsSince returns the per-day view counts recorded on or after
	// `since`, oldest first. Days without a row are simply absent.
	ListViewsSince(ctx context.Context, companyID uuid.UUID, since time.Time) ([]*models.CompanyDailyView, error)
}

type companyViewRepo struct {
	db DB
}

func NewCompanyViewRepository(db DB) CompanyViewRepository {
	return &companyViewRepo{db: db}
}

func (r *companyViewRepo) IncrementDailyView(ctx context.Context, companyID uuid.UUID, day time.Time) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO company_daily_views (id, company_id, view_date, views)
        VALUES ($1, $2, $3::date, 1)
        ON CONFLICT (company_id, view_date) DO UPDATE
        SET views = company_daily_views.views + 1
    `, uuid.New(), companyID, day)
	return err
}

func (r *companyViewRepo) ListViewsSince(ctx context.Context, companyID uuid.UUID, since time.Time) ([]*models.CompanyDailyView, error) {
	rows, err := r.db.Query(ctx, `
        SELECT id, company_id, view_date, views
        FROM company_daily_views
        WHERE company_id = $1 AND view_date >= $2::date
        ORDER BY view_date
    `, companyID, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.CompanyDailyView
	for rows.Next() {
		var v models.CompanyDailyView
		if err := rows.Scan(&v.ID, &v.CompanyID, &v.ViewDate, &v.Views); err != nil {
			return nil, err
		}
		out = append(out, &v)
	}
	return out, rows.Err()
}
