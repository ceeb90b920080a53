package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/InternPulse/property-hive-backend/internal/dtos"
	"github.com/InternPulse/property-hive-backend/internal/repositories"
	"github.com/InternPulse/property-hive-backend/internal/utils"
)

// DashboardWindowDays is the span of the profile-view series.
const DashboardWindowDays = 7

type DashboardService interface {
	// RecordProfileView bumps today's view counter for a company.
	RecordProfileView(ctx context.Context, companyID uuid.UUID) error

	// GetDashboard returns the last seven days of profile views, one point
	// per day that recorded traffic, plus the seller's listing counts.
	GetDashboard(ctx context.Context, userID uuid.UUID) (*dtos.DashboardResponse, error)
}

type dashboardService struct {
	companies  repositories.CompanyRepository
	views      repositories.CompanyViewRepository
	properties repositories.PropertyRepository
}

func NewDashboardService(
	companies repositories.CompanyRepository,
	views repositories.CompanyViewRepository,
	properties repositories.PropertyRepository,
) DashboardService {
	return &dashboardService{
		companies:  companies,
		views:      views,
		properties: properties,
	}
}

func (s *dashboardService) RecordProfileView(ctx context.Context, companyID uuid.UUID) error {
	company, err := s.companies.GetByID(ctx, companyID)
	if err != nil {
		return err
	}
	if company == nil {
		return utils.ErrNotFound
	}
	return s.views.IncrementDailyView(ctx, companyID, time.Now().UTC())
}

func (s *dashboardService) GetDashboard(ctx context.Context, userID uuid.UUID) (*dtos.DashboardResponse, error) {
	company, err := s.companies.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, utils.ErrNotCompany
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	since := today.AddDate(0, 0, -(DashboardWindowDays - 1))

	rows, err := s.views.ListViewsSince(ctx, company.ID, since)
	if err != nil {
		return nil, err
	}

	// Days without traffic are omitted rather than zero-filled.
	series := make([]dtos.DailyViewPoint, 0, len(rows))
	for _, r := range rows {
		series = append(series, dtos.DailyViewPoint{
			Date:  r.ViewDate.Format("2006-01-02"),
			Views: r.Views,
		})
	}

	counts, err := s.properties.CountBySeller(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &dtos.DashboardResponse{
		Views:    series,
		Listings: counts,
	}, nil
}
