package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"github.com/InternPulse/property-hive-backend/internal/config"
	"github.com/InternPulse/property-hive-backend/internal/dtos"
	"github.com/InternPulse/property-hive-backend/internal/models"
	"github.com/InternPulse/property-hive-backend/internal/repositories"
	"github.com/InternPulse/property-hive-backend/internal/utils"
)

type CompanyService interface {
	// CreateCompany sets up the public company record for a company
	// account and mints its permanent custom URL.
	CreateCompany(ctx context.Context, userID uuid.UUID, req *dtos.CreateCompanyRequest) (*models.Company, error)

	GetCompany(ctx context.Context, companyID uuid.UUID) (*models.Company, error)
	GetCompanyByUserID(ctx context.Context, userID uuid.UUID) (*models.Company, error)

	UpdateCompany(ctx context.Context, userID uuid.UUID, req *dtos.UpdateCompanyRequest) (*models.Company, error)

	// SetLogo / SetBanner store the uploaded branding file paths.
	SetLogo(ctx context.Context, userID uuid.UUID, filePath string) (*models.Company, error)
	SetBanner(ctx context.Context, userID uuid.UUID, filePath string) (*models.Company, error)

	// GenerateCustomURL derives the subdomain-style URL from the owner's
	// business name. It fails for non-company accounts and never
	// overwrites a URL already assigned.
	GenerateCustomURL(ctx context.Context, userID uuid.UUID) (string, error)
}

type companyService struct {
	users     repositories.UserRepository
	companies repositories.CompanyRepository
}

func NewCompanyService(users repositories.UserRepository, companies repositories.CompanyRepository) CompanyService {
	return &companyService{users: users, companies: companies}
}

func (s *companyService) CreateCompany(ctx context.Context, userID uuid.UUID, req *dtos.CreateCompanyRequest) (*models.Company, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, utils.ErrNotFound
	}
	if !user.IsCompany {
		return nil, utils.ErrNotCompany
	}

	company := &models.Company{
		ID:     uuid.New(),
		UserID: userID,
		Name:   req.Name,
	}
	if req.Address != "" {
		company.Address = &req.Address
	}
	if req.Website != "" {
		company.Website = &req.Website
	}
	if req.Description != "" {
		company.Description = &req.Description
	}

	customURL := buildCustomURL(user)
	company.CustomURL = &customURL

	if err := s.companies.Create(ctx, company); err != nil {
		return nil, err
	}
	if err := s.users.SetCustomURL(ctx, userID, customURL); err != nil {
		return nil, err
	}

	return company, nil
}

func (s *companyService) GetCompany(ctx context.Context, companyID uuid.UUID) (*models.Company, error) {
	company, err := s.companies.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, utils.ErrNotFound
	}
	return company, nil
}

func (s *companyService) GetCompanyByUserID(ctx context.Context, userID uuid.UUID) (*models.Company, error) {
	company, err := s.companies.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, utils.ErrNotFound
	}
	return company, nil
}

func (s *companyService) UpdateCompany(ctx context.Context, userID uuid.UUID, req *dtos.UpdateCompanyRequest) (*models.Company, error) {
	company, err := s.companies.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, utils.ErrNotFound
	}

	if req.Name != "" {
		company.Name = req.Name
	}
	if req.Address != "" {
		company.Address = &req.Address
	}
	if req.Website != "" {
		company.Website = &req.Website
	}
	if req.Description != "" {
		company.Description = &req.Description
	}

	if err := s.companies.Update(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

func (s *companyService) SetLogo(ctx context.Context, userID uuid.UUID, filePath string) (*models.Company, error) {
	return s.setBranding(ctx, userID, func(c *models.Company) { c.LogoPath = &filePath })
}

func (s *companyService) SetBanner(ctx context.Context, userID uuid.UUID, filePath string) (*models.Company, error) {
	return s.setBranding(ctx, userID, func(c *models.Company) { c.BannerPath = &filePath })
}

func (s *companyService) setBranding(ctx context.Context, userID uuid.UUID, apply func(*models.Company)) (*models.Company, error) {
	company, err := s.companies.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, utils.ErrNotFound
	}
	apply(company)
	if err := s.companies.Update(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

func (s *companyService) GenerateCustomURL(ctx context.Context, userID uuid.UUID) (string, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", utils.ErrNotFound
	}
	if !user.IsCompany || user.BusinessName == nil {
		return "", utils.ErrNotCompany
	}
	if user.CustomURL != nil && *user.CustomURL != "" {
		return *user.CustomURL, nil
	}

	customURL := buildCustomURL(user)
	if err := s.users.SetCustomURL(ctx, userID, customURL); err != nil {
		return "", err
	}

	if company, err := s.companies.GetByUserID(ctx, userID); err == nil && company != nil {
		company.CustomURL = &customURL
		if err := s.companies.Update(ctx, company); err != nil {
			return "", err
		}
	}

	return customURL, nil
}

func buildCustomURL(user *models.User) string {
	name := ""
	if user.BusinessName != nil {
		name = *user.BusinessName
	}
	return slug.Make(name) + "." + config.CustomURLDomain
}
