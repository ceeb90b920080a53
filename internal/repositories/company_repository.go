package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/InternPulse/property-hive-backend/internal/models"
	"github.com/InternPulse/property-hive-backend/internal/utils"
)

type CompanyRepository interface {
	// Create enforces the one-company-per-user and unique-custom-URL
	// constraints, surfacing them as domain errors.
	Create(ctx context.Context, c *models.Company) error

	GetByID(ctx context.Context, id uuid.UUID) (*models.Company, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Company, error)

	Update(ctx context.Context, c *models.Company) error
}

type companyRepo struct {
	db DB
}

func NewCompanyRepository(db DB) CompanyRepository {
	return &companyRepo{db: db}
}

func (r *companyRepo) Create(ctx context.Context, c *models.Company) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO companies (
            id, user_id, name, logo_path, banner_path, address, website,
            description, custom_url, created_at, updated_at
        ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9, NOW(), NOW())
    `,
		c.ID, c.UserID, c.Name, c.LogoPath, c.BannerPath, c.Address,
		c.Website, c.Description, c.CustomURL,
	)
	if err != nil {
		switch {
		case isUniqueViolation(err, "companies_user_id_key"):
			return utils.ErrCompanyExists
		case isUniqueViolation(err, "companies_custom_url_key"):
			return utils.ErrCustomURLTaken
		}
		return err
	}
	return nil
}

func (r *companyRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Company, error) {
	return scanCompany(r.db.QueryRow(ctx, baseSelectCompany()+" WHERE id=$1", id))
}

func (r *companyRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Company, error) {
	return scanCompany(r.db.QueryRow(ctx, baseSelectCompany()+" WHERE user_id=$1", userID))
}

func (r *companyRepo) Update(ctx context.Context, c *models.Company) error {
	_, err := r.db.Exec(ctx, `
        UPDATE companies SET
            name=$1, logo_path=$2, banner_path=$3, address=$4, website=$5,
            description=$6, updated_at=NOW()
        WHERE id=$7
    `,
		c.Name, c.LogoPath, c.BannerPath, c.Address, c.Website,
		c.Description, c.ID,
	)
	return err
}

func baseSelectCompany() string {
	return `
        SELECT id, user_id, name, logo_path, banner_path, address, website,
               description, custom_url, created_at, updated_at
        FROM companies
    `
}

func scanCompany(row pgx.Row) (*models.Company, error) {
	var c models.Company
	err := row.Scan(
		&c.ID,
		&c.UserID,
		&c.Name,
		&c.LogoPath,
		&c.BannerPath,
		&c.Address,
		&c.Website,
		&c.Description,
		&c.CustomURL,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}
