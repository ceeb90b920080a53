package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/InternPulse/property-hive-backend/internal/models"
	"github.com/InternPulse/property-hive-backend/internal/utils"
)

type ProfileRepository interface {
	Create(ctx context.Context, p *models.Profile) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Profile, error)
	Update(ctx context.Context, p *models.Profile) error
}

type profileRepo struct {
	db DB
}

func NewProfileRepository(db DB) ProfileRepository {
	return &profileRepo{db: db}
}

func (r *profileRepo) Create(ctx context.Context, p *models.Profile) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO profiles (id, user_id, dob, gender, address, occupation, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, NOW())
    `, p.ID, p.UserID, p.DOB, p.Gender, p.Address, p.Occupation)
	if err != nil && isUniqueViolation(err, "profiles_user_id_key") {
		return utils.ErrProfileExists
	}
	return err
}

func (r *profileRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	row := r.db.QueryRow(ctx, `
        SELECT id, user_id, dob, gender, address, occupation, updated_at
        FROM profiles
        WHERE user_id = $1
    `, userID)
	var p models.Profile
	err := row.Scan(&p.ID, &p.UserID, &p.DOB, &p.Gender, &p.Address, &p.Occupation, &p.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *profileRepo) Update(ctx context.Context, p *models.Profile) error {
	_, err := r.db.Exec(ctx, `
        UPDATE profiles SET dob=$1, gender=$2, address=$3, occupation=$4, updated_at=NOW()
        WHERE user_id=$5
    `, p.DOB, p.Gender, p.Address, p.Occupation, p.UserID)
	return err
}
