package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/InternPulse/property-hive-backend/internal/models"
	"github.com/InternPulse/property-hive-backend/internal/utils"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

type UserRepository interface {
	Create(ctx context.Context, u *models.User) error

	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	Update(ctx context.Context, u *models.User) error
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	SetActive(ctx context.Context, id uuid.UUID) error
	SetLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
	SetCustomURL(ctx context.Context, id uuid.UUID, url string) error

	ListAll(ctx context.Context) ([]*models.User, error)
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type userRepo struct {
	db DB
}

func NewUserRepository(db DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, u *models.User) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO users (
            id, email, password_hash, first_name, last_name,
            business_name, phone_number, profile_picture, custom_url,
            is_company, is_active, is_staff, is_superuser,
            date_joined, updated_at
        ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13, NOW(), NOW())
    `,
		u.ID,
		u.Email,
		u.PasswordHash,
		u.FirstName,
		u.LastName,
		u.BusinessName,
		u.PhoneNumber,
		u.ProfilePicture,
		u.CustomURL,
		u.IsCompany,
		u.IsActive,
		u.IsStaff,
		u.IsSuperuser,
	)
	if err != nil {
		switch {
		case isUniqueViolation(err, "users_email_key"):
			return utils.ErrEmailExists
		case isUniqueViolation(err, "users_phone_number_key"):
			return utils.ErrPhoneExists
		case isUniqueViolation(err, "users_business_name_key"):
			return utils.ErrBusinessNameTaken
		}
		return err
	}
	return nil
}

func (r *userRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return scanUser(r.db.QueryRow(ctx, baseSelectUser()+" WHERE id=$1", id))
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return scanUser(r.db.QueryRow(ctx, baseSelectUser()+" WHERE email=$1", email))
}

func (r *userRepo) Update(ctx context.Context, u *models.User) error {
	_, err := r.db.Exec(ctx, `
        UPDATE users SET
            first_name=$1, last_name=$2, business_name=$3, phone_number=$4,
            profile_picture=$5, updated_at=NOW()
        WHERE id=$6
    `,
		u.FirstName, u.LastName, u.BusinessName, u.PhoneNumber,
		u.ProfilePicture, u.ID,
	)
	if err != nil && isUniqueViolation(err, "users_phone_number_key") {
		return utils.ErrPhoneExists
	}
	return err
}

func (r *userRepo) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	_, err := r.db.Exec(ctx,
		`UPDATE users SET password_hash=$1, updated_at=NOW() WHERE id=$2`,
		passwordHash, id,
	)
	return err
}

func (r *userRepo) SetActive(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		`UPDATE users SET is_active=TRUE, updated_at=NOW() WHERE id=$1`, id)
	return err
}

func (r *userRepo) SetLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	_, err := r.db.Exec(ctx,
		`UPDATE users SET last_login=$1 WHERE id=$2`, at, id)
	return err
}

func (r *userRepo) SetCustomURL(ctx context.Context, id uuid.UUID, url string) error {
	_, err := r.db.Exec(ctx,
		`UPDATE users SET custom_url=$1, updated_at=NOW() WHERE id=$2`, url, id)
	if isUniqueViolation(err, "users_custom_url_key") {
		return utils.ErrCustomURLTaken
	}
	return err
}

func (r *userRepo) ListAll(ctx context.Context) ([]*models.User, error) {
	rows, err := r.db.Query(ctx, baseSelectUser()+" ORDER BY date_joined")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func baseSelectUser() string {
	return `
        SELECT
            id, email, password_hash, first_name, last_name,
            business_name, phone_number, profile_picture, custom_url,
            is_company, is_active, is_staff, is_superuser,
            date_joined, last_login, updated_at
        FROM users
    `
}

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.FirstName,
		&u.LastName,
		&u.BusinessName,
		&u.PhoneNumber,
		&u.ProfilePicture,
		&u.CustomURL,
		&u.IsCompany,
		&u.IsActive,
		&u.IsStaff,
		&u.IsSuperuser,
		&u.DateJoined,
		&u.LastLogin,
		&u.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}
