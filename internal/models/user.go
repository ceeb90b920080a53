package models

import (
	"time"

	"github.com/google/uuid"
)

// UserKind distinguishes the three registration variants. Each kind has
// its own constructor below rather than a single constructor with
// mutable defaults.
type UserKind string

const (
	UserKindIndividual UserKind = "individual"
	UserKindCompany    UserKind = "company"
	UserKindAdmin      UserKind = "admin"
)

type User struct {
	ID             uuid.UUID  `json:"id"`
	Email          string     `json:"email"`
	PasswordHash   string     `json:"-"`
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	BusinessName   *string    `json:"business_name,omitempty"`
	PhoneNumber    *string    `json:"phone_number,omitempty"`
	ProfilePicture *string    `json:"profile_picture,omitempty"`
	CustomURL      *string    `json:"custom_url,omitempty"`
	IsCompany      bool       `json:"is_company"`
	IsActive       bool       `json:"is_active"`
	IsStaff        bool       `json:"is_staff"`
	IsSuperuser    bool       `json:"is_superuser"`
	DateJoined     time.Time  `json:"date_joined"`
	LastLogin      *time.Time `json:"last_login,omitempty"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// NewIndividualUser builds a customer account. It starts inactive and
// becomes active only after email verification.
func NewIndividualUser(email, passwordHash, firstName, lastName string) *User {
	return &User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: passwordHash,
		FirstName:    firstName,
		LastName:     lastName,
	}
}

// NewCompanyUser builds a company account. Like individual accounts it
// starts inactive until the verification code is confirmed.
func NewCompanyUser(email, passwordHash, firstName, lastName, businessName string) *User {
	return &User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: passwordHash,
		FirstName:    firstName,
		LastName:     lastName,
		BusinessName: &businessName,
		IsCompany:    true,
	}
}

// NewAdminUser builds a staff/superuser account. Admin-created accounts
// skip email verification and are active immediately.
func NewAdminUser(email, passwordHash string) *User {
	return &User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: passwordHash,
		IsActive:     true,
		IsStaff:      true,
		IsSuperuser:  true,
	}
}
