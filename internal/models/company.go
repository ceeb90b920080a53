package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the one-per-user extension record holding personal details.
type Profile struct {
	ID         uuid.UUID  `json:"id"`
	UserID     uuid.UUID  `json:"user_id"`
	DOB        *time.Time `json:"dob,omitempty"`
	Gender     *string    `json:"gender,omitempty"`
	Address    *string    `json:"address,omitempty"`
	Occupation *string    `json:"occupation,omitempty"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// Company is the one-per-user public company record. CustomURL is set
// once at onboarding and never regenerated.
type Company struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Name        string    `json:"name"`
	LogoPath    *string   `json:"logo_path,omitempty"`
	BannerPath  *string   `json:"banner_path,omitempty"`
	Address     *string   `json:"address,omitempty"`
	Website     *string   `json:"website,omitempty"`
	Description *string   `json:"description,omitempty"`
	CustomURL   *string   `json:"custom_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CompanyDailyView holds one row per (company, calendar day), incremented
// atomically on every profile view.
type CompanyDailyView struct {
	ID        uuid.UUID `json:"id"`
	CompanyID uuid.UUID `json:"company_id"`
	ViewDate  time.Time `json:"view_date"`
	Views     int64     `json:"views"`
}
