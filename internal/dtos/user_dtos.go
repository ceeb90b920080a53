package dtos

import (
	"github.com/InternPulse/property-hive-backend/internal/models"
)

type UpdateUserRequest struct {
	FirstName   string `json:"fname,omitempty"`
	LastName    string `json:"lname,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty" validate:"omitempty,e164"`
}

type CreateProfileRequest struct {
	DOB        string `json:"dob,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Gender     string `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`
	Address    string `json:"address,omitempty"`
	Occupation string `json:"occupation,omitempty"`
}

type UpdateProfileRequest struct {
	DOB        string `json:"dob,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Gender     string `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`
	Address    string `json:"address,omitempty"`
	Occupation string `json:"occupation,omitempty"`
}

type UserDetailResponse struct {
	User    *models.User    `json:"user"`
	Profile *models.Profile `json:"profile,omitempty"`
}
