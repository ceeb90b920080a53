package utils

import (
	"errors"
	"net/http"
)

// Domain-level errors used by the service layer to provide
// fine-grained failure reasons.
var (
	ErrInvalidEmail      = errors.New("invalid_email")
	ErrEmailExists       = errors.New("email_exists")
	ErrPhoneExists       = errors.New("phone_exists")
	ErrBusinessNameTaken = errors.New("business_name_taken")
	ErrNotFound          = errors.New("not_found")

	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrAccountInactive    = errors.New("account_inactive")

	ErrAlreadyVerified = errors.New("already_verified")
	ErrCodeMismatch    = errors.New("invalid_or_expired_code")

	// Every reset-token failure mode (tamper, expiry, consumed nonce,
	// user mismatch) collapses into this one error so the response
	// leaks nothing about which check failed.
	ErrInvalidResetToken = errors.New("invalid_token")

	ErrCompanyExists  = errors.New("company_exists")
	ErrNotCompany     = errors.New("not_a_company_account")
	ErrCustomURLTaken = errors.New("custom_url_taken")

	ErrProfileExists  = errors.New("profile_exists")
	ErrPropertyUnsold = errors.New("property_not_marked_sold")

	ErrRateLimitExceeded = errors.New("rate_limit_exceeded")

	ErrExternalServiceFailure = errors.New("external_service_failure")
)

// AppError for structured error handling from services to controllers.
type AppError struct {
	StatusCode int
	Code       string
	Message    string
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// HandleAppError centralizes responding to AppErrors.
func HandleAppError(w http.ResponseWriter, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		RespondErrorWithCode(w, appErr.StatusCode, appErr.Code, appErr.Message, nil, appErr.Err)
	} else {
		RespondErrorWithCode(w, http.StatusInternalServerError, ErrCodeInternal, "An unexpected error occurred", nil, err)
	}
}
