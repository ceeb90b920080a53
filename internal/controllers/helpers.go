package controllers

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/InternPulse/property-hive-backend/internal/middleware"
	"github.com/InternPulse/property-hive-backend/internal/utils"
)

var validate = validator.New()

// decodeAndValidate parses the JSON body into dst and runs struct
// validation, writing the error response itself on failure.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid payload", nil, err,
		)
		return false
	}
	if err := validate.Struct(dst); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation failed", fieldErrors(err), err,
		)
		return false
	}
	return true
}

func fieldErrors(err error) map[string]string {
	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return nil
	}
	out := make(map[string]string, len(vErrs))
	for _, fe := range vErrs {
		out[strings.ToLower(fe.Field())] = fe.Tag()
	}
	return out
}

// userIDFromContext reads the authenticated user set by the auth middleware.
func userIDFromContext(r *http.Request) (uuid.UUID, bool) {
	id, ok := r.Context().Value(middleware.ContextKeyUserID).(uuid.UUID)
	return id, ok
}

// mustUserID writes a 401 when no authenticated user is on the request.
func mustUserID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, ok := userIDFromContext(r)
	if !ok {
		utils.RespondErrorWithCode(
			w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Authentication required", nil,
		)
	}
	return id, ok
}

// pathUUID parses a UUID path variable, writing the error response on failure.
func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	raw := mux.Vars(r)[name]
	id, err := uuid.Parse(raw)
	if err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid "+name, nil, err,
		)
		return uuid.Nil, false
	}
	return id, true
}

// clientIP prefers the first X-Forwarded-For hop, falling back to RemoteAddr.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if ip, _, ok := strings.Cut(fwd, ","); ok {
			return strings.TrimSpace(ip)
		}
		return strings.TrimSpace(fwd)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// respondServiceError maps service-layer errors onto the error envelope.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, utils.ErrNotFound):
		utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "Resource not found", nil)
	case errors.Is(err, utils.ErrInvalidCredentials):
		utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeInvalidCredentials, "Invalid email or password", nil)
	case errors.Is(err, utils.ErrAccountInactive):
		utils.RespondErrorWithCode(w, http.StatusForbidden, utils.ErrCodeUnauthorized, "Account is not verified", nil)
	case errors.Is(err, utils.ErrEmailExists):
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeConflict, "Email already registered", nil)
	case errors.Is(err, utils.ErrPhoneExists):
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeConflict, "Phone number already registered", nil)
	case errors.Is(err, utils.ErrBusinessNameTaken):
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeConflict, "Business name already taken", nil)
	case errors.Is(err, utils.ErrAlreadyVerified):
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Account is already verified", nil)
	case errors.Is(err, utils.ErrCodeMismatch):
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Invalid or expired verification code", nil)
	case errors.Is(err, utils.ErrInvalidResetToken):
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidToken, "Invalid token", nil)
	case errors.Is(err, utils.ErrCompanyExists):
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeConflict, "Company already exists for this account", nil)
	case errors.Is(err, utils.ErrNotCompany):
		utils.RespondErrorWithCode(w, http.StatusForbidden, utils.ErrCodeUnauthorized, "This action requires a company account", nil)
	case errors.Is(err, utils.ErrCustomURLTaken):
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeConflict, "Custom URL already taken", nil)
	case errors.Is(err, utils.ErrProfileExists):
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeConflict, "Profile already exists", nil)
	case errors.Is(err, utils.ErrExternalServiceFailure):
		utils.RespondErrorWithCode(w, http.StatusFailedDependency, utils.ErrCodeEmailSendFailure, "Failed to send email due to an external service issue", nil, err)
	default:
		utils.HandleAppError(w, err)
	}
}
