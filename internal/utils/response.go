package utils

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
)

const (
	ErrCodeInvalidPayload     = "invalid_payload"
	ErrCodeValidation         = "validation_error"
	ErrCodeUnauthorized       = "unauthorized"
	ErrCodeTokenExpired       = "token_expired"
	ErrCodeInvalidCredentials = "invalid_credentials"
	ErrCodeInternal           = "internal_server_error"
	ErrCodeNotFound           = "not_found"
	ErrCodeConflict           = "conflict"
	ErrCodeRateLimitExceeded  = "rate_limit_exceeded"
	ErrCodeInvalidToken       = "invalid_token"
	ErrCodeEmailSendFailure   = "email_send_failure"
)

// Envelope is the success payload shape shared by every endpoint:
// {statusCode, message, data}.
type Envelope struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Data       any    `json:"data,omitempty"`
}

// ErrorEnvelope mirrors Envelope for failures, carrying a machine-readable
// code and optional field-level errors.
type ErrorEnvelope struct {
	StatusCode int    `json:"statusCode"`
	Code       string `json:"code"`
	Message    string `json:"message"`
	Errors     any    `json:"errors,omitempty"`
}

// RespondWithEnvelope writes the standard success envelope.
func RespondWithEnvelope(w http.ResponseWriter, status int, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Envelope{
		StatusCode: status,
		Message:    message,
		Data:       data,
	})
}

// RespondErrorWithCode builds a JSON error envelope with a standard code
// and public message. The optional `fieldErrors` is included if non-nil.
// Any devErrs are logged, never sent to the client.
func RespondErrorWithCode(
	w http.ResponseWriter,
	status int,
	errorCode string,
	publicMessage string,
	fieldErrors any,
	devErrs ...error,
) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	errBody := ErrorEnvelope{
		StatusCode: status,
		Code:       errorCode,
		Message:    publicMessage,
	}
	if fieldErrors != nil {
		errBody.Errors = fieldErrors
	}
	_ = json.NewEncoder(w).Encode(errBody)

	if len(devErrs) > 0 && devErrs[0] != nil {
		Logger.WithFields(logrus.Fields{
			"status": status,
			"error":  devErrs[0].Error(),
		}).Error(publicMessage)
	} else {
		Logger.WithFields(logrus.Fields{
			"status": status,
		}).Error(publicMessage)
	}
}

// RespondWithJSON for cases that need a raw payload outside the envelope.
func RespondWithJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
