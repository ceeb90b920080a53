package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/InternPulse/property-hive-backend/internal/dtos"
	"github.com/InternPulse/property-hive-backend/internal/models"
	"github.com/InternPulse/property-hive-backend/internal/services"
	"github.com/InternPulse/property-hive-backend/internal/utils"
)

// Scripted service fakes; each field overrides one call's outcome.

type fakeAuthService struct {
	registerUser *models.User
	registerErr  error
	loginResp    *dtos.LoginResponse
	loginErr     error
	verifyErr    error
	sendErr      error
}

func (f *fakeAuthService) RegisterCompany(_ context.Context, _ *dtos.RegisterCompanyRequest) (*models.User, error) {
	return f.registerUser, f.registerErr
}

func (f *fakeAuthService) RegisterCustomer(_ context.Context, _ *dtos.RegisterCustomerRequest) (*models.User, error) {
	return f.registerUser, f.registerErr
}

func (f *fakeAuthService) Login(_ context.Context, _, _, _ string) (*dtos.LoginResponse, error) {
	return f.loginResp, f.loginErr
}

func (f *fakeAuthService) SendVerificationEmail(_ context.Context, _ string) error { return f.sendErr }

func (f *fakeAuthService) VerifyEmail(_ context.Context, _, _ string) error { return f.verifyErr }

var _ services.AuthService = (*fakeAuthService)(nil)

type fakeResetService struct {
	forgotErr error
	resetErr  error
}

func (f *fakeResetService) ForgotPassword(_ context.Context, _, _ string) error { return f.forgotErr }
func (f *fakeResetService) ResetPassword(_ context.Context, _, _ string) error  { return f.resetErr }

var _ services.PasswordResetService = (*fakeResetService)(nil)

func newAuthController(auth services.AuthService, reset services.PasswordResetService) *AuthController {
	return NewAuthController(auth, reset, nil, nil)
}

func postJSON(t *testing.T, handler http.HandlerFunc, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestVerifyEmailSuccessEnvelope(t *testing.T) {
	c := newAuthController(&fakeAuthService{}, &fakeResetService{})

	rec := postJSON(t, c.VerifyEmail, dtos.VerifyEmailRequest{Email: "a@b.com", Code: "12345"})
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeEnvelope(t, rec)
	require.EqualValues(t, http.StatusOK, body["statusCode"])
	require.Contains(t, body["message"], "verified")
}

func TestVerifyEmailValidationFailure(t *testing.T) {
	c := newAuthController(&fakeAuthService{}, &fakeResetService{})

	// Code must be exactly five digits.
	rec := postJSON(t, c.VerifyEmail, dtos.VerifyEmailRequest{Email: "a@b.com", Code: "12"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeEnvelope(t, rec)
	require.Equal(t, utils.ErrCodeValidation, body["code"])
	require.NotNil(t, body["errors"])
}

func TestVerifyEmailAlreadyVerified(t *testing.T) {
	c := newAuthController(&fakeAuthService{verifyErr: utils.ErrAlreadyVerified}, &fakeResetService{})

	rec := postJSON(t, c.VerifyEmail, dtos.VerifyEmailRequest{Email: "a@b.com", Code: "12345"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeEnvelope(t, rec)
	require.Contains(t, body["message"], "already verified")
}

func TestVerifyEmailUnknownAccount(t *testing.T) {
	c := newAuthController(&fakeAuthService{verifyErr: utils.ErrNotFound}, &fakeResetService{})

	rec := postJSON(t, c.VerifyEmail, dtos.VerifyEmailRequest{Email: "a@b.com", Code: "12345"})
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRegisterWeakPasswordRejected(t *testing.T) {
	c := newAuthController(&fakeAuthService{}, &fakeResetService{})

	rec := postJSON(t, c.RegisterCustomer, dtos.RegisterCustomerRequest{
		Email:     "a@b.com",
		Password:  "short",
		FirstName: "Ada",
		LastName:  "Obi",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeEnvelope(t, rec)
	require.Equal(t, utils.ErrCodeValidation, body["code"])
}

func TestRegisterDuplicateEmailConflict(t *testing.T) {
	c := newAuthController(&fakeAuthService{registerErr: utils.ErrEmailExists}, &fakeResetService{})

	rec := postJSON(t, c.RegisterCustomer, dtos.RegisterCustomerRequest{
		Email:     "a@b.com",
		Password:  "strongpass1",
		FirstName: "Ada",
		LastName:  "Obi",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeEnvelope(t, rec)
	require.Equal(t, utils.ErrCodeConflict, body["code"])
}

func TestLoginInvalidCredentials(t *testing.T) {
	c := newAuthController(&fakeAuthService{loginErr: utils.ErrInvalidCredentials}, &fakeResetService{})

	rec := postJSON(t, c.Login, dtos.LoginRequest{Email: "a@b.com", Password: "x"})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	body := decodeEnvelope(t, rec)
	require.Equal(t, utils.ErrCodeInvalidCredentials, body["code"])
}

func TestForgotPasswordUnknownEmail(t *testing.T) {
	c := newAuthController(&fakeAuthService{}, &fakeResetService{forgotErr: utils.ErrNotFound})

	rec := postJSON(t, c.ForgotPassword, dtos.ForgotPasswordRequest{Email: "ghost@b.com"})
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestForgotPasswordSuccess(t *testing.T) {
	c := newAuthController(&fakeAuthService{}, &fakeResetService{})

	rec := postJSON(t, c.ForgotPassword, dtos.ForgotPasswordRequest{Email: "ada@b.com"})
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestForgotPasswordRateLimitedEnvelope(t *testing.T) {
	c := newAuthController(&fakeAuthService{}, &fakeResetService{forgotErr: &utils.AppError{
		StatusCode: http.StatusTooManyRequests,
		Code:       utils.ErrCodeRateLimitExceeded,
		Message:    "Too many password reset requests. Try again in 42 minute(s).",
	}})

	rec := postJSON(t, c.ForgotPassword, dtos.ForgotPasswordRequest{Email: "a@b.com"})
	require.Equal(t, http.StatusTooManyRequests, rec.Code)

	body := decodeEnvelope(t, rec)
	require.Equal(t, utils.ErrCodeRateLimitExceeded, body["code"])
}

func TestResetPasswordInvalidTokenGeneric(t *testing.T) {
	c := newAuthController(&fakeAuthService{}, &fakeResetService{resetErr: utils.ErrInvalidResetToken})

	rec := postJSON(t, c.ResetPassword, dtos.ResetPasswordRequest{Token: "bad", NewPassword: "newpass99"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeEnvelope(t, rec)
	require.Equal(t, "Invalid token", body["message"])
}
