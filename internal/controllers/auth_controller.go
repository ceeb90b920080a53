package controllers

import (
	"net/http"

	"github.com/InternPulse/property-hive-backend/internal/config"
	"github.com/InternPulse/property-hive-backend/internal/dtos"
	"github.com/InternPulse/property-hive-backend/internal/services"
	"github.com/InternPulse/property-hive-backend/internal/utils"
)

type AuthController struct {
	authService  services.AuthService
	resetService services.PasswordResetService
	jwtService   services.JWTService
	cfg          *config.Config
}

func NewAuthController(
	authService services.AuthService,
	resetService services.PasswordResetService,
	jwtService services.JWTService,
	cfg *config.Config,
) *AuthController {
	return &AuthController{
		authService:  authService,
		resetService: resetService,
		jwtService:   jwtService,
		cfg:          cfg,
	}
}

// ---------------------------------------------------------------------
// Registration
// ---------------------------------------------------------------------

func (c *AuthController) RegisterCompany(w http.ResponseWriter, r *http.Request) {
	var req dtos.RegisterCompanyRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	if msgs := utils.ValidatePasswordPolicy(req.Password); len(msgs) > 0 {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation, "Password does not meet requirements", msgs,
		)
		return
	}

	user, err := c.authService.RegisterCompany(r.Context(), &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondWithEnvelope(w, http.StatusCreated,
		"Registration successful. Check your email for a verification code.",
		dtos.RegisterResponse{User: user},
	)
}

func (c *AuthController) RegisterCustomer(w http.ResponseWriter, r *http.Request) {
	var req dtos.RegisterCustomerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	if msgs := utils.ValidatePasswordPolicy(req.Password); len(msgs) > 0 {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation, "Password does not meet requirements", msgs,
		)
		return
	}

	user, err := c.authService.RegisterCustomer(r.Context(), &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondWithEnvelope(w, http.StatusCreated,
		"Registration successful. Check your email for a verification code.",
		dtos.RegisterResponse{User: user},
	)
}

// ---------------------------------------------------------------------
// Sessions
// ---------------------------------------------------------------------

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req dtos.LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	resp, err := c.authService.Login(r.Context(), req.Email, req.Password, clientIP(r))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondWithEnvelope(w, http.StatusOK, "Login successful", resp)
}

func (c *AuthController) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req dtos.RefreshTokenRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	access, refresh, err := c.jwtService.RefreshToken(
		r.Context(), req.RefreshToken, clientIP(r), c.cfg.AccessTokenExpiry, c.cfg.RefreshTokenExpiry,
	)
	if err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusUnauthorized, utils.ErrCodeInvalidToken, "Invalid or expired refresh token", nil, err,
		)
		return
	}

	utils.RespondWithEnvelope(w, http.StatusOK, "Token refreshed", dtos.RefreshTokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
	})
}

func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	var req dtos.LogoutRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := c.jwtService.Logout(r.Context(), req.RefreshToken); err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondWithEnvelope(w, http.StatusOK, "Logged out", nil)
}

// ---------------------------------------------------------------------
// Email verification
// ---------------------------------------------------------------------

func (c *AuthController) SendVerificationEmail(w http.ResponseWriter, r *http.Request) {
	var req dtos.SendVerificationEmailRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := c.authService.SendVerificationEmail(r.Context(), req.Email); err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondWithEnvelope(w, http.StatusOK, "Verification code sent", nil)
}

func (c *AuthController) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	var req dtos.VerifyEmailRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := c.authService.VerifyEmail(r.Context(), req.Email, req.Code); err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondWithEnvelope(w, http.StatusOK, "Email verified. You can now log in.", nil)
}

// ---------------------------------------------------------------------
// Password reset
// ---------------------------------------------------------------------

func (c *AuthController) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req dtos.ForgotPasswordRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := c.resetService.ForgotPassword(r.Context(), req.Email, clientIP(r)); err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondWithEnvelope(w, http.StatusOK, "Password reset link sent.", nil)
}

func (c *AuthController) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req dtos.ResetPasswordRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := c.resetService.ResetPassword(r.Context(), req.Token, req.NewPassword); err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondWithEnvelope(w, http.StatusOK, "Password has been reset", nil)
}
