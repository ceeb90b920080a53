package services

import (
	"context"
	"time"

	"github.com/InternPulse/property-hive-backend/internal/config"
	"github.com/InternPulse/property-hive-backend/internal/dtos"
	"github.com/InternPulse/property-hive-backend/internal/models"
	"github.com/InternPulse/property-hive-backend/internal/repositories"
	"github.com/InternPulse/property-hive-backend/internal/utils"
)

// ---------------------------------------------------------------------
// AuthService interface
// ---------------------------------------------------------------------

type AuthService interface {
	// RegisterCompany creates an inactive company account and emails a
	// verification code to the given address.
	RegisterCompany(ctx context.Context, req *dtos.RegisterCompanyRequest) (*models.User, error)

	// RegisterCustomer creates an inactive individual account and emails
	// a verification code to the given address.
	RegisterCustomer(ctx context.Context, req *dtos.RegisterCustomerRequest) (*models.User, error)

	// Login verifies credentials for an active account and issues an
	// access/refresh token pair.
	Login(ctx context.Context, email, password, clientIP string) (*dtos.LoginResponse, error)

	// SendVerificationEmail issues a fresh code to an unverified account,
	// replacing any code already outstanding.
	SendVerificationEmail(ctx context.Context, email string) error

	// VerifyEmail checks the submitted code and activates the account.
	VerifyEmail(ctx context.Context, email, code string) error
}

type authService struct {
	cfg        *config.Config
	users      repositories.UserRepository
	codes      repositories.EmailVerificationRepository
	mailer     MailerService
	jwtService JWTService
}

func NewAuthService(
	cfg *config.Config,
	users repositories.UserRepository,
	codes repositories.EmailVerificationRepository,
	mailer MailerService,
	jwtService JWTService,
) AuthService {
	return &authService{
		cfg:        cfg,
		users:      users,
		codes:      codes,
		mailer:     mailer,
		jwtService: jwtService,
	}
}

// ---------------------------------------------------------------------
// Registration
// ---------------------------------------------------------------------

func (s *authService) RegisterCompany(ctx context.Context, req *dtos.RegisterCompanyRequest) (*models.User, error) {
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := models.NewCompanyUser(req.Email, hash, req.FirstName, req.LastName, req.BusinessName)
	if req.PhoneNumber != "" {
		user.PhoneNumber = &req.PhoneNumber
	}

	return s.createAndNotify(ctx, user)
}

func (s *authService) RegisterCustomer(ctx context.Context, req *dtos.RegisterCustomerRequest) (*models.User, error) {
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := models.NewIndividualUser(req.Email, hash, req.FirstName, req.LastName)
	if req.PhoneNumber != "" {
		user.PhoneNumber = &req.PhoneNumber
	}

	return s.createAndNotify(ctx, user)
}

func (s *authService) createAndNotify(ctx context.Context, user *models.User) (*models.User, error) {
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	if err := s.issueCode(ctx, user); err != nil {
		// The account exists either way; the code can be re-requested.
		utils.Logger.WithError(err).WithField("email", user.Email).
			Error("failed to send verification code after registration")
	}

	return user, nil
}

func (s *authService) issueCode(ctx context.Context, user *models.User) error {
	code, err := generateVerificationCode(config.VerificationCodeLength)
	if err != nil {
		return err
	}

	expiresAt := time.Now().Add(config.VerificationCodeExpiry)
	if err := s.codes.CreateCode(ctx, user.ID, user.Email, code, expiresAt); err != nil {
		return err
	}

	return s.mailer.SendVerificationCode(user.Email, code)
}

// ---------------------------------------------------------------------
// Login
// ---------------------------------------------------------------------

func (s *authService) Login(ctx context.Context, email, password, clientIP string) (*dtos.LoginResponse, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, utils.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, utils.ErrAccountInactive
	}

	accessToken, err := s.jwtService.GenerateAccessToken(ctx, user.ID, clientIP, s.cfg.AccessTokenExpiry)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.jwtService.GenerateRefreshToken(ctx, user.ID, clientIP, s.cfg.RefreshTokenExpiry)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := s.users.SetLastLogin(ctx, user.ID, now); err != nil {
		utils.Logger.WithError(err).WithField("user_id", user.ID).
			Warn("failed to stamp last login")
	}
	user.LastLogin = &now

	return &dtos.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken.Token,
		User:         user,
	}, nil
}

// ---------------------------------------------------------------------
// Email verification
// ---------------------------------------------------------------------

func (s *authService) SendVerificationEmail(ctx context.Context, email string) error {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return utils.ErrNotFound
	}
	if user.IsActive {
		return utils.ErrAlreadyVerified
	}

	// Replace any outstanding code so only the latest one redeems.
	if existing, err := s.codes.GetCode(ctx, email); err == nil && existing != nil {
		if err := s.codes.DeleteCode(ctx, existing.ID); err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	return s.issueCode(ctx, user)
}

func (s *authService) VerifyEmail(ctx context.Context, email, code string) error {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return utils.ErrNotFound
	}
	if user.IsActive {
		return utils.ErrAlreadyVerified
	}

	stored, err := s.codes.GetCode(ctx, email)
	if err != nil {
		return err
	}
	// A code is dead the instant its expiry is reached.
	if stored == nil || !time.Now().Before(stored.ExpiresAt) {
		return utils.ErrCodeMismatch
	}
	if stored.Code != code {
		if err := s.codes.IncrementAttempts(ctx, stored.ID); err != nil {
			utils.Logger.WithError(err).Warn("failed to bump verification attempts")
		}
		return utils.ErrCodeMismatch
	}

	if err := s.users.SetActive(ctx, user.ID); err != nil {
		return err
	}

	// Single use: drop the redeemed code.
	return s.codes.DeleteCode(ctx, stored.ID)
}
