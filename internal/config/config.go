package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/InternPulse/property-hive-backend/internal/utils"
)

const AppName = "property-hive-api"

// Time-based and policy defaults.
const (
	VerificationCodeLength = 5
	VerificationCodeExpiry = 10 * time.Minute

	ResetTokenExpiry = 1 * time.Hour

	DefaultAccessTokenExpiry  = 15 * time.Minute
	DefaultRefreshTokenExpiry = 7 * 24 * time.Hour

	ForgotPasswordLimitPerHour = 5
	RateLimitWindow            = 1 * time.Hour

	CustomURLDomain = "propertyhive.com"
)

// Config holds all application configuration.
type Config struct {
	AppName string
	AppPort string
	AppURL  string
	Debug   bool

	DBUrl     string
	SecretKey []byte

	SendGridAPIKey   string
	FromEmail        string
	SandboxMode      bool
	OrganizationName string

	UploadDir string

	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration

	ForgotPasswordLimitPerHour int
	RateLimitWindow            time.Duration

	CORSAllowedOrigins []string
}

// LoadConfig reads the environment (optionally seeded from a .env file)
// and fails fast on anything required.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		utils.Logger.Debug("No .env file found; relying on process environment")
	}

	utils.Logger.Info("Loading config for app: ", AppName)

	appPort := os.Getenv("APP_PORT")
	if appPort == "" {
		utils.Logger.Fatal("APP_PORT env var is missing")
	}
	appURL := os.Getenv("APP_URL")
	if appURL == "" {
		utils.Logger.Fatal("APP_URL env var is missing")
	}
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		utils.Logger.Fatal("DATABASE_URL env var is missing")
	}
	secretKey := os.Getenv("SECRET_KEY")
	if secretKey == "" {
		utils.Logger.Fatal("SECRET_KEY env var is missing")
	}
	sendgridKey := os.Getenv("SENDGRID_API_KEY")
	if sendgridKey == "" {
		utils.Logger.Fatal("SENDGRID_API_KEY env var is missing")
	}
	fromEmail := os.Getenv("FROM_EMAIL")
	if fromEmail == "" {
		utils.Logger.Fatal("FROM_EMAIL env var is missing")
	}

	debug, _ := strconv.ParseBool(os.Getenv("DEBUG"))
	sandbox, _ := strconv.ParseBool(os.Getenv("SENDGRID_SANDBOX_MODE"))

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}

	orgName := os.Getenv("ORGANIZATION_NAME")
	if orgName == "" {
		orgName = "Property Hive"
	}

	allowedOrigins := []string{appURL}
	if extra := os.Getenv("CORS_ALLOWED_ORIGINS"); extra != "" {
		for _, o := range strings.Split(extra, ",") {
			if o = strings.TrimSpace(o); o != "" {
				allowedOrigins = append(allowedOrigins, o)
			}
		}
	}

	utils.Logger.Infof("Loaded config for %s (debug=%t)", AppName, debug)

	return &Config{
		AppName:                    AppName,
		AppPort:                    appPort,
		AppURL:                     appURL,
		Debug:                      debug,
		DBUrl:                      dbURL,
		SecretKey:                  []byte(secretKey),
		SendGridAPIKey:             sendgridKey,
		FromEmail:                  fromEmail,
		SandboxMode:                sandbox,
		OrganizationName:           orgName,
		UploadDir:                  uploadDir,
		AccessTokenExpiry:          DefaultAccessTokenExpiry,
		RefreshTokenExpiry:         DefaultRefreshTokenExpiry,
		ForgotPasswordLimitPerHour: ForgotPasswordLimitPerHour,
		RateLimitWindow:            RateLimitWindow,
		CORSAllowedOrigins:         allowedOrigins,
	}
}
