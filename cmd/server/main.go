package main

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	cron "github.com/robfig/cron/v3"
	"github.com/rs/cors"

	"github.com/InternPulse/property-hive-backend/internal/app"
	"github.com/InternPulse/property-hive-backend/internal/config"
	"github.com/InternPulse/property-hive-backend/internal/controllers"
	"github.com/InternPulse/property-hive-backend/internal/middleware"
	"github.com/InternPulse/property-hive-backend/internal/repositories"
	"github.com/InternPulse/property-hive-backend/internal/routes"
	"github.com/InternPulse/property-hive-backend/internal/services"
	"github.com/InternPulse/property-hive-backend/internal/utils"
)

func main() {
	utils.InitLogger(config.AppName)
	cfg := config.LoadConfig()

	application, err := app.NewApp(cfg)
	if err != nil {
		utils.Logger.Fatal("Failed to initialize application:", err)
	}
	defer application.Close()

	//----------------------------------------------------------------------
	// Repositories
	//----------------------------------------------------------------------
	userRepo := repositories.NewUserRepository(application.DB)
	codeRepo := repositories.NewEmailVerificationRepository(application.DB)
	resetRepo := repositories.NewPasswordResetRepository(application.DB)
	refreshRepo := repositories.NewRefreshTokenRepository(application.DB)
	rateLimitRepo := repositories.NewRateLimitRepository(application.DB)

	propertyRepo := repositories.NewPropertyRepository(application.DB)
	assetRepo := repositories.NewPropertyAssetRepository(application.DB)
	ownershipRepo := repositories.NewOwnershipRepository(application.DB)
	ratingRepo := repositories.NewRatingRepository(application.DB)

	transactionRepo := repositories.NewTransactionRepository(application.DB)
	invoiceRepo := repositories.NewInvoiceRepository(application.DB)

	profileRepo := repositories.NewProfileRepository(application.DB)
	companyRepo := repositories.NewCompanyRepository(application.DB)
	viewRepo := repositories.NewCompanyViewRepository(application.DB)
	kycRepo := repositories.NewKycDocumentRepository(application.DB)

	//----------------------------------------------------------------------
	// Services
	//----------------------------------------------------------------------
	mailer := services.NewSendGridMailer(cfg)
	jwtService := services.NewJWTService(cfg, refreshRepo)
	rateLimiter := services.NewRateLimiterService(cfg, rateLimitRepo)
	storage := services.NewLocalStorage(cfg)

	authService := services.NewAuthService(cfg, userRepo, codeRepo, mailer, jwtService)
	resetService := services.NewPasswordResetService(cfg, userRepo, resetRepo, rateLimiter, mailer, refreshRepo)
	userService := services.NewUserService(userRepo, profileRepo, kycRepo)

	transactionService := services.NewTransactionService(transactionRepo, invoiceRepo)
	propertyService := services.NewPropertyService(propertyRepo, assetRepo, ownershipRepo, ratingRepo, transactionService)
	earningsService := services.NewEarningsService(transactionRepo)

	companyService := services.NewCompanyService(userRepo, companyRepo)
	dashboardService := services.NewDashboardService(companyRepo, viewRepo, propertyRepo)

	cleanupService := services.NewCleanupService(codeRepo, resetRepo, refreshRepo, rateLimitRepo)

	//----------------------------------------------------------------------
	// Controllers
	//----------------------------------------------------------------------
	authController := controllers.NewAuthController(authService, resetService, jwtService, cfg)
	userController := controllers.NewUserController(userService, storage)
	propertyController := controllers.NewPropertyController(propertyService, storage)
	transactionController := controllers.NewTransactionController(transactionService, earningsService)
	companyController := controllers.NewCompanyController(companyService, dashboardService, propertyService, storage)
	healthController := controllers.NewHealthController(application)

	//----------------------------------------------------------------------
	// Router & Endpoints
	//----------------------------------------------------------------------
	router := mux.NewRouter()

	router.HandleFunc(routes.Health, healthController.HealthCheckHandler).Methods("GET")

	v1 := router.PathPrefix(routes.APIPrefix + routes.V1Prefix).Subrouter()

	// Public auth endpoints
	v1.HandleFunc(routes.RegisterCompany, authController.RegisterCompany).Methods("POST")
	v1.HandleFunc(routes.RegisterCustomer, authController.RegisterCustomer).Methods("POST")
	v1.HandleFunc(routes.Login, authController.Login).Methods("POST")
	v1.HandleFunc(routes.RefreshToken, authController.RefreshToken).Methods("POST")
	v1.HandleFunc(routes.SendVerifyEmail, authController.SendVerificationEmail).Methods("POST")
	v1.HandleFunc(routes.VerifyEmail, authController.VerifyEmail).Methods("POST")
	v1.HandleFunc(routes.ForgotPassword, authController.ForgotPassword).Methods("POST")
	v1.HandleFunc(routes.ResetPassword, authController.ResetPassword).Methods("POST")

	// Public browsing
	v1.HandleFunc(routes.Properties, propertyController.List).Methods("GET")
	v1.HandleFunc(routes.PropertyByID, propertyController.Get).Methods("GET")
	v1.HandleFunc(routes.PropertyRatings, propertyController.ListRatings).Methods("GET")
	// Optional auth so owner visits can be told apart from real views.
	v1.Handle(routes.CompanyByID,
		middleware.OptionalAuthMiddleware(cfg.SecretKey)(http.HandlerFunc(companyController.PublicView))).Methods("GET")

	// Protected endpoints
	protected := v1.NewRoute().Subrouter()
	protected.Use(middleware.AuthMiddleware(cfg.SecretKey))

	protected.HandleFunc(routes.Logout, authController.Logout).Methods("POST")

	protected.HandleFunc(routes.Me, userController.GetMe).Methods("GET")
	protected.HandleFunc(routes.Me, userController.UpdateMe).Methods("PATCH")
	protected.HandleFunc(routes.MyAvatar, userController.UploadAvatar).Methods("POST")
	protected.HandleFunc(routes.MyProfile, userController.CreateProfile).Methods("POST")
	protected.HandleFunc(routes.MyProfile, userController.UpdateProfile).Methods("PATCH")
	protected.HandleFunc(routes.MyKycDocuments, userController.UploadKycDocument).Methods("POST")
	protected.HandleFunc(routes.MyKycDocuments, userController.ListKycDocuments).Methods("GET")

	protected.HandleFunc(routes.Properties, propertyController.Create).Methods("POST")
	protected.HandleFunc(routes.MyProperties, propertyController.ListMine).Methods("GET")
	protected.HandleFunc(routes.PropertyByID, propertyController.Update).Methods("PATCH")
	protected.HandleFunc(routes.PropertyByID, propertyController.Delete).Methods("DELETE")
	protected.HandleFunc(routes.PropertyImages, propertyController.UploadImage).Methods("POST")
	protected.HandleFunc(routes.PropertyDocuments, propertyController.UploadDocument).Methods("POST")
	protected.HandleFunc(routes.PropertyPurchase, propertyController.Purchase).Methods("POST")
	protected.HandleFunc(routes.PropertyRatings, propertyController.Rate).Methods("POST")
	protected.HandleFunc(routes.MyPurchases, propertyController.ListPurchases).Methods("GET")
	protected.HandleFunc(routes.MySales, propertyController.ListSales).Methods("GET")

	protected.HandleFunc(routes.Transactions, transactionController.Create).Methods("POST")
	protected.HandleFunc(routes.TransactionByID, transactionController.Get).Methods("GET")
	protected.HandleFunc(routes.InvoiceByID, transactionController.GetInvoice).Methods("GET")
	protected.HandleFunc(routes.TransactionByID, transactionController.Update).Methods("PATCH")
	protected.HandleFunc(routes.MyTransactions, transactionController.ListMine).Methods("GET")
	protected.HandleFunc(routes.EarningsSummary, transactionController.Earnings).Methods("GET")

	protected.HandleFunc(routes.Companies, companyController.Create).Methods("POST")
	protected.HandleFunc(routes.MyCompany, companyController.GetMine).Methods("GET")
	protected.HandleFunc(routes.MyCompany, companyController.Update).Methods("PATCH")
	protected.HandleFunc(routes.MyCompanyLogo, companyController.UploadLogo).Methods("POST")
	protected.HandleFunc(routes.MyCompanyBanner, companyController.UploadBanner).Methods("POST")
	protected.HandleFunc(routes.CompanyCustomURL, companyController.GenerateCustomURL).Methods("POST")
	protected.HandleFunc(routes.CompanyDashboard, companyController.Dashboard).Methods("GET")

	// Admin endpoints
	admin := v1.NewRoute().Subrouter()
	admin.Use(middleware.AdminAuthMiddleware(cfg.SecretKey, userRepo))
	admin.HandleFunc(routes.Transactions, transactionController.ListAll).Methods("GET")
	admin.HandleFunc(routes.TransactionByID, transactionController.Delete).Methods("DELETE")

	//----------------------------------------------------------------------
	// Daily cleanup via cron
	//----------------------------------------------------------------------
	c := cron.New()
	if _, schErr := c.AddFunc("0 3 * * *", func() {
		if e := cleanupService.CleanupDaily(context.Background()); e != nil {
			utils.Logger.WithError(e).Error("Scheduled expired-row cleanup failed")
		}
	}); schErr != nil {
		utils.Logger.WithError(schErr).Fatal("Failed to schedule expired-row cleanup job")
	}
	c.Start()

	co := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	utils.Logger.Infof("Starting %s on port: %s", cfg.AppName, cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, co.Handler(router)); err != nil {
		utils.Logger.Fatal("Failed to start server:", err)
	}
}
