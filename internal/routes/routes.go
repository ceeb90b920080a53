package routes

const (
	Health = "/health"

	APIPrefix = "/api"
	V1Prefix  = "/v1"

	// Auth
	RegisterCompany  = "/auth/register/company"
	RegisterCustomer = "/auth/register/customer"
	Login            = "/auth/login"
	RefreshToken     = "/auth/refresh_token"
	Logout           = "/auth/logout"
	SendVerifyEmail  = "/auth/email/send_code"
	VerifyEmail      = "/auth/email/verify"
	ForgotPassword   = "/auth/forgot_password"
	ResetPassword    = "/auth/reset_password"

	// Users
	Me              = "/users/me"
	MyAvatar        = "/users/me/avatar"
	MyProfile       = "/users/me/profile"
	MyKycDocuments  = "/users/me/kyc"
	MyPurchases     = "/users/me/purchases"
	MySales         = "/users/me/sales"
	MyProperties    = "/users/me/properties"
	MyTransactions  = "/users/me/transactions"
	EarningsSummary = "/users/me/earnings"

	// Properties
	Properties        = "/properties"
	PropertyByID      = "/properties/{id}"
	PropertyImages    = "/properties/{id}/images"
	PropertyDocuments = "/properties/{id}/documents"
	PropertyPurchase  = "/properties/{id}/purchase"
	PropertyRatings   = "/properties/{id}/ratings"

	// Transactions
	Transactions    = "/transactions"
	TransactionByID = "/transactions/{id}"
	InvoiceByID     = "/invoices/{id}"

	// Companies
	Companies        = "/companies"
	MyCompany        = "/companies/me"
	MyCompanyLogo    = "/companies/me/logo"
	MyCompanyBanner  = "/companies/me/banner"
	CompanyCustomURL = "/companies/me/custom_url"
	CompanyDashboard = "/companies/me/dashboard"
	// The UUID pattern keeps the registered-first public route from
	// swallowing /companies/me.
	CompanyByID = "/companies/{id:[0-9a-fA-F-]{36}}"
)
