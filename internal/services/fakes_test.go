package services

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/InternPulse/property-hive-backend/internal/models"
	"github.com/InternPulse/property-hive-backend/internal/repositories"
	"github.com/InternPulse/property-hive-backend/internal/utils"
)

// In-memory repository fakes shared by the service tests.

var (
	_ repositories.UserRepository              = (*fakeUserRepo)(nil)
	_ repositories.EmailVerificationRepository = (*fakeCodeRepo)(nil)
	_ repositories.PasswordResetRepository     = (*fakeResetRepo)(nil)
	_ repositories.RefreshTokenRepository      = (*fakeRefreshRepo)(nil)
	_ repositories.RateLimitRepository         = (*fakeRateLimitRepo)(nil)
	_ repositories.CompanyRepository           = (*fakeCompanyRepo)(nil)
	_ repositories.CompanyViewRepository       = (*fakeViewRepo)(nil)
	_ repositories.PropertyRepository          = (*fakePropertyRepo)(nil)
	_ repositories.TransactionRepository       = (*fakeTransactionRepo)(nil)
	_ repositories.InvoiceRepository           = (*fakeInvoiceRepo)(nil)
	_ MailerService                            = (*fakeMailer)(nil)
)

type fakeUserRepo struct {
	users     map[uuid.UUID]*models.User
	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*models.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, u *models.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(_ context.Context, u *models.User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) UpdatePassword(_ context.Context, id uuid.UUID, hash string) error {
	if u, ok := f.users[id]; ok {
		u.PasswordHash = hash
	}
	return nil
}

func (f *fakeUserRepo) SetActive(_ context.Context, id uuid.UUID) error {
	if u, ok := f.users[id]; ok {
		u.IsActive = true
	}
	return nil
}

func (f *fakeUserRepo) SetLastLogin(_ context.Context, id uuid.UUID, at time.Time) error {
	if u, ok := f.users[id]; ok {
		u.LastLogin = &at
	}
	return nil
}

func (f *fakeUserRepo) SetCustomURL(_ context.Context, id uuid.UUID, url string) error {
	for _, u := range f.users {
		if u.ID != id && u.CustomURL != nil && *u.CustomURL == url {
			return utils.ErrCustomURLTaken
		}
	}
	if u, ok := f.users[id]; ok {
		u.CustomURL = &url
	}
	return nil
}

func (f *fakeUserRepo) ListAll(_ context.Context) ([]*models.User, error) {
	out := make([]*models.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

// ---------------------------------------------------------------------

type fakeCodeRepo struct {
	codes map[string]*models.EmailVerificationCode
}

func newFakeCodeRepo() *fakeCodeRepo {
	return &fakeCodeRepo{codes: make(map[string]*models.EmailVerificationCode)}
}

func (f *fakeCodeRepo) CreateCode(_ context.Context, userID uuid.UUID, email, code string, expiresAt time.Time) error {
	f.codes[email] = &models.EmailVerificationCode{
		ID:        uuid.New(),
		UserID:    userID,
		Email:     email,
		Code:      code,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	}
	return nil
}

func (f *fakeCodeRepo) GetCode(_ context.Context, email string) (*models.EmailVerificationCode, error) {
	return f.codes[email], nil
}

func (f *fakeCodeRepo) DeleteCode(_ context.Context, id uuid.UUID) error {
	for email, c := range f.codes {
		if c.ID == id {
			delete(f.codes, email)
		}
	}
	return nil
}

func (f *fakeCodeRepo) IncrementAttempts(_ context.Context, id uuid.UUID) error {
	for _, c := range f.codes {
		if c.ID == id {
			c.Attempts++
		}
	}
	return nil
}

func (f *fakeCodeRepo) CleanupExpired(_ context.Context) error { return nil }

// ---------------------------------------------------------------------

type fakeResetRepo struct {
	tokens map[uuid.UUID]*models.PasswordResetToken
}

func newFakeResetRepo() *fakeResetRepo {
	return &fakeResetRepo{tokens: make(map[uuid.UUID]*models.PasswordResetToken)}
}

func (f *fakeResetRepo) Create(_ context.Context, userID uuid.UUID, nonce string, expiresAt time.Time) error {
	id := uuid.New()
	f.tokens[id] = &models.PasswordResetToken{
		ID:        id,
		UserID:    userID,
		Nonce:     nonce,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	}
	return nil
}

func (f *fakeResetRepo) Get(_ context.Context, userID uuid.UUID, nonce string) (*models.PasswordResetToken, error) {
	for _, t := range f.tokens {
		if t.UserID == userID && t.Nonce == nonce {
			return t, nil
		}
	}
	return nil, nil
}

func (f *fakeResetRepo) Consume(_ context.Context, id uuid.UUID) error {
	delete(f.tokens, id)
	return nil
}

func (f *fakeResetRepo) CleanupExpired(_ context.Context) error { return nil }

// ---------------------------------------------------------------------

type fakeRefreshRepo struct {
	tokens map[uuid.UUID]*models.RefreshToken
}

func newFakeRefreshRepo() *fakeRefreshRepo {
	return &fakeRefreshRepo{tokens: make(map[uuid.UUID]*models.RefreshToken)}
}

func (f *fakeRefreshRepo) Create(_ context.Context, rt *models.RefreshToken) error {
	f.tokens[rt.ID] = rt
	return nil
}

func (f *fakeRefreshRepo) GetByToken(_ context.Context, token string) (*models.RefreshToken, error) {
	for _, rt := range f.tokens {
		if rt.Token == token {
			return rt, nil
		}
	}
	return nil, nil
}

func (f *fakeRefreshRepo) Revoke(_ context.Context, id uuid.UUID) error {
	if rt, ok := f.tokens[id]; ok {
		rt.Revoked = true
	}
	return nil
}

func (f *fakeRefreshRepo) RemoveAllByUserID(_ context.Context, userID uuid.UUID) error {
	for id, rt := range f.tokens {
		if rt.UserID == userID {
			delete(f.tokens, id)
		}
	}
	return nil
}

func (f *fakeRefreshRepo) CleanupExpired(_ context.Context) error { return nil }

// ---------------------------------------------------------------------

type fakeRateLimitRepo struct {
	counts map[string]int
}

func newFakeRateLimitRepo() *fakeRateLimitRepo {
	return &fakeRateLimitRepo{counts: make(map[string]int)}
}

func (f *fakeRateLimitRepo) IncrementAndCheck(_ context.Context, key string, limit int, window time.Duration) (bool, time.Duration, error) {
	f.counts[key]++
	if f.counts[key] > limit {
		return false, window, nil
	}
	return true, 0, nil
}

func (f *fakeRateLimitRepo) CleanupExpired(_ context.Context) error { return nil }

// ---------------------------------------------------------------------

type fakeMailer struct {
	verificationCodes map[string]string
	resetURLs         map[string]string
	sendErr           error
}

func newFakeMailer() *fakeMailer {
	return &fakeMailer{
		verificationCodes: make(map[string]string),
		resetURLs:         make(map[string]string),
	}
}

func (f *fakeMailer) SendVerificationCode(toEmail, code string) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.verificationCodes[toEmail] = code
	return nil
}

func (f *fakeMailer) SendPasswordResetLink(toEmail, resetURL string) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.resetURLs[toEmail] = resetURL
	return nil
}

// ---------------------------------------------------------------------

type fakeCompanyRepo struct {
	companies map[uuid.UUID]*models.Company
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: make(map[uuid.UUID]*models.Company)}
}

func (f *fakeCompanyRepo) Create(_ context.Context, c *models.Company) error {
	for _, existing := range f.companies {
		if existing.UserID == c.UserID {
			return utils.ErrCompanyExists
		}
		if existing.CustomURL != nil && c.CustomURL != nil && *existing.CustomURL == *c.CustomURL {
			return utils.ErrCustomURLTaken
		}
	}
	f.companies[c.ID] = c
	return nil
}

func (f *fakeCompanyRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Company, error) {
	return f.companies[id], nil
}

func (f *fakeCompanyRepo) GetByUserID(_ context.Context, userID uuid.UUID) (*models.Company, error) {
	for _, c := range f.companies {
		if c.UserID == userID {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCompanyRepo) Update(_ context.Context, c *models.Company) error {
	f.companies[c.ID] = c
	return nil
}

// ---------------------------------------------------------------------

type fakeViewRepo struct {
	rows map[string]*models.CompanyDailyView
}

func newFakeViewRepo() *fakeViewRepo {
	return &fakeViewRepo{rows: make(map[string]*models.CompanyDailyView)}
}

func viewKey(companyID uuid.UUID, day time.Time) string {
	return companyID.String() + "/" + day.Format("2006-01-02")
}

func (f *fakeViewRepo) IncrementDailyView(_ context.Context, companyID uuid.UUID, day time.Time) error {
	key := viewKey(companyID, day)
	if row, ok := f.rows[key]; ok {
		row.Views++
		return nil
	}
	f.rows[key] = &models.CompanyDailyView{
		ID:        uuid.New(),
		CompanyID: companyID,
		ViewDate:  day.Truncate(24 * time.Hour),
		Views:     1,
	}
	return nil
}

func (f *fakeViewRepo) ListViewsSince(_ context.Context, companyID uuid.UUID, since time.Time) ([]*models.CompanyDailyView, error) {
	var out []*models.CompanyDailyView
	for _, row := range f.rows {
		if row.CompanyID == companyID && !row.ViewDate.Before(since) {
			out = append(out, row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ViewDate.Before(out[j].ViewDate) })
	return out, nil
}

// ---------------------------------------------------------------------

type fakePropertyRepo struct {
	properties map[uuid.UUID]*models.Property
	counts     repositories.ListingCounts
}

func newFakePropertyRepo() *fakePropertyRepo {
	return &fakePropertyRepo{properties: make(map[uuid.UUID]*models.Property)}
}

func (f *fakePropertyRepo) Create(_ context.Context, p *models.Property) error {
	f.properties[p.ID] = p
	return nil
}

func (f *fakePropertyRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Property, error) {
	return f.properties[id], nil
}

func (f *fakePropertyRepo) ListBySellerID(_ context.Context, sellerID uuid.UUID) ([]*models.Property, error) {
	var out []*models.Property
	for _, p := range f.properties {
		if p.SellerID == sellerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePropertyRepo) ListAll(_ context.Context) ([]*models.Property, error) {
	var out []*models.Property
	for _, p := range f.properties {
		if p.IsActive {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePropertyRepo) Update(_ context.Context, p *models.Property) error {
	f.properties[p.ID] = p
	return nil
}

func (f *fakePropertyRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.properties, id)
	return nil
}

func (f *fakePropertyRepo) MarkSold(_ context.Context, id uuid.UUID) error {
	if p, ok := f.properties[id]; ok {
		now := time.Now()
		p.IsSold = true
		p.IsActive = false
		p.SoldAt = &now
	}
	return nil
}

func (f *fakePropertyRepo) CountBySeller(_ context.Context, _ uuid.UUID) (repositories.ListingCounts, error) {
	return f.counts, nil
}

// ---------------------------------------------------------------------

type fakeTransactionRepo struct {
	transactions map[uuid.UUID]*models.Transaction
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{transactions: make(map[uuid.UUID]*models.Transaction)}
}

func (f *fakeTransactionRepo) Create(_ context.Context, t *models.Transaction) error {
	f.transactions[t.ID] = t
	return nil
}

func (f *fakeTransactionRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Transaction, error) {
	return f.transactions[id], nil
}

func (f *fakeTransactionRepo) ListByUserID(_ context.Context, userID uuid.UUID) ([]*models.Transaction, error) {
	var out []*models.Transaction
	for _, t := range f.transactions {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTransactionRepo) ListAll(_ context.Context) ([]*models.Transaction, error) {
	var out []*models.Transaction
	for _, t := range f.transactions {
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeTransactionRepo) Update(_ context.Context, t *models.Transaction) error {
	if _, ok := f.transactions[t.ID]; !ok {
		return utils.ErrNotFound
	}
	f.transactions[t.ID] = t
	return nil
}

func (f *fakeTransactionRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.transactions[id]; !ok {
		return utils.ErrNotFound
	}
	delete(f.transactions, id)
	return nil
}

// ---------------------------------------------------------------------

type fakeInvoiceRepo struct {
	invoices map[uuid.UUID]*models.Invoice
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{invoices: make(map[uuid.UUID]*models.Invoice)}
}

func (f *fakeInvoiceRepo) Create(_ context.Context, inv *models.Invoice) error {
	f.invoices[inv.ID] = inv
	return nil
}

func (f *fakeInvoiceRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Invoice, error) {
	return f.invoices[id], nil
}

func (f *fakeInvoiceRepo) GetByTransactionID(_ context.Context, transactionID uuid.UUID) (*models.Invoice, error) {
	for _, inv := range f.invoices {
		if inv.TransactionID == transactionID {
			return inv, nil
		}
	}
	return nil, nil
}
