package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/InternPulse/property-hive-backend/internal/dtos"
	"github.com/InternPulse/property-hive-backend/internal/middleware"
	"github.com/InternPulse/property-hive-backend/internal/models"
	"github.com/InternPulse/property-hive-backend/internal/services"
)

type fakeCompanyService struct {
	company *models.Company
}

func (f *fakeCompanyService) CreateCompany(_ context.Context, _ uuid.UUID, _ *dtos.CreateCompanyRequest) (*models.Company, error) {
	return f.company, nil
}

func (f *fakeCompanyService) GetCompany(_ context.Context, _ uuid.UUID) (*models.Company, error) {
	return f.company, nil
}

func (f *fakeCompanyService) GetCompanyByUserID(_ context.Context, _ uuid.UUID) (*models.Company, error) {
	return f.company, nil
}

func (f *fakeCompanyService) UpdateCompany(_ context.Context, _ uuid.UUID, _ *dtos.UpdateCompanyRequest) (*models.Company, error) {
	return f.company, nil
}

func (f *fakeCompanyService) SetLogo(_ context.Context, _ uuid.UUID, _ string) (*models.Company, error) {
	return f.company, nil
}

func (f *fakeCompanyService) SetBanner(_ context.Context, _ uuid.UUID, _ string) (*models.Company, error) {
	return f.company, nil
}

func (f *fakeCompanyService) GenerateCustomURL(_ context.Context, _ uuid.UUID) (string, error) {
	return "", nil
}

var _ services.CompanyService = (*fakeCompanyService)(nil)

type fakeDashboardService struct {
	recorded int
}

func (f *fakeDashboardService) RecordProfileView(_ context.Context, _ uuid.UUID) error {
	f.recorded++
	return nil
}

func (f *fakeDashboardService) GetDashboard(_ context.Context, _ uuid.UUID) (*dtos.DashboardResponse, error) {
	return nil, nil
}

var _ services.DashboardService = (*fakeDashboardService)(nil)

type fakePropertyService struct{}

func (fakePropertyService) CreateProperty(_ context.Context, _ uuid.UUID, _ *dtos.CreatePropertyRequest) (*models.Property, error) {
	return nil, nil
}

func (fakePropertyService) GetProperty(_ context.Context, _ uuid.UUID) (*dtos.PropertyDetailResponse, error) {
	return nil, nil
}

func (fakePropertyService) ListProperties(_ context.Context) ([]*models.Property, error) {
	return nil, nil
}

func (fakePropertyService) ListSellerProperties(_ context.Context, _ uuid.UUID) ([]*models.Property, error) {
	return nil, nil
}

func (fakePropertyService) UpdateProperty(_ context.Context, _, _ uuid.UUID, _ *dtos.UpdatePropertyRequest) (*models.Property, error) {
	return nil, nil
}

func (fakePropertyService) DeleteProperty(_ context.Context, _, _ uuid.UUID) error { return nil }

func (fakePropertyService) AttachImage(_ context.Context, _ uuid.UUID, _ string) (*models.PropertyImage, error) {
	return nil, nil
}

func (fakePropertyService) AttachDocument(_ context.Context, _ uuid.UUID, _, _ string) (*models.PropertyDocument, error) {
	return nil, nil
}

func (fakePropertyService) PurchaseProperty(_ context.Context, _, _ uuid.UUID, _ string) (*dtos.TransactionDetailResponse, error) {
	return nil, nil
}

func (fakePropertyService) ListPurchases(_ context.Context, _ uuid.UUID) ([]*models.UserProperty, error) {
	return nil, nil
}

func (fakePropertyService) ListSales(_ context.Context, _ uuid.UUID) ([]*models.SoldProperty, error) {
	return nil, nil
}

func (fakePropertyService) RateProperty(_ context.Context, _, _ uuid.UUID, _ *dtos.CreateRatingRequest) (*models.Rating, error) {
	return nil, nil
}

func (fakePropertyService) ListRatings(_ context.Context, _ uuid.UUID) ([]*models.Rating, error) {
	return nil, nil
}

var _ services.PropertyService = fakePropertyService{}

func signedAccessToken(t *testing.T, secret []byte, userID uuid.UUID) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID.String(),
		"exp": time.Now().Add(time.Minute).Unix(),
	})
	signed, err := tok.SignedString(secret)
	require.NoError(t, err)
	return signed
}

// Public company pages count visits, except the owner's own.
func TestPublicViewProfileViewCounting(t *testing.T) {
	secret := []byte("test-secret")
	ownerID := uuid.New()
	company := &models.Company{ID: uuid.New(), UserID: ownerID, Name: "Prime Estates"}

	tests := []struct {
		name     string
		token    string
		recorded int
	}{
		{name: "anonymous visit counts", token: "", recorded: 1},
		{name: "other user visit counts", token: signedAccessToken(t, secret, uuid.New()), recorded: 1},
		{name: "owner visit does not count", token: signedAccessToken(t, secret, ownerID), recorded: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dashboard := &fakeDashboardService{}
			c := NewCompanyController(&fakeCompanyService{company: company}, dashboard, fakePropertyService{}, nil)

			handler := middleware.OptionalAuthMiddleware(secret)(http.HandlerFunc(c.PublicView))

			req := httptest.NewRequest(http.MethodGet, "/api/v1/companies/"+company.ID.String(), nil)
			req = mux.SetURLVars(req, map[string]string{"id": company.ID.String()})
			if tc.token != "" {
				req.Header.Set("Authorization", "Bearer "+tc.token)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			require.Equal(t, tc.recorded, dashboard.recorded)
		})
	}
}
