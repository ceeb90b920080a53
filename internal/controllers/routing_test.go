package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/InternPulse/property-hive-backend/internal/routes"
)

// Mirrors the server's registration order: public routes first, then the
// protected subrouter. The literal /companies/me must not be captured by
// the earlier public {id} route.
func TestCompanyRouteDispatch(t *testing.T) {
	router := mux.NewRouter()
	v1 := router.PathPrefix(routes.APIPrefix + routes.V1Prefix).Subrouter()

	mark := func(name string) http.HandlerFunc {
		return func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("X-Handler", name)
		}
	}

	v1.HandleFunc(routes.CompanyByID, mark("public")).Methods("GET")

	protected := v1.NewRoute().Subrouter()
	protected.HandleFunc(routes.MyCompany, mark("mine")).Methods("GET")
	protected.HandleFunc(routes.CompanyDashboard, mark("dashboard")).Methods("GET")

	get := func(path string) string {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, rec.Code, path)
		return rec.Header().Get("X-Handler")
	}

	require.Equal(t, "mine", get("/api/v1/companies/me"))
	require.Equal(t, "dashboard", get("/api/v1/companies/me/dashboard"))
	require.Equal(t, "public", get("/api/v1/companies/"+uuid.NewString()))
}
