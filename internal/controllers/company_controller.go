package controllers

import (
	"net/http"

	"github.com/InternPulse/property-hive-backend/internal/dtos"
	"github.com/InternPulse/property-hive-backend/internal/models"
	"github.com/InternPulse/property-hive-backend/internal/services"
	"github.com/InternPulse/property-hive-backend/internal/utils"
)

type CompanyController struct {
	companyService   services.CompanyService
	dashboardService services.DashboardService
	propertyService  services.PropertyService
	storage          services.StorageService
}

func NewCompanyController(
	companyService services.CompanyService,
	dashboardService services.DashboardService,
	propertyService services.PropertyService,
	storage services.StorageService,
) *CompanyController {
	return &CompanyController{
		companyService:   companyService,
		dashboardService: dashboardService,
		propertyService:  propertyService,
		storage:          storage,
	}
}

func (c *CompanyController) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := mustUserID(w, r)
	if !ok {
		return
	}

	var req dtos.CreateCompanyRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	company, err := c.companyService.CreateCompany(r.Context(), userID, &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondWithEnvelope(w, http.StatusCreated, "Company created", company)
}

func (c *CompanyController) GetMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := mustUserID(w, r)
	if !ok {
		return
	}

	company, err := c.companyService.GetCompanyByUserID(r.Context(), userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithEnvelope(w, http.StatusOK, "Company retrieved", company)
}

func (c *CompanyController) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := mustUserID(w, r)
	if !ok {
		return
	}

	var req dtos.UpdateCompanyRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	company, err := c.companyService.UpdateCompany(r.Context(), userID, &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithEnvelope(w, http.StatusOK, "Company updated", company)
}

// GenerateCustomURL mints the company's permanent subdomain URL.
func (c *CompanyController) GenerateCustomURL(w http.ResponseWriter, r *http.Request) {
	userID, ok := mustUserID(w, r)
	if !ok {
		return
	}

	customURL, err := c.companyService.GenerateCustomURL(r.Context(), userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondWithEnvelope(w, http.StatusOK, "Custom URL generated",
		dtos.GenerateCustomURLResponse{CustomURL: customURL})
}

// PublicView serves a company's public page and counts the visit.
func (c *CompanyController) PublicView(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	company, err := c.companyService.GetCompany(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	// Owners browsing their own page do not inflate the dashboard.
	if viewerID, authed := userIDFromContext(r); !authed || viewerID != company.UserID {
		if err := c.dashboardService.RecordProfileView(r.Context(), id); err != nil {
			utils.Logger.WithError(err).WithField("company_id", id).Warn("failed to record profile view")
		}
	}

	properties, err := c.propertyService.ListSellerProperties(r.Context(), company.UserID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	out := dtos.CompanyPublicResponse{
		Company:    company,
		Properties: make([]models.Property, 0, len(properties)),
	}
	for _, p := range properties {
		out.Properties = append(out.Properties, *p)
	}

	utils.RespondWithEnvelope(w, http.StatusOK, "Company retrieved", out)
}

// Dashboard returns the 7-day view series plus listing counts.
func (c *CompanyController) Dashboard(w http.ResponseWriter, r *http.Request) {
	userID, ok := mustUserID(w, r)
	if !ok {
		return
	}

	dashboard, err := c.dashboardService.GetDashboard(r.Context(), userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithEnvelope(w, http.StatusOK, "Dashboard retrieved", dashboard)
}

func (c *CompanyController) UploadLogo(w http.ResponseWriter, r *http.Request) {
	c.uploadBranding(w, r, "logo")
}

func (c *CompanyController) UploadBanner(w http.ResponseWriter, r *http.Request) {
	c.uploadBranding(w, r, "banner")
}

func (c *CompanyController) uploadBranding(w http.ResponseWriter, r *http.Request, field string) {
	userID, ok := mustUserID(w, r)
	if !ok {
		return
	}

	_, header, err := r.FormFile("file")
	if err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Missing file upload", nil, err,
		)
		return
	}

	path, err := c.storage.SaveUpload(services.UploadKindCompanyAsset, header)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	if field == "logo" {
		_, err = c.companyService.SetLogo(r.Context(), userID, path)
	} else {
		_, err = c.companyService.SetBanner(r.Context(), userID, path)
	}
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondWithEnvelope(w, http.StatusOK, "Company branding updated", map[string]string{"file_path": path})
}
