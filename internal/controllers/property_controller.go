package controllers

import (
	"net/http"

	"github.com/InternPulse/property-hive-backend/internal/dtos"
	"github.com/InternPulse/property-hive-backend/internal/services"
	"github.com/InternPulse/property-hive-backend/internal/utils"
)

type PropertyController struct {
	propertyService services.PropertyService
	storage         services.StorageService
}

func NewPropertyController(propertyService services.PropertyService, storage services.StorageService) *PropertyController {
	return &PropertyController{propertyService: propertyService, storage: storage}
}

// ---------------------------------------------------------------------
// Listing CRUD
// ---------------------------------------------------------------------

func (c *PropertyController) Create(w http.ResponseWriter, r *http.Request) {
	sellerID, ok := mustUserID(w, r)
	if !ok {
		return
	}

	var req dtos.CreatePropertyRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	property, err := c.propertyService.CreateProperty(r.Context(), sellerID, &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondWithEnvelope(w, http.StatusCreated, "Property created", property)
}

func (c *PropertyController) List(w http.ResponseWriter, r *http.Request) {
	properties, err := c.propertyService.ListProperties(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithEnvelope(w, http.StatusOK, "Properties retrieved", properties)
}

func (c *PropertyController) ListMine(w http.ResponseWriter, r *http.Request) {
	sellerID, ok := mustUserID(w, r)
	if !ok {
		return
	}

	properties, err := c.propertyService.ListSellerProperties(r.Context(), sellerID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithEnvelope(w, http.StatusOK, "Properties retrieved", properties)
}

func (c *PropertyController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	detail, err := c.propertyService.GetProperty(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithEnvelope(w, http.StatusOK, "Property retrieved", detail)
}

func (c *PropertyController) Update(w http.ResponseWriter, r *http.Request) {
	sellerID, ok := mustUserID(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req dtos.UpdatePropertyRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	property, err := c.propertyService.UpdateProperty(r.Context(), sellerID, id, &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithEnvelope(w, http.StatusOK, "Property updated", property)
}

func (c *PropertyController) Delete(w http.ResponseWriter, r *http.Request) {
	sellerID, ok := mustUserID(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := c.propertyService.DeleteProperty(r.Context(), sellerID, id); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithEnvelope(w, http.StatusOK, "Property deleted", nil)
}

// ---------------------------------------------------------------------
// Assets
// ---------------------------------------------------------------------

func (c *PropertyController) UploadImage(w http.ResponseWriter, r *http.Request) {
	if _, ok := mustUserID(w, r); !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
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

	path, err := c.storage.SaveUpload(services.UploadKindPropertyImage, header)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	img, err := c.propertyService.AttachImage(r.Context(), id, path)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithEnvelope(w, http.StatusCreated, "Image uploaded", img)
}

func (c *PropertyController) UploadDocument(w http.ResponseWriter, r *http.Request) {
	if _, ok := mustUserID(w, r); !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
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
	documentType := r.FormValue("document_type")
	if documentType == "" {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation, "document_type is required", nil,
		)
		return
	}

	path, err := c.storage.SaveUpload(services.UploadKindPropertyDocument, header)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	doc, err := c.propertyService.AttachDocument(r.Context(), id, documentType, path)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithEnvelope(w, http.StatusCreated, "Document uploaded", doc)
}

// ---------------------------------------------------------------------
// Purchase flow
// ---------------------------------------------------------------------

func (c *PropertyController) Purchase(w http.ResponseWriter, r *http.Request) {
	buyerID, ok := mustUserID(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req dtos.PurchasePropertyRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	detail, err := c.propertyService.PurchaseProperty(r.Context(), buyerID, id, req.PaymentMethod)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithEnvelope(w, http.StatusOK, "Purchase recorded", detail)
}

func (c *PropertyController) ListPurchases(w http.ResponseWriter, r *http.Request) {
	userID, ok := mustUserID(w, r)
	if !ok {
		return
	}

	purchases, err := c.propertyService.ListPurchases(r.Context(), userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithEnvelope(w, http.StatusOK, "Purchases retrieved", purchases)
}

func (c *PropertyController) ListSales(w http.ResponseWriter, r *http.Request) {
	userID, ok := mustUserID(w, r)
	if !ok {
		return
	}

	sales, err := c.propertyService.ListSales(r.Context(), userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithEnvelope(w, http.StatusOK, "Sales retrieved", sales)
}

// ---------------------------------------------------------------------
// Ratings
// ---------------------------------------------------------------------

func (c *PropertyController) Rate(w http.ResponseWriter, r *http.Request) {
	userID, ok := mustUserID(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req dtos.CreateRatingRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	rating, err := c.propertyService.RateProperty(r.Context(), userID, id, &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithEnvelope(w, http.StatusCreated, "Rating submitted", rating)
}

func (c *PropertyController) ListRatings(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	ratings, err := c.propertyService.ListRatings(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithEnvelope(w, http.StatusOK, "Ratings retrieved", ratings)
}
