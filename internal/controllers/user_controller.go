package controllers

import (
	"net/http"

	"github.com/InternPulse/property-hive-backend/internal/dtos"
	"github.com/InternPulse/property-hive-backend/internal/services"
	"github.com/InternPulse/property-hive-backend/internal/utils"
)

type UserController struct {
	userService services.UserService
	storage     services.StorageService
}

func NewUserController(userService services.UserService, storage services.StorageService) *UserController {
	return &UserController{userService: userService, storage: storage}
}

func (c *UserController) GetMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := mustUserID(w, r)
	if !ok {
		return
	}

	detail, err := c.userService.GetUser(r.Context(), userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondWithEnvelope(w, http.StatusOK, "User retrieved", detail)
}

func (c *UserController) UpdateMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := mustUserID(w, r)
	if !ok {
		return
	}

	var req dtos.UpdateUserRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := c.userService.UpdateUser(r.Context(), userID, &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondWithEnvelope(w, http.StatusOK, "User updated", user)
}

func (c *UserController) UploadAvatar(w http.ResponseWriter, r *http.Request) {
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

	path, err := c.storage.SaveUpload(services.UploadKindAvatar, header)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	if err := c.userService.SetProfilePicture(r.Context(), userID, path); err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondWithEnvelope(w, http.StatusOK, "Profile picture updated", map[string]string{"file_path": path})
}

func (c *UserController) CreateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := mustUserID(w, r)
	if !ok {
		return
	}

	var req dtos.CreateProfileRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	profile, err := c.userService.CreateProfile(r.Context(), userID, &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondWithEnvelope(w, http.StatusCreated, "Profile created", profile)
}

func (c *UserController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := mustUserID(w, r)
	if !ok {
		return
	}

	var req dtos.UpdateProfileRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	profile, err := c.userService.UpdateProfile(r.Context(), userID, &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondWithEnvelope(w, http.StatusOK, "Profile updated", profile)
}

func (c *UserController) UploadKycDocument(w http.ResponseWriter, r *http.Request) {
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
	documentType := r.FormValue("document_type")
	if documentType == "" {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation, "document_type is required", nil,
		)
		return
	}

	path, err := c.storage.SaveUpload(services.UploadKindKycDocument, header)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	doc, err := c.userService.AttachKycDocument(r.Context(), userID, documentType, path)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondWithEnvelope(w, http.StatusCreated, "KYC document submitted", doc)
}

func (c *UserController) ListKycDocuments(w http.ResponseWriter, r *http.Request) {
	userID, ok := mustUserID(w, r)
	if !ok {
		return
	}

	docs, err := c.userService.ListKycDocuments(r.Context(), userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondWithEnvelope(w, http.StatusOK, "KYC documents retrieved", docs)
}
