package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/InternPulse/property-hive-backend/internal/config"
	"github.com/InternPulse/property-hive-backend/internal/utils"
)

// Upload categories and the subdirectory each one lands in.
const (
	UploadKindAvatar           = "user_avatars"
	UploadKindCompanyAsset     = "company_assets"
	UploadKindPropertyImage    = "property_img"
	UploadKindPropertyDocument = "property_documents"
	UploadKindKycDocument      = "kyc_documents"
	UploadKindInvoice          = "invoices"
)

const maxUploadBytes = 10 << 20 // 10 MiB

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

var allowedDocumentExts = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

type StorageService interface {
	// SaveUpload writes a multipart upload under the kind's subdirectory
	// with a random filename and returns the stored relative path.
	SaveUpload(kind string, fileHeader *multipart.FileHeader) (string, error)
}

type localStorage struct {
	baseDir string
}

func NewLocalStorage(cfg *config.Config) StorageService {
	return &localStorage{baseDir: cfg.UploadDir}
}

func (s *localStorage) SaveUpload(kind string, fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader.Size > maxUploadBytes {
		return "", &utils.AppError{
			StatusCode: http.StatusRequestEntityTooLarge,
			Code:       utils.ErrCodeValidation,
			Message:    "File exceeds the 10MB upload limit",
		}
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if err := checkExtension(kind, ext); err != nil {
		return "", err
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dir := filepath.Join(s.baseDir, kind)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	relPath := filepath.Join(kind, uuid.NewString()+ext)
	dst, err := os.Create(filepath.Join(s.baseDir, relPath))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", err
	}

	return relPath, nil
}

func checkExtension(kind, ext string) error {
	var ok bool
	switch kind {
	case UploadKindAvatar, UploadKindCompanyAsset, UploadKindPropertyImage:
		ok = allowedImageExts[ext]
	case UploadKindPropertyDocument, UploadKindKycDocument, UploadKindInvoice:
		ok = allowedDocumentExts[ext]
	default:
		return fmt.Errorf("unknown upload kind %q", kind)
	}
	if !ok {
		return &utils.AppError{
			StatusCode: http.StatusBadRequest,
			Code:       utils.ErrCodeValidation,
			Message:    fmt.Sprintf("File type %q is not allowed for this upload", ext),
		}
	}
	return nil
}
