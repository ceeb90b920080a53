package models

import (
	"time"

	"github.com/google/uuid"
)

type KycStatusType string

const (
	KycStatusPending  KycStatusType = "pending"
	KycStatusApproved KycStatusType = "approved"
	KycStatusRejected KycStatusType = "rejected"
)

// KycDocument is an identity document submitted by a user for review.
// Status transitions are driven by the review process outside this
// service; new documents always start pending.
type KycDocument struct {
	ID           uuid.UUID     `json:"id"`
	UserID       uuid.UUID     `json:"user_id"`
	DocumentType string        `json:"document_type"`
	FilePath     string        `json:"file_path"`
	Status       KycStatusType `json:"status"`
	UploadedAt   time.Time     `json:"uploaded_at"`
}
