package models

import (
	"time"

	"github.com/google/uuid"
)

// Rating is a 1-5 star review of a property by a user.
type Rating struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	PropertyID uuid.UUID `json:"property_id"`
	Rating     int       `json:"rating"`
	Feedback   *string   `json:"feedback,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
