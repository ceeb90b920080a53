package models

import (
	"time"

	"github.com/google/uuid"
)

// SoldProperty records a completed sale. A row may only be created for a
// property whose is_sold flag is already set; the repository enforces the
// check before insert.
type SoldProperty struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	PropertyID uuid.UUID `json:"property_id"`
	DateSold   time.Time `json:"date_sold"`
}

// UserProperty links a buyer to a property they purchased.
type UserProperty struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	PropertyID    uuid.UUID `json:"property_id"`
	DatePurchased time.Time `json:"date_purchased"`
}
