package domain

import (
	"time"

	"github.com/google/uuid"
)

const DefaultWishlistPriority = 3

type Wishlist struct {
	ID            uuid.UUID  `db:"id" json:"id"`
	UserID        uuid.UUID  `db:"user_id" json:"user_id"`
	DestinationID uuid.UUID  `db:"destination_id" json:"destination_id"`
	Notes         *string    `db:"notes" json:"notes,omitempty"`
	Priority      int        `db:"priority" json:"priority"`
	PlannedDate   *time.Time `db:"planned_date" json:"planned_date,omitempty"`
	AddedAt       time.Time  `db:"added_at" json:"added_at"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updated_at"`
}

type WishlistItem struct {
	Wishlist
	DestinationName   string  `db:"destination_name" json:"destination_name"`
	DestinationSlug   string  `db:"destination_slug" json:"destination_slug"`
	DestinationRegion string  `db:"destination_region" json:"destination_region"`
	DestinationImage  *string `db:"destination_image_url" json:"destination_image_url,omitempty"`
}
