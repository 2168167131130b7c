package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type TravelDiary struct {
	ID            uuid.UUID      `db:"id" json:"id"`
	UserID        uuid.UUID      `db:"user_id" json:"user_id"`
	DestinationID uuid.UUID      `db:"destination_id" json:"destination_id"`
	Notes         string         `db:"notes" json:"notes"`
	Rating        int            `db:"rating" json:"rating"`
	VisitDate     time.Time      `db:"visit_date" json:"visit_date"`
	Photos        pq.StringArray `db:"photos" json:"photos"`
	CreatedAt     time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at" json:"updated_at"`

	DestinationName   string `db:"destination_name" json:"destination_name,omitempty"`
	DestinationSlug   string `db:"destination_slug" json:"destination_slug,omitempty"`
	DestinationRegion string `db:"destination_region" json:"destination_region,omitempty"`
}

type UserStats struct {
	TotalDiaries        int `db:"total_diaries" json:"total_diaries"`
	TotalWishlist       int `db:"total_wishlist" json:"total_wishlist"`
	TotalReviews        int `db:"total_reviews" json:"total_reviews"`
	DestinationsVisited int `db:"destinations_visited" json:"destinations_visited"`
}

type Dashboard struct {
	Stats          UserStats      `json:"stats"`
	RecentDiaries  []TravelDiary  `json:"recent_diaries"`
	Wishlist       []WishlistItem `json:"wishlist"`
	TopRated       []TravelDiary  `json:"top_rated"`
	VisitedRegions []RegionCount  `json:"visited_regions"`
}
