package domain

import (
	"time"

	"github.com/google/uuid"
)

type Review struct {
	ID            uuid.UUID  `db:"id" json:"id"`
	DestinationID uuid.UUID  `db:"destination_id" json:"destination_id"`
	UserID        uuid.UUID  `db:"user_id" json:"user_id"`
	Rating        int        `db:"rating" json:"rating"`
	Title         string     `db:"title" json:"title"`
	Content       string     `db:"content" json:"content"`
	HelpfulCount  int        `db:"helpful_count" json:"helpful_count"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updated_at"`
	DeletedAt     *time.Time `db:"deleted_at" json:"-"`

	ReviewerName  *string `db:"reviewer_name" json:"-"`
	ReviewerEmail *string `db:"reviewer_email" json:"-"`
}

// ReviewAggregate always carries RatingCounts keys 1 through 5.
type ReviewAggregate struct {
	DestinationID uuid.UUID   `json:"destination_id"`
	AverageRating float64     `json:"average_rating"`
	TotalReviews  int         `json:"total_reviews"`
	RatingCounts  map[int]int `json:"rating_counts"`
}

const (
	MinRating = 1
	MaxRating = 5
)

// EmptyRatingCounts returns a breakdown with every star value present.
func EmptyRatingCounts() map[int]int {
	counts := make(map[int]int, MaxRating)
	for star := MinRating; star <= MaxRating; star++ {
		counts[star] = 0
	}
	return counts
}

type ReviewListResult struct {
	DestinationID uuid.UUID       `json:"destination_id"`
	Reviews       []Review        `json:"reviews"`
	Aggregate     ReviewAggregate `json:"aggregate"`
	Limit         int             `json:"limit"`
	Offset        int             `json:"offset"`
}
