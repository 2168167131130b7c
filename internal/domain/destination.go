package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Destination is seeded reference data. End users never create or edit it.
type Destination struct {
	ID          uuid.UUID      `db:"id" json:"id"`
	Name        string         `db:"name" json:"name"`
	Slug        string         `db:"slug" json:"slug"`
	Region      string         `db:"region" json:"region"`
	Description *string        `db:"description" json:"description,omitempty"`
	Latitude    *float64       `db:"latitude" json:"latitude,omitempty"`
	Longitude   *float64       `db:"longitude" json:"longitude,omitempty"`
	ImageURL    *string        `db:"image_url" json:"image_url,omitempty"`
	Attractions pq.StringArray `db:"attractions" json:"attractions"`
	BestMonths  pq.StringArray `db:"best_months" json:"best_months"`
	CreatedAt   time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at" json:"updated_at"`

	AverageRating float64 `db:"average_rating" json:"average_rating"`
	ReviewCount   int     `db:"review_count" json:"review_count"`
}

// HasCoordinates reports whether both latitude and longitude are known.
func (d *Destination) HasCoordinates() bool {
	return d != nil && d.Latitude != nil && d.Longitude != nil
}

type RegionCount struct {
	Region string `db:"region" json:"name"`
	Count  int    `db:"destination_count" json:"destination_count"`
}

type RegionalStats struct {
	TotalDestinations int           `json:"total_destinations"`
	TotalRegions      int           `json:"total_regions"`
	Regions           []RegionCount `json:"regions"`
}

type DestinationDetails struct {
	Destination Destination     `json:"destination"`
	Stats       ReviewAggregate `json:"stats"`
	Reviews     []Review        `json:"reviews"`
	Weather     *Weather        `json:"weather"`
	Attractions []Attraction    `json:"nearby_attractions"`
}
