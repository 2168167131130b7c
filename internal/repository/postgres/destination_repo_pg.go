package postgres

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/njprem/Mindanao_travel_APP_BackEnd/internal/domain"
	"github.com/njprem/Mindanao_travel_APP_BackEnd/internal/repository/ports"
)

type DestinationRepository struct {
	db *sqlx.DB
}

func NewDestinationRepo(db *sqlx.DB) *DestinationRepository {
	return &DestinationRepository{db: db}
}

const destinationSelect = `
	SELECT
		d.id,
		d.name,
		d.slug,
		d.region,
		d.description,
		d.latitude,
		d.longitude,
		d.image_url,
		d.attractions,
		d.best_months,
		d.created_at,
		d.updated_at,
		COALESCE(stats.average_rating, 0) AS average_rating,
		COALESCE(stats.review_count, 0) AS review_count
	FROM destination d
	LEFT JOIN (
		SELECT destination_id,
		       AVG(rating)::float8 AS average_rating,
		       COUNT(*)::int AS review_count
		FROM review
		WHERE deleted_at IS NULL
		GROUP BY destination_id
	) stats ON stats.destination_id = d.id
`

func (r *DestinationRepository) List(ctx context.Context) ([]domain.Destination, error) {
	query := destinationSelect + ` ORDER BY d.name ASC`
	destinations := make([]domain.Destination, 0)
	if err := r.db.SelectContext(ctx, &destinations, query); err != nil {
		return nil, err
	}
	return destinations, nil
}

func (r *DestinationRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Destination, error) {
	query := destinationSelect + ` WHERE d.id = $1`
	var destination domain.Destination
	if err := r.db.GetContext(ctx, &destination, query, id); err != nil {
		return nil, err
	}
	return &destination, nil
}

func (r *DestinationRepository) FindBySlug(ctx context.Context, slug string) (*domain.Destination, error) {
	query := destinationSelect + ` WHERE d.slug = $1`
	var destination domain.Destination
	if err := r.db.GetContext(ctx, &destination, query, strings.TrimSpace(slug)); err != nil {
		return nil, err
	}
	return &destination, nil
}

// Search matches the query as a case-insensitive substring of name or region.
func (r *DestinationRepository) Search(ctx context.Context, query string, limit int) ([]domain.Destination, error) {
	pattern := "%" + escapeLike(strings.TrimSpace(query)) + "%"
	sql := destinationSelect + `
		WHERE d.name ILIKE $1 ESCAPE '\' OR d.region ILIKE $1 ESCAPE '\'
		ORDER BY d.name ASC
		LIMIT $2
	`
	destinations := make([]domain.Destination, 0)
	if err := r.db.SelectContext(ctx, &destinations, sql, pattern, limit); err != nil {
		return nil, err
	}
	return destinations, nil
}

func (r *DestinationRepository) RegionCounts(ctx context.Context) ([]domain.RegionCount, error) {
	const query = `
		SELECT region, COUNT(*)::int AS destination_count
		FROM destination
		GROUP BY region
		ORDER BY destination_count DESC, region ASC
	`
	regions := make([]domain.RegionCount, 0)
	if err := r.db.SelectContext(ctx, &regions, query); err != nil {
		return nil, err
	}
	return regions, nil
}

// Upsert inserts or refreshes a destination keyed by slug. Used by the seeder.
func (r *DestinationRepository) Upsert(ctx context.Context, destination *domain.Destination) (*domain.Destination, error) {
	const query = `
		INSERT INTO destination (
			name, slug, region, description, latitude, longitude,
			image_url, attractions, best_months
		) VALUES (
			:name, :slug, :region, :description, :latitude, :longitude,
			:image_url, :attractions, :best_months
		)
		ON CONFLICT (slug) DO UPDATE
		SET name = EXCLUDED.name,
		    region = EXCLUDED.region,
		    description = EXCLUDED.description,
		    latitude = EXCLUDED.latitude,
		    longitude = EXCLUDED.longitude,
		    image_url = EXCLUDED.image_url,
		    attractions = EXCLUDED.attractions,
		    best_months = EXCLUDED.best_months,
		    updated_at = NOW()
		RETURNING id
	`
	args := map[string]any{
		"name":        strings.TrimSpace(destination.Name),
		"slug":        strings.TrimSpace(destination.Slug),
		"region":      strings.TrimSpace(destination.Region),
		"description": nullString(destination.Description),
		"latitude":    nullFloat(destination.Latitude),
		"longitude":   nullFloat(destination.Longitude),
		"image_url":   nullString(destination.ImageURL),
		"attractions": stringArray(destination.Attractions),
		"best_months": stringArray(destination.BestMonths),
	}

	rows, err := r.db.NamedQueryContext(ctx, query, args)
	if err != nil {
		return nil, err
	}
	var id uuid.UUID
	if rows.Next() {
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, err
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

func escapeLike(value string) string {
	replacer := strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)
	return replacer.Replace(value)
}

var _ ports.DestinationRepository = (*DestinationRepository)(nil)
