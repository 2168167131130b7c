package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/njprem/Mindanao_travel_APP_BackEnd/internal/domain"
	"github.com/njprem/Mindanao_travel_APP_BackEnd/internal/repository/ports"
)

// RatingService derives review statistics for a destination. It never writes
// and does not check that the destination exists.
type RatingService struct {
	reviews ports.ReviewRepository
}

func NewRatingService(reviews ports.ReviewRepository) *RatingService {
	return &RatingService{reviews: reviews}
}

func (s *RatingService) AverageRating(ctx context.Context, destinationID uuid.UUID) (float64, error) {
	stats, err := s.Stats(ctx, destinationID)
	if err != nil {
		return 0, err
	}
	return stats.AverageRating, nil
}

func (s *RatingService) ReviewCount(ctx context.Context, destinationID uuid.UUID) (int, error) {
	stats, err := s.Stats(ctx, destinationID)
	if err != nil {
		return 0, err
	}
	return stats.TotalReviews, nil
}

func (s *RatingService) RatingBreakdown(ctx context.Context, destinationID uuid.UUID) (map[int]int, error) {
	stats, err := s.Stats(ctx, destinationID)
	if err != nil {
		return nil, err
	}
	return stats.RatingCounts, nil
}

// Stats returns average, count and per-star breakdown from a single read.
func (s *RatingService) Stats(ctx context.Context, destinationID uuid.UUID) (*domain.ReviewAggregate, error) {
	aggregate, err := s.reviews.AggregateByDestination(ctx, destinationID)
	if err != nil {
		return nil, err
	}
	counts := domain.EmptyRatingCounts()
	for star, n := range aggregate.RatingCounts {
		if star >= domain.MinRating && star <= domain.MaxRating {
			counts[star] = n
		}
	}
	average := aggregate.AverageRating
	if aggregate.TotalReviews == 0 {
		average = 0
	}
	return &domain.ReviewAggregate{
		DestinationID: destinationID,
		AverageRating: average,
		TotalReviews:  aggregate.TotalReviews,
		RatingCounts:  counts,
	}, nil
}
