package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/njprem/Mindanao_travel_APP_BackEnd/internal/domain"
	"github.com/njprem/Mindanao_travel_APP_BackEnd/internal/repository/ports"
)

const (
	reviewTitleMin   = 5
	reviewTitleMax   = 100
	reviewContentMin = 20
	reviewContentMax = 1000

	defaultPageLimit = 20
	maxPageLimit     = 100
)

type ReviewInput struct {
	Rating  int
	Title   string
	Content string
}

type ReviewService struct {
	reviews      ports.ReviewRepository
	destinations ports.DestinationRepository
	ratings      *RatingService
	onChange     func(ctx context.Context)
}

func NewReviewService(reviews ports.ReviewRepository, destinations ports.DestinationRepository, ratings *RatingService) *ReviewService {
	if ratings == nil {
		ratings = NewRatingService(reviews)
	}
	return &ReviewService{
		reviews:      reviews,
		destinations: destinations,
		ratings:      ratings,
	}
}

// OnRatingsChanged registers a callback run after a review is created, updated
// or deleted.
func (s *ReviewService) OnRatingsChanged(fn func(ctx context.Context)) {
	s.onChange = fn
}

func (s *ReviewService) notifyChange(ctx context.Context) {
	if s.onChange != nil {
		s.onChange(ctx)
	}
}

// CreateReviewBySlug resolves the destination slug and creates the review.
func (s *ReviewService) CreateReviewBySlug(ctx context.Context, userID uuid.UUID, slug string, input ReviewInput) (*domain.Review, *domain.ReviewAggregate, error) {
	destination, err := s.destinationBySlug(ctx, slug)
	if err != nil {
		return nil, nil, err
	}
	return s.create(ctx, userID, destination.ID, input)
}

func (s *ReviewService) CreateReview(ctx context.Context, userID, destinationID uuid.UUID, input ReviewInput) (*domain.Review, *domain.ReviewAggregate, error) {
	if err := s.ensureDestinationExists(ctx, destinationID); err != nil {
		return nil, nil, err
	}
	return s.create(ctx, userID, destinationID, input)
}

func (s *ReviewService) create(ctx context.Context, userID, destinationID uuid.UUID, input ReviewInput) (*domain.Review, *domain.ReviewAggregate, error) {
	// Early exit only. The partial unique index is the real guard.
	if _, err := s.reviews.FindByUserAndDestination(ctx, userID, destinationID); err == nil {
		return nil, nil, ErrReviewAlreadyExist
	} else if !isNotFound(err) {
		return nil, nil, err
	}

	normalized, err := validateReviewInput(input)
	if err != nil {
		return nil, nil, err
	}

	stored, err := s.reviews.Create(ctx, &domain.Review{
		DestinationID: destinationID,
		UserID:        userID,
		Rating:        normalized.Rating,
		Title:         normalized.Title,
		Content:       normalized.Content,
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, nil, ErrReviewAlreadyExist
		}
		return nil, nil, err
	}

	s.notifyChange(ctx)

	aggregate, err := s.ratings.Stats(ctx, destinationID)
	if err != nil {
		return nil, nil, err
	}
	return stored, aggregate, nil
}

func (s *ReviewService) UpdateReview(ctx context.Context, userID, reviewID uuid.UUID, input ReviewInput) (*domain.Review, error) {
	review, err := s.ownedReview(ctx, userID, reviewID)
	if err != nil {
		return nil, err
	}
	normalized, err := validateReviewInput(input)
	if err != nil {
		return nil, err
	}
	review.Rating = normalized.Rating
	review.Title = normalized.Title
	review.Content = normalized.Content

	updated, err := s.reviews.Update(ctx, review)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	s.notifyChange(ctx)
	return updated, nil
}

func (s *ReviewService) DeleteReview(ctx context.Context, userID, reviewID uuid.UUID) error {
	if _, err := s.ownedReview(ctx, userID, reviewID); err != nil {
		return err
	}
	if err := s.reviews.SoftDelete(ctx, reviewID); err != nil {
		if isNotFound(err) {
			return ErrReviewNotFound
		}
		return err
	}
	s.notifyChange(ctx)
	return nil
}

// MarkHelpful increments the helpful counter. Anyone may call it, any number
// of times.
func (s *ReviewService) MarkHelpful(ctx context.Context, reviewID uuid.UUID) (int, error) {
	count, err := s.reviews.IncrementHelpful(ctx, reviewID)
	if err != nil {
		if isNotFound(err) {
			return 0, ErrReviewNotFound
		}
		return 0, err
	}
	return count, nil
}

// ListDestinationReviews returns live reviews, most helpful first, with the
// destination's rating stats.
func (s *ReviewService) ListDestinationReviews(ctx context.Context, slug string, limit, offset int) (*domain.ReviewListResult, error) {
	destination, err := s.destinationBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	limit, offset = normalizePage(limit, offset)

	reviews, err := s.reviews.ListByDestination(ctx, destination.ID, limit, offset)
	if err != nil {
		return nil, err
	}
	aggregate, err := s.ratings.Stats(ctx, destination.ID)
	if err != nil {
		return nil, err
	}
	return &domain.ReviewListResult{
		DestinationID: destination.ID,
		Reviews:       reviews,
		Aggregate:     *aggregate,
		Limit:         limit,
		Offset:        offset,
	}, nil
}

func (s *ReviewService) ListUserReviews(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Review, error) {
	limit, offset = normalizePage(limit, offset)
	return s.reviews.ListByUser(ctx, userID, limit, offset)
}

func (s *ReviewService) ownedReview(ctx context.Context, userID, reviewID uuid.UUID) (*domain.Review, error) {
	review, err := s.reviews.GetByID(ctx, reviewID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	if review.DeletedAt != nil {
		return nil, ErrReviewNotFound
	}
	if review.UserID != userID {
		return nil, ErrReviewForbidden
	}
	return review, nil
}

func (s *ReviewService) destinationBySlug(ctx context.Context, slug string) (*domain.Destination, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, ErrDestinationNotFound
	}
	destination, err := s.destinations.FindBySlug(ctx, slug)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrDestinationNotFound
		}
		return nil, err
	}
	return destination, nil
}

func (s *ReviewService) ensureDestinationExists(ctx context.Context, destinationID uuid.UUID) error {
	return ensureDestination(ctx, s.destinations, destinationID)
}

func ensureDestination(ctx context.Context, destinations ports.DestinationRepository, destinationID uuid.UUID) error {
	if destinationID == uuid.Nil {
		return ErrDestinationNotFound
	}
	if _, err := destinations.FindByID(ctx, destinationID); err != nil {
		if isNotFound(err) {
			return ErrDestinationNotFound
		}
		return err
	}
	return nil
}

func validateReviewInput(input ReviewInput) (ReviewInput, error) {
	out := ReviewInput{
		Rating:  input.Rating,
		Title:   strings.TrimSpace(input.Title),
		Content: strings.TrimSpace(input.Content),
	}
	fields := fieldErrors{}
	validateRating(fields, "rating", out.Rating)
	validateLength(fields, "title", out.Title, reviewTitleMin, reviewTitleMax)
	validateLength(fields, "content", out.Content, reviewContentMin, reviewContentMax)
	if err := fields.err(); err != nil {
		return ReviewInput{}, err
	}
	return out, nil
}

func validateRating(fields fieldErrors, field string, rating int) {
	if rating < domain.MinRating || rating > domain.MaxRating {
		fields.add(field, fmt.Sprintf("must be between %d and %d", domain.MinRating, domain.MaxRating))
	}
}

// validateLength counts runes, so multi-byte text is measured as the user sees it.
func validateLength(fields fieldErrors, field, value string, min, max int) {
	n := utf8.RuneCountInString(value)
	switch {
	case min > 0 && n == 0:
		fields.add(field, "is required")
	case n < min:
		fields.add(field, fmt.Sprintf("must be at least %d characters", min))
	case max > 0 && n > max:
		fields.add(field, fmt.Sprintf("must be at most %d characters", max))
	}
}

func normalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
