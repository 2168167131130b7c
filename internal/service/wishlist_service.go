package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/njprem/Mindanao_travel_APP_BackEnd/internal/domain"
	"github.com/njprem/Mindanao_travel_APP_BackEnd/internal/repository/ports"
)

const wishlistNotesMax = 500

type WishlistInput struct {
	DestinationID uuid.UUID
	Notes         *string
	Priority      *int
	PlannedDate   *time.Time
	// ClearPlannedDate removes a stored planned date. It wins over PlannedDate.
	ClearPlannedDate bool
}

type WishlistService struct {
	wishlist     ports.WishlistRepository
	destinations ports.DestinationRepository
}

func NewWishlistService(wishlist ports.WishlistRepository, destinations ports.DestinationRepository) *WishlistService {
	return &WishlistService{wishlist: wishlist, destinations: destinations}
}

func (s *WishlistService) Create(ctx context.Context, userID uuid.UUID, input WishlistInput) (*domain.Wishlist, error) {
	if err := ensureDestination(ctx, s.destinations, input.DestinationID); err != nil {
		return nil, err
	}
	if _, err := s.wishlist.FindByUserAndDestination(ctx, userID, input.DestinationID); err == nil {
		return nil, ErrWishlistAlreadyExists
	} else if !isNotFound(err) {
		return nil, err
	}

	entry := &domain.Wishlist{
		UserID:        userID,
		DestinationID: input.DestinationID,
		Priority:      domain.DefaultWishlistPriority,
	}
	if err := applyWishlistInput(entry, input); err != nil {
		return nil, err
	}

	stored, err := s.wishlist.Add(ctx, entry)
	if err != nil {
		// Add reports a lost ON CONFLICT race as no rows.
		if isNotFound(err) || isUniqueViolation(err) {
			return nil, ErrWishlistAlreadyExists
		}
		return nil, err
	}
	return stored, nil
}

// Update rewrites notes, priority and planned date. Fields left nil keep
// their stored value; ClearPlannedDate drops the planned date.
func (s *WishlistService) Update(ctx context.Context, userID, id uuid.UUID, input WishlistInput) (*domain.Wishlist, error) {
	entry, err := s.owned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := applyWishlistInput(entry, input); err != nil {
		return nil, err
	}
	updated, err := s.wishlist.Update(ctx, entry)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrWishlistNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (s *WishlistService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := s.owned(ctx, userID, id); err != nil {
		return err
	}
	if err := s.wishlist.Delete(ctx, id); err != nil {
		if isNotFound(err) {
			return ErrWishlistNotFound
		}
		return err
	}
	return nil
}

func (s *WishlistService) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.WishlistItem, error) {
	limit, offset = normalizePage(limit, offset)
	return s.wishlist.ListByUser(ctx, userID, limit, offset)
}

// Check reports whether the destination is on the user's wishlist.
func (s *WishlistService) Check(ctx context.Context, userID, destinationID uuid.UUID) (bool, *domain.Wishlist, error) {
	entry, err := s.wishlist.FindByUserAndDestination(ctx, userID, destinationID)
	if err != nil {
		if isNotFound(err) {
			return false, nil, nil
		}
		return false, nil, err
	}
	return true, entry, nil
}

func (s *WishlistService) owned(ctx context.Context, userID, id uuid.UUID) (*domain.Wishlist, error) {
	entry, err := s.wishlist.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrWishlistNotFound
		}
		return nil, err
	}
	if entry.UserID != userID {
		return nil, ErrWishlistForbidden
	}
	return entry, nil
}

func applyWishlistInput(entry *domain.Wishlist, input WishlistInput) error {
	fields := fieldErrors{}
	if input.Notes != nil {
		notes := normalizeString(input.Notes)
		if notes != nil {
			validateLength(fields, "notes", *notes, 0, wishlistNotesMax)
		}
		entry.Notes = notes
	}
	if input.Priority != nil {
		p := *input.Priority
		if p < domain.MinRating || p > domain.MaxRating {
			fields.add("priority", fmt.Sprintf("must be between %d and %d", domain.MinRating, domain.MaxRating))
		}
		entry.Priority = p
	}
	if input.ClearPlannedDate {
		entry.PlannedDate = nil
	} else if input.PlannedDate != nil {
		planned := input.PlannedDate.UTC()
		entry.PlannedDate = &planned
	}
	return fields.err()
}
