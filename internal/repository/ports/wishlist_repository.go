package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/njprem/Mindanao_travel_APP_BackEnd/internal/domain"
)

type WishlistRepository interface {
	Add(ctx context.Context, entry *domain.Wishlist) (*domain.Wishlist, error)
	Update(ctx context.Context, entry *domain.Wishlist) (*domain.Wishlist, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Wishlist, error)
	FindByUserAndDestination(ctx context.Context, userID, destinationID uuid.UUID) (*domain.Wishlist, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.WishlistItem, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
}
