package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/njprem/Mindanao_travel_APP_BackEnd/internal/domain"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) (*domain.Review, error)
	Update(ctx context.Context, review *domain.Review) (*domain.Review, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Review, error)
	FindByUserAndDestination(ctx context.Context, userID, destinationID uuid.UUID) (*domain.Review, error)
	ListByDestination(ctx context.Context, destinationID uuid.UUID, limit, offset int) ([]domain.Review, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Review, error)
	AggregateByDestination(ctx context.Context, destinationID uuid.UUID) (*domain.ReviewAggregate, error)
	IncrementHelpful(ctx context.Context, id uuid.UUID) (int, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
}
