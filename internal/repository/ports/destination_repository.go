package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/njprem/Mindanao_travel_APP_BackEnd/internal/domain"
)

type DestinationRepository interface {
	List(ctx context.Context) ([]domain.Destination, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Destination, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Destination, error)
	Search(ctx context.Context, query string, limit int) ([]domain.Destination, error)
	RegionCounts(ctx context.Context) ([]domain.RegionCount, error)
	Upsert(ctx context.Context, destination *domain.Destination) (*domain.Destination, error)
}
