package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/njprem/Mindanao_travel_APP_BackEnd/internal/domain"
)

type DiaryRepository interface {
	Create(ctx context.Context, diary *domain.TravelDiary) (*domain.TravelDiary, error)
	Update(ctx context.Context, diary *domain.TravelDiary) (*domain.TravelDiary, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.TravelDiary, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.TravelDiary, error)
	ListTopRatedByUser(ctx context.Context, userID uuid.UUID, minRating, limit int) ([]domain.TravelDiary, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
	CountDistinctDestinations(ctx context.Context, userID uuid.UUID) (int, error)
	VisitedRegions(ctx context.Context, userID uuid.UUID) ([]domain.RegionCount, error)
}
