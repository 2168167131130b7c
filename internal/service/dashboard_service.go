package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/njprem/Mindanao_travel_APP_BackEnd/internal/domain"
	"github.com/njprem/Mindanao_travel_APP_BackEnd/internal/repository/ports"
)

const (
	dashboardRecentDiaries = 5
	dashboardWishlist      = 6
	dashboardTopRated      = 5
	dashboardTopRatedMin   = 4
)

type DashboardService struct {
	diaries  ports.DiaryRepository
	wishlist ports.WishlistRepository
	reviews  ports.ReviewRepository
}

func NewDashboardService(diaries ports.DiaryRepository, wishlist ports.WishlistRepository, reviews ports.ReviewRepository) *DashboardService {
	return &DashboardService{diaries: diaries, wishlist: wishlist, reviews: reviews}
}

// Summary collects the signed-in user's counters and highlights.
func (s *DashboardService) Summary(ctx context.Context, userID uuid.UUID) (*domain.Dashboard, error) {
	var (
		out domain.Dashboard
		err error
	)
	if out.Stats.TotalDiaries, err = s.diaries.CountByUser(ctx, userID); err != nil {
		return nil, err
	}
	if out.Stats.TotalWishlist, err = s.wishlist.CountByUser(ctx, userID); err != nil {
		return nil, err
	}
	if out.Stats.TotalReviews, err = s.reviews.CountByUser(ctx, userID); err != nil {
		return nil, err
	}
	if out.Stats.DestinationsVisited, err = s.diaries.CountDistinctDestinations(ctx, userID); err != nil {
		return nil, err
	}
	if out.RecentDiaries, err = s.diaries.ListByUser(ctx, userID, dashboardRecentDiaries, 0); err != nil {
		return nil, err
	}
	if out.Wishlist, err = s.wishlist.ListByUser(ctx, userID, dashboardWishlist, 0); err != nil {
		return nil, err
	}
	if out.TopRated, err = s.diaries.ListTopRatedByUser(ctx, userID, dashboardTopRatedMin, dashboardTopRated); err != nil {
		return nil, err
	}
	if out.VisitedRegions, err = s.diaries.VisitedRegions(ctx, userID); err != nil {
		return nil, err
	}
	return &out, nil
}
