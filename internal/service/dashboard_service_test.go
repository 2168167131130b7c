package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/njprem/Mindanao_travel_APP_BackEnd/internal/domain"
)

func TestDashboardService_Summary(t *testing.T) {
	ctx := context.Background()
	destRepo, davao := newDestinationRepoWithDavao()
	cdo := domain.Destination{ID: uuid.New(), Name: "Cagayan de Oro", Slug: "cagayan-de-oro", Region: "Northern Mindanao"}
	destRepo.items[cdo.ID] = &cdo

	diaries := newMemoryDiaryRepository(destRepo)
	wishlist := newMemoryWishlistRepository(destRepo)
	reviews := newMemoryReviewRepository()
	userID := uuid.New()

	for i, rating := range []int{5, 3, 4, 2, 5, 4, 1} {
		dest := davao.ID
		if i%2 == 1 {
			dest = cdo.ID
		}
		visit := time.Date(2024, 1, i+1, 0, 0, 0, 0, time.UTC)
		diaries.items[uuid.New()] = &domain.TravelDiary{UserID: userID, DestinationID: dest, Notes: "notes long enough", Rating: rating, VisitDate: visit}
	}
	diaries.items[uuid.New()] = &domain.TravelDiary{UserID: uuid.New(), DestinationID: davao.ID, Rating: 5, VisitDate: time.Now()}

	if _, err := wishlist.Add(ctx, &domain.Wishlist{UserID: userID, DestinationID: cdo.ID, Priority: 5}); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	seedRatings(t, reviews, davao.ID, 4)
	for _, review := range reviews.items {
		review.UserID = userID
	}

	summary, err := NewDashboardService(diaries, wishlist, reviews).Summary(ctx, userID)
	if err != nil {
		t.Fatalf("Summary returned error: %v", err)
	}

	want := domain.UserStats{TotalDiaries: 7, TotalWishlist: 1, TotalReviews: 1, DestinationsVisited: 2}
	if summary.Stats != want {
		t.Fatalf("unexpected stats: %+v", summary.Stats)
	}
	if len(summary.RecentDiaries) != 5 || summary.RecentDiaries[0].VisitDate.Day() != 7 {
		t.Fatalf("expected 5 most recent diaries, got %d", len(summary.RecentDiaries))
	}
	if len(summary.TopRated) != 4 {
		t.Fatalf("expected 4 diaries rated 4 or more, got %d", len(summary.TopRated))
	}
	for _, diary := range summary.TopRated {
		if diary.Rating < 4 {
			t.Fatalf("unexpected low rating in top rated: %d", diary.Rating)
		}
	}
	if summary.TopRated[0].Rating != 5 || summary.TopRated[0].VisitDate.Day() != 5 {
		t.Fatalf("expected newest 5-star diary first, got %+v", summary.TopRated[0])
	}
	if len(summary.Wishlist) != 1 || summary.Wishlist[0].DestinationSlug != "cagayan-de-oro" {
		t.Fatalf("unexpected wishlist: %+v", summary.Wishlist)
	}
	if len(summary.VisitedRegions) != 2 || summary.VisitedRegions[0].Region != "Davao Region" || summary.VisitedRegions[0].Count != 4 {
		t.Fatalf("unexpected visited regions: %+v", summary.VisitedRegions)
	}
}
