//go:build integration

package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/njprem/Mindanao_travel_APP_BackEnd/internal/domain"
)

// Run with: TEST_DATABASE_URL=postgres://... go test -tags integration ./internal/repository/postgres/
func openTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	db, err := New(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, Migrate(context.Background(), db))
	return db
}

func seedDestination(t *testing.T, db *sqlx.DB) *domain.Destination {
	t.Helper()
	slug := "test-" + uuid.NewString()
	dest, err := NewDestinationRepo(db).Upsert(context.Background(), &domain.Destination{
		Name:   "Samal Island",
		Slug:   slug,
		Region: "Davao",
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = db.Exec(`DELETE FROM destination WHERE id = $1`, dest.ID)
	})
	return dest
}

func seedUser(t *testing.T, db *sqlx.DB) *domain.User {
	t.Helper()
	user, err := NewUserRepo(db).CreateEmailUser(context.Background(), uuid.NewString()+"@example.com", nil, []byte("h"), []byte("s"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = db.Exec(`DELETE FROM user_account WHERE id = $1`, user.ID)
	})
	return user
}

func TestAggregateByDestinationCountsLiveReviewsOnly(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	reviews := NewReviewRepo(db)
	dest := seedDestination(t, db)

	var last *domain.User
	for _, rating := range []int{5, 5, 4, 3} {
		last = seedUser(t, db)
		_, err := reviews.Create(ctx, &domain.Review{
			UserID:        last.ID,
			DestinationID: dest.ID,
			Rating:        rating,
			Title:         "Island hopping",
			Content:       "Clear water and friendly boatmen all day.",
		})
		require.NoError(t, err)
	}

	deleted, err := reviews.Create(ctx, &domain.Review{
		UserID:        seedUser(t, db).ID,
		DestinationID: dest.ID,
		Rating:        1,
		Title:         "Rainy trip",
		Content:       "Ferry was cancelled twice because of weather.",
	})
	require.NoError(t, err)
	require.NoError(t, reviews.SoftDelete(ctx, deleted.ID))

	agg, err := reviews.AggregateByDestination(ctx, dest.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, agg.TotalReviews)
	assert.InDelta(t, 4.25, agg.AverageRating, 1e-9)
	assert.Equal(t, map[int]int{1: 0, 2: 0, 3: 1, 4: 1, 5: 2}, agg.RatingCounts)

	// Removing an account takes its review out of the aggregate.
	require.NoError(t, NewUserRepo(db).Delete(ctx, last.ID))
	agg, err = reviews.AggregateByDestination(ctx, dest.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, agg.TotalReviews)
	assert.InDelta(t, 14.0/3.0, agg.AverageRating, 1e-9)
	assert.Equal(t, 0, agg.RatingCounts[3])
}

func TestAggregateByDestinationWithoutReviews(t *testing.T) {
	db := openTestDB(t)
	dest := seedDestination(t, db)

	agg, err := NewReviewRepo(db).AggregateByDestination(context.Background(), dest.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, agg.TotalReviews)
	assert.Zero(t, agg.AverageRating)
	assert.Equal(t, map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}, agg.RatingCounts)
}
