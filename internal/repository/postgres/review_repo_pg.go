package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/njprem/Mindanao_travel_APP_BackEnd/internal/domain"
	"github.com/njprem/Mindanao_travel_APP_BackEnd/internal/repository/ports"
)

type ReviewRepository struct {
	db *sqlx.DB
}

func NewReviewRepo(db *sqlx.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

const reviewColumns = `
	r.id,
	r.user_id,
	r.destination_id,
	r.rating,
	r.title,
	r.content,
	r.helpful_count,
	r.created_at,
	r.updated_at,
	r.deleted_at,
	u.full_name AS reviewer_name,
	u.email AS reviewer_email
`

func (r *ReviewRepository) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	const query = `
		INSERT INTO review (user_id, destination_id, rating, title, content, helpful_count)
		VALUES (:user_id, :destination_id, :rating, :title, :content, 0)
		RETURNING id
	`
	args := map[string]any{
		"user_id":        review.UserID,
		"destination_id": review.DestinationID,
		"rating":         review.Rating,
		"title":          review.Title,
		"content":        review.Content,
	}

	rows, err := r.db.NamedQueryContext(ctx, query, args)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, sql.ErrNoRows
	}
	var id uuid.UUID
	if err := rows.Scan(&id); err != nil {
		return nil, err
	}
	rows.Close()
	return r.GetByID(ctx, id)
}

func (r *ReviewRepository) Update(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	const query = `
		UPDATE review
		SET rating = $2, title = $3, content = $4, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`
	result, err := r.db.ExecContext(ctx, query, review.ID, review.Rating, review.Title, review.Content)
	if err != nil {
		return nil, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, sql.ErrNoRows
	}
	return r.GetByID(ctx, review.ID)
}

func (r *ReviewRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	query := `SELECT ` + reviewColumns + `
		FROM review r
		JOIN user_account u ON u.id = r.user_id
		WHERE r.id = $1
	`
	var review domain.Review
	if err := r.db.GetContext(ctx, &review, query, id); err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepository) FindByUserAndDestination(ctx context.Context, userID, destinationID uuid.UUID) (*domain.Review, error) {
	query := `SELECT ` + reviewColumns + `
		FROM review r
		JOIN user_account u ON u.id = r.user_id
		WHERE r.user_id = $1 AND r.destination_id = $2 AND r.deleted_at IS NULL
	`
	var review domain.Review
	if err := r.db.GetContext(ctx, &review, query, userID, destinationID); err != nil {
		return nil, err
	}
	return &review, nil
}

// ListByDestination returns live reviews, most helpful first.
func (r *ReviewRepository) ListByDestination(ctx context.Context, destinationID uuid.UUID, limit, offset int) ([]domain.Review, error) {
	query := `SELECT ` + reviewColumns + `
		FROM review r
		JOIN user_account u ON u.id = r.user_id
		WHERE r.destination_id = $1 AND r.deleted_at IS NULL
		ORDER BY r.helpful_count DESC, r.created_at DESC, r.id DESC
		LIMIT $2 OFFSET $3
	`
	reviews := make([]domain.Review, 0)
	if err := r.db.SelectContext(ctx, &reviews, query, destinationID, limit, offset); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *ReviewRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Review, error) {
	query := `SELECT ` + reviewColumns + `
		FROM review r
		JOIN user_account u ON u.id = r.user_id
		WHERE r.user_id = $1 AND r.deleted_at IS NULL
		ORDER BY r.created_at DESC, r.id DESC
		LIMIT $2 OFFSET $3
	`
	reviews := make([]domain.Review, 0)
	if err := r.db.SelectContext(ctx, &reviews, query, userID, limit, offset); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *ReviewRepository) AggregateByDestination(ctx context.Context, destinationID uuid.UUID) (*domain.ReviewAggregate, error) {
	const query = `
		SELECT
			COUNT(*)::int AS total_reviews,
			COALESCE(AVG(r.rating)::float8, 0) AS average_rating,
			COUNT(*) FILTER (WHERE r.rating = 1)::int AS rating_1,
			COUNT(*) FILTER (WHERE r.rating = 2)::int AS rating_2,
			COUNT(*) FILTER (WHERE r.rating = 3)::int AS rating_3,
			COUNT(*) FILTER (WHERE r.rating = 4)::int AS rating_4,
			COUNT(*) FILTER (WHERE r.rating = 5)::int AS rating_5
		FROM review r
		WHERE r.destination_id = $1 AND r.deleted_at IS NULL
	`

	var row struct {
		Total   int     `db:"total_reviews"`
		Average float64 `db:"average_rating"`
		Rating1 int     `db:"rating_1"`
		Rating2 int     `db:"rating_2"`
		Rating3 int     `db:"rating_3"`
		Rating4 int     `db:"rating_4"`
		Rating5 int     `db:"rating_5"`
	}
	if err := r.db.GetContext(ctx, &row, query, destinationID); err != nil {
		return nil, err
	}

	return &domain.ReviewAggregate{
		DestinationID: destinationID,
		AverageRating: row.Average,
		TotalReviews:  row.Total,
		RatingCounts: map[int]int{
			1: row.Rating1,
			2: row.Rating2,
			3: row.Rating3,
			4: row.Rating4,
			5: row.Rating5,
		},
	}, nil
}

// IncrementHelpful bumps the counter in a single statement and returns the new value.
func (r *ReviewRepository) IncrementHelpful(ctx context.Context, id uuid.UUID) (int, error) {
	const query = `
		UPDATE review
		SET helpful_count = helpful_count + 1
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING helpful_count
	`
	var count int
	if err := r.db.GetContext(ctx, &count, query, id); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ReviewRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	const query = `
		UPDATE review
		SET deleted_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *ReviewRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	const query = `SELECT COUNT(*) FROM review WHERE user_id = $1 AND deleted_at IS NULL`
	var count int
	if err := r.db.GetContext(ctx, &count, query, userID); err != nil {
		return 0, err
	}
	return count, nil
}

var _ ports.ReviewRepository = (*ReviewRepository)(nil)
