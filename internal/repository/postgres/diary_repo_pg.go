package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/njprem/Mindanao_travel_APP_BackEnd/internal/domain"
	"github.com/njprem/Mindanao_travel_APP_BackEnd/internal/repository/ports"
)

type DiaryRepository struct {
	db *sqlx.DB
}

func NewDiaryRepo(db *sqlx.DB) *DiaryRepository {
	return &DiaryRepository{db: db}
}

const diarySelect = `
	SELECT
		t.id,
		t.user_id,
		t.destination_id,
		t.notes,
		t.rating,
		t.visit_date,
		t.photos,
		t.created_at,
		t.updated_at,
		d.name AS destination_name,
		d.slug AS destination_slug,
		d.region AS destination_region
	FROM travel_diary t
	JOIN destination d ON d.id = t.destination_id
`

func (r *DiaryRepository) Create(ctx context.Context, diary *domain.TravelDiary) (*domain.TravelDiary, error) {
	const query = `
		INSERT INTO travel_diary (user_id, destination_id, notes, rating, visit_date, photos)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	var id uuid.UUID
	if err := r.db.GetContext(ctx, &id, query,
		diary.UserID,
		diary.DestinationID,
		diary.Notes,
		diary.Rating,
		diary.VisitDate,
		stringArray(diary.Photos),
	); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *DiaryRepository) Update(ctx context.Context, diary *domain.TravelDiary) (*domain.TravelDiary, error) {
	const query = `
		UPDATE travel_diary
		SET destination_id = $2, notes = $3, rating = $4, visit_date = $5, photos = $6, updated_at = NOW()
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query,
		diary.ID,
		diary.DestinationID,
		diary.Notes,
		diary.Rating,
		diary.VisitDate,
		stringArray(diary.Photos),
	)
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
	return r.GetByID(ctx, diary.ID)
}

func (r *DiaryRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.TravelDiary, error) {
	query := diarySelect + ` WHERE t.id = $1`
	var diary domain.TravelDiary
	if err := r.db.GetContext(ctx, &diary, query, id); err != nil {
		return nil, err
	}
	return &diary, nil
}

func (r *DiaryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM travel_diary WHERE id = $1`, id)
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

func (r *DiaryRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.TravelDiary, error) {
	query := diarySelect + `
		WHERE t.user_id = $1
		ORDER BY t.visit_date DESC, t.created_at DESC
		LIMIT $2 OFFSET $3
	`
	diaries := make([]domain.TravelDiary, 0)
	if err := r.db.SelectContext(ctx, &diaries, query, userID, limit, offset); err != nil {
		return nil, err
	}
	return diaries, nil
}

func (r *DiaryRepository) ListTopRatedByUser(ctx context.Context, userID uuid.UUID, minRating, limit int) ([]domain.TravelDiary, error) {
	query := diarySelect + `
		WHERE t.user_id = $1 AND t.rating >= $2
		ORDER BY t.rating DESC, t.visit_date DESC
		LIMIT $3
	`
	diaries := make([]domain.TravelDiary, 0)
	if err := r.db.SelectContext(ctx, &diaries, query, userID, minRating, limit); err != nil {
		return nil, err
	}
	return diaries, nil
}

func (r *DiaryRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM travel_diary WHERE user_id = $1`, userID); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *DiaryRepository) CountDistinctDestinations(ctx context.Context, userID uuid.UUID) (int, error) {
	const query = `SELECT COUNT(DISTINCT destination_id) FROM travel_diary WHERE user_id = $1`
	var count int
	if err := r.db.GetContext(ctx, &count, query, userID); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *DiaryRepository) VisitedRegions(ctx context.Context, userID uuid.UUID) ([]domain.RegionCount, error) {
	const query = `
		SELECT d.region, COUNT(*)::int AS destination_count
		FROM travel_diary t
		JOIN destination d ON d.id = t.destination_id
		WHERE t.user_id = $1
		GROUP BY d.region
		ORDER BY destination_count DESC, d.region ASC
	`
	regions := make([]domain.RegionCount, 0)
	if err := r.db.SelectContext(ctx, &regions, query, userID); err != nil {
		return nil, err
	}
	return regions, nil
}

var _ ports.DiaryRepository = (*DiaryRepository)(nil)
