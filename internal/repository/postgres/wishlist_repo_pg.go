package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/njprem/Mindanao_travel_APP_BackEnd/internal/domain"
	"github.com/njprem/Mindanao_travel_APP_BackEnd/internal/repository/ports"
)

type WishlistRepository struct {
	db *sqlx.DB
}

func NewWishlistRepo(db *sqlx.DB) *WishlistRepository {
	return &WishlistRepository{db: db}
}

const wishlistColumns = `id, user_id, destination_id, notes, priority, planned_date, added_at, updated_at`

// Add returns sql.ErrNoRows when the (user, destination) pair already exists.
func (r *WishlistRepository) Add(ctx context.Context, entry *domain.Wishlist) (*domain.Wishlist, error) {
	const query = `
		INSERT INTO wishlist (user_id, destination_id, notes, priority, planned_date)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, destination_id) DO NOTHING
		RETURNING ` + wishlistColumns

	var stored domain.Wishlist
	if err := r.db.GetContext(ctx, &stored, query,
		entry.UserID,
		entry.DestinationID,
		nullString(entry.Notes),
		entry.Priority,
		nullTime(entry.PlannedDate),
	); err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *WishlistRepository) Update(ctx context.Context, entry *domain.Wishlist) (*domain.Wishlist, error) {
	const query = `
		UPDATE wishlist
		SET notes = $2, priority = $3, planned_date = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + wishlistColumns

	var stored domain.Wishlist
	if err := r.db.GetContext(ctx, &stored, query,
		entry.ID,
		nullString(entry.Notes),
		entry.Priority,
		nullTime(entry.PlannedDate),
	); err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *WishlistRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Wishlist, error) {
	const query = `SELECT ` + wishlistColumns + ` FROM wishlist WHERE id = $1`
	var entry domain.Wishlist
	if err := r.db.GetContext(ctx, &entry, query, id); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *WishlistRepository) FindByUserAndDestination(ctx context.Context, userID, destinationID uuid.UUID) (*domain.Wishlist, error) {
	const query = `SELECT ` + wishlistColumns + ` FROM wishlist WHERE user_id = $1 AND destination_id = $2`
	var entry domain.Wishlist
	if err := r.db.GetContext(ctx, &entry, query, userID, destinationID); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *WishlistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM wishlist WHERE id = $1`, id)
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

func (r *WishlistRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.WishlistItem, error) {
	const query = `
		SELECT
			w.id,
			w.user_id,
			w.destination_id,
			w.notes,
			w.priority,
			w.planned_date,
			w.added_at,
			w.updated_at,
			d.name AS destination_name,
			d.slug AS destination_slug,
			d.region AS destination_region,
			d.image_url AS destination_image_url
		FROM wishlist w
		JOIN destination d ON d.id = w.destination_id
		WHERE w.user_id = $1
		ORDER BY w.priority DESC, w.added_at DESC, w.id DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.QueryxContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.WishlistItem, 0)
	for rows.Next() {
		var item domain.WishlistItem
		if err := rows.StructScan(&item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *WishlistRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM wishlist WHERE user_id = $1`, userID); err != nil {
		return 0, err
	}
	return count, nil
}

var _ ports.WishlistRepository = (*WishlistRepository)(nil)
