package postgres

import (
	"context"
	"database/sql"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/njprem/Mindanao_travel_APP_BackEnd/internal/domain"
	"github.com/njprem/Mindanao_travel_APP_BackEnd/internal/repository/ports"
)

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepo(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, email, full_name, user_image_url, password_hash, password_salt, created_at, updated_at`

func (r *UserRepository) CreateEmailUser(ctx context.Context, email string, fullName *string, passwordHash, passwordSalt []byte) (*domain.User, error) {
	const query = `
        INSERT INTO user_account (email, full_name, password_hash, password_salt)
        VALUES ($1, $2, $3, $4)
        RETURNING ` + userColumns

	var user domain.User
	if err := r.db.GetContext(ctx, &user, query, strings.ToLower(email), nullString(fullName), passwordHash, passwordSalt); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) UpsertGoogleUser(ctx context.Context, email string, fullName *string, imageURL *string) (*domain.User, error) {
	const query = `
        INSERT INTO user_account (email, full_name, user_image_url)
        VALUES ($1, $2, $3)
        ON CONFLICT (email) DO UPDATE
        SET full_name = COALESCE(EXCLUDED.full_name, user_account.full_name),
            user_image_url = COALESCE(EXCLUDED.user_image_url, user_account.user_image_url),
            updated_at = NOW()
        RETURNING ` + userColumns

	var user domain.User
	if err := r.db.GetContext(ctx, &user, query, strings.ToLower(email), nullString(fullName), nullString(imageURL)); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	const query = `SELECT ` + userColumns + ` FROM user_account WHERE email = $1`
	var user domain.User
	if err := r.db.GetContext(ctx, &user, query, strings.ToLower(email)); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	const query = `SELECT ` + userColumns + ` FROM user_account WHERE id = $1`
	var user domain.User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		return nil, err
	}
	return &user, nil
}

// Delete removes the account; diaries, wishlist entries, reviews and sessions cascade.
func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM user_account WHERE id = $1`, id)
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

var _ ports.UserRepository = (*UserRepository)(nil)
