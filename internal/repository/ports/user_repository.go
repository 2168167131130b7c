package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/njprem/Mindanao_travel_APP_BackEnd/internal/domain"
)

type UserRepository interface {
	CreateEmailUser(ctx context.Context, email string, fullName *string, passwordHash, passwordSalt []byte) (*domain.User, error)
	UpsertGoogleUser(ctx context.Context, email string, fullName *string, imageURL *string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
