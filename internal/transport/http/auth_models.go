package http

import (
	"time"

	"github.com/njprem/Mindanao_travel_APP_BackEnd/internal/domain"
	"github.com/njprem/Mindanao_travel_APP_BackEnd/internal/service"
)

// AuthUser is the public view of an account.
type AuthUser struct {
	ID        string    `json:"id" example:"9fd13fd2-63c5-4f29-a210-4a1a8e285f74"`
	Email     string    `json:"email" example:"traveler@example.com"`
	FullName  *string   `json:"full_name,omitempty" example:"Juan dela Cruz"`
	ImageURL  *string   `json:"image_url,omitempty" example:"https://cdn.example.com/avatar.png"`
	CreatedAt time.Time `json:"created_at" example:"2024-01-01T12:00:00Z"`
	UpdatedAt time.Time `json:"updated_at" example:"2024-01-02T09:30:00Z"`
}

type AuthTokenResponse struct {
	Token     string   `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	ExpiresAt string   `json:"expires_at" example:"2024-01-02T09:30:00Z"`
	User      AuthUser `json:"user"`
}

type AuthUserResponse struct {
	User AuthUser `json:"user"`
}

type RegisterRequest struct {
	Email    string  `json:"email" example:"traveler@example.com"`
	Password string  `json:"password" example:"Durian2024"`
	FullName *string `json:"full_name" example:"Juan dela Cruz"`
}

type LoginRequest struct {
	Email    string `json:"email" example:"traveler@example.com"`
	Password string `json:"password" example:"Durian2024"`
}

type GoogleLoginRequest struct {
	IDToken string `json:"id_token" example:"eyJhbGciOiJSUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

func toAuthUser(user *domain.User) AuthUser {
	return AuthUser{
		ID:        user.ID.String(),
		Email:     user.Email,
		FullName:  user.FullName,
		ImageURL:  user.ImageURL,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func toAuthTokenResponse(result *service.AuthResult) AuthTokenResponse {
	return AuthTokenResponse{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt.UTC().Format(time.RFC3339),
		User:      toAuthUser(result.User),
	}
}
