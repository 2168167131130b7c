package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/api/idtoken"

	"github.com/njprem/Mindanao_travel_APP_BackEnd/internal/domain"
	"github.com/njprem/Mindanao_travel_APP_BackEnd/internal/repository/ports"
	"github.com/njprem/Mindanao_travel_APP_BackEnd/internal/util"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrInvalidEmail       = fmt.Errorf("%w: invalid email address", ErrValidation)
	ErrPasswordTooWeak    = fmt.Errorf("%w: password too weak", ErrValidation)
	ErrEmailAlreadyUsed   = fmt.Errorf("%w: email already registered", ErrDuplicateEntry)
	ErrGoogleDisabled     = errors.New("google sign-in is not configured")
)

type AuthResult struct {
	User      *domain.User `json:"user"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
}

type googleValidator func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

type AuthService struct {
	users          ports.UserRepository
	sessions       ports.SessionRepository
	jwt            *util.JWTManager
	googleAudience string
	validateGoogle googleValidator
	onDelete       func(ctx context.Context)
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionRepository, jwt *util.JWTManager, googleAudience string) *AuthService {
	return &AuthService{
		users:          users,
		sessions:       sessions,
		jwt:            jwt,
		googleAudience: strings.TrimSpace(googleAudience),
		validateGoogle: idtoken.Validate,
	}
}

func (s *AuthService) RegisterWithEmail(ctx context.Context, email, password string, fullName *string) (*AuthResult, error) {
	normalized, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}
	if err := util.ValidatePassword(password); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrPasswordTooWeak, err.Error())
	}

	hash, salt, err := util.DerivePassword(password)
	if err != nil {
		return nil, err
	}
	user, err := s.users.CreateEmailUser(ctx, normalized, normalizeString(fullName), hash, salt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailAlreadyUsed
		}
		return nil, err
	}
	return s.issueSession(ctx, user)
}

func (s *AuthService) LoginWithEmail(ctx context.Context, email, password string) (*AuthResult, error) {
	normalized, err := normalizeEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	user, err := s.users.FindByEmail(ctx, normalized)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !util.VerifyPassword(password, user.PasswordSalt, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return s.issueSession(ctx, user)
}

func (s *AuthService) LoginWithGoogle(ctx context.Context, idToken string) (*AuthResult, error) {
	if s.googleAudience == "" {
		return nil, ErrGoogleDisabled
	}
	payload, err := s.validateGoogle(ctx, strings.TrimSpace(idToken), s.googleAudience)
	if err != nil {
		return nil, ErrInvalidToken
	}
	email, _ := payload.Claims["email"].(string)
	normalized, err := normalizeEmail(email)
	if err != nil {
		return nil, ErrInvalidToken
	}
	name, _ := payload.Claims["name"].(string)
	picture, _ := payload.Claims["picture"].(string)

	user, err := s.users.UpsertGoogleUser(ctx, normalized, normalizeString(&name), normalizeString(&picture))
	if err != nil {
		return nil, err
	}
	return s.issueSession(ctx, user)
}

// Authenticate resolves a bearer token to its user. The token must be a valid
// JWT and still have an active session row.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.jwt.Parse(token)
	if err != nil {
		return nil, ErrInvalidToken
	}
	session, err := s.sessions.FindActiveSession(ctx, token)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	if session.UserID != uuid.Nil && session.UserID != claims.UserID {
		return nil, ErrInvalidToken
	}
	user, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.DeactivateSession(ctx, token)
}

// OnAccountDeleted registers fn to run after an account is removed. The
// cascade drops the user's reviews, so rating caches need clearing.
func (s *AuthService) OnAccountDeleted(fn func(ctx context.Context)) {
	s.onDelete = fn
}

// DeleteAccount removes the user. Diaries, wishlist entries, reviews and
// sessions go with it through the foreign keys.
func (s *AuthService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	if err := s.users.Delete(ctx, userID); err != nil {
		if isNotFound(err) {
			return ErrUserNotFound
		}
		return err
	}
	if s.onDelete != nil {
		s.onDelete(ctx)
	}
	return nil
}

func (s *AuthService) issueSession(ctx context.Context, user *domain.User) (*AuthResult, error) {
	token, expiresAt, err := s.jwt.Generate(user.ID, user.Email)
	if err != nil {
		return nil, err
	}
	if _, err := s.sessions.CreateSession(ctx, user.ID, token, expiresAt); err != nil {
		return nil, err
	}
	return &AuthResult{User: user, Token: token, ExpiresAt: expiresAt}, nil
}

func normalizeEmail(email string) (string, error) {
	trimmed := strings.ToLower(strings.TrimSpace(email))
	if trimmed == "" {
		return "", ErrInvalidEmail
	}
	addr, err := mail.ParseAddress(trimmed)
	if err != nil || addr.Address != trimmed {
		return "", ErrInvalidEmail
	}
	return trimmed, nil
}

func normalizeString(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
