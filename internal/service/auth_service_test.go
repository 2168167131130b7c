package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"google.golang.org/api/idtoken"

	"github.com/njprem/Mindanao_travel_APP_BackEnd/internal/domain"
	"github.com/njprem/Mindanao_travel_APP_BackEnd/internal/util"
)

type fakeUserRepo struct {
	createEmailEmail  string
	createEmailName   *string
	createEmailHash   []byte
	createEmailSalt   []byte
	createEmailResult *domain.User
	createEmailErr    error

	upsertGoogleEmail  string
	upsertGoogleName   *string
	upsertGoogleImg    *string
	upsertGoogleResult *domain.User
	upsertGoogleErr    error

	findByEmailInput  string
	findByEmailResult *domain.User
	findByEmailErr    error

	findByIDInput  uuid.UUID
	findByIDResult *domain.User
	findByIDErr    error

	deleteInput uuid.UUID
	deleteErr   error
}

func (f *fakeUserRepo) CreateEmailUser(ctx context.Context, email string, fullName *string, passwordHash, passwordSalt []byte) (*domain.User, error) {
	f.createEmailEmail = email
	f.createEmailName = fullName
	f.createEmailHash = append([]byte(nil), passwordHash...)
	f.createEmailSalt = append([]byte(nil), passwordSalt...)
	return f.createEmailResult, f.createEmailErr
}

func (f *fakeUserRepo) UpsertGoogleUser(ctx context.Context, email string, fullName *string, imageURL *string) (*domain.User, error) {
	f.upsertGoogleEmail = email
	f.upsertGoogleName = fullName
	f.upsertGoogleImg = imageURL
	return f.upsertGoogleResult, f.upsertGoogleErr
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	f.findByEmailInput = email
	return f.findByEmailResult, f.findByEmailErr
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	f.findByIDInput = id
	return f.findByIDResult, f.findByIDErr
}

func (f *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.deleteInput = id
	return f.deleteErr
}

type fakeSessionRepo struct {
	createdSessions []struct {
		userID    uuid.UUID
		token     string
		expiresAt time.Time
	}
	createErr error

	findActiveToken  string
	findActiveResult *domain.Session
	findActiveErr    error

	deactivatedToken string
	deactivateErr    error
}

func (f *fakeSessionRepo) CreateSession(ctx context.Context, userID uuid.UUID, token string, expiresAt time.Time) (*domain.Session, error) {
	f.createdSessions = append(f.createdSessions, struct {
		userID    uuid.UUID
		token     string
		expiresAt time.Time
	}{userID: userID, token: token, expiresAt: expiresAt})
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &domain.Session{ID: 1, UserID: userID, Token: token, ExpiresAt: expiresAt, IsActive: true}, nil
}

func (f *fakeSessionRepo) DeactivateSession(ctx context.Context, token string) error {
	f.deactivatedToken = token
	return f.deactivateErr
}

func (f *fakeSessionRepo) FindActiveSession(ctx context.Context, token string) (*domain.Session, error) {
	f.findActiveToken = token
	if f.findActiveErr != nil {
		return nil, f.findActiveErr
	}
	if f.findActiveResult != nil {
		return f.findActiveResult, nil
	}
	return &domain.Session{ID: 1, Token: token, IsActive: true, ExpiresAt: time.Now().Add(time.Hour)}, nil
}

func newAuthServiceForTests(users *fakeUserRepo, sessions *fakeSessionRepo) *AuthService {
	if sessions == nil {
		sessions = &fakeSessionRepo{}
	}
	return NewAuthService(users, sessions, util.NewJWTManager("test-secret", time.Hour), "test-audience")
}

func TestRegisterWithEmailSuccess(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	userRepo := &fakeUserRepo{
		createEmailResult: &domain.User{ID: userID, Email: "john@example.com", CreatedAt: time.Now(), UpdatedAt: time.Now()},
	}
	sessionRepo := &fakeSessionRepo{}
	svc := newAuthServiceForTests(userRepo, sessionRepo)

	name := "  John Doe "
	result, err := svc.RegisterWithEmail(ctx, "John@Example.com ", "password123", &name)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.User == nil || result.User.ID != userID {
		t.Fatalf("unexpected user in result: %+v", result.User)
	}
	if userRepo.createEmailEmail != "john@example.com" {
		t.Fatalf("email should be normalized, got %q", userRepo.createEmailEmail)
	}
	if userRepo.createEmailName == nil || *userRepo.createEmailName != "John Doe" {
		t.Fatalf("expected trimmed full name, got %v", userRepo.createEmailName)
	}
	if len(userRepo.createEmailHash) == 0 || len(userRepo.createEmailSalt) == 0 {
		t.Fatalf("expected password hash and salt to be stored")
	}
	if len(sessionRepo.createdSessions) != 1 || sessionRepo.createdSessions[0].token != result.Token {
		t.Fatalf("expected a session for the issued token")
	}
}

func TestRegisterWithEmailWeakPassword(t *testing.T) {
	userRepo := &fakeUserRepo{}
	svc := newAuthServiceForTests(userRepo, nil)

	_, err := svc.RegisterWithEmail(context.Background(), "weak@example.com", "weakpass", nil)
	if !errors.Is(err, ErrPasswordTooWeak) {
		t.Fatalf("expected ErrPasswordTooWeak, got %v", err)
	}
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected weak password to be a validation error")
	}
	if len(userRepo.createEmailHash) != 0 {
		t.Fatal("expected no password hash to be stored for invalid password")
	}
}

func TestRegisterWithEmailInvalidEmail(t *testing.T) {
	svc := newAuthServiceForTests(&fakeUserRepo{}, nil)

	_, err := svc.RegisterWithEmail(context.Background(), "not-an-email", "password123", nil)
	if !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}
}

func TestRegisterWithEmailEmailExists(t *testing.T) {
	userRepo := &fakeUserRepo{createEmailErr: &pgconn.PgError{Code: "23505"}}
	sessionRepo := &fakeSessionRepo{}
	svc := newAuthServiceForTests(userRepo, sessionRepo)

	_, err := svc.RegisterWithEmail(context.Background(), "duplicate@example.com", "ValidPass123", nil)
	if !errors.Is(err, ErrEmailAlreadyUsed) {
		t.Fatalf("expected ErrEmailAlreadyUsed, got %v", err)
	}
	if !errors.Is(err, ErrDuplicateEntry) {
		t.Fatalf("expected duplicate email to be a duplicate entry")
	}
	if len(sessionRepo.createdSessions) != 0 {
		t.Fatalf("expected no session to be created on error")
	}
}

func TestLoginWithEmailInvalidCredentials(t *testing.T) {
	t.Run("user not found", func(t *testing.T) {
		svc := newAuthServiceForTests(&fakeUserRepo{findByEmailErr: sql.ErrNoRows}, nil)

		_, err := svc.LoginWithEmail(context.Background(), "none@example.com", "password1")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("password mismatch", func(t *testing.T) {
		hash, salt, _ := util.DerivePassword("different1")
		user := &domain.User{ID: uuid.New(), Email: "test@example.com", PasswordHash: hash, PasswordSalt: salt}
		svc := newAuthServiceForTests(&fakeUserRepo{findByEmailResult: user}, nil)

		_, err := svc.LoginWithEmail(context.Background(), "test@example.com", "password1")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("google-only account", func(t *testing.T) {
		user := &domain.User{ID: uuid.New(), Email: "g@example.com"}
		svc := newAuthServiceForTests(&fakeUserRepo{findByEmailResult: user}, nil)

		_, err := svc.LoginWithEmail(context.Background(), "g@example.com", "anything1")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})
}

func TestLoginWithEmailSuccess(t *testing.T) {
	hash, salt, _ := util.DerivePassword("right-password1")
	user := &domain.User{ID: uuid.New(), Email: "test@example.com", PasswordHash: hash, PasswordSalt: salt}
	userRepo := &fakeUserRepo{findByEmailResult: user}
	sessionRepo := &fakeSessionRepo{}
	svc := newAuthServiceForTests(userRepo, sessionRepo)

	result, err := svc.LoginWithEmail(context.Background(), "Test@Example.com", "right-password1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if userRepo.findByEmailInput != "test@example.com" {
		t.Fatalf("expected normalized lookup, got %q", userRepo.findByEmailInput)
	}
	if len(sessionRepo.createdSessions) != 1 {
		t.Fatalf("expected session to be created, got %d", len(sessionRepo.createdSessions))
	}
	if result.User == nil || result.User.ID != user.ID {
		t.Fatalf("unexpected user in response")
	}
}

func TestLoginWithGoogle(t *testing.T) {
	user := &domain.User{ID: uuid.New(), Email: "jane@example.com"}
	userRepo := &fakeUserRepo{upsertGoogleResult: user}
	svc := newAuthServiceForTests(userRepo, nil)
	svc.validateGoogle = func(ctx context.Context, token, audience string) (*idtoken.Payload, error) {
		if token != "google-token" || audience != "test-audience" {
			return nil, errors.New("bad token")
		}
		return &idtoken.Payload{Claims: map[string]interface{}{
			"email":   "Jane@Example.com",
			"name":    "Jane Smith",
			"picture": "https://example.com/jane.png",
		}}, nil
	}

	result, err := svc.LoginWithGoogle(context.Background(), "google-token")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.User.ID != user.ID {
		t.Fatalf("unexpected user")
	}
	if userRepo.upsertGoogleEmail != "jane@example.com" {
		t.Fatalf("expected normalized google email, got %q", userRepo.upsertGoogleEmail)
	}
	if userRepo.upsertGoogleName == nil || *userRepo.upsertGoogleName != "Jane Smith" {
		t.Fatalf("expected google name to be forwarded")
	}

	if _, err := svc.LoginWithGoogle(context.Background(), "forged"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for rejected token, got %v", err)
	}
}

func TestAuthenticateSuccess(t *testing.T) {
	user := &domain.User{ID: uuid.New(), Email: "john@example.com"}
	userRepo := &fakeUserRepo{findByIDResult: user}
	sessionRepo := &fakeSessionRepo{}
	svc := newAuthServiceForTests(userRepo, sessionRepo)

	token, _, err := svc.jwt.Generate(user.ID, user.Email)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	got, err := svc.Authenticate(context.Background(), token)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got.ID != user.ID {
		t.Fatalf("expected user %s, got %s", user.ID, got.ID)
	}
	if sessionRepo.findActiveToken != token {
		t.Fatalf("expected active session lookup for token")
	}
}

func TestAuthenticateRejectsRevokedSession(t *testing.T) {
	user := &domain.User{ID: uuid.New(), Email: "john@example.com"}
	svc := newAuthServiceForTests(&fakeUserRepo{findByIDResult: user}, &fakeSessionRepo{findActiveErr: sql.ErrNoRows})

	token, _, _ := svc.jwt.Generate(user.ID, user.Email)
	if _, err := svc.Authenticate(context.Background(), token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), "garbage"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for malformed token, got %v", err)
	}
}

func TestLogoutDeactivatesSession(t *testing.T) {
	sessionRepo := &fakeSessionRepo{}
	svc := newAuthServiceForTests(&fakeUserRepo{}, sessionRepo)

	if err := svc.Logout(context.Background(), "tok"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if sessionRepo.deactivatedToken != "tok" {
		t.Fatalf("expected session to be deactivated")
	}
}

func TestDeleteAccount(t *testing.T) {
	userID := uuid.New()
	userRepo := &fakeUserRepo{}
	svc := newAuthServiceForTests(userRepo, nil)

	if err := svc.DeleteAccount(context.Background(), userID); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if userRepo.deleteInput != userID {
		t.Fatalf("expected delete for %s", userID)
	}

	userRepo.deleteErr = sql.ErrNoRows
	if err := svc.DeleteAccount(context.Background(), userID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDeleteAccountNotifiesOnlyOnSuccess(t *testing.T) {
	userRepo := &fakeUserRepo{}
	svc := newAuthServiceForTests(userRepo, nil)
	calls := 0
	svc.OnAccountDeleted(func(context.Context) { calls++ })

	if err := svc.DeleteAccount(context.Background(), uuid.New()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected one notification after delete, got %d", calls)
	}

	userRepo.deleteErr = sql.ErrNoRows
	_ = svc.DeleteAccount(context.Background(), uuid.New())
	if calls != 1 {
		t.Fatalf("expected no notification for failed delete, got %d", calls)
	}
}
