package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskloop/todo-api/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	byEmail map[string]*domain.User
	nextID  int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byEmail: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.byEmail[user.Email]; exists {
		return nil, domain.ErrEmailTaken
	}
	r.nextID++
	created := cloneUser(user)
	created.ID = "user-" + strconv.Itoa(r.nextID)
	r.byEmail[created.Email] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func parseClaims(t *testing.T, token, secret string) jwt.MapClaims {
	t.Helper()
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	return claims
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	token, err := svc.Register(context.Background(), "Test User", "test@example.com", "password123")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}

	stored := repo.byEmail["test@example.com"]
	if stored == nil {
		t.Fatalf("user not persisted")
	}
	if stored.PasswordHash == "password123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("password123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}

	claims := parseClaims(t, token, "secret")
	if claims["id"] != stored.ID {
		t.Fatalf("expected subject %s, got %v", stored.ID, claims["id"])
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	if _, err := svc.Register(context.Background(), "Test User", "test@example.com", "password123"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), "Other Name", "test@example.com", "different1"); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
	if len(repo.byEmail) != 1 {
		t.Fatalf("expected exactly one user, got %d", len(repo.byEmail))
	}
}

func TestAuthService_Register_InsertRace(t *testing.T) {
	// A concurrent registration can slip between the lookup and the insert;
	// the repository's unique-index error must surface as ErrEmailTaken.
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	repo.byEmail["test@example.com"] = &domain.User{ID: "u1", Email: "test@example.com"}
	if _, err := svc.Register(context.Background(), "Test User", "test@example.com", "password123"); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	if _, err := svc.Register(context.Background(), "Carol", "carol@example.com", "s3cret9"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, err := svc.Login(context.Background(), "carol@example.com", "s3cret9")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	claims := parseClaims(t, token, "secret")
	if claims["id"] != repo.byEmail["carol@example.com"].ID {
		t.Fatalf("token bound to wrong subject: %v", claims["id"])
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		t.Fatalf("missing expiry: %v", err)
	}
	if until := time.Until(exp.Time); until <= 0 || until > time.Hour {
		t.Fatalf("expected expiry within one hour, got %v", until)
	}
}

func TestAuthService_Login_WrongPasswordAndUnknownEmailIndistinguishable(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	_, _ = svc.Register(context.Background(), "Dave", "dave@example.com", "goodpass")

	_, errWrongPassword := svc.Login(context.Background(), "dave@example.com", "badpass")
	_, errUnknownEmail := svc.Login(context.Background(), "ghost@example.com", "whatever")

	if !errors.Is(errWrongPassword, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", errWrongPassword)
	}
	if !errors.Is(errUnknownEmail, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", errUnknownEmail)
	}
	if errWrongPassword.Error() != errUnknownEmail.Error() {
		t.Fatalf("error messages differ: %q vs %q", errWrongPassword, errUnknownEmail)
	}
}

func TestAuthService_TokensAreSubjectBound(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	tokenA, _ := svc.Register(context.Background(), "A", "a@example.com", "password1")
	tokenB, _ := svc.Register(context.Background(), "B", "b@example.com", "password2")

	claimsA := parseClaims(t, tokenA, "secret")
	claimsB := parseClaims(t, tokenB, "secret")
	if claimsA["id"] == claimsB["id"] {
		t.Fatalf("tokens for different users carry the same subject %v", claimsA["id"])
	}
}

func TestAuthService_DefaultTTL(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", 0)
	if svc.tokenTTL != time.Hour {
		t.Fatalf("expected 1h default TTL, got %v", svc.tokenTTL)
	}
}
