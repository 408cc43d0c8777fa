package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

func signToken(t *testing.T, secret, userID string, ttl time.Duration) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  userID,
		"exp": time.Now().Add(ttl).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func runAuth(t *testing.T, header string) (*httptest.ResponseRecorder, string, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	var gotUserID string
	mw := Auth("secret")
	handler := mw(func(c echo.Context) error {
		called = true
		gotUserID, _ = c.Get("userID").(string)
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, gotUserID, called
}

func TestAuthMiddleware_RawToken(t *testing.T) {
	signed := signToken(t, "secret", "user-1", time.Hour)

	rec, userID, called := runAuth(t, signed)
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if userID != "user-1" {
		t.Fatalf("expected userID user-1, got %q", userID)
	}
}

func TestAuthMiddleware_BearerPrefixTolerated(t *testing.T) {
	signed := signToken(t, "secret", "user-1", time.Hour)

	rec, userID, called := runAuth(t, "Bearer "+signed)
	if !called || rec.Code != http.StatusOK || userID != "user-1" {
		t.Fatalf("bearer-prefixed token rejected: code=%d userID=%q", rec.Code, userID)
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	rec, _, called := runAuth(t, "")
	if called {
		t.Fatalf("next called without a token")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_MalformedToken(t *testing.T) {
	rec, _, called := runAuth(t, "not-a-token")
	if called {
		t.Fatalf("next called with a malformed token")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_WrongSecret(t *testing.T) {
	signed := signToken(t, "other-secret", "user-1", time.Hour)

	rec, _, called := runAuth(t, signed)
	if called {
		t.Fatalf("next called with a token signed by the wrong secret")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	signed := signToken(t, "secret", "user-1", -time.Minute)

	rec, _, called := runAuth(t, signed)
	if called {
		t.Fatalf("next called with an expired token")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_UnsignedAlgorithmRejected(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"id":  "user-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	rec, _, called := runAuth(t, signed)
	if called {
		t.Fatalf("next called with an unsigned token")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_MissingSubjectClaim(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	rec, _, called := runAuth(t, signed)
	if called {
		t.Fatalf("next called without a subject claim")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_PreservesSubjectIdentity(t *testing.T) {
	// A token issued for one user must never authenticate as another.
	tokenA := signToken(t, "secret", "user-a", time.Hour)
	tokenB := signToken(t, "secret", "user-b", time.Hour)

	_, idA, _ := runAuth(t, tokenA)
	_, idB, _ := runAuth(t, tokenB)
	if idA != "user-a" || idB != "user-b" {
		t.Fatalf("subject identity corrupted: %q %q", idA, idB)
	}
}
