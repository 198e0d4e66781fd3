package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/GustavoTiagoSilva/simplified-twitter/internal/core/domain"
	"github.com/GustavoTiagoSilva/simplified-twitter/internal/core/token"
)

var (
	mwKey    = []byte("middleware-test-key")
	mwIssuer = "simplified-twitter"
)

func signedToken(t *testing.T, ttl time.Duration) string {
	t.Helper()
	claims := token.New(
		"2b1f8c1e-55aa-4b83-bb0d-3f5f6d1c9e10",
		[]domain.Role{{ID: 1, Name: domain.RoleBasic}},
		mwIssuer,
		time.Now().UTC(),
		ttl,
	)
	signed, err := token.Issue(claims, mwKey)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	return signed
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, time.Minute))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := Auth(mwKey, mwIssuer)
	handler := mw(func(c echo.Context) error {
		called = true
		claims, ok := c.Get(ClaimsKey).(token.Claims)
		if !ok {
			t.Fatalf("claims not set")
		}
		if claims.Subject != "2b1f8c1e-55aa-4b83-bb0d-3f5f6d1c9e10" {
			t.Fatalf("unexpected subject: %q", claims.Subject)
		}
		if claims.Scope != domain.RoleBasic {
			t.Fatalf("unexpected scope: %q", claims.Scope)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(mwKey, mwIssuer)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_InvalidHeaderFormat(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(mwKey, mwIssuer)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_RejectedTokens(t *testing.T) {
	expired := signedToken(t, time.Nanosecond)
	time.Sleep(time.Millisecond)

	wrongIssuerClaims := token.New("sub", nil, "someone-else", time.Now().UTC(), time.Minute)
	wrongIssuer, err := token.Issue(wrongIssuerClaims, mwKey)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	tests := []struct {
		name  string
		value string
	}{
		{"garbage", "not-a-token"},
		{"expired", expired},
		{"wrong issuer", wrongIssuer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Authorization", "Bearer "+tt.value)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			mw := Auth(mwKey, mwIssuer)
			handler := mw(func(c echo.Context) error {
				t.Fatalf("should not reach next")
				return nil
			})

			if err := handler(c); err != nil {
				e.HTTPErrorHandler(err, c)
			}

			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rec.Code)
			}
		})
	}
}
