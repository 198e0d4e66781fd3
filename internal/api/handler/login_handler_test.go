package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/GustavoTiagoSilva/simplified-twitter/internal/core/domain"
	"github.com/GustavoTiagoSilva/simplified-twitter/internal/core/ports"
)

type stubLoginService struct {
	loginFn func(ctx context.Context, username, password string) (*ports.LoginResult, error)
}

func (s *stubLoginService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	return s.loginFn(ctx, username, password)
}

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestLoginHandler_Success(t *testing.T) {
	stub := &stubLoginService{
		loginFn: func(ctx context.Context, username, password string) (*ports.LoginResult, error) {
			if username != "gustavo" || password != "s3cret" {
				t.Fatalf("unexpected args: %s %s", username, password)
			}
			return &ports.LoginResult{AccessToken: "token123", ExpiresIn: 300}, nil
		},
	}
	h := NewLoginHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/login", `{"username":"gustavo","password":"s3cret"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["access_token"] != "token123" {
		t.Fatalf("expected access_token, got %v", resp["access_token"])
	}
	if resp["expires_in"] != float64(300) {
		t.Fatalf("expected expires_in 300, got %v", resp["expires_in"])
	}
}

func TestLoginHandler_BadCredentials(t *testing.T) {
	stub := &stubLoginService{
		loginFn: func(ctx context.Context, username, password string) (*ports.LoginResult, error) {
			return nil, domain.ErrBadCredentials
		},
	}
	h := NewLoginHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/login", `{"username":"gustavo","password":"bad"}`)
	err := h.Login(c)
	if !errors.Is(err, domain.ErrBadCredentials) {
		t.Fatalf("expected ErrBadCredentials to propagate, got %v", err)
	}
}

func TestLoginHandler_InvalidPayload(t *testing.T) {
	stub := &stubLoginService{
		loginFn: func(ctx context.Context, username, password string) (*ports.LoginResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewLoginHandler(stub)

	for _, body := range []string{"not-json", `{"username":"gustavo"}`, `{"password":"x"}`} {
		c, _ := newTestContext(t, http.MethodPost, "/login", body)
		err := h.Login(c)

		var he *echo.HTTPError
		if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
			t.Fatalf("body %q: expected 400, got %v", body, err)
		}
	}
}
