package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/heartmarshall/notekeep-backend/pkg/ctxutil"
)

type tokenValidatorFunc func(ctx context.Context, token string) (uuid.UUID, error)

func (f tokenValidatorFunc) ValidateToken(ctx context.Context, token string) (uuid.UUID, error) {
	return f(ctx, token)
}

func captureHandler(gotUserID *uuid.UUID, gotOK *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*gotUserID, *gotOK = ctxutil.UserIDFromCtx(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuth_BearerToken(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	validator := tokenValidatorFunc(func(ctx context.Context, token string) (uuid.UUID, error) {
		if token != "valid-token" {
			t.Errorf("token: got %q, want %q", token, "valid-token")
		}
		return userID, nil
	})

	var gotUserID uuid.UUID
	var gotOK bool
	handler := Auth(validator)(captureHandler(&gotUserID, &gotOK))

	req := httptest.NewRequest(http.MethodGet, "/notes", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	if !gotOK || gotUserID != userID {
		t.Errorf("user ID in context: got (%v, %v), want (%v, true)", gotUserID, gotOK, userID)
	}
}

func TestAuth_CookieFallback(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	validator := tokenValidatorFunc(func(ctx context.Context, token string) (uuid.UUID, error) {
		if token != "cookie-token" {
			t.Errorf("token: got %q, want %q", token, "cookie-token")
		}
		return userID, nil
	})

	var gotUserID uuid.UUID
	var gotOK bool
	handler := Auth(validator)(captureHandler(&gotUserID, &gotOK))

	req := httptest.NewRequest(http.MethodGet, "/notes", nil)
	req.AddCookie(&http.Cookie{Name: accessTokenCookie, Value: "cookie-token"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	if !gotOK || gotUserID != userID {
		t.Errorf("user ID in context: got (%v, %v), want (%v, true)", gotUserID, gotOK, userID)
	}
}

func TestAuth_HeaderWinsOverCookie(t *testing.T) {
	t.Parallel()

	validator := tokenValidatorFunc(func(ctx context.Context, token string) (uuid.UUID, error) {
		if token != "header-token" {
			t.Errorf("header token should win: got %q", token)
		}
		return uuid.New(), nil
	})

	var gotUserID uuid.UUID
	var gotOK bool
	handler := Auth(validator)(captureHandler(&gotUserID, &gotOK))

	req := httptest.NewRequest(http.MethodGet, "/notes", nil)
	req.Header.Set("Authorization", "Bearer header-token")
	req.AddCookie(&http.Cookie{Name: accessTokenCookie, Value: "cookie-token"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
}

func TestAuth_NoTokenIsAnonymous(t *testing.T) {
	t.Parallel()

	validator := tokenValidatorFunc(func(ctx context.Context, token string) (uuid.UUID, error) {
		t.Error("validator should not be called without a token")
		return uuid.Nil, nil
	})

	var gotUserID uuid.UUID
	var gotOK bool
	handler := Auth(validator)(captureHandler(&gotUserID, &gotOK))

	req := httptest.NewRequest(http.MethodGet, "/notes", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("anonymous request should pass through: got %d", rec.Code)
	}
	if gotOK {
		t.Error("no user ID should be in context for anonymous requests")
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	t.Parallel()

	validator := tokenValidatorFunc(func(ctx context.Context, token string) (uuid.UUID, error) {
		return uuid.Nil, errors.New("expired")
	})

	handler := Auth(validator)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not run for an invalid token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/notes", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status: got %d, want 401", rec.Code)
	}
}

func TestAuth_MalformedAuthorizationHeader(t *testing.T) {
	t.Parallel()

	validator := tokenValidatorFunc(func(ctx context.Context, token string) (uuid.UUID, error) {
		t.Error("validator should not be called for a non-bearer header")
		return uuid.Nil, nil
	})

	var gotUserID uuid.UUID
	var gotOK bool
	handler := Auth(validator)(captureHandler(&gotUserID, &gotOK))

	req := httptest.NewRequest(http.MethodGet, "/notes", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	// Non-bearer credentials are treated as anonymous.
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	if gotOK {
		t.Error("no user ID should be set")
	}
}
