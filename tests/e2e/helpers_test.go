//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/notekeep-backend/internal/adapter/postgres"
	noterepo "github.com/heartmarshall/notekeep-backend/internal/adapter/postgres/note"
	"github.com/heartmarshall/notekeep-backend/internal/adapter/postgres/testhelper"
	tokenrepo "github.com/heartmarshall/notekeep-backend/internal/adapter/postgres/token"
	userrepo "github.com/heartmarshall/notekeep-backend/internal/adapter/postgres/user"
	authpkg "github.com/heartmarshall/notekeep-backend/internal/auth"
	"github.com/heartmarshall/notekeep-backend/internal/config"
	authsvc "github.com/heartmarshall/notekeep-backend/internal/service/auth"
	notesvc "github.com/heartmarshall/notekeep-backend/internal/service/note"
	"github.com/heartmarshall/notekeep-backend/internal/transport/middleware"
	"github.com/heartmarshall/notekeep-backend/internal/transport/rest"
	"github.com/jackc/pgx/v5/pgxpool"
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	jwt    *authpkg.JWTManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	userRepo := userrepo.New(pool)
	tokenRepo := tokenrepo.New(pool)
	noteRepo := noterepo.New(pool)

	jwtSecret := "test-secret-at-least-32-chars-long!!"
	jwtIssuer := "test-issuer"
	accessTTL := 15 * time.Minute
	jwtMgr := authpkg.NewJWTManager(jwtSecret, jwtIssuer, accessTTL)

	authCfg := config.AuthConfig{
		JWTSecret:        jwtSecret,
		JWTIssuer:        jwtIssuer,
		AccessTokenTTL:   accessTTL,
		RefreshTokenTTL:  720 * time.Hour,
		PasswordHashCost: 4,
	}

	authService := authsvc.NewService(logger, userRepo, tokenRepo, txm, jwtMgr, authCfg)
	noteService := notesvc.NewService(logger, noteRepo)

	noteHandler := rest.NewNoteHandler(noteService, logger)
	authHandler := rest.NewAuthHandler(authService, logger, accessTTL)
	healthHandler := rest.NewHealthHandler(pool, "test-version")

	router := rest.NewRouter(noteHandler, authHandler, healthHandler)

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.CORS(config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,PUT,DELETE,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		}),
		middleware.Auth(authService),
	)(router)

	srv := httptest.NewServer(handler)
	t.Cleanup(func() { srv.Close() })

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		jwt:    jwtMgr,
	}
}

// doJSON sends a JSON request and returns status + decoded body.
func (ts *testServer) doJSON(t *testing.T, method, path string, body map[string]any, token string) (int, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(jsonBody)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var result map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return resp.StatusCode, result
}

// registerUser registers a fresh user through the API and returns the
// access token, refresh token, and the email used.
func registerUser(t *testing.T, ts *testServer) (accessToken, refreshToken, email string) {
	t.Helper()

	email = fmt.Sprintf("e2e-%d@example.com", time.Now().UnixNano())
	status, body := ts.doJSON(t, http.MethodPost, "/auth/register", map[string]any{
		"email":    email,
		"username": fmt.Sprintf("e2e-%d", time.Now().UnixNano()),
		"password": "password123",
	}, "")
	require.Equal(t, http.StatusCreated, status, "register: %v", body)

	accessToken, _ = body["accessToken"].(string)
	refreshToken, _ = body["refreshToken"].(string)
	require.NotEmpty(t, accessToken)
	require.NotEmpty(t, refreshToken)
	return accessToken, refreshToken, email
}

// createNote creates a note through the API and returns its id.
func createNote(t *testing.T, ts *testServer, token, title, content string, tags []string) string {
	t.Helper()

	status, body := ts.doJSON(t, http.MethodPost, "/notes", map[string]any{
		"title":   title,
		"content": content,
		"tags":    tags,
	}, token)
	require.Equal(t, http.StatusCreated, status, "create note: %v", body)

	note, ok := body["note"].(map[string]any)
	require.True(t, ok, "expected note object in response")
	id, ok := note["id"].(string)
	require.True(t, ok, "expected note id")
	return id
}

// listNotes fetches /notes and returns the notes array.
func listNotes(t *testing.T, ts *testServer, token string) []any {
	t.Helper()

	status, body := ts.doJSON(t, http.MethodGet, "/notes", nil, token)
	require.Equal(t, http.StatusOK, status, "list notes: %v", body)

	notes, ok := body["notes"].([]any)
	require.True(t, ok, "expected notes array")
	return notes
}
