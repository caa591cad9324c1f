// Package noteclient is an HTTP client for the notekeep REST API.
//
// The client never keeps a local copy of the notes list: mutation calls
// return only the affected note, and callers are expected to re-fetch via
// List to observe the server's ordering. A 401 on List clears the saved
// session so the caller can prompt for a fresh login.
package noteclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// ErrUnauthorized is returned when the server rejects the session.
var ErrUnauthorized = errors.New("noteclient: unauthorized")

// APIError carries the server's error envelope for non-2xx responses.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("noteclient: server returned %d: %s", e.StatusCode, e.Message)
}

// Note mirrors the server's note representation.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	IsPinned  bool      `json:"isPinned"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// User mirrors the server's user representation.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

// Session holds the tokens and user returned by the auth endpoints.
type Session struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	User         User   `json:"user"`
}

// EditParams carries a partial note update. nil fields leave the stored
// value unchanged. Tags is always sent: nil marshals to null (unchanged)
// while an empty slice marshals to [] and clears the stored tags.
type EditParams struct {
	Title    *string  `json:"title,omitempty"`
	Content  *string  `json:"content,omitempty"`
	Tags     []string `json:"tags"`
	IsPinned *bool    `json:"isPinned,omitempty"`
}

// Client talks to a notekeep server.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

// New creates a Client for the given base URL.
func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// NewWithHTTPClient creates a Client with a custom *http.Client (for testing).
func NewWithHTTPClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{baseURL: baseURL, httpClient: httpClient}
}

// SetToken installs an access token for subsequent requests.
func (c *Client) SetToken(token string) { c.token = token }

// Token returns the currently saved access token, empty when logged out.
func (c *Client) Token() string { return c.token }

// Register creates an account and saves the returned access token.
func (c *Client) Register(ctx context.Context, email, username, password string) (*Session, error) {
	var sess Session
	err := c.do(ctx, http.MethodPost, "/auth/register", map[string]string{
		"email":    email,
		"username": username,
		"password": password,
	}, &sess)
	if err != nil {
		return nil, err
	}
	c.token = sess.AccessToken
	return &sess, nil
}

// Login authenticates and saves the returned access token.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	var sess Session
	err := c.do(ctx, http.MethodPost, "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &sess)
	if err != nil {
		return nil, err
	}
	c.token = sess.AccessToken
	return &sess, nil
}

// Refresh exchanges a refresh token for a new session and saves the new
// access token.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*Session, error) {
	var sess Session
	err := c.do(ctx, http.MethodPost, "/auth/refresh", map[string]string{
		"refreshToken": refreshToken,
	}, &sess)
	if err != nil {
		return nil, err
	}
	c.token = sess.AccessToken
	return &sess, nil
}

// Logout revokes the server-side session and clears the saved token.
func (c *Client) Logout(ctx context.Context) error {
	err := c.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
	c.token = ""
	return err
}

type notesPayload struct {
	Notes []Note `json:"notes"`
}

type notePayload struct {
	Note Note `json:"note"`
}

// List fetches all notes, pinned first then newest first. A 401 clears
// the saved session before the error is returned.
func (c *Client) List(ctx context.Context) ([]Note, error) {
	var payload notesPayload
	if err := c.do(ctx, http.MethodGet, "/notes", nil, &payload); err != nil {
		if errors.Is(err, ErrUnauthorized) {
			c.token = ""
		}
		return nil, err
	}
	return payload.Notes, nil
}

// Create adds a note. Callers re-fetch via List to see the new ordering.
func (c *Client) Create(ctx context.Context, title, content string, tags []string) (*Note, error) {
	var payload notePayload
	err := c.do(ctx, http.MethodPost, "/notes", map[string]any{
		"title":   title,
		"content": content,
		"tags":    tags,
	}, &payload)
	if err != nil {
		return nil, err
	}
	return &payload.Note, nil
}

// Edit applies a partial update to a note.
func (c *Client) Edit(ctx context.Context, id string, params EditParams) (*Note, error) {
	var payload notePayload
	err := c.do(ctx, http.MethodPut, "/notes/"+url.PathEscape(id), params, &payload)
	if err != nil {
		return nil, err
	}
	return &payload.Note, nil
}

// Delete removes a note.
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/notes/"+url.PathEscape(id), nil, nil)
}

// SetPinned pins or unpins a note.
func (c *Client) SetPinned(ctx context.Context, id string, pinned bool) (*Note, error) {
	var payload notePayload
	err := c.do(ctx, http.MethodPut, "/notes/"+url.PathEscape(id)+"/pin", map[string]bool{
		"isPinned": pinned,
	}, &payload)
	if err != nil {
		return nil, err
	}
	return &payload.Note, nil
}

// Search returns notes matching the query as a case-insensitive substring
// of title, content, or any tag.
func (c *Client) Search(ctx context.Context, query string) ([]Note, error) {
	var payload notesPayload
	path := "/notes/search?query=" + url.QueryEscape(query)
	if err := c.do(ctx, http.MethodGet, path, nil, &payload); err != nil {
		return nil, err
	}
	return payload.Notes, nil
}

// do sends one request and decodes the response into out when non-nil.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("noteclient: marshal body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("noteclient: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("noteclient: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var envelope struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&envelope)
		return &APIError{StatusCode: resp.StatusCode, Message: envelope.Message}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("noteclient: decode response: %w", err)
	}
	return nil
}
