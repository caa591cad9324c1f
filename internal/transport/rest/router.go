package rest

import "net/http"

// NewRouter builds the ServeMux with every REST route.
// "GET /notes/search" must be registered alongside "PUT /notes/{id}" style
// patterns; the mux prefers the literal segment over the wildcard.
func NewRouter(notes *NoteHandler, auth *AuthHandler, health *HealthHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /auth/register", auth.Register)
	mux.HandleFunc("POST /auth/login", auth.Login)
	mux.HandleFunc("POST /auth/refresh", auth.Refresh)
	mux.HandleFunc("POST /auth/logout", auth.Logout)

	mux.HandleFunc("GET /notes", notes.List)
	mux.HandleFunc("POST /notes", notes.Create)
	mux.HandleFunc("GET /notes/search", notes.Search)
	mux.HandleFunc("PUT /notes/{id}", notes.Edit)
	mux.HandleFunc("DELETE /notes/{id}", notes.Delete)
	mux.HandleFunc("PUT /notes/{id}/pin", notes.SetPinned)

	mux.HandleFunc("GET /health", health.Health)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /live", health.Live)

	return mux
}
