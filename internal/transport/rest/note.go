package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/notekeep-backend/internal/domain"
	"github.com/heartmarshall/notekeep-backend/internal/service/note"
)

// noteService defines the minimal interface needed by NoteHandler.
type noteService interface {
	CreateNote(ctx context.Context, input note.CreateNoteInput) (*domain.Note, error)
	EditNote(ctx context.Context, input note.EditNoteInput) (*domain.Note, error)
	ListNotes(ctx context.Context) ([]*domain.Note, error)
	DeleteNote(ctx context.Context, input note.DeleteNoteInput) error
	SetPinned(ctx context.Context, input note.SetPinnedInput) (*domain.Note, error)
	SearchNotes(ctx context.Context, input note.SearchNotesInput) ([]*domain.Note, error)
}

// NoteHandler serves the /notes REST endpoints.
type NoteHandler struct {
	svc noteService
	log *slog.Logger
}

// NewNoteHandler creates a NoteHandler.
func NewNoteHandler(svc noteService, logger *slog.Logger) *NoteHandler {
	return &NoteHandler{svc: svc, log: logger.With("handler", "note")}
}

type createNoteRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

type editNoteRequest struct {
	Title    *string  `json:"title"`
	Content  *string  `json:"content"`
	Tags     []string `json:"tags"`
	IsPinned *bool    `json:"isPinned"`
}

type setPinnedRequest struct {
	IsPinned bool `json:"isPinned"`
}

type noteResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	IsPinned  bool      `json:"isPinned"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type noteEnvelope struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Note    noteResponse `json:"note"`
}

type notesEnvelope struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Notes   []noteResponse `json:"notes"`
}

type statusEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Create handles POST /notes.
func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.CreateNote(r.Context(), note.CreateNoteInput{
		Title:   req.Title,
		Content: req.Content,
		Tags:    req.Tags,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, noteEnvelope{
		Success: true,
		Message: "Note added successfully",
		Note:    toNoteResponse(created),
	})
}

// List handles GET /notes.
func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	notes, err := h.svc.ListNotes(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, notesEnvelope{
		Success: true,
		Message: "All notes retrieved successfully",
		Notes:   toNoteResponses(notes),
	})
}

// Edit handles PUT /notes/{id}.
func (h *NoteHandler) Edit(w http.ResponseWriter, r *http.Request) {
	noteID, ok := parseNoteID(w, r)
	if !ok {
		return
	}

	var req editNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.EditNote(r.Context(), note.EditNoteInput{
		NoteID:   noteID,
		Title:    req.Title,
		Content:  req.Content,
		Tags:     req.Tags,
		IsPinned: req.IsPinned,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, noteEnvelope{
		Success: true,
		Message: "Note updated successfully",
		Note:    toNoteResponse(updated),
	})
}

// Delete handles DELETE /notes/{id}.
func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	noteID, ok := parseNoteID(w, r)
	if !ok {
		return
	}

	err := h.svc.DeleteNote(r.Context(), note.DeleteNoteInput{NoteID: noteID})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, statusEnvelope{
		Success: true,
		Message: "Note deleted successfully",
	})
}

// SetPinned handles PUT /notes/{id}/pin.
func (h *NoteHandler) SetPinned(w http.ResponseWriter, r *http.Request) {
	noteID, ok := parseNoteID(w, r)
	if !ok {
		return
	}

	var req setPinnedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.SetPinned(r.Context(), note.SetPinnedInput{
		NoteID:   noteID,
		IsPinned: req.IsPinned,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, noteEnvelope{
		Success: true,
		Message: "Note pin updated successfully",
		Note:    toNoteResponse(updated),
	})
}

// Search handles GET /notes/search?query=.
func (h *NoteHandler) Search(w http.ResponseWriter, r *http.Request) {
	notes, err := h.svc.SearchNotes(r.Context(), note.SearchNotesInput{
		Query: r.URL.Query().Get("query"),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, notesEnvelope{
		Success: true,
		Message: "Notes matching the search query retrieved successfully",
		Notes:   toNoteResponses(notes),
	})
}

// parseNoteID reads the {id} path value. Responds 404 on malformed IDs:
// a garbage id can never name an existing note.
func parseNoteID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "not found")
		return uuid.Nil, false
	}
	return id, true
}

func toNoteResponse(n *domain.Note) noteResponse {
	tags := n.Tags
	if tags == nil {
		tags = []string{}
	}
	return noteResponse{
		ID:        n.ID.String(),
		Title:     n.Title,
		Content:   n.Content,
		Tags:      tags,
		IsPinned:  n.IsPinned,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

func toNoteResponses(notes []*domain.Note) []noteResponse {
	out := make([]noteResponse, len(notes))
	for i, n := range notes {
		out[i] = toNoteResponse(n)
	}
	return out
}
