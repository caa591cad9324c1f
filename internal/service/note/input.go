package note

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/notekeep-backend/internal/domain"
)

// CreateNoteInput holds the parameters for creating a note.
type CreateNoteInput struct {
	Title   string
	Content string
	Tags    []string
}

// Validate checks all fields and collects all errors.
func (i CreateNoteInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if strings.TrimSpace(i.Content) == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// EditNoteInput holds the parameters for a partial note update.
type EditNoteInput struct {
	NoteID   uuid.UUID
	Title    *string
	Content  *string
	Tags     []string
	IsPinned *bool
}

// Validate checks that the note id is present and that the update carries
// at least one of title/content/tags. An isPinned-only edit does not pass
// this gate; pinning has its own operation.
func (i EditNoteInput) Validate() error {
	if i.NoteID == uuid.Nil {
		return domain.NewValidationError("note_id", "required")
	}

	if trimOrNil(i.Title) == nil && trimOrNil(i.Content) == nil && i.Tags == nil {
		return domain.NewValidationError("update", "no changes provided")
	}

	return nil
}

// DeleteNoteInput holds the parameters for deleting a note.
type DeleteNoteInput struct {
	NoteID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DeleteNoteInput) Validate() error {
	if i.NoteID == uuid.Nil {
		return domain.NewValidationError("note_id", "required")
	}
	return nil
}

// SetPinnedInput holds the parameters for pinning or unpinning a note.
type SetPinnedInput struct {
	NoteID   uuid.UUID
	IsPinned bool
}

// Validate checks all fields and collects all errors.
func (i SetPinnedInput) Validate() error {
	if i.NoteID == uuid.Nil {
		return domain.NewValidationError("note_id", "required")
	}
	return nil
}

// SearchNotesInput holds the parameters for searching notes.
type SearchNotesInput struct {
	Query string
}

// Validate checks all fields and collects all errors.
func (i SearchNotesInput) Validate() error {
	if strings.TrimSpace(i.Query) == "" {
		return domain.NewValidationError("query", "required")
	}
	return nil
}
