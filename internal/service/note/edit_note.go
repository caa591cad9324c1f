package note

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/notekeep-backend/internal/domain"
	"github.com/heartmarshall/notekeep-backend/pkg/ctxutil"
)

// EditNote applies a partial update to one of the caller's notes.
//
// Blank title/content values never overwrite stored text, and
// IsPinned=false never unpins here (SetPinned does that); a non-nil Tags
// slice replaces the stored tags even when empty. Returns ErrNotFound if
// the note does not exist and ErrForbidden if it belongs to someone else.
func (s *Service) EditNote(ctx context.Context, input EditNoteInput) (*domain.Note, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	n, err := s.notes.GetByID(ctx, input.NoteID)
	if err != nil {
		return nil, fmt.Errorf("get note: %w", err)
	}

	if n.OwnerID != userID {
		return nil, domain.ErrForbidden
	}

	if title := trimOrNil(input.Title); title != nil {
		n.Title = *title
	}
	if content := trimOrNil(input.Content); content != nil {
		n.Content = *content
	}
	if input.Tags != nil {
		n.Tags = input.Tags
	}
	if input.IsPinned != nil && *input.IsPinned {
		n.IsPinned = true
	}

	updated, err := s.notes.Update(ctx, n)
	if err != nil {
		return nil, fmt.Errorf("update note: %w", err)
	}

	s.log.InfoContext(ctx, "note updated",
		slog.String("user_id", userID.String()),
		slog.String("note_id", updated.ID.String()),
	)

	return updated, nil
}
