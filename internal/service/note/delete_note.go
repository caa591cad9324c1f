package note

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/notekeep-backend/internal/domain"
	"github.com/heartmarshall/notekeep-backend/pkg/ctxutil"
)

// DeleteNote removes one of the caller's notes. The delete is scoped to
// id AND owner in a single statement, so a foreign note is
// indistinguishable from a missing one: both return ErrNotFound.
func (s *Service) DeleteNote(ctx context.Context, input DeleteNoteInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.notes.Delete(ctx, userID, input.NoteID); err != nil {
		return fmt.Errorf("delete note: %w", err)
	}

	s.log.InfoContext(ctx, "note deleted",
		slog.String("user_id", userID.String()),
		slog.String("note_id", input.NoteID.String()),
	)

	return nil
}
