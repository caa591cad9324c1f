package note

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/notekeep-backend/internal/domain"
	"github.com/heartmarshall/notekeep-backend/pkg/ctxutil"
)

// SetPinned pins or unpins one of the caller's notes. Unlike EditNote,
// the flag is applied unconditionally, including to false. Idempotent.
// Returns ErrNotFound if the note does not exist and ErrForbidden if it
// belongs to someone else.
func (s *Service) SetPinned(ctx context.Context, input SetPinnedInput) (*domain.Note, error) {
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

	n.IsPinned = input.IsPinned

	updated, err := s.notes.Update(ctx, n)
	if err != nil {
		return nil, fmt.Errorf("update note: %w", err)
	}

	s.log.InfoContext(ctx, "note pin changed",
		slog.String("user_id", userID.String()),
		slog.String("note_id", updated.ID.String()),
		slog.Bool("is_pinned", updated.IsPinned),
	)

	return updated, nil
}
