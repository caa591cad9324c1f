package note

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/notekeep-backend/internal/domain"
	"github.com/heartmarshall/notekeep-backend/pkg/ctxutil"
)

// CreateNote creates a new note owned by the authenticated caller.
// New notes are never pinned.
func (s *Service) CreateNote(ctx context.Context, input CreateNoteInput) (*domain.Note, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	created, err := s.notes.Create(ctx, &domain.Note{
		OwnerID:  userID,
		Title:    strings.TrimSpace(input.Title),
		Content:  strings.TrimSpace(input.Content),
		Tags:     tags,
		IsPinned: false,
	})
	if err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}

	s.log.InfoContext(ctx, "note created",
		slog.String("user_id", userID.String()),
		slog.String("note_id", created.ID.String()),
	)

	return created, nil
}
