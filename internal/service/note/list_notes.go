package note

import (
	"context"
	"fmt"

	"github.com/heartmarshall/notekeep-backend/internal/domain"
	"github.com/heartmarshall/notekeep-backend/pkg/ctxutil"
)

// ListNotes returns all of the caller's notes, pinned first, newest first
// within each group.
func (s *Service) ListNotes(ctx context.Context) ([]*domain.Note, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	notes, err := s.notes.ListByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}

	return notes, nil
}
