package note

import (
	"context"
	"fmt"

	"github.com/heartmarshall/notekeep-backend/internal/domain"
	"github.com/heartmarshall/notekeep-backend/pkg/ctxutil"
)

// SearchNotes returns the caller's notes whose title, content, or any tag
// contains the query as a case-insensitive substring. Results keep the
// pinned-first, newest-first order. An empty result is not an error.
func (s *Service) SearchNotes(ctx context.Context, input SearchNotesInput) ([]*domain.Note, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	// The query goes through verbatim. Surrounding whitespace is part of
	// the substring the caller asked for; only the emptiness check trims.
	notes, err := s.notes.Search(ctx, userID, input.Query)
	if err != nil {
		return nil, fmt.Errorf("search notes: %w", err)
	}

	return notes, nil
}
