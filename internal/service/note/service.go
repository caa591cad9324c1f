// Package note implements the note management service: owner-scoped
// create, edit, list, delete, pin, and search operations.
package note

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/notekeep-backend/internal/domain"
)

type noteRepo interface {
	Create(ctx context.Context, n *domain.Note) (*domain.Note, error)
	GetByID(ctx context.Context, noteID uuid.UUID) (*domain.Note, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Note, error)
	Search(ctx context.Context, ownerID uuid.UUID, query string) ([]*domain.Note, error)
	Update(ctx context.Context, n *domain.Note) (*domain.Note, error)
	Delete(ctx context.Context, ownerID, noteID uuid.UUID) error
}

// Service provides note management operations.
type Service struct {
	notes noteRepo
	log   *slog.Logger
}

// NewService creates a new Note service.
func NewService(
	log *slog.Logger,
	notes noteRepo,
) *Service {
	return &Service{
		notes: notes,
		log:   log.With("service", "note"),
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
