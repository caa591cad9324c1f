package domain

import (
	"time"

	"github.com/google/uuid"
)

// Note is a single user-owned note. OwnerID is set at creation from the
// authenticated caller and never reassigned.
type Note struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Title     string
	Content   string
	Tags      []string
	IsPinned  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
