package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/notekeep-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with a unique email and a fixed bcrypt hash.
// Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	// MinCost keeps seeding fast; repo tests never verify the password.
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("testhelper: SeedUser hash password: %v", err)
	}

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@example.com",
		Username:     "testuser-" + suffix,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO users (id, email, username, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Email, user.Username, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedNote creates a note for the given owner. Returns the persisted domain.Note.
func SeedNote(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID, title, content string, tags []string, pinned bool) domain.Note {
	t.Helper()
	ctx := context.Background()

	if tags == nil {
		tags = []string{}
	}

	var n domain.Note
	err := pool.QueryRow(ctx,
		`INSERT INTO notes (owner_id, title, content, tags, is_pinned)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, owner_id, title, content, tags, is_pinned, created_at, updated_at`,
		ownerID, title, content, tags, pinned,
	).Scan(&n.ID, &n.OwnerID, &n.Title, &n.Content, &n.Tags, &n.IsPinned, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedNote insert note: %v", err)
	}

	return n
}
