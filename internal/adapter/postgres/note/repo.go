// Package note implements the Note repository using PostgreSQL.
package note

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/notekeep-backend/internal/adapter/postgres"
	"github.com/heartmarshall/notekeep-backend/internal/domain"
)

// Repo provides note persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new note repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const noteColumns = `id, owner_id, title, content, tags, is_pinned, created_at, updated_at`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

const getNoteByIDSQL = `SELECT ` + noteColumns + ` FROM notes WHERE id = $1`

// GetByID returns a note by primary key regardless of owner. Ownership checks
// belong to the service layer, which needs to distinguish "missing" from
// "owned by someone else". Returns domain.ErrNotFound if the note does not exist.
func (r *Repo) GetByID(ctx context.Context, noteID uuid.UUID) (*domain.Note, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getNoteByIDSQL, noteID)

	n, err := scanNote(row)
	if err != nil {
		return nil, postgres.MapError(err, "note", noteID)
	}

	return n, nil
}

const listNotesByOwnerSQL = `
SELECT ` + noteColumns + `
FROM notes
WHERE owner_id = $1
ORDER BY is_pinned DESC, created_at DESC`

// ListByOwner returns all notes for a user, pinned first, newest first within
// each group. Returns an empty slice if the user has no notes.
func (r *Repo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Note, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listNotesByOwnerSQL, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()

	return collectNotes(rows)
}

// Search returns the owner's notes whose title, content, or any tag contains
// query as a case-insensitive substring, in the same order as ListByOwner.
// The query string is matched literally; LIKE metacharacters are escaped.
func (r *Repo) Search(ctx context.Context, ownerID uuid.UUID, query string) ([]*domain.Note, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	pattern := "%" + escapeLike(query) + "%"

	builder := sq.Select("id", "owner_id", "title", "content", "tags", "is_pinned", "created_at", "updated_at").
		From("notes").
		Where(sq.Eq{"owner_id": ownerID}).
		Where(sq.Or{
			sq.Expr("title ILIKE ?", pattern),
			sq.Expr("content ILIKE ?", pattern),
			sq.Expr("EXISTS (SELECT 1 FROM unnest(tags) AS tag WHERE tag ILIKE ?)", pattern),
		}).
		OrderBy("is_pinned DESC", "created_at DESC").
		PlaceholderFormat(sq.Dollar)

	sqlText, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build search query: %w", err)
	}

	rows, err := querier.Query(ctx, sqlText, args...)
	if err != nil {
		return nil, fmt.Errorf("search notes: %w", err)
	}
	defer rows.Close()

	return collectNotes(rows)
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

const createNoteSQL = `
INSERT INTO notes (owner_id, title, content, tags, is_pinned)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + noteColumns

// Create inserts a new note and returns the persisted row with
// database-generated id and timestamps.
func (r *Repo) Create(ctx context.Context, n *domain.Note) (*domain.Note, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, createNoteSQL,
		n.OwnerID, n.Title, n.Content, n.Tags, n.IsPinned)

	created, err := scanNote(row)
	if err != nil {
		return nil, postgres.MapError(err, "note", n.ID)
	}

	return created, nil
}

const updateNoteSQL = `
UPDATE notes
SET title = $2, content = $3, tags = $4, is_pinned = $5, updated_at = now()
WHERE id = $1
RETURNING ` + noteColumns

// Update writes the full mutable state of a note (title, content, tags,
// is_pinned) and bumps updated_at. The caller is expected to have loaded the
// note first and merged any partial changes. Returns domain.ErrNotFound if
// the note no longer exists.
func (r *Repo) Update(ctx context.Context, n *domain.Note) (*domain.Note, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, updateNoteSQL,
		n.ID, n.Title, n.Content, n.Tags, n.IsPinned)

	updated, err := scanNote(row)
	if err != nil {
		return nil, postgres.MapError(err, "note", n.ID)
	}

	return updated, nil
}

const deleteNoteSQL = `DELETE FROM notes WHERE id = $1 AND owner_id = $2`

// Delete removes a note scoped to its owner. Returns domain.ErrNotFound if
// the note does not exist or belongs to another user.
func (r *Repo) Delete(ctx context.Context, ownerID, noteID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteNoteSQL, noteID, ownerID)
	if err != nil {
		return postgres.MapError(err, "note", noteID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("note %s: %w", noteID, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row mapping
// ---------------------------------------------------------------------------

func scanNote(row pgx.Row) (*domain.Note, error) {
	var n domain.Note
	err := row.Scan(&n.ID, &n.OwnerID, &n.Title, &n.Content, &n.Tags,
		&n.IsPinned, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if n.Tags == nil {
		n.Tags = []string{}
	}
	return &n, nil
}

func collectNotes(rows pgx.Rows) ([]*domain.Note, error) {
	notes := make([]*domain.Note, 0)
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate notes: %w", err)
	}
	return notes, nil
}

// escapeLike escapes LIKE/ILIKE metacharacters so user input matches literally.
func escapeLike(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(s)
}
