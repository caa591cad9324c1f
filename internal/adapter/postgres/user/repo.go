// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/notekeep-backend/internal/adapter/postgres"
	"github.com/heartmarshall/notekeep-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const userColumns = `id, email, username, password_hash, created_at, updated_at`

const createUserSQL = `
INSERT INTO users (email, username, password_hash)
VALUES ($1, $2, $3)
RETURNING ` + userColumns

// Create inserts a new user and returns the persisted row.
// Returns domain.ErrAlreadyExists if the email is already registered.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, createUserSQL, u.Email, u.Username, u.PasswordHash)

	created, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}

	return created, nil
}

const getUserByIDSQL = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

// GetByID returns a user by primary key.
// Returns domain.ErrNotFound if the user does not exist.
func (r *Repo) GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getUserByIDSQL, userID)

	u, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", userID)
	}

	return u, nil
}

const getUserByEmailSQL = `SELECT ` + userColumns + ` FROM users WHERE email = $1`

// GetByEmail returns a user by email (exact match, emails are stored lowercased).
// Returns domain.ErrNotFound if no user has this email.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getUserByEmailSQL, email)

	u, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}

	return u, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Email, &u.Username, &u.PasswordHash,
		&u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
