package postgres

import (
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/notekeep-backend/internal/config"
	"github.com/heartmarshall/notekeep-backend/migrations"
)

// Migrate applies all pending goose migrations from the embedded FS.
// It opens a short-lived database/sql connection via the pgx stdlib driver,
// because goose does not speak the native pgx protocol.
func Migrate(cfg config.DatabaseConfig) error {
	db, err := goose.OpenDBWithDriver("pgx", cfg.DSN)
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	return nil
}
