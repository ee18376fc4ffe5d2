package repositories

import (
	"context"
	_ "embed"

	"github.com/jmoiron/sqlx"
	"github.com/patorma/book-reviews/internal/logger"
	"github.com/pkg/errors"
)

//go:embed migrations/schema.sql
var schema string

// Migrate creates the tables used by the repositories if they do not exist yet.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return errors.Wrap(err, "apply schema")
	}
	logger.Log.Info("database schema is up to date")
	return nil
}
