// Package repositories implements PostgreSQL and Redis storage for users,
// library books, cached catalog pages and search history.
package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/patorma/book-reviews/internal/logger"
)

// ErrAlreadyExists is returned when an insert violates a unique constraint.
var ErrAlreadyExists = errors.New("record already exists")

const uniqueViolation = "23505"

// TxGetter returns the transaction bound to ctx, or nil.
type TxGetter func(ctx context.Context) *sqlx.Tx

// executor returns the request transaction when one is open, the pool otherwise.
func executor(ctx context.Context, db *sqlx.DB, txGetter TxGetter) sqlx.ExtContext {
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			return tx
		}
	}
	return db
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// logQuery logs a statement in a single line together with its arguments and outcome.
func logQuery(ctx context.Context, query string, args []any, result any, err error) {
	logger.FromContext(ctx).Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}
