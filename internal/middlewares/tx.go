package middlewares

import (
	"bytes"
	"context"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/patorma/book-reviews/internal/logger"
)

// TxMiddleware runs the handler inside a database transaction. The response is
// held back until the transaction is settled: a status below 400 commits,
// anything else rolls back. A failed commit replaces the response with a 500.
// Callbacks registered with AfterCommit run only after a successful commit.
func TxMiddleware(db *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromContext(r.Context())

			tx, err := db.BeginTxx(r.Context(), nil)
			if err != nil {
				log.Errorw("failed to begin transaction", "error", err)
				writeMessage(w, http.StatusInternalServerError, "Internal server error.")
				return
			}

			defer func() {
				if rec := recover(); rec != nil {
					_ = tx.Rollback()
					panic(rec)
				}
			}()

			hooks := &commitHooks{}
			ctx := context.WithValue(setTxToContext(r.Context(), tx), commitHooksKey{}, hooks)

			bw := &bufferedWriter{header: http.Header{}, statusCode: http.StatusOK}
			next.ServeHTTP(bw, r.WithContext(ctx))

			if bw.statusCode >= http.StatusBadRequest {
				if err := tx.Rollback(); err != nil {
					log.Errorw("failed to roll back transaction", "error", err)
				}
				bw.flush(w)
				return
			}

			if err := tx.Commit(); err != nil {
				log.Errorw("failed to commit transaction", "error", err)
				writeMessage(w, http.StatusInternalServerError, "Internal server error.")
				return
			}
			bw.flush(w)

			for _, fn := range hooks.fns {
				fn()
			}
		})
	}
}

type commitHooksKey struct{}

type commitHooks struct {
	fns []func()
}

// AfterCommit defers fn until the request transaction in ctx commits and drops
// it on rollback. Outside a transaction fn runs immediately.
func AfterCommit(ctx context.Context, fn func()) {
	hooks, ok := ctx.Value(commitHooksKey{}).(*commitHooks)
	if !ok {
		fn()
		return
	}
	hooks.fns = append(hooks.fns, fn)
}

// bufferedWriter records a response so it can be discarded.
type bufferedWriter struct {
	header      http.Header
	statusCode  int
	wroteHeader bool
	body        bytes.Buffer
}

func (bw *bufferedWriter) Header() http.Header { return bw.header }

func (bw *bufferedWriter) WriteHeader(code int) {
	if bw.wroteHeader {
		return
	}
	bw.statusCode = code
	bw.wroteHeader = true
}

func (bw *bufferedWriter) Write(b []byte) (int, error) {
	bw.wroteHeader = true
	return bw.body.Write(b)
}

func (bw *bufferedWriter) flush(w http.ResponseWriter) {
	for k, v := range bw.header {
		w.Header()[k] = v
	}
	w.WriteHeader(bw.statusCode)
	_, _ = w.Write(bw.body.Bytes())
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var txKey = contextKey{}

// setTxToContext stores a transaction in the context
func setTxToContext(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// GetTxFromContext retrieves the transaction from the context. Returns nil if not present.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey).(*sqlx.Tx)
	return tx
}
