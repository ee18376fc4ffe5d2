package middlewares

import (
	"net/http"
	"runtime/debug"

	"github.com/patorma/book-reviews/internal/logger"
)

// RecoverMiddleware turns a panic into a 500 JSON answer; the stack is only logged.
func RecoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			logger.FromContext(r.Context()).Errorw("panic recovered",
				"panic", rec,
				"stack", string(debug.Stack()),
			)
			writeMessage(w, http.StatusInternalServerError, "Internal server error.")
		}()

		next.ServeHTTP(w, r)
	})
}
