package middlewares

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/patorma/book-reviews/internal/logger"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

// LoggingMiddleware logs requests and responses with the global logger.
// It reuses an incoming X-Request-ID or generates one, echoes it on the
// response and stores it in the context for logger.FromContext.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(RequestIDHeader)
		if reqID == "" || len(reqID) > 64 {
			reqID = uuid.New().String()
		}

		start := time.Now()

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		r = r.WithContext(logger.WithRequestID(r.Context(), reqID))
		w.Header().Set(RequestIDHeader, reqID)

		next.ServeHTTP(rw, r)

		log := logger.FromContext(r.Context())
		log.Infow("request",
			"method", r.Method,
			"uri", r.URL.Path,
			"duration", time.Since(start),
		)
		log.Infow("response",
			"status", rw.statusCode,
			"response_size", strconv.Itoa(rw.size)+"B",
		)
	})
}

type responseWriter struct {
	http.ResponseWriter
	statusCode  int
	size        int
	wroteHeader bool
}

func (rw *responseWriter) WriteHeader(code int) {
	if !rw.wroteHeader {
		rw.statusCode = code
		rw.wroteHeader = true
	}
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	rw.wroteHeader = true
	size, err := rw.ResponseWriter.Write(b)
	rw.size += size
	return size, err
}
