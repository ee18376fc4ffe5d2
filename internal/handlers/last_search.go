package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/patorma/book-reviews/internal/logger"
)

//go:generate mockgen -source=last_search.go -destination=last_search_mock.go -package=handlers

// LastSearcher defines the interface that the search history must implement.
type LastSearcher interface {
	LastSearches(ctx context.Context, userID uuid.UUID) ([]string, error)
}

// NewLastSearchHandler returns an HTTP handler listing the caller's recent searches.
// @Summary Recent searches
// @Description Returns up to five of the caller's most recent search queries, newest first
// @Tags books
// @Produce json
// @Security BearerAuth
// @Success 200 {array} string
// @Failure 500 {object} models.MessageResponse "Internal server error"
// @Router /books/last-search [get]
func NewLastSearchHandler(svc LastSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(r)
		if !ok {
			writeMessage(w, http.StatusUnauthorized, "Access denied. No token provided.")
			return
		}

		queries, err := svc.LastSearches(r.Context(), userID)
		if err != nil {
			logger.FromContext(r.Context()).Errorw("failed to read search history", "err", err)
			writeMessage(w, http.StatusInternalServerError, msgInternalError)
			return
		}

		writeJSON(w, http.StatusOK, queries)
	}
}
