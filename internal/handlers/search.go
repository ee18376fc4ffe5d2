package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/patorma/book-reviews/internal/logger"
	"github.com/patorma/book-reviews/internal/models"
	"github.com/patorma/book-reviews/internal/services"
)

//go:generate mockgen -source=search.go -destination=search_mock.go -package=handlers

// Searcher defines the interface that the search service must implement.
type Searcher interface {
	Search(ctx context.Context, ownerID uuid.UUID, query string) ([]models.SearchResult, error)
}

// NewSearchHandler returns an HTTP handler searching the catalog.
// @Summary Search the catalog
// @Description Searches Open Library and flags results already saved in the caller's library
// @Tags books
// @Produce json
// @Security BearerAuth
// @Param q query string true "Search text"
// @Success 200 {array} models.SearchResult
// @Failure 400 {object} models.MessageResponse "Missing query"
// @Failure 500 {object} models.MessageResponse "Search failed"
// @Router /books/search [get]
func NewSearchHandler(svc Searcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(r)
		if !ok {
			writeMessage(w, http.StatusUnauthorized, "Access denied. No token provided.")
			return
		}

		results, err := svc.Search(r.Context(), userID, r.URL.Query().Get("q"))
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmptyQuery):
				writeMessage(w, http.StatusBadRequest, "Search parameter (q) is required.")
			default:
				logger.FromContext(r.Context()).Errorw("search failed", "err", err)
				writeMessage(w, http.StatusInternalServerError, "Error searching books.")
			}
			return
		}

		writeJSON(w, http.StatusOK, results)
	}
}
