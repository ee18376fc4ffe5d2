package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/patorma/book-reviews/internal/logger"
	"github.com/patorma/book-reviews/internal/models"
	"github.com/patorma/book-reviews/internal/services"
)

//go:generate mockgen -source=work.go -destination=work_mock.go -package=handlers

// WorkGetter defines the interface for catalog work lookups.
type WorkGetter interface {
	Work(ctx context.Context, bookID string) (*models.WorkDetails, error)
}

// NewWorkHandler returns an HTTP handler with the catalog details of one work.
// @Summary Catalog work details
// @Tags books
// @Produce json
// @Security BearerAuth
// @Param bookId path string true "Catalog work id" example(OL45804W)
// @Success 200 {object} models.WorkDetails
// @Failure 404 {object} models.MessageResponse "Work not found"
// @Failure 500 {object} models.MessageResponse "Catalog unavailable"
// @Router /books/works/{bookId} [get]
func NewWorkHandler(svc WorkGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		work, err := svc.Work(r.Context(), chi.URLParam(r, "bookId"))
		if err != nil {
			switch {
			case errors.Is(err, services.ErrWorkNotFound):
				writeMessage(w, http.StatusNotFound, "Book not found in the catalog.")
			default:
				logger.FromContext(r.Context()).Errorw("failed to get work", "err", err)
				writeMessage(w, http.StatusInternalServerError, "Error fetching book details.")
			}
			return
		}

		writeJSON(w, http.StatusOK, work)
	}
}
