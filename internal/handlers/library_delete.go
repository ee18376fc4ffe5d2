package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/patorma/book-reviews/internal/logger"
	"github.com/patorma/book-reviews/internal/services"
)

//go:generate mockgen -source=library_delete.go -destination=library_delete_mock.go -package=handlers

// BookDeleter defines the interface for removing a library book.
type BookDeleter interface {
	Delete(ctx context.Context, ownerID, bookID uuid.UUID) error
}

// NewDeleteBookHandler returns an HTTP handler removing one of the caller's books.
// @Summary Delete a saved book
// @Tags library
// @Produce json
// @Security BearerAuth
// @Param id path string true "Library book id"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.MessageResponse "Not found"
// @Failure 500 {object} models.MessageResponse "Internal server error"
// @Router /books/my-library/{id} [delete]
func NewDeleteBookHandler(svc BookDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(r)
		if !ok {
			writeMessage(w, http.StatusUnauthorized, "Access denied. No token provided.")
			return
		}
		bookID, ok := bookIDParam(r)
		if !ok {
			writeMessage(w, http.StatusNotFound, msgBookNotFound)
			return
		}

		if err := svc.Delete(r.Context(), userID, bookID); err != nil {
			switch {
			case errors.Is(err, services.ErrBookNotFound):
				writeMessage(w, http.StatusNotFound, msgBookNotFound)
			default:
				logger.FromContext(r.Context()).Errorw("failed to delete book", "err", err)
				writeMessage(w, http.StatusInternalServerError, "Error deleting book from your library.")
			}
			return
		}

		writeMessage(w, http.StatusOK, "Book deleted successfully.")
	}
}
