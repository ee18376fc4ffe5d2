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

//go:generate mockgen -source=library_get.go -destination=library_get_mock.go -package=handlers

// BookGetter defines the interface for reading one library book.
type BookGetter interface {
	Get(ctx context.Context, ownerID, bookID uuid.UUID) (*models.LibraryBookDB, error)
}

const msgBookNotFound = "Book not found in your library."

// NewGetBookHandler returns an HTTP handler with one of the caller's books.
// @Summary Get a saved book
// @Tags library
// @Produce json
// @Security BearerAuth
// @Param id path string true "Library book id"
// @Success 200 {object} models.LibraryBook
// @Failure 404 {object} models.MessageResponse "Not found"
// @Failure 500 {object} models.MessageResponse "Internal server error"
// @Router /books/my-library/{id} [get]
func NewGetBookHandler(svc BookGetter) http.HandlerFunc {
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

		book, err := svc.Get(r.Context(), userID, bookID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrBookNotFound):
				writeMessage(w, http.StatusNotFound, msgBookNotFound)
			default:
				logger.FromContext(r.Context()).Errorw("failed to get book", "err", err)
				writeMessage(w, http.StatusInternalServerError, "Error fetching book from your library.")
			}
			return
		}

		writeJSON(w, http.StatusOK, models.NewLibraryBookView(book))
	}
}
