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

//go:generate mockgen -source=library_update.go -destination=library_update_mock.go -package=handlers

// BookUpdater defines the interface for editing a library book.
type BookUpdater interface {
	Update(ctx context.Context, ownerID, bookID uuid.UUID, upd models.LibraryBookUpdate) (*models.LibraryBookDB, error)
}

// NewUpdateBookHandler returns an HTTP handler editing the review and rating of a saved book.
// @Summary Update a saved book
// @Description Absent fields are left untouched
// @Tags library
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Library book id"
// @Param updateBookRequest body models.UpdateBookRequest true "Fields to change"
// @Success 200 {object} models.BookResponse
// @Failure 400 {object} models.MessageResponse "Invalid review or rating"
// @Failure 404 {object} models.MessageResponse "Not found"
// @Failure 500 {object} models.MessageResponse "Internal server error"
// @Router /books/my-library/{id} [put]
func NewUpdateBookHandler(svc BookUpdater) http.HandlerFunc {
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

		var req models.UpdateBookRequest
		if msg, ok := decodeAndValidate(w, r, &req); !ok {
			writeMessage(w, http.StatusBadRequest, msg)
			return
		}

		book, err := svc.Update(r.Context(), userID, bookID, models.LibraryBookUpdate{
			Review: req.Review,
			Rating: req.Rating,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidBook):
				writeMessage(w, http.StatusBadRequest, "Invalid request: "+err.Error()+".")
			case errors.Is(err, services.ErrBookNotFound):
				writeMessage(w, http.StatusNotFound, msgBookNotFound)
			default:
				logger.FromContext(r.Context()).Errorw("failed to update book", "err", err)
				writeMessage(w, http.StatusInternalServerError, "Error updating book in your library.")
			}
			return
		}

		writeJSON(w, http.StatusOK, models.BookResponse{
			Message: "Book updated successfully.",
			Book:    models.NewLibraryBookView(book),
		})
	}
}
