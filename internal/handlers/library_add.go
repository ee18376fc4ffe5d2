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

//go:generate mockgen -source=library_add.go -destination=library_add_mock.go -package=handlers

// BookAdder defines the interface for saving books to a library.
type BookAdder interface {
	Add(ctx context.Context, ownerID uuid.UUID, in models.NewLibraryBook) (*models.LibraryBookDB, error)
}

// NewAddBookHandler returns an HTTP handler saving a catalog book to the caller's library.
// @Summary Save a book
// @Description Saves a catalog book with an optional review and rating. A remote coverUrl is downloaded and embedded.
// @Tags library
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param addBookRequest body models.AddBookRequest true "Book to save"
// @Success 201 {object} models.BookResponse
// @Failure 400 {object} models.MessageResponse "Invalid book"
// @Failure 409 {object} models.MessageResponse "Already in library"
// @Failure 500 {object} models.MessageResponse "Internal server error"
// @Router /books/my-library [post]
func NewAddBookHandler(svc BookAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(r)
		if !ok {
			writeMessage(w, http.StatusUnauthorized, "Access denied. No token provided.")
			return
		}

		var req models.AddBookRequest
		if msg, ok := decodeAndValidate(w, r, &req); !ok {
			writeMessage(w, http.StatusBadRequest, msg)
			return
		}

		book, err := svc.Add(r.Context(), userID, req.ToNewLibraryBook())
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidBook):
				writeMessage(w, http.StatusBadRequest, "Invalid request: "+err.Error()+".")
			case errors.Is(err, services.ErrBookAlreadyInLibrary):
				writeMessage(w, http.StatusConflict, "This book is already in your library.")
			default:
				logger.FromContext(r.Context()).Errorw("failed to save book", "err", err)
				writeMessage(w, http.StatusInternalServerError, "Error saving book to your library.")
			}
			return
		}

		writeJSON(w, http.StatusCreated, models.BookResponse{
			Message: "Book saved to your library.",
			Book:    models.NewLibraryBookView(book),
		})
	}
}
