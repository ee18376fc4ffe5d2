package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/patorma/book-reviews/internal/logger"
	"github.com/patorma/book-reviews/internal/models"
)

//go:generate mockgen -source=library_list.go -destination=library_list_mock.go -package=handlers

// BookLister defines the interface for listing a library.
type BookLister interface {
	List(ctx context.Context, ownerID uuid.UUID, filter models.LibraryFilter) ([]models.LibraryBookDB, error)
}

// NewListBooksHandler returns an HTTP handler listing the caller's library.
// @Summary List my library
// @Tags library
// @Produce json
// @Security BearerAuth
// @Param q query string false "Case-insensitive text matched against title or author"
// @Param sortBy query string false "rating_asc, rating_desc; anything else sorts newest first"
// @Param excludeNoReview query bool false "Leave out books without a review"
// @Success 200 {array} models.LibraryBook
// @Failure 500 {object} models.MessageResponse "Internal server error"
// @Router /books/my-library [get]
func NewListBooksHandler(svc BookLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(r)
		if !ok {
			writeMessage(w, http.StatusUnauthorized, "Access denied. No token provided.")
			return
		}

		query := r.URL.Query()
		excludeNoReview, _ := strconv.ParseBool(query.Get("excludeNoReview"))
		filter := models.LibraryFilter{
			Text:            query.Get("q"),
			ExcludeNoReview: excludeNoReview,
			Sort:            models.ParseSortOrder(query.Get("sortBy")),
		}

		books, err := svc.List(r.Context(), userID, filter)
		if err != nil {
			logger.FromContext(r.Context()).Errorw("failed to list library", "err", err)
			writeMessage(w, http.StatusInternalServerError, "Error fetching your library.")
			return
		}

		writeJSON(w, http.StatusOK, models.NewLibraryBookViews(books))
	}
}
