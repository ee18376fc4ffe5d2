package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/patorma/book-reviews/internal/logger"
	"github.com/patorma/book-reviews/internal/models"
	"github.com/patorma/book-reviews/internal/services"
)

//go:generate mockgen -source=library_cover.go -destination=library_cover_mock.go -package=handlers

// CoverGetter defines the interface for reading embedded covers.
type CoverGetter interface {
	GetCover(ctx context.Context, bookID uuid.UUID) (*models.Cover, error)
}

const msgCoverNotFound = "Cover not found for this book."

// NewCoverHandler returns an HTTP handler serving a library book's embedded cover.
// The route is public so the cover can be used directly as an image source.
// @Summary Embedded cover image
// @Tags library
// @Produce image/jpeg
// @Produce image/png
// @Param id path string true "Library book id"
// @Success 200 {file} binary
// @Failure 404 {object} models.MessageResponse "No cover"
// @Router /books/library/front-cover/{id} [get]
func NewCoverHandler(svc CoverGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bookID, ok := bookIDParam(r)
		if !ok {
			writeMessage(w, http.StatusNotFound, msgCoverNotFound)
			return
		}

		cover, err := svc.GetCover(r.Context(), bookID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrCoverNotFound):
				writeMessage(w, http.StatusNotFound, msgCoverNotFound)
			default:
				logger.FromContext(r.Context()).Errorw("failed to get cover", "err", err)
				writeMessage(w, http.StatusInternalServerError, msgInternalError)
			}
			return
		}

		w.Header().Set("Content-Type", cover.Mime)
		w.Header().Set("Content-Length", strconv.Itoa(len(cover.Data)))
		w.Header().Set("Cache-Control", "private, max-age=3600")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(cover.Data)
	}
}
