package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/patorma/book-reviews/internal/middlewares"
	"github.com/patorma/book-reviews/internal/models"
	"github.com/patorma/book-reviews/internal/validation"
)

// MaxBodyBytes limits every JSON request body.
const MaxBodyBytes = 1 << 20

const msgInternalError = "Internal server error."

var requestValidator = validation.New()

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, models.MessageResponse{Message: message})
}

// decodeAndValidate reads a JSON body into dst and validates it. The returned
// message is safe to send to the client.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) (string, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return "Request body too large.", false
		}
		return "Invalid request body.", false
	}

	if err := requestValidator.Validate(dst); err != nil {
		var vErr *validation.Error
		if errors.As(err, &vErr) {
			return "Invalid request: " + vErr.Error() + ".", false
		}
		return "Invalid request body.", false
	}
	return "", true
}

// currentUserID returns the authenticated user's id placed by middlewares.AuthMiddleware.
func currentUserID(r *http.Request) (uuid.UUID, bool) {
	claims := middlewares.ClaimsFromContext(r.Context())
	if claims == nil || claims.UserID == uuid.Nil {
		return uuid.Nil, false
	}
	return claims.UserID, true
}

// bookIDParam parses the {id} path parameter. Malformed ids are reported as not found.
func bookIDParam(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
