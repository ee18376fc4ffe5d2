package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/patorma/book-reviews/internal/logger"
	"github.com/patorma/book-reviews/internal/models"
	"github.com/patorma/book-reviews/internal/services"
)

//go:generate mockgen -source=register.go -destination=register_mock.go -package=handlers

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, email, password string) error
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account. The email must be unique; the password is stored as a bcrypt hash.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body models.RegisterRequest true "User registration request"
// @Success 201 {object} models.MessageResponse "User successfully registered"
// @Failure 400 {object} models.MessageResponse "Email already registered / invalid request"
// @Failure 500 {object} models.MessageResponse "Internal server error"
// @Router /auth/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.RegisterRequest
		if msg, ok := decodeAndValidate(w, r, &req); !ok {
			writeMessage(w, http.StatusBadRequest, msg)
			return
		}

		err := svc.Register(r.Context(), req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserAlreadyExists):
				writeMessage(w, http.StatusBadRequest, "User already exists.")
			case errors.Is(err, services.ErrPasswordTooLong):
				writeMessage(w, http.StatusBadRequest, "Invalid request: password must not exceed 72 bytes.")
			default:
				logger.FromContext(r.Context()).Errorw("internal server error", "err", err)
				writeMessage(w, http.StatusInternalServerError, msgInternalError)
			}
			return
		}

		writeMessage(w, http.StatusCreated, "User registered successfully.")
	}
}
