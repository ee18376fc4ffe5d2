package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/patorma/book-reviews/internal/logger"
	"github.com/patorma/book-reviews/internal/models"
	"github.com/patorma/book-reviews/internal/services"
)

//go:generate mockgen -source=login.go -destination=login_mock.go -package=handlers

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (string, *models.UserDB, error)
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticate user and return a JWT valid for one hour
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body models.LoginRequest true "Login Request"
// @Success 200 {object} models.LoginResponse "JWT token returned"
// @Failure 400 {object} models.MessageResponse "Invalid request body"
// @Failure 401 {object} models.MessageResponse "Invalid credentials"
// @Failure 500 {object} models.MessageResponse "Internal server error"
// @Router /auth/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		if msg, ok := decodeAndValidate(w, r, &req); !ok {
			writeMessage(w, http.StatusBadRequest, msg)
			return
		}

		token, user, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials):
				writeMessage(w, http.StatusUnauthorized, "Invalid credentials.")
			default:
				logger.FromContext(r.Context()).Errorw("internal server error", "err", err)
				writeMessage(w, http.StatusInternalServerError, msgInternalError)
			}
			return
		}

		writeJSON(w, http.StatusOK, models.LoginResponse{
			Message: "Login successful.",
			Token:   token,
			User:    models.LoginUser{ID: user.UserID, Email: user.Email},
		})
	}
}
