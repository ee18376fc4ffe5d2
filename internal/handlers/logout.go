package handlers

import (
	"net/http"

	"github.com/patorma/book-reviews/internal/logger"
	"github.com/patorma/book-reviews/internal/middlewares"
)

// NewLogoutHandler returns an HTTP handler for logout. Tokens are stateless,
// so the client is expected to discard its token.
// @Summary User logout
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.MessageResponse "Logged out"
// @Failure 401 {object} models.MessageResponse "No token"
// @Failure 403 {object} models.MessageResponse "Invalid token"
// @Router /auth/logout [post]
func NewLogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if claims := middlewares.ClaimsFromContext(r.Context()); claims != nil {
			logger.FromContext(r.Context()).Infow("user logged out", "userID", claims.UserID, "email", claims.Email)
		}
		writeMessage(w, http.StatusOK, "Logout successful.")
	}
}
