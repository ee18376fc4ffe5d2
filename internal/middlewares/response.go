package middlewares

import (
	"encoding/json"
	"net/http"

	"github.com/patorma/book-reviews/internal/models"
)

func writeMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(models.MessageResponse{Message: message})
}
