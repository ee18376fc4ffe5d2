// Package router assembles the HTTP API.
package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	"github.com/patorma/book-reviews/internal/handlers"
	"github.com/patorma/book-reviews/internal/middlewares"
	"github.com/patorma/book-reviews/internal/models"
	httpSwagger "github.com/swaggo/http-swagger"
)

// AuthService is what the auth routes need.
type AuthService interface {
	handlers.Registerer
	handlers.Loginer
}

// SearchService is what the catalog routes need.
type SearchService interface {
	handlers.Searcher
	handlers.LastSearcher
	handlers.WorkGetter
}

// LibraryService is what the library routes need.
type LibraryService interface {
	handlers.BookAdder
	handlers.BookLister
	handlers.BookGetter
	handlers.CoverGetter
	handlers.BookUpdater
	handlers.BookDeleter
}

// Config holds the router dependencies.
type Config struct {
	Auth    AuthService
	Search  SearchService
	Library LibraryService
	Tokener middlewares.Tokener

	// DB, when set, wraps library writes in a request transaction.
	DB *sqlx.DB

	AllowedOrigins []string
	// SwaggerURL is the doc.json location handed to the Swagger UI.
	SwaggerURL string
}

// New builds the HTTP handler for the whole API.
func New(cfg Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middlewares.LoggingMiddleware)
	r.Use(middlewares.RecoverMiddleware)

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", middlewares.RequestIDHeader},
		ExposedHeaders: []string{"Authorization", "Content-Type", middlewares.RequestIDHeader},
		MaxAge:         300,
	}))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeMessage(w, http.StatusNotFound, "Route not found.")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeMessage(w, http.StatusMethodNotAllowed, "Method not allowed.")
	})

	auth := middlewares.AuthMiddleware(cfg.Tokener)
	tx := func(next http.Handler) http.Handler { return next }
	if cfg.DB != nil {
		tx = middlewares.TxMiddleware(cfg.DB)
	}

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", handlers.NewRegisterHandler(cfg.Auth))
			r.Post("/login", handlers.NewLoginHandler(cfg.Auth))
			r.With(auth).Post("/logout", handlers.NewLogoutHandler())
		})

		r.Route("/books", func(r chi.Router) {
			// Public so covers work as plain image sources.
			r.Get("/library/front-cover/{id}", handlers.NewCoverHandler(cfg.Library))

			r.Group(func(r chi.Router) {
				r.Use(auth)

				r.Get("/search", handlers.NewSearchHandler(cfg.Search))
				r.Get("/last-search", handlers.NewLastSearchHandler(cfg.Search))
				r.Get("/works/{bookId}", handlers.NewWorkHandler(cfg.Search))

				r.Get("/my-library", handlers.NewListBooksHandler(cfg.Library))
				r.Get("/my-library/{id}", handlers.NewGetBookHandler(cfg.Library))
				// Add downloads a cover, so it runs outside a request transaction.
				// It is a single insert guarded by the (owner, catalog id) unique key.
				r.Post("/my-library", handlers.NewAddBookHandler(cfg.Library))
				r.With(tx).Put("/my-library/{id}", handlers.NewUpdateBookHandler(cfg.Library))
				r.With(tx).Delete("/my-library/{id}", handlers.NewDeleteBookHandler(cfg.Library))
			})
		})
	})

	swaggerURL := cfg.SwaggerURL
	if swaggerURL == "" {
		swaggerURL = "/swagger/doc.json"
	}
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(swaggerURL)))

	return r
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(models.MessageResponse{Message: message})
}
