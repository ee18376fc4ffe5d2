package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/patorma/book-reviews/internal/facades"
	"github.com/patorma/book-reviews/internal/logger"
	"github.com/patorma/book-reviews/internal/models"
)

//go:generate mockgen -source=search.go -destination=search_mock.go -package=services

var (
	ErrEmptyQuery         = errors.New("search query is required")
	ErrCatalogUnavailable = errors.New("catalog unavailable")
	ErrWorkNotFound       = errors.New("work not found")
)

// CatalogClient queries the external book catalog.
type CatalogClient interface {
	Search(ctx context.Context, query string) ([]models.CatalogBook, error)
	GetWork(ctx context.Context, bookID string) (*models.WorkDetails, error)
	CoverURL(coverID int, size string) string
}

// LibraryLookup finds the owner's saved copies of catalog works in one query.
type LibraryLookup interface {
	GetByCatalogIDs(ctx context.Context, ownerID uuid.UUID, catalogIDs []string) ([]models.LibraryBookDB, error)
}

// SearchCache caches raw catalog pages.
type SearchCache interface {
	Get(ctx context.Context, query string) ([]models.CatalogBook, error)
	Set(ctx context.Context, query string, books []models.CatalogBook) error
}

// SearchHistory keeps each user's recent queries.
type SearchHistory interface {
	Push(ctx context.Context, userID uuid.UUID, query string) error
	List(ctx context.Context, userID uuid.UUID) ([]string, error)
}

// SearchService searches the catalog and annotates hits with the caller's library.
type SearchService struct {
	catalog CatalogClient
	library LibraryLookup
	cache   SearchCache
	history SearchHistory
}

// NewSearchService creates a new SearchService. cache and history may be nil.
func NewSearchService(catalog CatalogClient, library LibraryLookup, cache SearchCache, history SearchHistory) *SearchService {
	return &SearchService{
		catalog: catalog,
		library: library,
		cache:   cache,
		history: history,
	}
}

// Search runs query against the catalog and returns the augmented results in catalog order.
func (s *SearchService) Search(ctx context.Context, ownerID uuid.UUID, query string) ([]models.SearchResult, error) {
	log := logger.FromContext(ctx)

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	books, err := s.catalogPage(ctx, query)
	if err != nil {
		return nil, err
	}

	// Only searches the catalog answered are remembered.
	s.recordQuery(ctx, ownerID, query)

	ids := make([]string, 0, len(books))
	for _, b := range books {
		ids = append(ids, b.BookID)
	}

	owned, err := s.library.GetByCatalogIDs(ctx, ownerID, ids)
	if err != nil {
		log.Errorw("failed to look up library for search results", "userID", ownerID, "error", err)
		return nil, err
	}

	results := AugmentResults(books, owned, s.catalog.CoverURL)
	log.Infow("catalog search", "userID", ownerID, "query", query, "results", len(results), "owned", len(owned))
	return results, nil
}

func (s *SearchService) catalogPage(ctx context.Context, query string) ([]models.CatalogBook, error) {
	log := logger.FromContext(ctx)

	if s.cache != nil {
		books, err := s.cache.Get(ctx, query)
		if err == nil {
			return books, nil
		}
	}

	books, err := s.catalog.Search(ctx, query)
	if err != nil {
		log.Errorw("catalog search failed", "query", query, "error", err)
		return nil, errors.Join(ErrCatalogUnavailable, err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, query, books); err != nil {
			log.Warnw("failed to cache catalog page", "query", query, "error", err)
		}
	}
	return books, nil
}

func (s *SearchService) recordQuery(ctx context.Context, userID uuid.UUID, query string) {
	if s.history == nil {
		return
	}
	if err := s.history.Push(ctx, userID, query); err != nil {
		logger.FromContext(ctx).Warnw("failed to record search", "userID", userID, "error", err)
	}
}

// LastSearches returns the user's most recent queries, newest first.
func (s *SearchService) LastSearches(ctx context.Context, userID uuid.UUID) ([]string, error) {
	if s.history == nil {
		return []string{}, nil
	}
	queries, err := s.history.List(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to read search history", "userID", userID, "error", err)
		return nil, err
	}
	if queries == nil {
		queries = []string{}
	}
	return queries, nil
}

// Work returns catalog details for a single work.
func (s *SearchService) Work(ctx context.Context, bookID string) (*models.WorkDetails, error) {
	bookID = strings.TrimSpace(bookID)
	if bookID == "" {
		return nil, ErrWorkNotFound
	}

	work, err := s.catalog.GetWork(ctx, bookID)
	if err != nil {
		if errors.Is(err, facades.ErrNotFound) {
			return nil, ErrWorkNotFound
		}
		logger.FromContext(ctx).Errorw("failed to get catalog work", "bookID", bookID, "error", err)
		return nil, errors.Join(ErrCatalogUnavailable, err)
	}
	return work, nil
}

// AugmentResults joins catalog hits with the owner's saved copies by catalog id.
// Order is preserved. The cover URL points at the locally embedded cover when
// the saved copy has one, else at the catalog cover, else it is nil.
func AugmentResults(books []models.CatalogBook, owned []models.LibraryBookDB, coverURL func(coverID int, size string) string) []models.SearchResult {
	byCatalogID := make(map[string]*models.LibraryBookDB, len(owned))
	for i := range owned {
		byCatalogID[owned[i].CatalogID] = &owned[i]
	}

	results := make([]models.SearchResult, 0, len(books))
	for _, b := range books {
		res := models.SearchResult{CatalogBook: b}

		saved, ok := byCatalogID[b.BookID]
		res.InMyLibrary = ok

		switch {
		case ok && saved.HasCover:
			u := models.CoverPath(saved.BookID)
			res.CoverURL = &u
		case b.CoverID != nil && coverURL != nil:
			if u := coverURL(*b.CoverID, ""); u != "" {
				res.CoverURL = &u
			}
		}

		results = append(results, res)
	}
	return results
}
