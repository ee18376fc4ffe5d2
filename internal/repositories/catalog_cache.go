package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/patorma/book-reviews/internal/logger"
	"github.com/patorma/book-reviews/internal/models"
	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned when a catalog page is not cached.
var ErrCacheMiss = errors.New("catalog page not found in cache")

// CatalogCacheRepository caches raw catalog search pages in Redis.
type CatalogCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached pages
}

// NewCatalogCacheRepository creates a new repository instance with the given TTL
func NewCatalogCacheRepository(client *redis.Client, expiration time.Duration) *CatalogCacheRepository {
	return &CatalogCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func catalogCacheKey(query string) string {
	return "catalog_search:" + strings.ToLower(strings.TrimSpace(query))
}

// Get returns the cached catalog page for query.
func (r *CatalogCacheRepository) Get(ctx context.Context, query string) ([]models.CatalogBook, error) {
	key := catalogCacheKey(query)

	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		logger.FromContext(ctx).Infow("cache get", "key", key, "error", err)
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	var books []models.CatalogBook
	if err := json.Unmarshal(val, &books); err != nil {
		logger.FromContext(ctx).Infow("cache get", "key", key, "error", err)
		return nil, err
	}

	logger.FromContext(ctx).Infow("cache get", "key", key, "result", len(books))
	return books, nil
}

// Set caches the catalog page for query.
func (r *CatalogCacheRepository) Set(ctx context.Context, query string, books []models.CatalogBook) error {
	key := catalogCacheKey(query)

	data, err := json.Marshal(books)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.FromContext(ctx).Infow("cache set", "key", key, "result", len(books), "error", err)

	return err
}
