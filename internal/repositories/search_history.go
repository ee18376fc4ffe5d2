package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/patorma/book-reviews/internal/logger"
	"github.com/redis/go-redis/v9"
)

// DefaultSearchHistoryLimit is the number of queries kept per user.
const DefaultSearchHistoryLimit = 5

// SearchHistoryRepository keeps each user's most recent search queries in a Redis list.
type SearchHistoryRepository struct {
	client *redis.Client
	limit  int64
}

// NewSearchHistoryRepository creates a repository that keeps limit queries per user.
func NewSearchHistoryRepository(client *redis.Client, limit int) *SearchHistoryRepository {
	if limit <= 0 {
		limit = DefaultSearchHistoryLimit
	}
	return &SearchHistoryRepository{client: client, limit: int64(limit)}
}

func searchHistoryKey(userID uuid.UUID) string {
	return "search_history:" + userID.String()
}

// Push records query as the user's most recent search. A repeated query moves to
// the front instead of being stored twice.
func (r *SearchHistoryRepository) Push(ctx context.Context, userID uuid.UUID, query string) error {
	key := searchHistoryKey(userID)
	query = strings.TrimSpace(query)

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LRem(ctx, key, 0, query)
		pipe.LPush(ctx, key, query)
		pipe.LTrim(ctx, key, 0, r.limit-1)
		return nil
	})

	logger.FromContext(ctx).Infow("history push", "key", key, "query", query, "error", err)

	return err
}

// List returns the user's recent queries, most recent first.
func (r *SearchHistoryRepository) List(ctx context.Context, userID uuid.UUID) ([]string, error) {
	key := searchHistoryKey(userID)

	queries, err := r.client.LRange(ctx, key, 0, r.limit-1).Result()

	logger.FromContext(ctx).Infow("history list", "key", key, "result", len(queries), "error", err)

	if err != nil {
		return nil, err
	}
	if queries == nil {
		queries = []string{}
	}
	return queries, nil
}
