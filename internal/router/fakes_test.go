package router

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/patorma/book-reviews/internal/models"
	"github.com/patorma/book-reviews/internal/repositories"
)

// memUsers is an in-memory user store.
type memUsers struct {
	mu    sync.Mutex
	users map[string]models.UserDB
}

func newMemUsers() *memUsers {
	return &memUsers{users: map[string]models.UserDB{}}
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (*models.UserDB, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[email]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (m *memUsers) Save(_ context.Context, email, passwordHash string) (uuid.UUID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[email]; ok {
		return uuid.Nil, repositories.ErrAlreadyExists
	}
	id := uuid.New()
	now := time.Now()
	m.users[email] = models.UserDB{UserID: id, Email: email, PasswordHash: passwordHash, CreatedAt: now, UpdatedAt: now}
	return id, nil
}

// memBooks is an in-memory library store with the same ownership rules as the SQL one.
type memBooks struct {
	mu    sync.Mutex
	books map[uuid.UUID]models.LibraryBookDB
	clock time.Time
}

func newMemBooks() *memBooks {
	return &memBooks{books: map[uuid.UUID]models.LibraryBookDB{}, clock: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (m *memBooks) tick() time.Time {
	m.clock = m.clock.Add(time.Second)
	return m.clock
}

func (m *memBooks) GetByID(_ context.Context, ownerID, bookID uuid.UUID) (*models.LibraryBookDB, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.books[bookID]
	if !ok || b.OwnerID != ownerID {
		return nil, nil
	}
	return &b, nil
}

func (m *memBooks) GetByCatalogID(_ context.Context, ownerID uuid.UUID, catalogID string) (*models.LibraryBookDB, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range m.books {
		if b.OwnerID == ownerID && b.CatalogID == catalogID {
			return &b, nil
		}
	}
	return nil, nil
}

func (m *memBooks) GetByCatalogIDs(_ context.Context, ownerID uuid.UUID, catalogIDs []string) ([]models.LibraryBookDB, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	wanted := map[string]bool{}
	for _, id := range catalogIDs {
		wanted[id] = true
	}
	var out []models.LibraryBookDB
	for _, b := range m.books {
		if b.OwnerID == ownerID && wanted[b.CatalogID] {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memBooks) List(_ context.Context, ownerID uuid.UUID, filter models.LibraryFilter) ([]models.LibraryBookDB, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	text := strings.ToLower(filter.Text)
	out := []models.LibraryBookDB{}
	for _, b := range m.books {
		if b.OwnerID != ownerID {
			continue
		}
		if text != "" {
			author := ""
			if b.Author != nil {
				author = *b.Author
			}
			if !strings.Contains(strings.ToLower(b.Title), text) && !strings.Contains(strings.ToLower(author), text) {
				continue
			}
		}
		if filter.ExcludeNoReview && (b.Review == nil || *b.Review == "") {
			continue
		}
		out = append(out, b)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if filter.Sort != models.SortNewestFirst && (a.Rating == nil) != (b.Rating == nil) {
			return a.Rating != nil
		}
		if filter.Sort != models.SortNewestFirst && a.Rating != nil && *a.Rating != *b.Rating {
			if filter.Sort == models.SortRatingAsc {
				return *a.Rating < *b.Rating
			}
			return *a.Rating > *b.Rating
		}
		return a.CreatedAt.After(b.CreatedAt)
	})
	return out, nil
}

func (m *memBooks) GetCover(_ context.Context, bookID uuid.UUID) (*models.Cover, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.books[bookID]
	if !ok || len(b.CoverImage) == 0 {
		return nil, nil
	}
	mime := "application/octet-stream"
	if b.CoverMime != nil {
		mime = *b.CoverMime
	}
	return &models.Cover{Data: b.CoverImage, Mime: mime}, nil
}

func (m *memBooks) Save(_ context.Context, book *models.LibraryBookDB) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range m.books {
		if b.OwnerID == book.OwnerID && b.CatalogID == book.CatalogID {
			return repositories.ErrAlreadyExists
		}
	}
	now := m.tick()
	book.CreatedAt, book.UpdatedAt = now, now
	book.HasCover = len(book.CoverImage) > 0
	m.books[book.BookID] = *book
	return nil
}

func (m *memBooks) Update(_ context.Context, ownerID, bookID uuid.UUID, upd models.LibraryBookUpdate) (*models.LibraryBookDB, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.books[bookID]
	if !ok || b.OwnerID != ownerID {
		return nil, nil
	}
	if upd.Review != nil {
		b.Review = upd.Review
	}
	if upd.Rating != nil {
		b.Rating = upd.Rating
	}
	b.UpdatedAt = m.tick()
	m.books[bookID] = b
	return &b, nil
}

func (m *memBooks) Delete(_ context.Context, ownerID, bookID uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.books[bookID]
	if !ok || b.OwnerID != ownerID {
		return false, nil
	}
	delete(m.books, bookID)
	return true, nil
}

// memHistory keeps the five most recent distinct queries per user.
type memHistory struct {
	mu      sync.Mutex
	queries map[uuid.UUID][]string
}

func newMemHistory() *memHistory {
	return &memHistory{queries: map[uuid.UUID][]string{}}
}

func (m *memHistory) Push(_ context.Context, userID uuid.UUID, query string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	list := []string{query}
	for _, q := range m.queries[userID] {
		if q != query {
			list = append(list, q)
		}
	}
	if len(list) > repositories.DefaultSearchHistoryLimit {
		list = list[:repositories.DefaultSearchHistoryLimit]
	}
	m.queries[userID] = list
	return nil
}

func (m *memHistory) List(_ context.Context, userID uuid.UUID) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string{}, m.queries[userID]...), nil
}
