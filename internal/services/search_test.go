package services_test

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/patorma/book-reviews/internal/facades"
	"github.com/patorma/book-reviews/internal/models"
	"github.com/patorma/book-reviews/internal/repositories"
	"github.com/patorma/book-reviews/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeCoverURL(id int, size string) string {
	if size == "" {
		size = "M"
	}
	return "https://covers.example.org/b/id/" + strconv.Itoa(id) + "-" + size + ".jpg"
}

func TestAugmentResults(t *testing.T) {
	withLocal := uuid.New()
	withoutLocal := uuid.New()

	books := []models.CatalogBook{
		{BookID: "A", Title: "Saved with cover", CoverID: intPtr(1)},
		{BookID: "B", Title: "Not saved", CoverID: intPtr(2)},
		{BookID: "C", Title: "Saved without cover", CoverID: intPtr(3)},
		{BookID: "D", Title: "Not saved, no cover"},
		{BookID: "E", Title: "Saved without any cover"},
	}
	owned := []models.LibraryBookDB{
		{BookID: withLocal, CatalogID: "A", HasCover: true},
		{BookID: withoutLocal, CatalogID: "C"},
		{BookID: uuid.New(), CatalogID: "E"},
	}

	results := services.AugmentResults(books, owned, fakeCoverURL)
	require.Len(t, results, 5)

	for i, r := range results {
		assert.Equal(t, books[i].BookID, r.BookID, "order must be preserved")
	}

	assert.True(t, results[0].InMyLibrary)
	require.NotNil(t, results[0].CoverURL)
	assert.Equal(t, "/api/books/library/front-cover/"+withLocal.String(), *results[0].CoverURL)

	assert.False(t, results[1].InMyLibrary)
	require.NotNil(t, results[1].CoverURL)
	assert.Equal(t, "https://covers.example.org/b/id/2-M.jpg", *results[1].CoverURL)

	assert.True(t, results[2].InMyLibrary)
	require.NotNil(t, results[2].CoverURL)
	assert.Equal(t, "https://covers.example.org/b/id/3-M.jpg", *results[2].CoverURL)

	assert.False(t, results[3].InMyLibrary)
	assert.Nil(t, results[3].CoverURL)

	assert.True(t, results[4].InMyLibrary)
	assert.Nil(t, results[4].CoverURL)
}

func TestAugmentResults_Empty(t *testing.T) {
	results := services.AugmentResults(nil, nil, fakeCoverURL)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

type searchMocks struct {
	catalog *services.MockCatalogClient
	library *services.MockLibraryLookup
	cache   *services.MockSearchCache
	history *services.MockSearchHistory
}

func newSearchService(t *testing.T) (*services.SearchService, searchMocks) {
	ctrl := gomock.NewController(t)
	m := searchMocks{
		catalog: services.NewMockCatalogClient(ctrl),
		library: services.NewMockLibraryLookup(ctrl),
		cache:   services.NewMockSearchCache(ctrl),
		history: services.NewMockSearchHistory(ctrl),
	}
	return services.NewSearchService(m.catalog, m.library, m.cache, m.history), m
}

func TestSearchService_Search(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	page := []models.CatalogBook{{BookID: "OL1W", Title: "One", CoverID: intPtr(7)}, {BookID: "OL2W", Title: "Two"}}

	t.Run("cache miss goes to catalog", func(t *testing.T) {
		svc, m := newSearchService(t)

		m.history.EXPECT().Push(ctx, owner, "fox").Return(nil)
		m.cache.EXPECT().Get(ctx, "fox").Return(nil, repositories.ErrCacheMiss)
		m.catalog.EXPECT().Search(ctx, "fox").Return(page, nil)
		m.cache.EXPECT().Set(ctx, "fox", page).Return(nil)
		m.library.EXPECT().GetByCatalogIDs(ctx, owner, []string{"OL1W", "OL2W"}).
			Return([]models.LibraryBookDB{{BookID: uuid.New(), CatalogID: "OL2W"}}, nil)
		m.catalog.EXPECT().CoverURL(7, "").Return("https://covers.example.org/b/id/7-M.jpg")

		results, err := svc.Search(ctx, owner, "  fox ")
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.False(t, results[0].InMyLibrary)
		assert.Equal(t, "https://covers.example.org/b/id/7-M.jpg", *results[0].CoverURL)
		assert.True(t, results[1].InMyLibrary)
		assert.Nil(t, results[1].CoverURL)
	})

	t.Run("cache hit skips catalog", func(t *testing.T) {
		svc, m := newSearchService(t)

		m.history.EXPECT().Push(ctx, owner, "fox").Return(nil)
		m.cache.EXPECT().Get(ctx, "fox").Return(page, nil)
		m.library.EXPECT().GetByCatalogIDs(ctx, owner, []string{"OL1W", "OL2W"}).Return(nil, nil)
		m.catalog.EXPECT().CoverURL(7, "").Return("u")

		results, err := svc.Search(ctx, owner, "fox")
		require.NoError(t, err)
		assert.Len(t, results, 2)
	})

	t.Run("history and cache failures are ignored", func(t *testing.T) {
		svc, m := newSearchService(t)

		m.history.EXPECT().Push(ctx, owner, "fox").Return(errors.New("redis down"))
		m.cache.EXPECT().Get(ctx, "fox").Return(nil, errors.New("redis down"))
		m.catalog.EXPECT().Search(ctx, "fox").Return(page, nil)
		m.cache.EXPECT().Set(ctx, "fox", page).Return(errors.New("redis down"))
		m.library.EXPECT().GetByCatalogIDs(ctx, owner, gomock.Any()).Return(nil, nil)
		m.catalog.EXPECT().CoverURL(7, "").Return("u")

		_, err := svc.Search(ctx, owner, "fox")
		assert.NoError(t, err)
	})

	t.Run("empty query", func(t *testing.T) {
		svc, _ := newSearchService(t)

		_, err := svc.Search(ctx, owner, "   ")
		assert.ErrorIs(t, err, services.ErrEmptyQuery)
	})

	t.Run("catalog unavailable is not recorded", func(t *testing.T) {
		svc, m := newSearchService(t)

		m.history.EXPECT().Push(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		m.cache.EXPECT().Get(ctx, "fox").Return(nil, repositories.ErrCacheMiss)
		m.catalog.EXPECT().Search(ctx, "fox").Return(nil, facades.ErrUnavailable)

		_, err := svc.Search(ctx, owner, "fox")
		assert.ErrorIs(t, err, services.ErrCatalogUnavailable)
	})

	t.Run("library lookup fails", func(t *testing.T) {
		svc, m := newSearchService(t)

		m.history.EXPECT().Push(ctx, owner, "fox").Return(nil)
		m.cache.EXPECT().Get(ctx, "fox").Return(page, nil)
		m.library.EXPECT().GetByCatalogIDs(ctx, owner, gomock.Any()).Return(nil, errors.New("db"))

		_, err := svc.Search(ctx, owner, "fox")
		assert.EqualError(t, err, "db")
	})

	t.Run("without cache and history", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		catalog := services.NewMockCatalogClient(ctrl)
		library := services.NewMockLibraryLookup(ctrl)
		svc := services.NewSearchService(catalog, library, nil, nil)

		catalog.EXPECT().Search(ctx, "fox").Return([]models.CatalogBook{}, nil)
		library.EXPECT().GetByCatalogIDs(ctx, owner, []string{}).Return(nil, nil)

		results, err := svc.Search(ctx, owner, "fox")
		require.NoError(t, err)
		assert.Empty(t, results)

		last, err := svc.LastSearches(ctx, owner)
		require.NoError(t, err)
		assert.Equal(t, []string{}, last)
	})
}

func TestSearchService_LastSearches(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	svc, m := newSearchService(t)

	m.history.EXPECT().List(ctx, owner).Return([]string{"b", "a"}, nil)
	got, err := svc.LastSearches(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, got)

	m.history.EXPECT().List(ctx, owner).Return(nil, nil)
	got, err = svc.LastSearches(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, []string{}, got)

	m.history.EXPECT().List(ctx, owner).Return(nil, errors.New("redis"))
	_, err = svc.LastSearches(ctx, owner)
	assert.Error(t, err)
}

func TestSearchService_Work(t *testing.T) {
	ctx := context.Background()

	svc, m := newSearchService(t)

	m.catalog.EXPECT().GetWork(ctx, "OL1W").Return(&models.WorkDetails{BookID: "OL1W", Title: "One"}, nil)
	work, err := svc.Work(ctx, "OL1W")
	require.NoError(t, err)
	assert.Equal(t, "One", work.Title)

	m.catalog.EXPECT().GetWork(ctx, "OL0W").Return(nil, facades.ErrNotFound)
	_, err = svc.Work(ctx, "OL0W")
	assert.ErrorIs(t, err, services.ErrWorkNotFound)

	m.catalog.EXPECT().GetWork(ctx, "OL9W").Return(nil, facades.ErrUnavailable)
	_, err = svc.Work(ctx, "OL9W")
	assert.ErrorIs(t, err, services.ErrCatalogUnavailable)
}
