package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/patorma/book-reviews/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestBuildListQuery(t *testing.T) {
	owner := uuid.New()

	tests := []struct {
		name      string
		filter    models.LibraryFilter
		wantWhere string
		wantOrder string
		wantArgs  []any
	}{
		{
			name:      "defaults",
			filter:    models.LibraryFilter{},
			wantWhere: "WHERE owner_id = $1 ORDER BY",
			wantOrder: "ORDER BY created_at DESC",
			wantArgs:  []any{owner},
		},
		{
			name:      "text filter escapes wildcards",
			filter:    models.LibraryFilter{Text: " 50%_off "},
			wantWhere: "AND (title ILIKE $2 OR author ILIKE $2)",
			wantOrder: "ORDER BY created_at DESC",
			wantArgs:  []any{owner, `%50\%\_off%`},
		},
		{
			name:      "exclude no review",
			filter:    models.LibraryFilter{ExcludeNoReview: true, Sort: models.SortRatingAsc},
			wantWhere: "AND review IS NOT NULL AND review <> ''",
			wantOrder: "ORDER BY rating ASC NULLS LAST, created_at DESC",
			wantArgs:  []any{owner},
		},
		{
			name:      "rating desc",
			filter:    models.LibraryFilter{Sort: models.SortRatingDesc},
			wantWhere: "WHERE owner_id = $1",
			wantOrder: "ORDER BY rating DESC NULLS LAST, created_at DESC",
			wantArgs:  []any{owner},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args := buildListQuery(owner, tt.filter)
			assert.Contains(t, query, tt.wantWhere)
			assert.Contains(t, query, tt.wantOrder)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestBookReadRepository_List_Mock(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookReadRepository(db, nil)

	owner := uuid.New()
	bookID := uuid.New()
	now := time.Now()

	rows := sqlmock.NewRows([]string{"book_id", "owner_id", "catalog_id", "title", "rating", "review", "has_cover", "created_at", "updated_at"}).
		AddRow(bookID.String(), owner.String(), "OL1W", "Dune", int64(4), "Spice", false, now, now)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM library_books WHERE owner_id = $1 AND review IS NOT NULL AND review <> '' ORDER BY rating DESC NULLS LAST, created_at DESC`)).
		WithArgs(owner).
		WillReturnRows(rows)

	books, err := repo.List(context.Background(), owner, models.LibraryFilter{ExcludeNoReview: true, Sort: models.SortRatingDesc})
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, bookID, books[0].BookID)
	assert.Equal(t, 4, *books[0].Rating)
	assert.Equal(t, "Spice", *books[0].Review)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookReadRepository_GetByCatalogIDs_Mock(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookReadRepository(db, nil)
	owner := uuid.New()

	t.Run("empty ids skip the query", func(t *testing.T) {
		books, err := repo.GetByCatalogIDs(context.Background(), owner, nil)
		assert.NoError(t, err)
		assert.Nil(t, books)
	})

	t.Run("single batched query", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`WHERE owner_id = $1 AND catalog_id IN ($2, $3)`)).
			WillReturnRows(sqlmock.NewRows([]string{"book_id", "catalog_id", "has_cover"}).
				AddRow(uuid.NewString(), "w1", true))

		books, err := repo.GetByCatalogIDs(context.Background(), owner, []string{"w1", "w2"})
		require.NoError(t, err)
		require.Len(t, books, 1)
		assert.Equal(t, "w1", books[0].CatalogID)
		assert.True(t, books[0].HasCover)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestBookWriteRepository_Save_UniqueViolation(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookWriteRepository(db, nil)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO library_books`)).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "library_books_owner_catalog_key"})

	err := repo.Save(context.Background(), &models.LibraryBookDB{BookID: uuid.New(), OwnerID: uuid.New(), CatalogID: "w1", Title: "Dune"})
	assert.ErrorIs(t, err, ErrAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookWriteRepository_Save_OtherError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookWriteRepository(db, nil)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO library_books`)).
		WillReturnError(errors.New("connection reset"))

	err := repo.Save(context.Background(), &models.LibraryBookDB{BookID: uuid.New(), OwnerID: uuid.New(), CatalogID: "w1", Title: "Dune"})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrAlreadyExists)
}

func TestBookWriteRepository_Delete_Mock(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookWriteRepository(db, nil)
	owner, bookID := uuid.New(), uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM library_books WHERE book_id = $1 AND owner_id = $2`)).
		WithArgs(bookID, owner).
		WillReturnResult(sqlmock.NewResult(0, 0))

	deleted, err := repo.Delete(context.Background(), owner, bookID)
	assert.NoError(t, err)
	assert.False(t, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookWriteRepository_UsesRequestTransaction(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	tx, err := db.Beginx()
	require.NoError(t, err)

	repo := NewBookWriteRepository(db, func(ctx context.Context) *sqlx.Tx { return tx })

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM library_books`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	deleted, err := repo.Delete(context.Background(), uuid.New(), uuid.New())
	require.NoError(t, err)
	assert.True(t, deleted)
	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_Save_UniqueViolation(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserWriteRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO users`)).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	id, err := repo.Save(context.Background(), "dup@example.com", "hash")
	assert.ErrorIs(t, err, ErrAlreadyExists)
	assert.Equal(t, uuid.Nil, id)
}

func TestUserReadRepository_GetByEmail_NotFound_Mock(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM users WHERE email = $1`)).
		WithArgs("ghost@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "email", "password_hash", "created_at", "updated_at"}))

	user, err := repo.GetByEmail(context.Background(), "ghost@example.com")
	assert.NoError(t, err)
	assert.Nil(t, user)
}
