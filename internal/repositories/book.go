package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/patorma/book-reviews/internal/models"
)

const bookColumns = `book_id, owner_id, catalog_id, title, author, year_publication, ` +
	`cover_image, cover_mime, cover_image IS NOT NULL AS has_cover, review, rating, created_at, updated_at`

// bookSummaryColumns leaves out the cover bytes.
const bookSummaryColumns = `book_id, owner_id, catalog_id, title, author, year_publication, ` +
	`cover_image IS NOT NULL AS has_cover, review, rating, created_at, updated_at`

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// BookReadRepository reads library books. Every lookup except GetCover is scoped to an owner.
type BookReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewBookReadRepository(db *sqlx.DB, txGetter TxGetter) *BookReadRepository {
	return &BookReadRepository{db: db, txGetter: txGetter}
}

// GetByID returns the owner's book with the given id, or nil.
func (r *BookReadRepository) GetByID(ctx context.Context, ownerID, bookID uuid.UUID) (*models.LibraryBookDB, error) {
	query := `SELECT ` + bookColumns + ` FROM library_books WHERE book_id = $1 AND owner_id = $2`
	return r.getOne(ctx, query, bookID, ownerID)
}

// GetByCatalogID returns the owner's book saved from the given catalog work, or nil.
func (r *BookReadRepository) GetByCatalogID(ctx context.Context, ownerID uuid.UUID, catalogID string) (*models.LibraryBookDB, error) {
	query := `SELECT ` + bookSummaryColumns + ` FROM library_books WHERE owner_id = $1 AND catalog_id = $2`
	return r.getOne(ctx, query, ownerID, catalogID)
}

func (r *BookReadRepository) getOne(ctx context.Context, query string, args ...any) (*models.LibraryBookDB, error) {
	var book models.LibraryBookDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &book, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		logQuery(ctx, query, args, nil, nil)
		return nil, nil
	}

	logQuery(ctx, query, args, book.BookID, err)

	if err != nil {
		return nil, err
	}
	return &book, nil
}

// GetByCatalogIDs returns, in one query, the owner's books saved from any of the given catalog works.
func (r *BookReadRepository) GetByCatalogIDs(ctx context.Context, ownerID uuid.UUID, catalogIDs []string) ([]models.LibraryBookDB, error) {
	if len(catalogIDs) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(
		`SELECT `+bookSummaryColumns+` FROM library_books WHERE owner_id = ? AND catalog_id IN (?)`,
		ownerID, catalogIDs,
	)
	if err != nil {
		return nil, err
	}
	query = sqlx.Rebind(sqlx.DOLLAR, query)

	var books []models.LibraryBookDB
	err = sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &books, query, args...)

	logQuery(ctx, query, args, len(books), err)

	return books, err
}

// List returns the owner's books matching filter in the requested order.
func (r *BookReadRepository) List(ctx context.Context, ownerID uuid.UUID, filter models.LibraryFilter) ([]models.LibraryBookDB, error) {
	query, args := buildListQuery(ownerID, filter)

	books := []models.LibraryBookDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &books, query, args...)

	logQuery(ctx, query, args, len(books), err)

	if err != nil {
		return nil, err
	}
	return books, nil
}

func buildListQuery(ownerID uuid.UUID, filter models.LibraryFilter) (string, []any) {
	var sb strings.Builder
	args := []any{ownerID}

	sb.WriteString(`SELECT ` + bookColumns + ` FROM library_books WHERE owner_id = $1`)

	if text := strings.TrimSpace(filter.Text); text != "" {
		args = append(args, "%"+likeEscaper.Replace(text)+"%")
		n := len(args)
		fmt.Fprintf(&sb, ` AND (title ILIKE $%d OR author ILIKE $%d)`, n, n)
	}

	if filter.ExcludeNoReview {
		sb.WriteString(` AND review IS NOT NULL AND review <> ''`)
	}

	switch filter.Sort {
	case models.SortRatingAsc:
		sb.WriteString(` ORDER BY rating ASC NULLS LAST, created_at DESC`)
	case models.SortRatingDesc:
		sb.WriteString(` ORDER BY rating DESC NULLS LAST, created_at DESC`)
	default:
		sb.WriteString(` ORDER BY created_at DESC`)
	}

	return sb.String(), args
}

// GetCover returns the embedded cover of any book by id, or nil when the book
// does not exist or has no cover.
func (r *BookReadRepository) GetCover(ctx context.Context, bookID uuid.UUID) (*models.Cover, error) {
	const query = `
		SELECT cover_image, cover_mime
		FROM library_books
		WHERE book_id = $1 AND cover_image IS NOT NULL
	`

	var row struct {
		Data []byte         `db:"cover_image"`
		Mime sql.NullString `db:"cover_mime"`
	}
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &row, query, bookID)
	if errors.Is(err, sql.ErrNoRows) {
		logQuery(ctx, query, []any{bookID}, nil, nil)
		return nil, nil
	}

	logQuery(ctx, query, []any{bookID}, len(row.Data), err)

	if err != nil {
		return nil, err
	}

	mime := row.Mime.String
	if mime == "" {
		mime = "application/octet-stream"
	}
	return &models.Cover{Data: row.Data, Mime: mime}, nil
}

// BookWriteRepository writes library books.
type BookWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewBookWriteRepository(db *sqlx.DB, txGetter TxGetter) *BookWriteRepository {
	return &BookWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts book and fills its timestamps. A second copy of the same catalog
// work for the same owner is reported as ErrAlreadyExists.
func (r *BookWriteRepository) Save(ctx context.Context, book *models.LibraryBookDB) error {
	const query = `
		INSERT INTO library_books (
			book_id, owner_id, catalog_id, title, author, year_publication,
			cover_image, cover_mime, review, rating, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	args := []any{
		book.BookID, book.OwnerID, book.CatalogID, book.Title, book.Author, book.YearPublication,
		book.CoverImage, book.CoverMime, book.Review, book.Rating,
	}

	var ts struct {
		CreatedAt sql.NullTime `db:"created_at"`
		UpdatedAt sql.NullTime `db:"updated_at"`
	}
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &ts, query, args...)

	// cover bytes stay out of the log
	logArgs := append([]any{}, args...)
	logArgs[6] = len(book.CoverImage)
	logQuery(ctx, query, logArgs, book.BookID, err)

	if err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadyExists
		}
		return err
	}

	book.CreatedAt = ts.CreatedAt.Time
	book.UpdatedAt = ts.UpdatedAt.Time
	book.HasCover = len(book.CoverImage) > 0
	return nil
}

// Update changes the review and/or rating of the owner's book and refreshes
// updated_at. Nil fields keep their stored value. Returns nil when the owner has
// no such book.
func (r *BookWriteRepository) Update(ctx context.Context, ownerID, bookID uuid.UUID, upd models.LibraryBookUpdate) (*models.LibraryBookDB, error) {
	query := `
		UPDATE library_books
		SET review = COALESCE($3, review),
		    rating = COALESCE($4, rating),
		    updated_at = NOW()
		WHERE book_id = $1 AND owner_id = $2
		RETURNING ` + bookColumns

	args := []any{bookID, ownerID, upd.Review, upd.Rating}

	var book models.LibraryBookDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &book, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		logQuery(ctx, query, args, nil, nil)
		return nil, nil
	}

	logQuery(ctx, query, args, book.BookID, err)

	if err != nil {
		return nil, err
	}
	return &book, nil
}

// Delete removes the owner's book and reports whether a row was deleted.
func (r *BookWriteRepository) Delete(ctx context.Context, ownerID, bookID uuid.UUID) (bool, error) {
	const query = `DELETE FROM library_books WHERE book_id = $1 AND owner_id = $2`

	args := []any{bookID, ownerID}
	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(ctx, query, args, rowsAffected, err)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}
