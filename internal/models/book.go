package models

import (
	"time"

	"github.com/google/uuid"
)

// Library field limits.
const (
	MaxReviewLength = 500
	MinRating       = 1
	MaxRating       = 5
)

// CoverPathPrefix is the public route serving embedded covers.
const CoverPathPrefix = "/api/books/library/front-cover/"

// CoverPath returns the local cover reference for a library book.
func CoverPath(bookID uuid.UUID) string {
	return CoverPathPrefix + bookID.String()
}

// LibraryBookDB represents a saved book row in the database
type LibraryBookDB struct {
	BookID          uuid.UUID `db:"book_id"`          // Primary key
	OwnerID         uuid.UUID `db:"owner_id"`         // Owning user
	CatalogID       string    `db:"catalog_id"`       // Catalog work id, unique per owner
	Title           string    `db:"title"`            // Book title
	Author          *string   `db:"author"`           // Optional author
	YearPublication *int      `db:"year_publication"` // Optional first publication year
	CoverImage      []byte    `db:"cover_image"`      // Embedded cover bytes
	CoverMime       *string   `db:"cover_mime"`       // MIME type of CoverImage
	HasCover        bool      `db:"has_cover"`        // Computed, true when CoverImage is stored
	Review          *string   `db:"review"`           // Optional review, at most MaxReviewLength chars
	Rating          *int      `db:"rating"`           // Optional rating, MinRating..MaxRating
	CreatedAt       time.Time `db:"created_at"`       // Creation timestamp
	UpdatedAt       time.Time `db:"updated_at"`       // Last update timestamp
}

// Cover is an embedded cover image.
type Cover struct {
	Data []byte
	Mime string
}

// SortOrder selects the ordering of a library listing.
type SortOrder string

// Supported library orderings.
const (
	SortNewestFirst SortOrder = ""
	SortRatingAsc   SortOrder = "rating_asc"
	SortRatingDesc  SortOrder = "rating_desc"
)

// ParseSortOrder maps a query value to a SortOrder; unknown values fall back to newest first.
func ParseSortOrder(s string) SortOrder {
	switch SortOrder(s) {
	case SortRatingAsc:
		return SortRatingAsc
	case SortRatingDesc:
		return SortRatingDesc
	default:
		return SortNewestFirst
	}
}

// LibraryFilter narrows a library listing.
type LibraryFilter struct {
	Text            string    // case-insensitive substring of title or author
	ExcludeNoReview bool      // drop entries with a null or empty review
	Sort            SortOrder // ordering
}

// NewLibraryBook holds the fields of a book being added to a library.
type NewLibraryBook struct {
	CatalogID       string
	Title           string
	Author          *string
	YearPublication *int
	CoverURL        *string
	Review          *string
	Rating          *int
}

// LibraryBookUpdate holds the mutable fields of a library book. Nil fields are left untouched.
type LibraryBookUpdate struct {
	Review *string
	Rating *int
}
