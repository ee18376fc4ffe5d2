package models

import (
	"encoding/base64"
	"time"

	"github.com/google/uuid"
)

// AddBookRequest represents the JSON body for saving a catalog book
// swagger:model AddBookRequest
type AddBookRequest struct {
	// Catalog work id
	// required: true
	// example: OL45804W
	BookID string `json:"bookId" validate:"required,max=64"`

	// required: true
	// example: Fantastic Mr Fox
	Title string `json:"title" validate:"required,max=512"`

	// example: Roald Dahl
	Author *string `json:"author,omitempty" validate:"omitempty,max=512"`

	// example: 1970
	YearPublication *int `json:"yearPublication,omitempty"`

	// Remote cover image to embed. Values that cannot be fetched leave the book without a cover.
	// example: https://covers.openlibrary.org/b/id/6498519-M.jpg
	CoverURL *string `json:"coverUrl,omitempty" validate:"omitempty,max=2048"`

	// example: Loved it
	Review *string `json:"review,omitempty" validate:"omitempty,max=500"`

	// example: 5
	Rating *int `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
}

// ToNewLibraryBook converts the request to service input.
func (r AddBookRequest) ToNewLibraryBook() NewLibraryBook {
	return NewLibraryBook{
		CatalogID:       r.BookID,
		Title:           r.Title,
		Author:          r.Author,
		YearPublication: r.YearPublication,
		CoverURL:        r.CoverURL,
		Review:          r.Review,
		Rating:          r.Rating,
	}
}

// UpdateBookRequest represents the JSON body for editing a library book
// swagger:model UpdateBookRequest
type UpdateBookRequest struct {
	// example: Even better the second time
	Review *string `json:"review,omitempty" validate:"omitempty,max=500"`

	// example: 4
	Rating *int `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
}

// LibraryBook is the public representation of a saved book
// swagger:model LibraryBook
type LibraryBook struct {
	ID              uuid.UUID `json:"id"`
	BookID          string    `json:"bookId"`
	UserID          uuid.UUID `json:"userId"`
	Title           string    `json:"title"`
	Author          *string   `json:"author"`
	YearPublication *int      `json:"yearPublication"`
	// Embedded cover as a data URI
	CoverBase64 *string `json:"coverBase64"`
	// Local cover endpoint, null without an embedded cover
	CoverURL  *string   `json:"coverUrl"`
	Review    *string   `json:"review"`
	Rating    *int      `json:"rating"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookResponse wraps a book with a message
// swagger:model BookResponse
type BookResponse struct {
	// example: Book saved to your library
	Message string      `json:"message"`
	Book    LibraryBook `json:"book"`
}

// NewLibraryBookView converts a stored row to its public form.
func NewLibraryBookView(b *LibraryBookDB) LibraryBook {
	view := LibraryBook{
		ID:              b.BookID,
		BookID:          b.CatalogID,
		UserID:          b.OwnerID,
		Title:           b.Title,
		Author:          b.Author,
		YearPublication: b.YearPublication,
		Review:          b.Review,
		Rating:          b.Rating,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
	if b.HasCover {
		path := CoverPath(b.BookID)
		view.CoverURL = &path
	}
	if len(b.CoverImage) > 0 {
		mime := "application/octet-stream"
		if b.CoverMime != nil && *b.CoverMime != "" {
			mime = *b.CoverMime
		}
		uri := "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(b.CoverImage)
		view.CoverBase64 = &uri
	}
	return view
}

// NewLibraryBookViews converts a listing, never returning nil.
func NewLibraryBookViews(books []LibraryBookDB) []LibraryBook {
	views := make([]LibraryBook, 0, len(books))
	for i := range books {
		views = append(views, NewLibraryBookView(&books[i]))
	}
	return views
}
