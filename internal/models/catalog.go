package models

// CatalogBook is one normalized hit of the external catalog search.
type CatalogBook struct {
	BookID          string `json:"bookId"`
	Title           string `json:"title"`
	Author          string `json:"author"`
	YearPublication *int   `json:"yearPublication,omitempty"`
	CoverID         *int   `json:"coverId,omitempty"`
}

// SearchResult is a catalog hit annotated with the caller's library state.
// swagger:model SearchResult
type SearchResult struct {
	CatalogBook
	// Local cover endpoint when the saved copy has an embedded cover,
	// otherwise the catalog cover URL, otherwise null.
	CoverURL    *string `json:"coverUrl"`
	InMyLibrary bool    `json:"inMyLibrary"`
}

// WorkDetails is the catalog description of a single work.
// swagger:model WorkDetails
type WorkDetails struct {
	BookID           string   `json:"bookId"`
	Title            string   `json:"title"`
	Description      string   `json:"description,omitempty"`
	Subjects         []string `json:"subjects"`
	Covers           []int    `json:"covers"`
	FirstPublishDate string   `json:"firstPublishDate,omitempty"`
}
