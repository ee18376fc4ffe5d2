package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/patorma/book-reviews/internal/logger"
	"github.com/patorma/book-reviews/internal/models"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

var (
	// ErrUnavailable is returned when the catalog cannot be reached or answers with an error.
	ErrUnavailable = errors.New("catalog unavailable")
	// ErrNotFound is returned when the catalog has no such work.
	ErrNotFound = errors.New("catalog work not found")
)

// Catalog defaults.
const (
	DefaultBaseURL   = "https://openlibrary.org"
	DefaultCoversURL = "https://covers.openlibrary.org"
	DefaultTimeout   = 10 * time.Second
	SearchPageSize   = 10
	MaxCoverSize     = 5 << 20
	unknownAuthor    = "Unknown"
	searchFields     = "key,title,author_name,first_publish_year,cover_i"
)

// OpenLibraryFacade talks to the Open Library HTTP API.
type OpenLibraryFacade struct {
	baseURL     string
	coversURL   string
	client      *http.Client
	rateLimiter *rate.Limiter
}

// Option configures an OpenLibraryFacade.
type Option func(*OpenLibraryFacade)

// WithBaseURL overrides the catalog API base URL.
func WithBaseURL(u string) Option {
	return func(f *OpenLibraryFacade) { f.baseURL = strings.TrimRight(u, "/") }
}

// WithCoversURL overrides the cover image base URL.
func WithCoversURL(u string) Option {
	return func(f *OpenLibraryFacade) { f.coversURL = strings.TrimRight(u, "/") }
}

// WithTimeout bounds every outbound request.
func WithTimeout(d time.Duration) Option {
	return func(f *OpenLibraryFacade) { f.client.Timeout = d }
}

// WithRateLimit limits outbound requests to rps per second with the given burst.
func WithRateLimit(rps float64, burst int) Option {
	return func(f *OpenLibraryFacade) { f.rateLimiter = rate.NewLimiter(rate.Limit(rps), burst) }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(f *OpenLibraryFacade) { f.client = c }
}

// NewOpenLibraryFacade creates a new facade.
func NewOpenLibraryFacade(opts ...Option) *OpenLibraryFacade {
	f := &OpenLibraryFacade{
		baseURL:     DefaultBaseURL,
		coversURL:   DefaultCoversURL,
		client:      &http.Client{Timeout: DefaultTimeout},
		rateLimiter: rate.NewLimiter(rate.Limit(5), 5),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

type searchResponse struct {
	Docs []struct {
		Key              string   `json:"key"`
		Title            string   `json:"title"`
		AuthorName       []string `json:"author_name"`
		FirstPublishYear *int     `json:"first_publish_year"`
		CoverI           *int     `json:"cover_i"`
	} `json:"docs"`
}

// Search queries the catalog and returns at most SearchPageSize normalized
// results in the catalog's relevance order.
func (f *OpenLibraryFacade) Search(ctx context.Context, query string) ([]models.CatalogBook, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("limit", strconv.Itoa(SearchPageSize))
	params.Set("fields", searchFields)

	var resp searchResponse
	if err := f.getJSON(ctx, f.baseURL+"/search.json?"+params.Encode(), &resp); err != nil {
		logger.FromContext(ctx).Errorw("failed to search catalog", "query", query, "error", err)
		return nil, err
	}

	books := make([]models.CatalogBook, 0, len(resp.Docs))
	for _, doc := range resp.Docs {
		if len(books) == SearchPageSize {
			break
		}
		author := unknownAuthor
		if len(doc.AuthorName) > 0 && doc.AuthorName[0] != "" {
			author = doc.AuthorName[0]
		}
		books = append(books, models.CatalogBook{
			BookID:          strings.TrimPrefix(doc.Key, "/works/"),
			Title:           doc.Title,
			Author:          author,
			YearPublication: doc.FirstPublishYear,
			CoverID:         doc.CoverI,
		})
	}
	return books, nil
}

// textValue decodes Open Library text fields that come either as a plain
// string or as {"type": "/type/text", "value": "..."}.
type textValue string

func (t *textValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = textValue(s)
		return nil
	}
	var typed struct {
		Value string `json:"value"`
	}
	if err := json.Unmarshal(data, &typed); err != nil {
		return err
	}
	*t = textValue(typed.Value)
	return nil
}

type workResponse struct {
	Title            string    `json:"title"`
	Description      textValue `json:"description"`
	Subjects         []string  `json:"subjects"`
	Covers           []int     `json:"covers"`
	FirstPublishDate string    `json:"first_publish_date"`
}

// GetWork returns the catalog details of a single work.
func (f *OpenLibraryFacade) GetWork(ctx context.Context, bookID string) (*models.WorkDetails, error) {
	var resp workResponse
	if err := f.getJSON(ctx, f.baseURL+"/works/"+url.PathEscape(bookID)+".json", &resp); err != nil {
		logger.FromContext(ctx).Errorw("failed to get catalog work", "bookID", bookID, "error", err)
		return nil, err
	}

	details := &models.WorkDetails{
		BookID:           bookID,
		Title:            resp.Title,
		Description:      string(resp.Description),
		Subjects:         resp.Subjects,
		Covers:           resp.Covers,
		FirstPublishDate: resp.FirstPublishDate,
	}
	if details.Subjects == nil {
		details.Subjects = []string{}
	}
	if details.Covers == nil {
		details.Covers = []int{}
	}
	return details, nil
}

// CoverURL derives the catalog cover URL for coverID. Size is S, M or L;
// anything else is treated as M. A zero id has no cover.
func (f *OpenLibraryFacade) CoverURL(coverID int, size string) string {
	if coverID <= 0 {
		return ""
	}
	switch size {
	case "S", "M", "L":
	default:
		size = "M"
	}
	return fmt.Sprintf("%s/b/id/%d-%s.jpg", f.coversURL, coverID, size)
}

// FetchCover downloads an image and returns its bytes and MIME type.
func (f *OpenLibraryFacade) FetchCover(ctx context.Context, coverURL string) ([]byte, string, error) {
	resp, err := f.do(ctx, coverURL)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", errors.Errorf("cover download: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxCoverSize+1))
	if err != nil {
		return nil, "", errors.Wrap(err, "read cover")
	}
	if len(data) > MaxCoverSize {
		return nil, "", errors.Errorf("cover larger than %d bytes", MaxCoverSize)
	}

	mimeType, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil || mimeType == "" || mimeType == "application/octet-stream" {
		mimeType = http.DetectContentType(data)
	}
	if !strings.HasPrefix(mimeType, "image/") {
		return nil, "", errors.Errorf("cover has non-image content type %q", mimeType)
	}

	return data, mimeType, nil
}

func (f *OpenLibraryFacade) do(ctx context.Context, rawURL string) (*http.Response, error) {
	if err := f.rateLimiter.Wait(ctx); err != nil {
		return nil, errors.Wrap(err, "rate limiter")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}
	req.Header.Set("Accept", "application/json, image/*")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "GET %s", req.URL.Redacted())
	}
	return resp, nil
}

func (f *OpenLibraryFacade) getJSON(ctx context.Context, rawURL string, dst any) error {
	resp, err := f.do(ctx, rawURL)
	if err != nil {
		return errors.Wrap(ErrUnavailable, err.Error())
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return errors.Wrapf(ErrUnavailable, "unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return errors.Wrapf(ErrUnavailable, "decode response: %v", err)
	}
	return nil
}
