package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/patorma/book-reviews/internal/logger"
	"github.com/patorma/book-reviews/internal/models"
	"github.com/patorma/book-reviews/internal/repositories"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=library.go -destination=library_mock.go -package=services

var (
	ErrBookAlreadyInLibrary = errors.New("book already in library")
	ErrBookNotFound         = errors.New("book not found in library")
	ErrCoverNotFound        = errors.New("cover not found")
	ErrInvalidBook          = errors.New("invalid book")
)

// BookReader defines read operations on a user's library.
type BookReader interface {
	GetByID(ctx context.Context, ownerID, bookID uuid.UUID) (*models.LibraryBookDB, error)                    // Returns nil when absent or foreign-owned
	GetByCatalogID(ctx context.Context, ownerID uuid.UUID, catalogID string) (*models.LibraryBookDB, error)   // Returns nil when absent
	List(ctx context.Context, ownerID uuid.UUID, filter models.LibraryFilter) ([]models.LibraryBookDB, error) // Filtered and sorted listing
	GetCover(ctx context.Context, bookID uuid.UUID) (*models.Cover, error)                                    // Returns nil when there is no cover
}

// BookWriter defines write operations on a user's library.
type BookWriter interface {
	Save(ctx context.Context, book *models.LibraryBookDB) error
	Update(ctx context.Context, ownerID, bookID uuid.UUID, upd models.LibraryBookUpdate) (*models.LibraryBookDB, error)
	Delete(ctx context.Context, ownerID, bookID uuid.UUID) (bool, error)
}

// CoverFetcher downloads a remote cover image.
type CoverFetcher interface {
	FetchCover(ctx context.Context, coverURL string) ([]byte, string, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// CommitHook runs fn once the unit of work carried by ctx is durable.
type CommitHook func(ctx context.Context, fn func())

// LibraryService manages a user's personal library and publishes library events.
type LibraryService struct {
	reader      BookReader
	writer      BookWriter
	covers      CoverFetcher
	kafkaWriter KafkaWriter
	afterCommit CommitHook
	now         func() time.Time
}

// LibraryOption configures a LibraryService.
type LibraryOption func(*LibraryService)

// WithCommitHook holds library events back until hook runs them.
// Without it events are published as soon as the write returns.
func WithCommitHook(hook CommitHook) LibraryOption {
	return func(s *LibraryService) {
		if hook != nil {
			s.afterCommit = hook
		}
	}
}

// NewLibraryService creates a new LibraryService. kafkaWriter may be nil.
func NewLibraryService(reader BookReader, writer BookWriter, covers CoverFetcher, kafkaWriter KafkaWriter, opts ...LibraryOption) *LibraryService {
	s := &LibraryService{
		reader:      reader,
		writer:      writer,
		covers:      covers,
		kafkaWriter: kafkaWriter,
		afterCommit: func(_ context.Context, fn func()) { fn() },
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func validateReview(review *string) error {
	if review != nil && utf8.RuneCountInString(*review) > models.MaxReviewLength {
		return fmt.Errorf("%w: review exceeds %d characters", ErrInvalidBook, models.MaxReviewLength)
	}
	return nil
}

func validateRating(rating *int) error {
	if rating != nil && (*rating < models.MinRating || *rating > models.MaxRating) {
		return fmt.Errorf("%w: rating must be between %d and %d", ErrInvalidBook, models.MinRating, models.MaxRating)
	}
	return nil
}

// Add saves a catalog book to the owner's library, embedding its cover when a
// remote cover URL is given. A failed cover download leaves the book without a cover.
func (s *LibraryService) Add(ctx context.Context, ownerID uuid.UUID, in models.NewLibraryBook) (*models.LibraryBookDB, error) {
	log := logger.FromContext(ctx)

	in.CatalogID = strings.TrimSpace(in.CatalogID)
	in.Title = strings.TrimSpace(in.Title)
	if in.CatalogID == "" || in.Title == "" {
		return nil, fmt.Errorf("%w: bookId and title are required", ErrInvalidBook)
	}
	if err := validateReview(in.Review); err != nil {
		return nil, err
	}
	if err := validateRating(in.Rating); err != nil {
		return nil, err
	}

	// Download before touching the database so no connection waits on the remote host.
	var coverImage []byte
	var coverMime *string
	if in.CoverURL != nil {
		coverImage, coverMime = s.fetchCover(ctx, *in.CoverURL)
	}

	existing, err := s.reader.GetByCatalogID(ctx, ownerID, in.CatalogID)
	if err != nil {
		log.Errorw("failed to check library", "userID", ownerID, "catalogID", in.CatalogID, "error", err)
		return nil, err
	}
	if existing != nil {
		log.Infow("book already in library", "userID", ownerID, "catalogID", in.CatalogID)
		return nil, ErrBookAlreadyInLibrary
	}

	book := &models.LibraryBookDB{
		BookID:          uuid.New(),
		OwnerID:         ownerID,
		CatalogID:       in.CatalogID,
		Title:           in.Title,
		Author:          in.Author,
		YearPublication: in.YearPublication,
		CoverImage:      coverImage,
		CoverMime:       coverMime,
		Review:          in.Review,
		Rating:          in.Rating,
	}

	if err := s.writer.Save(ctx, book); err != nil {
		if errors.Is(err, repositories.ErrAlreadyExists) {
			return nil, ErrBookAlreadyInLibrary
		}
		log.Errorw("failed to save book", "userID", ownerID, "catalogID", in.CatalogID, "error", err)
		return nil, err
	}

	log.Infow("book added to library", "userID", ownerID, "bookID", book.BookID, "catalogID", book.CatalogID)
	s.publishEvent(ctx, book, models.OperationBookAdded)

	return book, nil
}

func (s *LibraryService) fetchCover(ctx context.Context, rawURL string) ([]byte, *string) {
	log := logger.FromContext(ctx)

	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil, nil
	}
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		log.Warnw("skipping cover with unsupported URL", "coverURL", rawURL)
		return nil, nil
	}
	if s.covers == nil {
		return nil, nil
	}

	// The download outlives a disconnecting client; the HTTP client timeout still bounds it.
	data, mime, err := s.covers.FetchCover(context.WithoutCancel(ctx), rawURL)
	if err != nil {
		log.Warnw("failed to fetch cover, saving without it", "coverURL", rawURL, "error", err)
		return nil, nil
	}
	return data, &mime
}

// Get returns one of the owner's books.
func (s *LibraryService) Get(ctx context.Context, ownerID, bookID uuid.UUID) (*models.LibraryBookDB, error) {
	book, err := s.reader.GetByID(ctx, ownerID, bookID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get book", "userID", ownerID, "bookID", bookID, "error", err)
		return nil, err
	}
	if book == nil {
		return nil, ErrBookNotFound
	}
	return book, nil
}

// List returns the owner's books matching filter.
func (s *LibraryService) List(ctx context.Context, ownerID uuid.UUID, filter models.LibraryFilter) ([]models.LibraryBookDB, error) {
	filter.Text = strings.TrimSpace(filter.Text)

	books, err := s.reader.List(ctx, ownerID, filter)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to list library", "userID", ownerID, "error", err)
		return nil, err
	}
	return books, nil
}

// Update changes the review and/or rating of one of the owner's books.
func (s *LibraryService) Update(ctx context.Context, ownerID, bookID uuid.UUID, upd models.LibraryBookUpdate) (*models.LibraryBookDB, error) {
	if err := validateReview(upd.Review); err != nil {
		return nil, err
	}
	if err := validateRating(upd.Rating); err != nil {
		return nil, err
	}

	book, err := s.writer.Update(ctx, ownerID, bookID, upd)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to update book", "userID", ownerID, "bookID", bookID, "error", err)
		return nil, err
	}
	if book == nil {
		return nil, ErrBookNotFound
	}

	logger.FromContext(ctx).Infow("book updated", "userID", ownerID, "bookID", bookID)
	s.publishEvent(ctx, book, models.OperationBookUpdated)

	return book, nil
}

// Delete removes one of the owner's books.
func (s *LibraryService) Delete(ctx context.Context, ownerID, bookID uuid.UUID) error {
	book, err := s.Get(ctx, ownerID, bookID)
	if err != nil {
		return err
	}

	deleted, err := s.writer.Delete(ctx, ownerID, bookID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to delete book", "userID", ownerID, "bookID", bookID, "error", err)
		return err
	}
	if !deleted {
		return ErrBookNotFound
	}

	logger.FromContext(ctx).Infow("book deleted", "userID", ownerID, "bookID", bookID)
	s.publishEvent(ctx, book, models.OperationBookDeleted)

	return nil
}

// GetCover returns the embedded cover of any library book. Covers are public by id.
func (s *LibraryService) GetCover(ctx context.Context, bookID uuid.UUID) (*models.Cover, error) {
	cover, err := s.reader.GetCover(ctx, bookID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get cover", "bookID", bookID, "error", err)
		return nil, err
	}
	if cover == nil || len(cover.Data) == 0 {
		return nil, ErrCoverNotFound
	}
	return cover, nil
}

// publishEvent publishes a library change to Kafka once it is committed. Failures are logged only.
func (s *LibraryService) publishEvent(ctx context.Context, book *models.LibraryBookDB, operation string) {
	log := logger.FromContext(ctx)

	if s.kafkaWriter == nil {
		log.Debugw("Kafka writer not configured, skipping publishing", "bookID", book.BookID, "operation", operation)
		return
	}

	event := models.LibraryEvent{
		EventID:   uuid.NewString(),
		Timestamp: s.now().Unix(),
		UserID:    book.OwnerID.String(),
		BookID:    book.BookID.String(),
		CatalogID: book.CatalogID,
		Operation: operation,
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Errorw("Failed to marshal library event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.BookID),
		Value: data,
	}

	s.afterCommit(ctx, func() {
		if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
			log.Errorw("Failed to publish library event to Kafka", "event_id", event.EventID, "error", err)
		} else {
			log.Infow("Library event published to Kafka", "event_id", event.EventID, "operation", operation)
		}
	})
}
