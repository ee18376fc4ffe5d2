package models

// Library event operations.
const (
	OperationBookAdded   = "book_added"
	OperationBookUpdated = "book_updated"
	OperationBookDeleted = "book_deleted"
)

// LibraryEvent describes a change to a user's library, published to Kafka.
type LibraryEvent struct {
	EventID   string `json:"event_id"`   // EventID is a unique identifier for the event.
	Timestamp int64  `json:"timestamp"`  // Timestamp is the Unix time (in seconds) of the change.
	UserID    string `json:"user_id"`    // UserID is the owner of the library.
	BookID    string `json:"book_id"`    // BookID is the library book identifier.
	CatalogID string `json:"catalog_id"` // CatalogID is the catalog work identifier.
	Operation string `json:"operation"`  // Operation is one of the Operation* constants.
}
