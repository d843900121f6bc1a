package repositories

import "context"

// Document is a raw record read from the document store.
type Document struct {
	ID   string
	Data map[string]interface{}
}

// Filter operators understood by Store.Query.
const (
	OpEqual         = "=="
	OpArrayContains = "array-contains"
)

type Filter struct {
	Field string
	Op    string
	Value interface{}
}

type Order struct {
	Field      string
	Descending bool
}

// ServerTimestamp is a write sentinel resolved to the database server time.
var ServerTimestamp = serverTimestamp{}

type serverTimestamp struct{}

// ArrayUnionValue is a write sentinel that appends elements to an array field
// without rewriting it.
type ArrayUnionValue struct {
	Elems []interface{}
}

func ArrayUnion(elems ...interface{}) ArrayUnionValue {
	return ArrayUnionValue{Elems: elems}
}

// Store is the document store adapter. Collection paths are slash-joined so
// subcollections (e.g. "channels/{id}/messages") ride the same contract.
// Transport and auth failures wrap apperrors.ErrStoreUnavailable and are
// propagated, never retried.
type Store interface {
	// Get returns the document or apperrors.NotFound if absent.
	Get(ctx context.Context, collection, id string) (*Document, error)
	// GetAll returns the existing documents for ids, silently skipping
	// missing ones.
	GetAll(ctx context.Context, collection string, ids []string) ([]Document, error)
	// Query returns the documents matching every filter, optionally ordered
	// by a single field.
	Query(ctx context.Context, collection string, filters []Filter, orderBy *Order) ([]Document, error)
	// Create reserves and returns a generated document ID without writing.
	Create(collection string) string
	// Set writes the full document, overwriting any previous content.
	Set(ctx context.Context, collection, id string, data map[string]interface{}) error
	// Update merges the given fields into the document.
	Update(ctx context.Context, collection, id string, updates map[string]interface{}) error
	// Delete removes the document; deleting an absent document is not an
	// error.
	Delete(ctx context.Context, collection, id string) error
}
