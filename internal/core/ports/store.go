package ports

import (
	"context"
	"encoding/json"
)

// EntityStore is the persistence port: a durable mapping from (kind, id) to
// a JSON document, plus a per-kind ordered index of existing ids used for
// listing.
//
// AddToIndex and RemoveFromIndex are expected to be called alongside Put and
// Delete so that the index and the document set never diverge from a
// caller's perspective. The pairing is not transactional; a crash between
// the two writes can desynchronise them. That gap is a documented property
// of this system, not something implementations try to repair.
type EntityStore interface {
	// Get returns the stored document, or domain.ErrNoDocument when absent.
	Get(ctx context.Context, kind, id string) (json.RawMessage, error)
	// Put creates or overwrites the document.
	Put(ctx context.Context, kind, id string, doc json.RawMessage) error
	// Delete removes the document and reports whether it existed.
	Delete(ctx context.Context, kind, id string) (bool, error)
	// ListIDs returns the ids indexed for kind, in insertion order.
	ListIDs(ctx context.Context, kind string) ([]string, error)
	// AddToIndex records id in the kind's index; adding an id twice is a no-op.
	AddToIndex(ctx context.Context, kind, id string) error
	// RemoveFromIndex drops id from the kind's index if present.
	RemoveFromIndex(ctx context.Context, kind, id string) error
}
