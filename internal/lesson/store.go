package lesson

import (
	"context"
	"encoding/json"
	"errors"
)

// ErrNotFound is returned by Store.Get when no record exists for the date.
var ErrNotFound = errors.New("lesson not found")

// Store is date-keyed persistence for lesson records. Keys are UTC
// calendar dates formatted YYYY-MM-DD; values are raw LessonRecord JSON.
type Store interface {
	Get(ctx context.Context, date string) (json.RawMessage, error)
	Put(ctx context.Context, date string, record json.RawMessage) error

	// PutIfAbsent stores record under date only if nothing is stored yet.
	// It returns the record that ended up persisted and whether this call
	// created it. Concurrent callers on the same date all observe the one
	// winning record.
	PutIfAbsent(ctx context.Context, date string, record json.RawMessage) (json.RawMessage, bool, error)

	// List returns every stored record keyed by date.
	List(ctx context.Context) (map[string]json.RawMessage, error)
}
