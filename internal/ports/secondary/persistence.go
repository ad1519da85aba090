// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrKeyNotFound is returned by KeyValueStore.Get when the key holds no value.
var ErrKeyNotFound = errors.New("key not found")

// ErrCorruptStore matches any *CorruptStoreError.
var ErrCorruptStore = errors.New("corrupt store")

// KeyValueStore is a synchronous string key-value medium owned by one process.
type KeyValueStore interface {
	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Set replaces the value stored under key.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

// ActivityStore defines the secondary port for the persisted activity collection.
// Every write replaces the whole collection.
type ActivityStore interface {
	// Load returns the stored collection in storage order.
	// An empty store is seeded with the default activities first.
	Load(ctx context.Context) ([]*ActivityRecord, error)

	// Save replaces the stored collection.
	Save(ctx context.Context, records []*ActivityRecord) error

	// ReserveID returns a fresh activity ID that is not used by existing.
	ReserveID(ctx context.Context, existing []*ActivityRecord) (string, error)

	// Available reports whether a persistent medium backs the store.
	Available() bool
}

// ActivityRecord represents an activity as stored in persistence.
type ActivityRecord struct {
	ID          string
	Name        string
	Responsible string
	EndDate     time.Time
	Description string // optional, empty when absent
	Type        string // Pesquisa, Docência or Extensão
}

// CorruptStoreError reports a stored value that does not decode into a
// well-formed activity collection.
type CorruptStoreError struct {
	Key    string
	Index  int // element position, -1 when the whole value is unreadable
	Reason string
	Err    error
}

func (e *CorruptStoreError) Error() string {
	msg := fmt.Sprintf("corrupt store at key %q", e.Key)
	if e.Index >= 0 {
		msg += fmt.Sprintf(", element %d", e.Index)
	}
	msg += ": " + e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is reports whether target is ErrCorruptStore.
func (e *CorruptStoreError) Is(target error) bool {
	return target == ErrCorruptStore
}

// Unwrap returns the underlying decode error, if any.
func (e *CorruptStoreError) Unwrap() error {
	return e.Err
}
