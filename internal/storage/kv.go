package storage

import (
	"context"
	"errors"
)

// Fixed keys the stores persist under. Each store is the sole writer of
// its key; concurrent writers are not coordinated (last write wins).
const (
	KeyCart           = "cart"
	KeyComparison     = "comparison"
	KeyRecentSearches = "recent_searches"
)

// ErrNotFound is returned when a key has no stored value.
var ErrNotFound = errors.New("storage: key not found")

// KV is the durable key-value storage the stores persist JSON blobs to.
// Implementations must treat values as opaque strings.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
