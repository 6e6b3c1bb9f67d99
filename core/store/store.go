package store

import "context"

// Store defines the persistent key-value contract used for the catalog cache
// and the merge-choice map. Values are opaque strings (flat JSON objects).
type Store interface {
	// Get returns the value for a key. The boolean reports whether the key
	// exists; an absent key is not an error.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set writes the value for a key, overwriting any previous value.
	Set(ctx context.Context, key, value string) error
}
