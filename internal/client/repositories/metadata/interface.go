// Package metadata is the client's local key/value store. It holds the
// session's bearer token and the few facts cached alongside it.
package metadata

import "context"

// Repository stores opaque values by key. Get returns (nil, nil) for an
// absent key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetMany(ctx context.Context, values map[string][]byte) error
	Delete(ctx context.Context, keys ...string) error
}
