package database

import "context"

// KV is the storage substrate underneath the collections. Implementations
// persist whole-collection payloads addressed by a single key.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, payload []byte) error
}
