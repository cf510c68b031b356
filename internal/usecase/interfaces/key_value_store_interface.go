package interfaces

import "context"

// IKeyValueStore is the durable store behind cart persistence.
//
// Get returns (nil, nil) when the key does not exist.
type IKeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
