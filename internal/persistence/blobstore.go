package persistence

import (
	"context"
	"errors"
)

// ErrKeyAbsent is returned by BlobStore.Get when the key has no value.
var ErrKeyAbsent = errors.New("blob key absent")

// BlobStore is the opaque keyed string store the registry persists into.
// Values are whole-collection serializations written in a single Set, so a
// crash mid-write can corrupt only the key being written.
type BlobStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
