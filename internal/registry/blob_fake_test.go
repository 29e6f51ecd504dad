package registry_test

import (
	"context"
	"errors"
	"sync"

	"github.com/mcordovar/datacenter-access/internal/persistence"
)

// fakeBlobStore is an in-memory BlobStore for unit tests. Writes can be made
// to fail to exercise the weak-consistency path.
type fakeBlobStore struct {
	mu      sync.Mutex
	data    map[string]string
	failSet bool
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{data: make(map[string]string)}
}

func (f *fakeBlobStore) Get(ctx context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	val, ok := f.data[key]
	if !ok {
		return "", persistence.ErrKeyAbsent
	}
	return val, nil
}

func (f *fakeBlobStore) Set(ctx context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failSet {
		return errors.New("blob store write refused")
	}
	f.data[key] = value
	return nil
}

func (f *fakeBlobStore) Remove(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.data, key)
	return nil
}
