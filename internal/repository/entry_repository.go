package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/mcordovar/datacenter-access/internal/domain"
	"github.com/mcordovar/datacenter-access/internal/persistence"
)

// EntryRepository persists the entry-record collection wholesale.
type EntryRepository interface {
	Load(ctx context.Context) ([]domain.EntryRecord, error)
	Save(ctx context.Context, records []domain.EntryRecord) error
	Clear(ctx context.Context) error
}

type entryRepository struct {
	blobs persistence.BlobStore
}

// NewEntryRepository instantiates the repository.
func NewEntryRepository(blobs persistence.BlobStore) EntryRepository {
	return &entryRepository{blobs: blobs}
}

func (r *entryRepository) Load(ctx context.Context) ([]domain.EntryRecord, error) {
	raw, err := r.blobs.Get(ctx, entriesKey)
	if errors.Is(err, persistence.ErrKeyAbsent) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var records []domain.EntryRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *entryRepository) Save(ctx context.Context, records []domain.EntryRecord) error {
	if records == nil {
		records = []domain.EntryRecord{}
	}
	raw, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return r.blobs.Set(ctx, entriesKey, string(raw))
}

func (r *entryRepository) Clear(ctx context.Context) error {
	return r.blobs.Remove(ctx, entriesKey)
}
