package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/mcordovar/datacenter-access/internal/domain"
	"github.com/mcordovar/datacenter-access/internal/persistence"
)

// FacilityRepository persists the facility reference data wholesale.
type FacilityRepository interface {
	Load(ctx context.Context) ([]domain.Facility, error)
	Save(ctx context.Context, facilities []domain.Facility) error
}

type facilityRepository struct {
	blobs persistence.BlobStore
}

// NewFacilityRepository instantiates the repository.
func NewFacilityRepository(blobs persistence.BlobStore) FacilityRepository {
	return &facilityRepository{blobs: blobs}
}

func (r *facilityRepository) Load(ctx context.Context) ([]domain.Facility, error) {
	raw, err := r.blobs.Get(ctx, facilitiesKey)
	if errors.Is(err, persistence.ErrKeyAbsent) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var facilities []domain.Facility
	if err := json.Unmarshal([]byte(raw), &facilities); err != nil {
		return nil, err
	}
	return facilities, nil
}

func (r *facilityRepository) Save(ctx context.Context, facilities []domain.Facility) error {
	if facilities == nil {
		facilities = []domain.Facility{}
	}
	raw, err := json.Marshal(facilities)
	if err != nil {
		return err
	}
	return r.blobs.Set(ctx, facilitiesKey, string(raw))
}
