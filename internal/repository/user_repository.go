package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/mcordovar/datacenter-access/internal/domain"
	"github.com/mcordovar/datacenter-access/internal/persistence"
)

// UserRepository persists the operator-account collection wholesale.
type UserRepository interface {
	Load(ctx context.Context) ([]domain.User, error)
	Save(ctx context.Context, users []domain.User) error
}

type userRepository struct {
	blobs persistence.BlobStore
}

// NewUserRepository instantiates the repository.
func NewUserRepository(blobs persistence.BlobStore) UserRepository {
	return &userRepository{blobs: blobs}
}

func (r *userRepository) Load(ctx context.Context) ([]domain.User, error) {
	raw, err := r.blobs.Get(ctx, usersKey)
	if errors.Is(err, persistence.ErrKeyAbsent) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var users []domain.User
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) Save(ctx context.Context, users []domain.User) error {
	if users == nil {
		users = []domain.User{}
	}
	raw, err := json.Marshal(users)
	if err != nil {
		return err
	}
	return r.blobs.Set(ctx, usersKey, string(raw))
}
