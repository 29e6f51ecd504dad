// Package attachments persists captured-photo metadata per subject in the
// blob store, one key per subject.
package attachments

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mcordovar/datacenter-access/internal/persistence"
)

const keyNamespace = "fotocamaras"

// Photo is captured-image metadata with the image embedded as base64.
type Photo struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	FilePath   string    `json:"file_path"`
	CapturedAt time.Time `json:"captured_at"`
	Base64Data string    `json:"base64_data"`
}

// Store reads and writes per-subject photo arrays.
type Store struct {
	blobs  persistence.BlobStore
	logger *zap.Logger
}

// NewStore constructs the attachment store.
func NewStore(blobs persistence.BlobStore, logger *zap.Logger) *Store {
	return &Store{blobs: blobs, logger: logger}
}

func subjectKey(subject string) string {
	return keyNamespace + "-" + subject
}

// List returns the subject's photos, empty when none were stored.
func (s *Store) List(ctx context.Context, subject string) ([]Photo, error) {
	raw, err := s.blobs.Get(ctx, subjectKey(subject))
	if errors.Is(err, persistence.ErrKeyAbsent) {
		return []Photo{}, nil
	}
	if err != nil {
		return nil, err
	}
	var photos []Photo
	if err := json.Unmarshal([]byte(raw), &photos); err != nil {
		return nil, err
	}
	return photos, nil
}

// Save replaces the subject's photo array wholesale.
func (s *Store) Save(ctx context.Context, subject string, photos []Photo) error {
	if photos == nil {
		photos = []Photo{}
	}
	raw, err := json.Marshal(photos)
	if err != nil {
		return err
	}
	return s.blobs.Set(ctx, subjectKey(subject), string(raw))
}

// Add appends one photo, assigning an id and capture timestamp when missing.
func (s *Store) Add(ctx context.Context, subject string, photo Photo) (*Photo, error) {
	photos, err := s.List(ctx, subject)
	if err != nil {
		return nil, err
	}
	if photo.ID == "" {
		photo.ID = uuid.NewString()
	}
	if photo.CapturedAt.IsZero() {
		photo.CapturedAt = time.Now()
	}
	photos = append(photos, photo)
	if err := s.Save(ctx, subject, photos); err != nil {
		return nil, err
	}
	s.logger.Debug("photo attached", zap.String("subject", subject), zap.String("photo_id", photo.ID))
	return &photo, nil
}

// Purge removes every photo stored for the subject.
func (s *Store) Purge(ctx context.Context, subject string) error {
	return s.blobs.Remove(ctx, subjectKey(subject))
}
