// Package registry owns the canonical in-memory collections of entry
// records, facilities and operator accounts. It is the single source of
// truth: filtering and statistics are pure derivations over its snapshots.
package registry

import (
	"context"
	"math/rand"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mcordovar/datacenter-access/internal/auth"
	"github.com/mcordovar/datacenter-access/internal/config"
	"github.com/mcordovar/datacenter-access/internal/domain"
	"github.com/mcordovar/datacenter-access/internal/events"
	"github.com/mcordovar/datacenter-access/internal/repository"
)

// subscriptionBuffer bounds per-subscriber channel depth. A subscriber that
// falls behind observes the latest snapshots; delivery order is preserved.
const subscriptionBuffer = 16

// Store holds the live collections behind a single mutex and broadcasts a
// snapshot to every subscriber on each mutation.
type Store struct {
	mu sync.Mutex

	records    []domain.EntryRecord
	facilities []domain.Facility
	users      []domain.User

	entryRepo    repository.EntryRepository
	facilityRepo repository.FacilityRepository
	userRepo     repository.UserRepository
	dispatcher   events.Dispatcher
	logger       *zap.Logger

	sharedHash string
	clock      func() time.Time
	rng        *rand.Rand

	nextSubID    int
	recordSubs   map[int]chan []domain.EntryRecord
	facilitySubs map[int]chan []domain.Facility
}

// Dependencies bundles collaborators for the store.
type Dependencies struct {
	EntryRepo    repository.EntryRepository
	FacilityRepo repository.FacilityRepository
	UserRepo     repository.UserRepository
	Dispatcher   events.Dispatcher
	Logger       *zap.Logger
	Clock        func() time.Time
}

// NewStore constructs the store. The shared placeholder password is hashed
// once up front; Login compares every attempt against this single hash.
func NewStore(cfg config.AuthConfig, deps Dependencies) (*Store, error) {
	hash, err := auth.HashPassword(cfg.SharedPassword, cfg.BcryptCost)
	if err != nil {
		return nil, err
	}
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		entryRepo:    deps.EntryRepo,
		facilityRepo: deps.FacilityRepo,
		userRepo:     deps.UserRepo,
		dispatcher:   deps.Dispatcher,
		logger:       logger,
		sharedHash:   hash,
		clock:        clock,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
		recordSubs:   make(map[int]chan []domain.EntryRecord),
		facilitySubs: make(map[int]chan []domain.Facility),
	}, nil
}

// Initialize loads facilities and users from the blob store, installing and
// persisting seed data when absent. Entry records always start empty: the
// ledger is cleared on every startup so each session begins clean.
func (s *Store) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	facilities, err := s.facilityRepo.Load(ctx)
	switch err {
	case nil:
		s.facilities = facilities
	case repository.ErrNotFound:
		s.facilities = seedFacilities()
		if err := s.facilityRepo.Save(ctx, s.facilities); err != nil {
			return err
		}
	default:
		return err
	}

	users, err := s.userRepo.Load(ctx)
	switch err {
	case nil:
		s.users = users
	case repository.ErrNotFound:
		s.users = seedUsers(s.clock())
		if err := s.userRepo.Save(ctx, s.users); err != nil {
			return err
		}
	default:
		return err
	}

	if err := s.entryRepo.Clear(ctx); err != nil {
		s.logger.Warn("failed to clear persisted entry records", zap.Error(err))
	}
	s.records = []domain.EntryRecord{}
	if err := s.entryRepo.Save(ctx, s.records); err != nil {
		s.logger.Warn("failed to persist empty entry ledger", zap.Error(err))
	}

	s.logger.Info("registry initialized",
		zap.Int("facilities", len(s.facilities)),
		zap.Int("users", len(s.users)))

	s.broadcastRecords()
	s.broadcastFacilities()
	return nil
}

// SubscribeRecords delivers the current record snapshot immediately and a new
// snapshot after every mutation, in mutation order. The returned cancel
// function stops delivery; it never aborts an in-flight mutation.
func (s *Store) SubscribeRecords() (<-chan []domain.EntryRecord, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSubID
	s.nextSubID++
	ch := make(chan []domain.EntryRecord, subscriptionBuffer)
	s.recordSubs[id] = ch
	ch <- s.snapshotRecords()

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if sub, ok := s.recordSubs[id]; ok {
			delete(s.recordSubs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// SubscribeFacilities mirrors SubscribeRecords for the facility collection.
func (s *Store) SubscribeFacilities() (<-chan []domain.Facility, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSubID
	s.nextSubID++
	ch := make(chan []domain.Facility, subscriptionBuffer)
	s.facilitySubs[id] = ch
	ch <- s.snapshotFacilities()

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if sub, ok := s.facilitySubs[id]; ok {
			delete(s.facilitySubs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// Records returns a copy of the current record collection in insertion order.
func (s *Store) Records() []domain.EntryRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotRecords()
}

// Facilities returns a copy of the current facility reference data.
func (s *Store) Facilities() []domain.Facility {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotFacilities()
}

// RoomsByFacility returns the rooms of one facility, empty when the id is
// unknown.
func (s *Store) RoomsByFacility(facilityID string) []domain.Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, facility := range s.facilities {
		if facility.ID == facilityID {
			rooms := make([]domain.Room, len(facility.Rooms))
			copy(rooms, facility.Rooms)
			return rooms
		}
	}
	return []domain.Room{}
}

func (s *Store) snapshotRecords() []domain.EntryRecord {
	snap := make([]domain.EntryRecord, len(s.records))
	copy(snap, s.records)
	return snap
}

func (s *Store) snapshotFacilities() []domain.Facility {
	snap := make([]domain.Facility, len(s.facilities))
	copy(snap, s.facilities)
	return snap
}

// broadcastRecords fans the current snapshot out to every subscriber. Callers
// hold s.mu. A full channel drops its oldest snapshot so a stalled consumer
// converges on the latest state without blocking mutations.
func (s *Store) broadcastRecords() {
	snap := s.snapshotRecords()
	for _, ch := range s.recordSubs {
		select {
		case ch <- snap:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- snap:
			default:
			}
		}
	}
}

func (s *Store) broadcastFacilities() {
	snap := s.snapshotFacilities()
	for _, ch := range s.facilitySubs {
		select {
		case ch <- snap:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- snap:
			default:
			}
		}
	}
}

// generateID produces a process-unique id: millisecond timestamp plus a
// random suffix, both base36. Collisions are treated as negligible and not
// checked against existing ids.
func (s *Store) generateID() string {
	return strconv.FormatInt(s.clock().UnixMilli(), 36) + strconv.FormatInt(s.rng.Int63(), 36)
}

func (s *Store) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = s.clock()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
