package registry

import (
	"context"

	"go.uber.org/zap"

	"github.com/mcordovar/datacenter-access/internal/auth"
	"github.com/mcordovar/datacenter-access/internal/domain"
	"github.com/mcordovar/datacenter-access/internal/events"
	"github.com/mcordovar/datacenter-access/pkg/util"
)

// Login authenticates an operator account against the shared placeholder
// password. Invalid credentials are a normal nil result, never an error. On
// success the user's last-access timestamp is stamped and the user collection
// persisted; a failed write is returned as the error while the returned user
// and the in-memory mutation stand.
func (s *Store) Login(ctx context.Context, username, password string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var user *domain.User
	for i := range s.users {
		if s.users[i].Username == username && s.users[i].Active {
			user = &s.users[i]
			break
		}
	}
	if user == nil {
		return nil, nil
	}
	if err := auth.ComparePassword(s.sharedHash, password); err != nil {
		return nil, nil
	}

	now := s.clock()
	user.LastAccess = &now

	var persistErr error
	if err := s.userRepo.Save(ctx, s.users); err != nil {
		s.logger.Error("failed to persist users after login", zap.Error(err))
		persistErr = util.NewPersistenceFailure(err)
	}

	s.publishEvent(ctx, events.Event{
		Type:  events.EventUserLoggedIn,
		Actor: user.Username,
		Payload: events.UserLoggedInPayload{
			Username: user.Username,
			Role:     user.Role,
		},
	})

	logged := *user
	return &logged, persistErr
}
