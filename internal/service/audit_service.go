// Package service hosts event consumers layered over the registry.
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/mcordovar/datacenter-access/internal/events"
)

// AuditService writes an audit log line for every registry event.
type AuditService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewAuditService creates the service.
func NewAuditService(dispatcher events.Dispatcher, logger *zap.Logger) *AuditService {
	return &AuditService{dispatcher: dispatcher, logger: logger}
}

// RegisterHandlers subscribes to events.
func (a *AuditService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	a.dispatcher.Subscribe(events.EventEntryCreated, a.handleEntryCreated)
	a.dispatcher.Subscribe(events.EventEntryUpdated, a.handleEntryUpdated)
	a.dispatcher.Subscribe(events.EventEntryDeleted, a.handleEntryDeleted)
	a.dispatcher.Subscribe(events.EventUserLoggedIn, a.handleUserLoggedIn)
}

func (a *AuditService) handleEntryCreated(ctx context.Context, event events.Event) error {
	a.logger.Info("EntryCreated",
		zap.String("entry_id", event.EntryID),
		zap.String("actor", event.Actor),
		zap.Any("payload", event.Payload))
	return nil
}

func (a *AuditService) handleEntryUpdated(ctx context.Context, event events.Event) error {
	a.logger.Info("EntryUpdated",
		zap.String("entry_id", event.EntryID),
		zap.Any("payload", event.Payload))
	return nil
}

func (a *AuditService) handleEntryDeleted(ctx context.Context, event events.Event) error {
	a.logger.Info("EntryDeleted",
		zap.String("entry_id", event.EntryID),
		zap.Any("payload", event.Payload))
	return nil
}

func (a *AuditService) handleUserLoggedIn(ctx context.Context, event events.Event) error {
	a.logger.Info("UserLoggedIn",
		zap.String("actor", event.Actor),
		zap.Any("payload", event.Payload))
	return nil
}
