package events

import (
	"time"

	"github.com/mcordovar/datacenter-access/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventEntryCreated EventType = "entry_created"
	EventEntryUpdated EventType = "entry_updated"
	EventEntryDeleted EventType = "entry_deleted"
	EventUserLoggedIn EventType = "user_logged_in"
)

// Event represents a domain event emitted by the registry.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	EntryID   string      `json:"entry_id,omitempty"`
	Actor     string      `json:"actor,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// EntryCreatedPayload payload.
type EntryCreatedPayload struct {
	FacilityID   string            `json:"facility_id"`
	RoomID       string            `json:"room_id"`
	TicketType   domain.TicketType `json:"ticket_type"`
	TicketNumber string            `json:"ticket_number"`
	Technician   string            `json:"technician"`
}

// EntryUpdatedPayload payload.
type EntryUpdatedPayload struct {
	OldStatus domain.EntryStatus `json:"old_status"`
	NewStatus domain.EntryStatus `json:"new_status"`
}

// EntryDeletedPayload payload.
type EntryDeletedPayload struct {
	TicketNumber string `json:"ticket_number"`
}

// UserLoggedInPayload payload.
type UserLoggedInPayload struct {
	Username string          `json:"username"`
	Role     domain.UserRole `json:"role"`
}
