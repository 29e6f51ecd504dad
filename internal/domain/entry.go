package domain

import "time"

// TicketType enumerates the authorization references under which physical
// access is granted.
type TicketType string

const (
	TicketTypeChangeRequest   TicketType = "CRQ"
	TicketTypeIncident        TicketType = "INC"
	TicketTypeInspectionVisit TicketType = "Visita Inspectiva"
	TicketTypePatrolRound     TicketType = "Ronda Turinaria"
)

// TicketTypes returns every ticket type in declaration order.
func TicketTypes() []TicketType {
	return []TicketType{
		TicketTypeChangeRequest,
		TicketTypeIncident,
		TicketTypeInspectionVisit,
		TicketTypePatrolRound,
	}
}

// EntryStatus enumerates lifecycle states for an access entry.
type EntryStatus string

const (
	EntryStatusPending   EntryStatus = "Pendiente"
	EntryStatusInProcess EntryStatus = "En Proceso"
	EntryStatusCompleted EntryStatus = "Completado"
	EntryStatusCancelled EntryStatus = "Cancelado"
)

// EntryRecord is one logged visit: a technician, a location, a ticket and the
// visit status. It embeds full snapshots of the technician, facility and room
// taken at creation time, so later edits to reference data never rewrite
// historical records.
type EntryRecord struct {
	ID                  string      `json:"id"`
	Technician          Technician  `json:"technician"`
	Facility            Facility    `json:"facility"`
	Room                Room        `json:"room"`
	TicketType          TicketType  `json:"ticket_type"`
	TicketNumber        string      `json:"ticket_number"`
	ActivityResponsible string      `json:"activity_responsible"`
	Authorizer          string      `json:"authorizer"`
	EntryDate           time.Time   `json:"entry_date"`
	EntryTime           string      `json:"entry_time"`
	ExitDate            *time.Time  `json:"exit_date,omitempty"`
	ExitTime            *string     `json:"exit_time,omitempty"`
	Purpose             string      `json:"purpose"`
	Notes               string      `json:"notes,omitempty"`
	Status              EntryStatus `json:"status"`
	CreatedBy           string      `json:"created_by"`
	CreatedAt           time.Time   `json:"created_at"`
	UpdatedAt           *time.Time  `json:"updated_at,omitempty"`
	Documents           []string    `json:"documents,omitempty"`
}

// StayMinutes returns the visit duration in minutes, or false when the record
// has no exit timestamp yet.
func (e *EntryRecord) StayMinutes() (int, bool) {
	if e.ExitDate == nil {
		return 0, false
	}
	return int(e.ExitDate.Sub(e.EntryDate) / time.Minute), true
}
