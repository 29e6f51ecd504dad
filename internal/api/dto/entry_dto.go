package dto

import (
	"time"

	"github.com/mcordovar/datacenter-access/internal/domain"
)

// CreateEntryRequest payload.
type CreateEntryRequest struct {
	TechnicianGivenName  string            `json:"technician_given_name"`
	TechnicianFamilyName string            `json:"technician_family_name"`
	TechnicianRUT        string            `json:"technician_rut"`
	TechnicianCompany    string            `json:"technician_company"`
	TechnicianPhone      string            `json:"technician_phone"`
	TechnicianEmail      string            `json:"technician_email"`
	FacilityID           string            `json:"facility_id"`
	RoomID               string            `json:"room_id"`
	TicketType           domain.TicketType `json:"ticket_type"`
	TicketNumber         string            `json:"ticket_number"`
	ActivityResponsible  string            `json:"activity_responsible"`
	Authorizer           string            `json:"authorizer"`
	Purpose              string            `json:"purpose"`
	Notes                string            `json:"notes"`
}

// UpdateEntryRequest payload; nil fields are left untouched.
type UpdateEntryRequest struct {
	TicketType          *domain.TicketType  `json:"ticket_type"`
	TicketNumber        *string             `json:"ticket_number"`
	ActivityResponsible *string             `json:"activity_responsible"`
	Authorizer          *string             `json:"authorizer"`
	ExitDate            *time.Time          `json:"exit_date"`
	ExitTime            *string             `json:"exit_time"`
	Purpose             *string             `json:"purpose"`
	Notes               *string             `json:"notes"`
	Status              *domain.EntryStatus `json:"status"`
	Documents           []string            `json:"documents"`
}

// EntrySummary response.
type EntrySummary struct {
	ID           string             `json:"id"`
	Technician   string             `json:"technician"`
	Company      string             `json:"company"`
	FacilityName string             `json:"facility_name"`
	RoomName     string             `json:"room_name"`
	TicketType   domain.TicketType  `json:"ticket_type"`
	TicketNumber string             `json:"ticket_number"`
	Status       domain.EntryStatus `json:"status"`
	EntryDate    time.Time          `json:"entry_date"`
	EntryTime    string             `json:"entry_time"`
}

// EntryDetailResponse provides the full record, including the embedded
// snapshots, plus the visit duration once an exit is recorded.
type EntryDetailResponse struct {
	domain.EntryRecord
	StayMinutes *int `json:"stay_minutes,omitempty"`
}

// EntryListResponse wraps a filtered listing with its active-filter count.
type EntryListResponse struct {
	Items         []EntrySummary `json:"items"`
	ActiveFilters int            `json:"active_filters"`
}

// FromRecord builds an EntrySummary.
func FromRecord(r *domain.EntryRecord) EntrySummary {
	return EntrySummary{
		ID:           r.ID,
		Technician:   r.Technician.FullName(),
		Company:      r.Technician.Company,
		FacilityName: string(r.Facility.Name),
		RoomName:     r.Room.Name,
		TicketType:   r.TicketType,
		TicketNumber: r.TicketNumber,
		Status:       r.Status,
		EntryDate:    r.EntryDate,
		EntryTime:    r.EntryTime,
	}
}

// DetailFromRecord builds an EntryDetailResponse.
func DetailFromRecord(r *domain.EntryRecord) EntryDetailResponse {
	detail := EntryDetailResponse{EntryRecord: *r}
	if minutes, ok := r.StayMinutes(); ok {
		detail.StayMinutes = &minutes
	}
	return detail
}
