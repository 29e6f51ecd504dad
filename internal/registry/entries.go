package registry

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/mcordovar/datacenter-access/internal/domain"
	"github.com/mcordovar/datacenter-access/internal/events"
	"github.com/mcordovar/datacenter-access/pkg/util"
)

// EntryForm carries the fields an operator submits to register a visit. The
// creator identity is resolved by the caller and passed in opaque.
type EntryForm struct {
	TechnicianGivenName  string
	TechnicianFamilyName string
	TechnicianRUT        string
	TechnicianCompany    string
	TechnicianPhone      string
	TechnicianEmail      string
	FacilityID           string
	RoomID               string
	TicketType           domain.TicketType
	TicketNumber         string
	ActivityResponsible  string
	Authorizer           string
	Purpose              string
	Notes                string
	CreatedBy            string
}

// EntryChanges is a partial update; nil fields are left untouched. The
// last-update timestamp is always overwritten by the store.
type EntryChanges struct {
	TicketType          *domain.TicketType
	TicketNumber        *string
	ActivityResponsible *string
	Authorizer          *string
	ExitDate            *time.Time
	ExitTime            *string
	Purpose             *string
	Notes               *string
	Status              *domain.EntryStatus
	Documents           []string
}

// GetRecord returns the record with the given id.
func (s *Store) GetRecord(id string) (*domain.EntryRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.records {
		if s.records[i].ID == id {
			record := s.records[i]
			return &record, nil
		}
	}
	return nil, util.NewRecordNotFound(id)
}

// CreateRecord registers a new visit. The referenced facility and room must
// resolve against the current reference data; a fresh technician snapshot is
// embedded (never deduplicated against earlier visits). A persistence failure
// is returned alongside the record: the in-memory mutation stands.
func (s *Store) CreateRecord(ctx context.Context, form EntryForm) (*domain.EntryRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var facility *domain.Facility
	for i := range s.facilities {
		if s.facilities[i].ID == form.FacilityID {
			facility = &s.facilities[i]
			break
		}
	}
	if facility == nil {
		return nil, util.NewReferenceNotFound("facility", map[string]any{"facility_id": form.FacilityID})
	}
	var room *domain.Room
	for i := range facility.Rooms {
		if facility.Rooms[i].ID == form.RoomID {
			room = &facility.Rooms[i]
			break
		}
	}
	if room == nil {
		return nil, util.NewReferenceNotFound("room", map[string]any{"room_id": form.RoomID})
	}

	now := s.clock()
	technician := domain.Technician{
		ID:             s.generateID(),
		GivenName:      form.TechnicianGivenName,
		FamilyName:     form.TechnicianFamilyName,
		RUT:            form.TechnicianRUT,
		Company:        form.TechnicianCompany,
		Phone:          form.TechnicianPhone,
		Email:          form.TechnicianEmail,
		Certifications: []string{},
		Active:         true,
		RegisteredAt:   now,
	}

	record := domain.EntryRecord{
		ID:                  s.generateID(),
		Technician:          technician,
		Facility:            *facility,
		Room:                *room,
		TicketType:          form.TicketType,
		TicketNumber:        form.TicketNumber,
		ActivityResponsible: form.ActivityResponsible,
		Authorizer:          form.Authorizer,
		EntryDate:           now,
		EntryTime:           now.Format("15:04"),
		Purpose:             form.Purpose,
		Notes:               form.Notes,
		Status:              domain.EntryStatusPending,
		CreatedBy:           form.CreatedBy,
		CreatedAt:           now,
	}

	s.records = append(s.records, record)
	persistErr := s.persistRecords(ctx)
	s.broadcastRecords()

	s.publishEvent(ctx, events.Event{
		Type:    events.EventEntryCreated,
		EntryID: record.ID,
		Actor:   record.CreatedBy,
		Payload: events.EntryCreatedPayload{
			FacilityID:   facility.ID,
			RoomID:       room.ID,
			TicketType:   record.TicketType,
			TicketNumber: record.TicketNumber,
			Technician:   technician.FullName(),
		},
	})

	return &record, persistErr
}

// UpdateRecord shallow-merges the changes onto the stored record and stamps
// the last-update timestamp. Moving a record to completed fills the exit
// date/time with the current moment when not already set.
func (s *Store) UpdateRecord(ctx context.Context, id string, changes EntryChanges) (*domain.EntryRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := -1
	for i := range s.records {
		if s.records[i].ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		return nil, util.NewRecordNotFound(id)
	}

	record := &s.records[index]
	oldStatus := record.Status

	if changes.TicketType != nil {
		record.TicketType = *changes.TicketType
	}
	if changes.TicketNumber != nil {
		record.TicketNumber = *changes.TicketNumber
	}
	if changes.ActivityResponsible != nil {
		record.ActivityResponsible = *changes.ActivityResponsible
	}
	if changes.Authorizer != nil {
		record.Authorizer = *changes.Authorizer
	}
	if changes.ExitDate != nil {
		record.ExitDate = changes.ExitDate
	}
	if changes.ExitTime != nil {
		record.ExitTime = changes.ExitTime
	}
	if changes.Purpose != nil {
		record.Purpose = *changes.Purpose
	}
	if changes.Notes != nil {
		record.Notes = *changes.Notes
	}
	if changes.Status != nil {
		record.Status = *changes.Status
	}
	if changes.Documents != nil {
		record.Documents = changes.Documents
	}

	now := s.clock()
	if record.Status == domain.EntryStatusCompleted && record.ExitDate == nil {
		exit := now
		exitTime := now.Format("15:04")
		record.ExitDate = &exit
		record.ExitTime = &exitTime
	}
	record.UpdatedAt = &now

	persistErr := s.persistRecords(ctx)
	s.broadcastRecords()

	s.publishEvent(ctx, events.Event{
		Type:    events.EventEntryUpdated,
		EntryID: record.ID,
		Payload: events.EntryUpdatedPayload{
			OldStatus: oldStatus,
			NewStatus: record.Status,
		},
	})

	updated := *record
	return &updated, persistErr
}

// DeleteRecord removes a record by id. A missing id is a normal false result,
// not an error.
func (s *Store) DeleteRecord(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := -1
	for i := range s.records {
		if s.records[i].ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		return false, nil
	}

	ticketNumber := s.records[index].TicketNumber
	s.records = append(s.records[:index], s.records[index+1:]...)
	persistErr := s.persistRecords(ctx)
	s.broadcastRecords()

	s.publishEvent(ctx, events.Event{
		Type:    events.EventEntryDeleted,
		EntryID: id,
		Payload: events.EntryDeletedPayload{TicketNumber: ticketNumber},
	})

	return true, persistErr
}

// persistRecords serializes the whole record collection. Callers hold s.mu.
// On failure the in-memory state is not rolled back; memory and persisted
// state diverge until the next successful write.
func (s *Store) persistRecords(ctx context.Context) error {
	if err := s.entryRepo.Save(ctx, s.records); err != nil {
		s.logger.Error("failed to persist entry records", zap.Error(err))
		return util.NewPersistenceFailure(err)
	}
	return nil
}
