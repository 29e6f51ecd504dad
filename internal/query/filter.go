// Package query holds the pure derivations over registry snapshots:
// multi-field filtering and dashboard statistics.
package query

import (
	"strings"
	"time"

	"github.com/mcordovar/datacenter-access/internal/domain"
)

// Criteria is a composable set of filter predicates. Zero-valued fields apply
// no constraint; supplied fields combine with logical AND.
//
// The two free-text fields are intentionally distinct: QuickSearch matches
// the dashboard field set (name, RUT, company, ticket number, responsible,
// authorizer) while ReportSearch matches the report field set (name, company,
// ticket number, purpose). The call sites differ and unifying them would
// silently change matching results.
type Criteria struct {
	FacilityID     string
	RoomID         string
	TicketType     domain.TicketType
	Status         domain.EntryStatus
	Company        string
	TechnicianName string
	Responsible    string
	QuickSearch    string
	ReportSearch   string
	DateFrom       *time.Time
	DateTo         *time.Time
}

// Filter returns the records satisfying every supplied criterion, preserving
// input order. It is a pure function: the input slice is never mutated.
func Filter(records []domain.EntryRecord, c Criteria) []domain.EntryRecord {
	out := make([]domain.EntryRecord, 0, len(records))
	for i := range records {
		if matches(&records[i], c) {
			out = append(out, records[i])
		}
	}
	return out
}

func matches(r *domain.EntryRecord, c Criteria) bool {
	if c.FacilityID != "" && r.Facility.ID != c.FacilityID {
		return false
	}
	if c.RoomID != "" && r.Room.ID != c.RoomID {
		return false
	}
	if c.TicketType != "" && r.TicketType != c.TicketType {
		return false
	}
	if c.Status != "" && r.Status != c.Status {
		return false
	}
	if c.Company != "" && !containsFold(r.Technician.Company, c.Company) {
		return false
	}
	if c.TechnicianName != "" && !containsFold(r.Technician.FullName(), c.TechnicianName) {
		return false
	}
	if c.Responsible != "" && !containsFold(r.ActivityResponsible, c.Responsible) {
		return false
	}
	if c.QuickSearch != "" && !quickSearchMatch(r, c.QuickSearch) {
		return false
	}
	if c.ReportSearch != "" && !reportSearchMatch(r, c.ReportSearch) {
		return false
	}
	// date bounds compare the full entry timestamp, inclusive on both ends
	if c.DateFrom != nil && r.EntryDate.Before(*c.DateFrom) {
		return false
	}
	if c.DateTo != nil && r.EntryDate.After(*c.DateTo) {
		return false
	}
	return true
}

// quickSearchMatch is the dashboard field set.
func quickSearchMatch(r *domain.EntryRecord, term string) bool {
	return containsFold(r.Technician.FullName(), term) ||
		containsFold(r.Technician.RUT, term) ||
		containsFold(r.Technician.Company, term) ||
		containsFold(r.TicketNumber, term) ||
		containsFold(r.ActivityResponsible, term) ||
		containsFold(r.Authorizer, term)
}

// reportSearchMatch is the report field set, matched against the fields
// joined into one haystack.
func reportSearchMatch(r *domain.EntryRecord, term string) bool {
	haystack := r.Technician.FullName() + " " + r.Technician.Company + " " + r.TicketNumber + " " + r.Purpose
	return containsFold(haystack, term)
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// CountActive reports how many criteria fields carry a constraint, for the
// "N filters active" badge.
func CountActive(c Criteria) int {
	count := 0
	if c.FacilityID != "" {
		count++
	}
	if c.RoomID != "" {
		count++
	}
	if c.TicketType != "" {
		count++
	}
	if c.Status != "" {
		count++
	}
	if c.Company != "" {
		count++
	}
	if c.TechnicianName != "" {
		count++
	}
	if c.Responsible != "" {
		count++
	}
	if c.QuickSearch != "" {
		count++
	}
	if c.ReportSearch != "" {
		count++
	}
	if c.DateFrom != nil {
		count++
	}
	if c.DateTo != nil {
		count++
	}
	return count
}
