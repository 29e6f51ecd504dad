package query

import (
	"time"

	"github.com/mcordovar/datacenter-access/internal/domain"
)

// TrendPoint is one calendar day of the 7-day entry trend.
type TrendPoint struct {
	Date  time.Time `json:"date"`
	Count int       `json:"count"`
}

// DashboardStatistics aggregates the dashboard metrics derived from a record
// snapshot.
type DashboardStatistics struct {
	TotalEntries        int                       `json:"total_entries"`
	EntriesToday        int                       `json:"entries_today"`
	Pending             int                       `json:"pending"`
	InProcess           int                       `json:"in_process"`
	ActiveFacilities    int                       `json:"active_facilities"`
	OccupiedRooms       int                       `json:"occupied_rooms"`
	ByTicketType        map[domain.TicketType]int `json:"by_ticket_type"`
	ByFacility          map[string]int            `json:"by_facility"`
	Last7Days           []TrendPoint              `json:"last_7_days"`
	DistinctCompanies   int                       `json:"distinct_companies"`
	DistinctTechnicians int                       `json:"distinct_technicians"`
}

// ComputeStatistics derives dashboard metrics from the given snapshot. It is
// pure and deterministic for a fixed now; empty input yields zero-valued
// output with empty distributions and a full 7-point trend.
func ComputeStatistics(records []domain.EntryRecord, facilities []domain.Facility, now time.Time) DashboardStatistics {
	today := dayOf(now)

	stats := DashboardStatistics{
		TotalEntries: len(records),
		ByTicketType: make(map[domain.TicketType]int),
		ByFacility:   make(map[string]int),
		Last7Days:    make([]TrendPoint, 0, 7),
	}

	companies := make(map[string]struct{})
	technicians := make(map[string]struct{})

	for i := range records {
		r := &records[i]
		if dayOf(r.EntryDate).Equal(today) {
			stats.EntriesToday++
		}
		switch r.Status {
		case domain.EntryStatusPending:
			stats.Pending++
		case domain.EntryStatusInProcess:
			stats.InProcess++
		}
		stats.ByTicketType[r.TicketType]++
		stats.ByFacility[string(r.Facility.Name)]++
		companies[r.Technician.Company] = struct{}{}
		technicians[r.Technician.RUT] = struct{}{}
	}

	for _, facility := range facilities {
		if facility.Active {
			stats.ActiveFacilities++
		}
	}

	// occupied rooms tracks the in-process count, not distinct rooms
	stats.OccupiedRooms = stats.InProcess

	for offset := 6; offset >= 0; offset-- {
		day := today.AddDate(0, 0, -offset)
		count := 0
		for i := range records {
			if dayOf(records[i].EntryDate).Equal(day) {
				count++
			}
		}
		stats.Last7Days = append(stats.Last7Days, TrendPoint{Date: day, Count: count})
	}

	stats.DistinctCompanies = len(companies)
	stats.DistinctTechnicians = len(technicians)
	return stats
}

// dayOf zeroes the time of day in the timestamp's own location.
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
