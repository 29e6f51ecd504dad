package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcordovar/datacenter-access/internal/domain"
)

var statsNow = time.Date(2026, 8, 30, 14, 30, 0, 0, time.Local)

func TestComputeStatistics_EmptyInput(t *testing.T) {
	stats := ComputeStatistics(nil, nil, statsNow)

	assert.Zero(t, stats.TotalEntries)
	assert.Zero(t, stats.EntriesToday)
	assert.Zero(t, stats.Pending)
	assert.Zero(t, stats.InProcess)
	assert.Zero(t, stats.ActiveFacilities)
	assert.Zero(t, stats.OccupiedRooms)
	assert.Zero(t, stats.DistinctCompanies)
	assert.Zero(t, stats.DistinctTechnicians)
	assert.Empty(t, stats.ByTicketType)
	assert.Empty(t, stats.ByFacility)

	require.Len(t, stats.Last7Days, 7)
	for _, point := range stats.Last7Days {
		assert.Zero(t, point.Count)
	}
}

func TestComputeStatistics_TrendWindow(t *testing.T) {
	records := []domain.EntryRecord{
		{EntryDate: statsNow, Status: domain.EntryStatusPending},
		{EntryDate: statsNow.AddDate(0, 0, -1), Status: domain.EntryStatusCompleted},
		{EntryDate: statsNow.AddDate(0, 0, -1), Status: domain.EntryStatusCompleted},
		{EntryDate: statsNow.AddDate(0, 0, -6), Status: domain.EntryStatusCompleted},
		// outside the window: does not appear in the trend
		{EntryDate: statsNow.AddDate(0, 0, -7), Status: domain.EntryStatusCompleted},
	}

	stats := ComputeStatistics(records, nil, statsNow)

	require.Len(t, stats.Last7Days, 7)

	// oldest first, newest (today) last
	assert.Equal(t, statsNow.AddDate(0, 0, -6).Day(), stats.Last7Days[0].Date.Day())
	assert.Equal(t, statsNow.Day(), stats.Last7Days[6].Date.Day())

	inWindow := 0
	for _, point := range stats.Last7Days {
		inWindow += point.Count
	}
	assert.Equal(t, 4, inWindow)

	assert.Equal(t, 1, stats.Last7Days[0].Count)
	assert.Equal(t, 2, stats.Last7Days[5].Count)
	assert.Equal(t, 1, stats.Last7Days[6].Count)

	assert.Equal(t, 5, stats.TotalEntries)
	assert.Equal(t, 1, stats.EntriesToday)
}

func TestComputeStatistics_StatusAndOccupancy(t *testing.T) {
	records := []domain.EntryRecord{
		{EntryDate: statsNow, Status: domain.EntryStatusPending},
		{EntryDate: statsNow, Status: domain.EntryStatusInProcess},
		{EntryDate: statsNow, Status: domain.EntryStatusInProcess},
		{EntryDate: statsNow, Status: domain.EntryStatusCompleted},
		{EntryDate: statsNow, Status: domain.EntryStatusCancelled},
	}

	stats := ComputeStatistics(records, nil, statsNow)

	assert.Equal(t, 1, stats.Pending)
	assert.Equal(t, 2, stats.InProcess)
	assert.Equal(t, 2, stats.OccupiedRooms)
}

func TestComputeStatistics_Distributions(t *testing.T) {
	records := []domain.EntryRecord{
		{
			EntryDate:  statsNow,
			TicketType: domain.TicketTypeIncident,
			Facility:   domain.Facility{Name: domain.FacilityApoquindo},
			Technician: domain.Technician{RUT: "12345678-5", Company: "Redes Sur"},
		},
		{
			EntryDate:  statsNow,
			TicketType: domain.TicketTypeIncident,
			Facility:   domain.Facility{Name: domain.FacilityApoquindo},
			Technician: domain.Technician{RUT: "12345678-5", Company: "Redes Sur"},
		},
		{
			EntryDate:  statsNow,
			TicketType: domain.TicketTypeChangeRequest,
			Facility:   domain.Facility{Name: domain.FacilitySanMartin},
			Technician: domain.Technician{RUT: "12335678-0", Company: "Clima Andes"},
		},
	}

	stats := ComputeStatistics(records, nil, statsNow)

	assert.Equal(t, 2, stats.ByTicketType[domain.TicketTypeIncident])
	assert.Equal(t, 1, stats.ByTicketType[domain.TicketTypeChangeRequest])
	assert.Equal(t, 2, stats.ByFacility[string(domain.FacilityApoquindo)])
	assert.Equal(t, 1, stats.ByFacility[string(domain.FacilitySanMartin)])

	// repeat visits by the same technician and company count once
	assert.Equal(t, 2, stats.DistinctCompanies)
	assert.Equal(t, 2, stats.DistinctTechnicians)
}

func TestComputeStatistics_ActiveFacilities(t *testing.T) {
	facilities := []domain.Facility{
		{ID: "1", Active: true},
		{ID: "2", Active: true},
		{ID: "3", Active: false},
	}

	stats := ComputeStatistics(nil, facilities, statsNow)
	assert.Equal(t, 2, stats.ActiveFacilities)
}
