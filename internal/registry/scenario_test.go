package registry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcordovar/datacenter-access/internal/domain"
	"github.com/mcordovar/datacenter-access/internal/query"
	"github.com/mcordovar/datacenter-access/internal/registry"
	"github.com/mcordovar/datacenter-access/internal/validation"
)

// Full visit lifecycle: register an entry, complete it, and confirm the
// dashboard reflects the final state.
func TestVisitLifecycle(t *testing.T) {
	store := newTestStore(t, newFakeBlobStore())
	ctx := context.Background()

	form := validForm()
	require.True(t, validation.ValidRUT(form.TechnicianRUT))

	record, err := store.CreateRecord(ctx, form)
	require.NoError(t, err)
	assert.Equal(t, domain.EntryStatusPending, record.Status)
	assert.Nil(t, record.ExitDate)

	inProcess := domain.EntryStatusInProcess
	_, err = store.UpdateRecord(ctx, record.ID, registry.EntryChanges{Status: &inProcess})
	require.NoError(t, err)

	stats := query.ComputeStatistics(store.Records(), store.Facilities(), testNow)
	assert.Equal(t, 1, stats.InProcess)
	assert.Equal(t, 1, stats.OccupiedRooms)

	completed := domain.EntryStatusCompleted
	updated, err := store.UpdateRecord(ctx, record.ID, registry.EntryChanges{Status: &completed})
	require.NoError(t, err)
	assert.Equal(t, domain.EntryStatusCompleted, updated.Status)
	require.NotNil(t, updated.ExitDate)

	stats = query.ComputeStatistics(store.Records(), store.Facilities(), testNow)
	assert.Equal(t, 1, stats.TotalEntries)
	assert.Equal(t, 0, stats.InProcess)
	assert.Equal(t, 1, stats.EntriesToday)
	assert.Equal(t, 1, stats.ByTicketType[domain.TicketTypeIncident])
	assert.Equal(t, 1, stats.ByFacility[string(domain.FacilityApoquindo)])
}
