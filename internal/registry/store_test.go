package registry_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mcordovar/datacenter-access/internal/config"
	"github.com/mcordovar/datacenter-access/internal/domain"
	"github.com/mcordovar/datacenter-access/internal/registry"
	"github.com/mcordovar/datacenter-access/internal/repository"
	"github.com/mcordovar/datacenter-access/pkg/util"
)

var testNow = time.Date(2026, 8, 30, 14, 30, 0, 0, time.Local)

func newTestStore(t *testing.T, blobs *fakeBlobStore) *registry.Store {
	t.Helper()
	store, err := registry.NewStore(config.AuthConfig{
		SharedPassword: "demo123",
		BcryptCost:     4,
	}, registry.Dependencies{
		EntryRepo:    repository.NewEntryRepository(blobs),
		FacilityRepo: repository.NewFacilityRepository(blobs),
		UserRepo:     repository.NewUserRepository(blobs),
		Logger:       zap.NewNop(),
		Clock:        func() time.Time { return testNow },
	})
	require.NoError(t, err)
	require.NoError(t, store.Initialize(context.Background()))
	return store
}

func validForm() registry.EntryForm {
	return registry.EntryForm{
		TechnicianGivenName:  "Juan",
		TechnicianFamilyName: "Perez",
		TechnicianRUT:        "12345678-5",
		TechnicianCompany:    "Redes Sur",
		TechnicianPhone:      "+56 9 5555 5555",
		TechnicianEmail:      "juan.perez@redessur.cl",
		FacilityID:           "1",
		RoomID:               "1-2",
		TicketType:           domain.TicketTypeIncident,
		TicketNumber:         "INC-4410",
		ActivityResponsible:  "Marta Soto",
		Authorizer:           "Carlos Mendoza",
		Purpose:              "Reemplazo de UPS",
		CreatedBy:            "seguridad",
	}
}

func TestInitialize_InstallsSeedData(t *testing.T) {
	blobs := newFakeBlobStore()
	store := newTestStore(t, blobs)

	facilities := store.Facilities()
	require.Len(t, facilities, 3)
	assert.Equal(t, domain.FacilityApoquindo, facilities[0].Name)
	assert.Len(t, facilities[0].Rooms, 3)

	// seeds were persisted
	raw, err := blobs.Get(context.Background(), "datacenter_locations")
	require.NoError(t, err)
	var persisted []domain.Facility
	require.NoError(t, json.Unmarshal([]byte(raw), &persisted))
	assert.Len(t, persisted, 3)

	// the entry ledger starts clean
	assert.Empty(t, store.Records())
}

func TestInitialize_LoadsPersistedReferenceData(t *testing.T) {
	blobs := newFakeBlobStore()
	custom := []domain.Facility{{ID: "9", Name: domain.FacilityMCLaFlorida, Active: true}}
	raw, err := json.Marshal(custom)
	require.NoError(t, err)
	require.NoError(t, blobs.Set(context.Background(), "datacenter_locations", string(raw)))

	store := newTestStore(t, blobs)

	facilities := store.Facilities()
	require.Len(t, facilities, 1)
	assert.Equal(t, "9", facilities[0].ID)
}

func TestCreateRecord_Defaults(t *testing.T) {
	store := newTestStore(t, newFakeBlobStore())

	record, err := store.CreateRecord(context.Background(), validForm())
	require.NoError(t, err)

	assert.NotEmpty(t, record.ID)
	assert.Equal(t, domain.EntryStatusPending, record.Status)
	assert.Nil(t, record.ExitDate)
	assert.Nil(t, record.ExitTime)
	assert.Equal(t, testNow, record.EntryDate)
	assert.Equal(t, "14:30", record.EntryTime)
	assert.Equal(t, "seguridad", record.CreatedBy)

	// embedded snapshots, not references
	assert.Equal(t, domain.FacilityApoquindo, record.Facility.Name)
	assert.Equal(t, "Sala UPS", record.Room.Name)
	assert.Equal(t, "Juan Perez", record.Technician.FullName())

	assert.Len(t, store.Records(), 1)
}

func TestCreateRecord_UnknownFacility(t *testing.T) {
	store := newTestStore(t, newFakeBlobStore())

	form := validForm()
	form.FacilityID = "nope"
	record, err := store.CreateRecord(context.Background(), form)

	assert.Nil(t, record)
	assert.True(t, util.IsCode(err, "REFERENCE_NOT_FOUND"))
	assert.Empty(t, store.Records())
}

func TestCreateRecord_UnknownRoom(t *testing.T) {
	store := newTestStore(t, newFakeBlobStore())

	form := validForm()
	form.RoomID = "9-9"
	record, err := store.CreateRecord(context.Background(), form)

	assert.Nil(t, record)
	assert.True(t, util.IsCode(err, "REFERENCE_NOT_FOUND"))
	assert.Empty(t, store.Records())
}

func TestCreateRecord_FreshTechnicianSnapshotPerEntry(t *testing.T) {
	store := newTestStore(t, newFakeBlobStore())
	ctx := context.Background()

	first, err := store.CreateRecord(ctx, validForm())
	require.NoError(t, err)
	second, err := store.CreateRecord(ctx, validForm())
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.NotEqual(t, first.Technician.ID, second.Technician.ID)
}

func TestUpdateRecord_CompletedSetsExit(t *testing.T) {
	store := newTestStore(t, newFakeBlobStore())
	ctx := context.Background()

	record, err := store.CreateRecord(ctx, validForm())
	require.NoError(t, err)

	completed := domain.EntryStatusCompleted
	updated, err := store.UpdateRecord(ctx, record.ID, registry.EntryChanges{Status: &completed})
	require.NoError(t, err)

	assert.Equal(t, domain.EntryStatusCompleted, updated.Status)
	require.NotNil(t, updated.ExitDate)
	assert.Equal(t, testNow, *updated.ExitDate)
	require.NotNil(t, updated.ExitTime)
	assert.Equal(t, "14:30", *updated.ExitTime)
	require.NotNil(t, updated.UpdatedAt)
}

func TestUpdateRecord_KeepsCallerSuppliedExit(t *testing.T) {
	store := newTestStore(t, newFakeBlobStore())
	ctx := context.Background()

	record, err := store.CreateRecord(ctx, validForm())
	require.NoError(t, err)

	exit := testNow.Add(-time.Hour)
	completed := domain.EntryStatusCompleted
	updated, err := store.UpdateRecord(ctx, record.ID, registry.EntryChanges{
		Status:   &completed,
		ExitDate: &exit,
	})
	require.NoError(t, err)

	require.NotNil(t, updated.ExitDate)
	assert.Equal(t, exit, *updated.ExitDate)
}

func TestUpdateRecord_UnknownID(t *testing.T) {
	store := newTestStore(t, newFakeBlobStore())

	notes := "x"
	_, err := store.UpdateRecord(context.Background(), "missing", registry.EntryChanges{Notes: &notes})
	assert.True(t, util.IsCode(err, "RECORD_NOT_FOUND"))
}

func TestDeleteRecord(t *testing.T) {
	store := newTestStore(t, newFakeBlobStore())
	ctx := context.Background()

	record, err := store.CreateRecord(ctx, validForm())
	require.NoError(t, err)

	deleted, err := store.DeleteRecord(ctx, record.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = store.GetRecord(record.ID)
	assert.True(t, util.IsCode(err, "RECORD_NOT_FOUND"))

	// deleting an absent id is a normal false result
	deleted, err = store.DeleteRecord(ctx, record.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestCreateRecord_PersistenceFailureKeepsMutation(t *testing.T) {
	blobs := newFakeBlobStore()
	store := newTestStore(t, blobs)
	blobs.failSet = true

	record, err := store.CreateRecord(context.Background(), validForm())

	require.NotNil(t, record)
	assert.True(t, util.IsCode(err, "PERSISTENCE_FAILURE"))
	// memory and persisted state diverge until the next successful write
	assert.Len(t, store.Records(), 1)
}

func TestLogin(t *testing.T) {
	blobs := newFakeBlobStore()
	store := newTestStore(t, blobs)
	ctx := context.Background()

	user, err := store.Login(ctx, "admin", "demo123")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, domain.RoleAdmin, user.Role)
	require.NotNil(t, user.LastAccess)
	assert.Equal(t, testNow, *user.LastAccess)

	// the user collection is persisted with the stamped access time
	raw, err := blobs.Get(ctx, "datacenter_usuarios")
	require.NoError(t, err)
	var persisted []domain.User
	require.NoError(t, json.Unmarshal([]byte(raw), &persisted))
	require.NotNil(t, persisted[0].LastAccess)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	store := newTestStore(t, newFakeBlobStore())
	ctx := context.Background()

	user, err := store.Login(ctx, "admin", "wrong")
	require.NoError(t, err)
	assert.Nil(t, user)

	user, err = store.Login(ctx, "ghost", "demo123")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestSubscribeRecords_SnapshotOnSubscribeAndMutation(t *testing.T) {
	store := newTestStore(t, newFakeBlobStore())
	ctx := context.Background()

	ch, cancel := store.SubscribeRecords()
	defer cancel()

	initial := <-ch
	assert.Empty(t, initial)

	record, err := store.CreateRecord(ctx, validForm())
	require.NoError(t, err)

	next := <-ch
	require.Len(t, next, 1)
	assert.Equal(t, record.ID, next[0].ID)
}

func TestSubscribeRecords_CancelStopsDelivery(t *testing.T) {
	store := newTestStore(t, newFakeBlobStore())

	ch, cancel := store.SubscribeRecords()
	<-ch
	cancel()

	_, open := <-ch
	assert.False(t, open)
}

func TestRoomsByFacility(t *testing.T) {
	store := newTestStore(t, newFakeBlobStore())

	rooms := store.RoomsByFacility("2")
	require.Len(t, rooms, 2)
	assert.Equal(t, "Sala A", rooms[0].Name)

	assert.Empty(t, store.RoomsByFacility("unknown"))
}
