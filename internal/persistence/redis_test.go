package persistence

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) *Redis {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisFromClient(client)
}

func TestRedis_SetAndGet(t *testing.T) {
	store := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "datacenter_registros", `[]`))

	val, err := store.Get(ctx, "datacenter_registros")
	require.NoError(t, err)
	assert.Equal(t, `[]`, val)
}

func TestRedis_GetMissingKey(t *testing.T) {
	store := setupTestRedis(t)

	_, err := store.Get(context.Background(), "no-such-key")
	assert.ErrorIs(t, err, ErrKeyAbsent)
}

func TestRedis_Remove(t *testing.T) {
	store := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "fotocamaras-admin", `[{"id":"1"}]`))
	require.NoError(t, store.Remove(ctx, "fotocamaras-admin"))

	_, err := store.Get(ctx, "fotocamaras-admin")
	assert.ErrorIs(t, err, ErrKeyAbsent)

	// removing an absent key is not an error
	assert.NoError(t, store.Remove(ctx, "fotocamaras-admin"))
}
