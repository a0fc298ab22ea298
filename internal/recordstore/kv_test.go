package recordstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loscamioneros/web/internal/db"
)

func openTestKV(t *testing.T) *KVStore {
	t.Helper()
	database, err := db.OpenForTesting()
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })
	return NewKVStore(database)
}

func TestKVStoreRoundTrip(t *testing.T) {
	kv := openTestKV(t)
	ctx := context.Background()

	_, found, err := kv.Load(ctx, "dishes")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, kv.Save(ctx, "dishes", []byte(`[{"id":7}]`)))

	data, found, err := kv.Load(ctx, "dishes")
	require.NoError(t, err)
	assert.True(t, found)
	assert.JSONEq(t, `[{"id":7}]`, string(data))
}

func TestKVStoreUpsertReplaces(t *testing.T) {
	kv := openTestKV(t)
	ctx := context.Background()

	require.NoError(t, kv.Save(ctx, "gallery", []byte(`[1]`)))
	require.NoError(t, kv.Save(ctx, "gallery", []byte(`[2]`)))

	data, found, err := kv.Load(ctx, "gallery")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "[2]", string(data))
}

func TestKVStoreDelete(t *testing.T) {
	kv := openTestKV(t)
	ctx := context.Background()

	require.NoError(t, kv.Save(ctx, "audit_log", []byte(`[]`)))
	require.NoError(t, kv.Delete(ctx, "audit_log"))

	_, found, err := kv.Load(ctx, "audit_log")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, kv.Delete(ctx, "audit_log"))
}
