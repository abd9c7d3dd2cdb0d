package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"

	"riskmonitor/internal/domain/repository"
)

func backends(t *testing.T) map[string]repository.KeyValueStore {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	return map[string]repository.KeyValueStore{
		"memory": NewMemoryStore(),
		"blob":   NewBlobStore(bucket, "riskmonitor/"),
	}
}

func TestKeyValueStore_RoundTrip(t *testing.T) {
	t.Parallel()

	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, found, err := store.Get(ctx, "alerts")
			require.NoError(t, err)
			assert.False(t, found)

			require.NoError(t, store.Set(ctx, "alerts", []byte(`[1]`)))

			data, found, err := store.Get(ctx, "alerts")
			require.NoError(t, err)
			assert.True(t, found)
			assert.Equal(t, `[1]`, string(data))

			require.NoError(t, store.Set(ctx, "alerts", []byte(`[2]`)))
			data, _, err = store.Get(ctx, "alerts")
			require.NoError(t, err)
			assert.Equal(t, `[2]`, string(data))

			require.NoError(t, store.Remove(ctx, "alerts"))
			_, found, err = store.Get(ctx, "alerts")
			require.NoError(t, err)
			assert.False(t, found)

			require.NoError(t, store.Remove(ctx, "alerts"), "removing an absent key is a no-op")
		})
	}
}

func TestMemoryStore_CopiesValues(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewMemoryStore()

	value := []byte("abc")
	require.NoError(t, store.Set(ctx, "k", value))
	value[0] = 'z'

	got, _, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))

	got[1] = 'z'
	again, _, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(again))
}
