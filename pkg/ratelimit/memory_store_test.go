package ratelimit_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amoxtli/school-contact/pkg/ratelimit"
)

func TestMemoryStore_RecordIfAllowed(t *testing.T) {
	t.Parallel()

	store := ratelimit.NewMemoryStore()
	t.Cleanup(func() { _ = store.Close() })
	ctx := context.Background()
	base := time.Now()

	for i := range 3 {
		ok, count, err := store.RecordIfAllowed(ctx, "k", base.Add(time.Duration(i)*time.Second), time.Minute, 3)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, int64(i+1), count)
	}

	ok, count, err := store.RecordIfAllowed(ctx, "k", base.Add(5*time.Second), time.Minute, 3)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, int64(3), count)

	oldest, err := store.Oldest(ctx, "k", base.Add(5*time.Second), time.Minute)
	require.NoError(t, err)
	assert.True(t, oldest.Equal(base))

	// the first entry has aged out
	ok, count, err = store.RecordIfAllowed(ctx, "k", base.Add(time.Minute+time.Millisecond), time.Minute, 3)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(3), count)
}

func TestMemoryStore_KeysAreIndependent(t *testing.T) {
	t.Parallel()

	store := ratelimit.NewMemoryStore()
	t.Cleanup(func() { _ = store.Close() })
	ctx := context.Background()
	now := time.Now()

	ok, _, _ := store.RecordIfAllowed(ctx, "a", now, time.Minute, 1)
	assert.True(t, ok)
	ok, _, _ = store.RecordIfAllowed(ctx, "a", now, time.Minute, 1)
	assert.False(t, ok)
	ok, _, _ = store.RecordIfAllowed(ctx, "b", now, time.Minute, 1)
	assert.True(t, ok)

	require.NoError(t, store.Delete(ctx, "a"))
	ok, _, _ = store.RecordIfAllowed(ctx, "a", now, time.Minute, 1)
	assert.True(t, ok)
}

func TestMemoryStore_Concurrent(t *testing.T) {
	t.Parallel()

	store := ratelimit.NewMemoryStore()
	t.Cleanup(func() { _ = store.Close() })
	ctx := context.Background()

	var allowed atomic.Int32
	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ok, _, err := store.RecordIfAllowed(ctx, "shared", time.Now(), time.Minute, 10); err == nil && ok {
				allowed.Add(1)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(10), allowed.Load())
}

func TestMemoryStore_CloseTwice(t *testing.T) {
	t.Parallel()
	store := ratelimit.NewMemoryStore(ratelimit.WithCleanupInterval(10 * time.Millisecond))
	assert.NoError(t, store.Close())
	assert.NoError(t, store.Close())
}
