package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache() *MemoryCache {
	return NewMemoryCache(time.Hour, time.Minute)
}

func TestNewMemoryCache(t *testing.T) {
	cache := NewMemoryCache(0, 0)
	require.NotNil(t, cache)
	assert.Equal(t, 0, cache.Count())
}

func TestMemoryCache_SetAndGet(t *testing.T) {
	cache := newTestCache()
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "durations:abc", []byte(`{"lines":[]}`), time.Hour))

	got, err := cache.Get(ctx, "durations:abc")
	require.NoError(t, err)
	assert.Equal(t, `{"lines":[]}`, string(got))
	assert.Equal(t, 1, cache.Count())
}

func TestMemoryCache_Get_NonExistentKey(t *testing.T) {
	cache := newTestCache()

	got, err := cache.Get(context.Background(), "non-existent")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, got)
}

func TestMemoryCache_Get_ExpiredKey(t *testing.T) {
	cache := newTestCache()
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "short", []byte("v"), 10*time.Millisecond))
	time.Sleep(20 * time.Millisecond)

	got, err := cache.Get(ctx, "short")
	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestMemoryCache_ZeroTTLNeverExpires(t *testing.T) {
	cache := NewMemoryCache(10*time.Millisecond, time.Minute)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "forever", []byte("v"), 0))
	require.NoError(t, cache.Set(ctx, "default", []byte("v"), -1))
	time.Sleep(20 * time.Millisecond)

	_, err := cache.Get(ctx, "forever")
	assert.NoError(t, err)

	_, err = cache.Get(ctx, "default")
	assert.Error(t, err)
}

func TestMemoryCache_ValuesAreCopied(t *testing.T) {
	cache := newTestCache()
	ctx := context.Background()

	value := []byte("original")
	require.NoError(t, cache.Set(ctx, "key", value, time.Hour))
	value[0] = 'X'

	got, err := cache.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, "original", string(got))

	got[0] = 'Y'
	again, _ := cache.Get(ctx, "key")
	assert.Equal(t, "original", string(again))
}

func TestMemoryCache_Delete(t *testing.T) {
	cache := newTestCache()
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "key", []byte("v"), time.Hour))
	require.NoError(t, cache.Delete(ctx, "key"))
	require.NoError(t, cache.Delete(ctx, "missing"))

	_, err := cache.Get(ctx, "key")
	assert.Error(t, err)
}

func TestMemoryCache_CancelledContext(t *testing.T) {
	cache := newTestCache()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, cache.Set(ctx, "key", []byte("v"), time.Hour), context.Canceled)
	_, err := cache.Get(ctx, "key")
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, cache.Delete(ctx, "key"), context.Canceled)
}
