package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient redis из TWEETCHAIN_TEST_REDIS, иначе тест пропускается
func newTestClient(t *testing.T) *RedisClient {
	t.Helper()
	addr := os.Getenv("TWEETCHAIN_TEST_REDIS")
	if addr == "" {
		t.Skip("TWEETCHAIN_TEST_REDIS is not set")
	}
	c := NewRedisClient(addr, "", 15)
	require.NoError(t, c.Connect(context.Background()))
	t.Cleanup(func() { c.Close() })
	return c
}

func TestRedisClientValues(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()
	key := t.Name()

	require.NoError(t, c.Set(ctx, key, []byte(`{"topic":"bikes"}`), time.Minute))
	got, err := c.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, `{"topic":"bikes"}`, got)

	got, err = c.GetDelete(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, `{"topic":"bikes"}`, got)

	_, err = c.Get(ctx, key)
	assert.ErrorIs(t, err, redis.Nil)
}

func TestRedisClientLists(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()
	key := t.Name()
	t.Cleanup(func() { c.Delete(ctx, key, listVersionKey(key)) })

	version, err := c.ListVersion(ctx, key)
	require.NoError(t, err)

	ok, err := c.ReplaceList(ctx, key, version, time.Minute, "a", "b")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = c.ReplaceList(ctx, key, version, time.Minute, "c")
	require.NoError(t, err)
	assert.True(t, ok)
	items, err := c.GetList(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, items)

	ok, err = c.ReplaceList(ctx, key, version, time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
	items, err = c.GetList(ctx, key)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestRedisClientStaleListIsNotStored(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()
	key := t.Name()
	t.Cleanup(func() { c.Delete(ctx, key, listVersionKey(key)) })

	version, err := c.ListVersion(ctx, key)
	require.NoError(t, err)

	// запись между чтением из базы и заполнением кэша
	require.NoError(t, c.InvalidateList(ctx, key))

	ok, err := c.ReplaceList(ctx, key, version, time.Minute, "old")
	require.NoError(t, err)
	assert.False(t, ok)
	items, err := c.GetList(ctx, key)
	require.NoError(t, err)
	assert.Empty(t, items)

	fresh, err := c.ListVersion(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, version+1, fresh)
	ok, err = c.ReplaceList(ctx, key, fresh, 0, "new")
	require.NoError(t, err)
	assert.True(t, ok)
	items, err = c.GetList(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, []string{"new"}, items)
}
