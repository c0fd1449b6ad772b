package data

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hamzanaeem10/auto-suite-space/internal/testutil"
)

func TestRedisCacheRepo(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	client := testutil.SetupTestRedis(t)
	defer client.Close()

	repo := NewRedisCacheRepo(client)
	ctx := context.Background()

	t.Run("set then get", func(t *testing.T) {
		ttl := 5 * time.Minute
		require.NoError(t, repo.Set(ctx, "cache:a", []byte("payload"), ttl))

		got, err := repo.Get(ctx, "cache:a")
		require.NoError(t, err)
		assert.Equal(t, []byte("payload"), got)

		remaining := client.TTL(ctx, "cache:a").Val()
		assert.True(t, remaining > 0 && remaining <= ttl)
	})

	t.Run("get miss returns nil", func(t *testing.T) {
		got, err := repo.Get(ctx, "cache:missing")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("delete reports presence", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, "cache:b", []byte("x"), time.Minute))

		deleted, err := repo.Delete(ctx, "cache:b")
		require.NoError(t, err)
		assert.True(t, deleted)

		got, err := repo.Get(ctx, "cache:b")
		require.NoError(t, err)
		assert.Nil(t, got)

		deleted, err = repo.Delete(ctx, "cache:b")
		require.NoError(t, err)
		assert.False(t, deleted)
	})

	t.Run("exists", func(t *testing.T) {
		exists, err := repo.Exists(ctx, "cache:c")
		require.NoError(t, err)
		assert.False(t, exists)

		require.NoError(t, repo.Set(ctx, "cache:c", []byte("x"), time.Minute))

		exists, err = repo.Exists(ctx, "cache:c")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("extend ttl", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, "cache:d", []byte("x"), time.Minute))

		updated, err := repo.SetTTL(ctx, "cache:d", 2*time.Minute)
		require.NoError(t, err)
		assert.True(t, updated)

		remaining := client.TTL(ctx, "cache:d").Val()
		assert.True(t, remaining > time.Minute && remaining <= 2*time.Minute)

		updated, err = repo.SetTTL(ctx, "cache:absent", time.Minute)
		require.NoError(t, err)
		assert.False(t, updated)
	})

	t.Run("setnx acquires only once", func(t *testing.T) {
		wasSet, err := repo.SetIfNotExists(ctx, "cache:lock", []byte("one"), time.Minute)
		require.NoError(t, err)
		assert.True(t, wasSet)

		wasSet, err = repo.SetIfNotExists(ctx, "cache:lock", []byte("two"), time.Minute)
		require.NoError(t, err)
		assert.False(t, wasSet)

		// The losing write must not have touched the value.
		got, err := repo.Get(ctx, "cache:lock")
		require.NoError(t, err)
		assert.Equal(t, []byte("one"), got)

		remaining := client.TTL(ctx, "cache:lock").Val()
		assert.True(t, remaining > 0 && remaining <= time.Minute)
	})

	t.Run("health", func(t *testing.T) {
		assert.NoError(t, repo.Health(ctx))
	})
}

func TestRedisCacheRepo_EmptyKeyRejected(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	client := testutil.SetupTestRedis(t)
	defer client.Close()

	repo := NewRedisCacheRepo(client)
	ctx := context.Background()

	assert.ErrorContains(t, repo.Set(ctx, "", []byte("v"), time.Minute), "key cannot be empty")

	_, err := repo.Get(ctx, "")
	assert.ErrorContains(t, err, "key cannot be empty")

	_, err = repo.Delete(ctx, "")
	assert.ErrorContains(t, err, "key cannot be empty")

	_, err = repo.Exists(ctx, "")
	assert.ErrorContains(t, err, "key cannot be empty")

	_, err = repo.SetTTL(ctx, "", time.Minute)
	assert.ErrorContains(t, err, "key cannot be empty")

	_, err = repo.SetIfNotExists(ctx, "", []byte("v"), time.Minute)
	assert.ErrorContains(t, err, "key cannot be empty")
}
