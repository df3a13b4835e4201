package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/toggler/pkg/adapters/redis"
	"github.com/aretw0/toggler/pkg/domain"
	"github.com/aretw0/toggler/pkg/ports"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T) (*miniredis.Miniredis, *backend.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedisStore_Contract(t *testing.T) {
	_, client := newClient(t)
	ports.RunArtifactStoreContract(t, redis.NewFromClient(client))
}

func TestRedisStore_TTL_Expiration(t *testing.T) {
	mr, client := newClient(t)

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	store := redis.NewFromClient(client,
		redis.WithTTL(time.Second),
		redis.WithClock(func() time.Time { return now }),
	)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &domain.Artifact{ID: "short-lived", Project: "p"}))

	ids, err := store.List(ctx)
	require.NoError(t, err)
	assert.Contains(t, ids, "short-lived")

	mr.FastForward(2 * time.Second)
	_, err = store.Load(ctx, "short-lived")
	assert.ErrorIs(t, err, domain.ErrArtifactNotFound)

	now = now.Add(2 * time.Second)
	ids, err = store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestRedisStore_Prefix(t *testing.T) {
	mr, client := newClient(t)

	store := redis.NewFromClient(client, redis.WithPrefix("custom:app:"))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &domain.Artifact{ID: "my-artifact"}))

	assert.True(t, mr.Exists("custom:app:data:my-artifact"), "Expected key with custom prefix to exist")
	assert.True(t, mr.Exists("custom:app:index"), "Expected index with custom prefix to exist")

	ids, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"my-artifact"}, ids)
}

func TestRedisStore_IndexLikeID(t *testing.T) {
	mr, client := newClient(t)
	store := redis.NewFromClient(client)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &domain.Artifact{ID: "index", Project: "clash"}))
	require.NoError(t, store.Save(ctx, &domain.Artifact{ID: "other"}))
	assert.True(t, mr.Exists("toggler:artifact:data:index"))

	ids, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"index", "other"}, ids)

	loaded, err := store.Load(ctx, "index")
	require.NoError(t, err)
	assert.Equal(t, "clash", loaded.Project)
}

func TestRedisStore_PreservesTimestamp(t *testing.T) {
	_, client := newClient(t)
	store := redis.NewFromClient(client)
	ctx := context.Background()

	created := time.Date(2024, 5, 1, 12, 0, 0, 123456789, time.UTC)
	require.NoError(t, store.Save(ctx, &domain.Artifact{ID: "ts", CreatedAt: created}))

	loaded, err := store.Load(ctx, "ts")
	require.NoError(t, err)
	assert.True(t, created.Equal(loaded.CreatedAt))
}

func TestRedisStore_EmptyID(t *testing.T) {
	_, client := newClient(t)
	assert.Error(t, redis.NewFromClient(client).Save(context.Background(), &domain.Artifact{}))
}
