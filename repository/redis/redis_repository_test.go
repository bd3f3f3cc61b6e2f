package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	redisrepo "github.com/muhammadheryan/storefront/repository/redis"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepo(t *testing.T) (redisrepo.Repository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return redisrepo.NewRepository(client), mr
}

func TestRepository_GetMissingKey(t *testing.T) {
	repo, _ := setupRepo(t)

	val, err := repo.Get(context.Background(), "cart:nope")
	require.NoError(t, err)
	assert.Empty(t, val)
}

func TestRepository_SetGetDelete(t *testing.T) {
	repo, mr := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "cart:s1", `[]`))
	val, err := repo.Get(ctx, "cart:s1")
	require.NoError(t, err)
	assert.Equal(t, `[]`, val)

	require.NoError(t, repo.Delete(ctx, "cart:s1"))
	assert.False(t, mr.Exists("cart:s1"))
}

func TestRepository_SetWithTTL(t *testing.T) {
	repo, mr := setupRepo(t)

	require.NoError(t, repo.SetWithTTL(context.Background(), "k", "v", time.Minute))
	assert.Equal(t, time.Minute, mr.TTL("k"))
}

func TestRepository_GetSession(t *testing.T) {
	repo, mr := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, mr.Set("session:jti-1", "42"))
	id, err := repo.GetSession(ctx, "jti-1")
	require.NoError(t, err)
	assert.Equal(t, uint64(42), id)

	id, err = repo.GetSession(ctx, "jti-missing")
	require.NoError(t, err)
	assert.Zero(t, id)
}

func TestRepository_NilClient(t *testing.T) {
	repo := redisrepo.NewRepository(nil)
	ctx := context.Background()

	assert.NoError(t, repo.Set(ctx, "k", "v"))
	val, err := repo.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Empty(t, val)
}
