package redisrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	apperrors "github.com/mindwell-app/mindwell/internal/errors"
	"github.com/mindwell-app/mindwell/token/refresh"
	"github.com/mindwell-app/mindwell/token/refresh/redisrepo"
)

func newTestRepo(t *testing.T) (*redisrepo.Repo, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return redisrepo.New(rdb, "mw", time.Hour), mr
}

func TestUpsertAndGet(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	iat := time.Now().UTC().Truncate(time.Millisecond)
	require.NoError(t, repo.Upsert(ctx, &refresh.StoredRefreshToken{
		Token:  "tok-1",
		UserID: "user-1",
		Iat:    iat,
	}))

	got, err := repo.Get(ctx, "tok-1")
	require.NoError(t, err)
	require.Equal(t, "user-1", got.UserID)
	require.True(t, got.Iat.Equal(iat))

	byUser, err := repo.GetByUserID(ctx, "user-1")
	require.NoError(t, err)
	require.Equal(t, "tok-1", byUser.Token)
}

func TestGetMissing(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.Get(ctx, "nope")
	require.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = repo.GetByUserID(ctx, "nobody")
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDelete(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &refresh.StoredRefreshToken{
		Token:  "tok-1",
		UserID: "user-1",
		Iat:    time.Now(),
	}))
	require.NoError(t, repo.Delete(ctx, "tok-1"))

	_, err := repo.Get(ctx, "tok-1")
	require.ErrorIs(t, err, apperrors.ErrNotFound)
	require.ErrorIs(t, repo.Delete(ctx, "tok-1"), apperrors.ErrNotFound)
}

func TestEntriesExpire(t *testing.T) {
	repo, mr := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &refresh.StoredRefreshToken{
		Token:  "tok-1",
		UserID: "user-1",
		Iat:    time.Now(),
	}))

	mr.FastForward(2 * time.Hour)

	_, err := repo.Get(ctx, "tok-1")
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestRotationThroughManager(t *testing.T) {
	repo, _ := newTestRepo(t)
	m := refresh.NewManager(repo, time.Hour)
	ctx := context.Background()

	first, err := m.Create(ctx, "user-1")
	require.NoError(t, err)

	_, second, err := m.Rotate(ctx, first)
	require.NoError(t, err)

	_, _, err = m.Rotate(ctx, first)
	require.ErrorIs(t, err, apperrors.ErrInvalidRefreshToken)

	_, _, err = m.Rotate(ctx, second)
	require.NoError(t, err)
}
