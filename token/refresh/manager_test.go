package refresh_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	apperrors "github.com/mindwell-app/mindwell/internal/errors"
	"github.com/mindwell-app/mindwell/token/refresh"
	refreshrepofake "github.com/mindwell-app/mindwell/token/refresh/repofake"
)

func TestCreateIssuesSingleTokenPerUser(t *testing.T) {
	ctx := context.Background()
	repo := refreshrepofake.NewFakeRefreshTokenRepo()
	m := refresh.NewManager(repo, time.Hour)

	first, err := m.Create(ctx, "user-1")
	require.NoError(t, err)

	second, err := m.Create(ctx, "user-1")
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	// The first token is no longer usable.
	_, _, err = m.Rotate(ctx, first)
	require.ErrorIs(t, err, apperrors.ErrInvalidRefreshToken)
}

func TestRotateInvalidatesOldToken(t *testing.T) {
	ctx := context.Background()
	repo := refreshrepofake.NewFakeRefreshTokenRepo()
	m := refresh.NewManager(repo, time.Hour)

	original, err := m.Create(ctx, "user-1")
	require.NoError(t, err)

	userID, rotated, err := m.Rotate(ctx, original)
	require.NoError(t, err)
	require.Equal(t, "user-1", userID)
	require.NotEqual(t, original, rotated)

	_, _, err = m.Rotate(ctx, original)
	require.ErrorIs(t, err, apperrors.ErrInvalidRefreshToken)

	// The rotated token still works.
	_, _, err = m.Rotate(ctx, rotated)
	require.NoError(t, err)
}

func TestRotateExpiredToken(t *testing.T) {
	ctx := context.Background()
	repo := refreshrepofake.NewFakeRefreshTokenRepo()
	m := refresh.NewManager(repo, time.Hour)

	base := time.Now()
	refresh.NowTimeFunc = func() time.Time { return base }
	defer func() { refresh.NowTimeFunc = time.Now }()

	tok, err := m.Create(ctx, "user-1")
	require.NoError(t, err)

	refresh.NowTimeFunc = func() time.Time { return base.Add(2 * time.Hour) }
	_, _, err = m.Rotate(ctx, tok)
	require.ErrorIs(t, err, apperrors.ErrRefreshTokenExpired)

	// Expired tokens are purged on rotation.
	_, err = repo.Get(ctx, tok)
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestRevoke(t *testing.T) {
	ctx := context.Background()
	repo := refreshrepofake.NewFakeRefreshTokenRepo()
	m := refresh.NewManager(repo, time.Hour)

	tok, err := m.Create(ctx, "user-1")
	require.NoError(t, err)
	require.NoError(t, m.Revoke(ctx, tok))

	_, _, err = m.Rotate(ctx, tok)
	require.ErrorIs(t, err, apperrors.ErrInvalidRefreshToken)
}
