package token_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	apperrors "github.com/mindwell-app/mindwell/internal/errors"
	"github.com/mindwell-app/mindwell/token"
)

const (
	testSecret = "test-secret"
	testIssuer = "com.mindwell.test"
)

func TestCreateAndVerify(t *testing.T) {
	m := token.NewManager(testSecret, testIssuer, 15*time.Minute)

	signed, err := m.Create("user-1", "alice")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := m.Verify(signed)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.UserID)
	require.Equal(t, "alice", claims.Username)
}

func TestVerifyExpiredToken(t *testing.T) {
	m := token.NewManager(testSecret, testIssuer, 15*time.Minute)

	base := time.Now()
	token.NowTimeFunc = func() time.Time { return base }
	defer func() { token.NowTimeFunc = time.Now }()

	signed, err := m.Create("user-1", "alice")
	require.NoError(t, err)

	token.NowTimeFunc = func() time.Time { return base.Add(16 * time.Minute) }
	_, err = m.Verify(signed)
	require.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	m := token.NewManager(testSecret, testIssuer, 15*time.Minute)

	_, err := m.Verify("not-a-jwt")
	require.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	m := token.NewManager(testSecret, testIssuer, 15*time.Minute)
	other := token.NewManager("different-secret", testIssuer, 15*time.Minute)

	signed, err := other.Create("user-1", "alice")
	require.NoError(t, err)

	_, err = m.Verify(signed)
	require.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestVerifyRejectsWrongIssuer(t *testing.T) {
	m := token.NewManager(testSecret, testIssuer, 15*time.Minute)
	other := token.NewManager(testSecret, "com.other", 15*time.Minute)

	signed, err := other.Create("user-1", "alice")
	require.NoError(t, err)

	_, err = m.Verify(signed)
	require.ErrorIs(t, err, apperrors.ErrInvalidToken)
}
