package users_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/mindwell-app/mindwell/internal/errors"
	"github.com/mindwell-app/mindwell/users"
	fakeuserrepo "github.com/mindwell-app/mindwell/users/repofake"
)

func TestRegister(t *testing.T) {
	service := users.NewService(fakeuserrepo.NewFakeUserRepo())

	user, err := service.Register("alice", "alice@example.com", "password123")
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	require.Equal(t, "alice", user.Username)
	require.False(t, user.DateJoined.IsZero())

	// The stored hash verifies against the plaintext but is not equal to it.
	require.NotEqual(t, "password123", user.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password123")))

	_, err = service.Register("alice", "other@example.com", "password123")
	require.ErrorIs(t, err, apperrors.ErrUserExists)
}

func TestAuthenticate(t *testing.T) {
	service := users.NewService(fakeuserrepo.NewFakeUserRepo())
	registered, err := service.Register("alice", "", "password123")
	require.NoError(t, err)

	loginTime := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	users.NowTimeFunc = func() time.Time { return loginTime }
	defer func() { users.NowTimeFunc = time.Now }()

	user, err := service.Authenticate("alice", "password123")
	require.NoError(t, err)
	require.Equal(t, registered.ID, user.ID)
	require.Equal(t, loginTime, user.LastLogin)

	// The login time is persisted, not just set on the returned copy.
	stored, err := service.Get(registered.ID)
	require.NoError(t, err)
	require.Equal(t, loginTime, stored.LastLogin)

	_, err = service.Authenticate("alice", "wrong-password")
	require.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = service.Authenticate("nobody", "password123")
	require.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestGetUnknownID(t *testing.T) {
	service := users.NewService(fakeuserrepo.NewFakeUserRepo())
	_, err := service.Get("missing")
	require.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestValidateRegistration(t *testing.T) {
	require.Nil(t, users.ValidateRegistration("alice", "alice@example.com", "password123"))
	require.Nil(t, users.ValidateRegistration("alice", "", "password123"))

	problems := users.ValidateRegistration("", "not-an-email", "short")
	require.Contains(t, problems, "username")
	require.Contains(t, problems, "email")
	require.Contains(t, problems, "password")
}
