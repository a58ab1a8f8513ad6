package session_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mindwell-app/mindwell/client/session"
)

func TestSessionLifecycle(t *testing.T) {
	s := session.New(session.NewMemStore())
	require.False(t, s.IsAuthenticated())
	require.Empty(t, s.AccessToken())

	require.NoError(t, s.StoreTokens("access-1", "refresh-1", "alice"))
	require.True(t, s.IsAuthenticated())
	require.Equal(t, "access-1", s.AccessToken())
	require.Equal(t, "refresh-1", s.RefreshToken())
	require.Equal(t, "alice", s.Username())

	require.NoError(t, s.SetAccessToken("access-2"))
	require.Equal(t, "access-2", s.AccessToken())
	require.Equal(t, "refresh-1", s.RefreshToken())

	require.NoError(t, s.Clear())
	require.False(t, s.IsAuthenticated())
	require.Empty(t, s.AccessToken())
	require.Empty(t, s.RefreshToken())
	require.Empty(t, s.Username())
}

func TestSessionSubscribe(t *testing.T) {
	s := session.New(session.NewMemStore())

	var events []bool
	unsubscribe := s.Subscribe(func(authenticated bool) {
		events = append(events, authenticated)
	})

	require.NoError(t, s.StoreTokens("a", "r", ""))
	// A second sign-in does not change the state, so no extra event.
	require.NoError(t, s.StoreTokens("a2", "r2", ""))
	require.NoError(t, s.Clear())
	require.Equal(t, []bool{true, false}, events)

	unsubscribe()
	require.NoError(t, s.StoreTokens("a3", "r3", ""))
	require.Equal(t, []bool{true, false}, events)
}

func TestSessionRestoredFromStore(t *testing.T) {
	store := session.NewMemStore()
	require.NoError(t, store.Set(session.KeyAccessToken, "persisted"))

	s := session.New(store)
	require.True(t, s.IsAuthenticated())
}

func TestSessionReload(t *testing.T) {
	store := session.NewMemStore()
	s := session.New(store)
	require.False(t, s.IsAuthenticated())

	var events []bool
	s.Subscribe(func(authenticated bool) { events = append(events, authenticated) })

	// Another writer stores a token behind the session's back.
	require.NoError(t, store.Set(session.KeyAccessToken, "external"))
	require.False(t, s.IsAuthenticated())

	s.Reload()
	require.True(t, s.IsAuthenticated())
	require.Equal(t, []bool{true}, events)
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "session.json")
	store, err := session.NewFileStore(path)
	require.NoError(t, err)

	require.NoError(t, store.Set(session.KeyAccessToken, "file-access"))
	require.NoError(t, store.Set(session.KeyUsername, "bob"))

	// A second store over the same file sees the persisted values.
	reopened, err := session.NewFileStore(path)
	require.NoError(t, err)
	value, err := reopened.Get(session.KeyAccessToken)
	require.NoError(t, err)
	require.Equal(t, "file-access", value)

	require.NoError(t, reopened.Delete(session.KeyAccessToken))
	_, err = reopened.Get(session.KeyAccessToken)
	require.Error(t, err)

	s := session.New(reopened)
	require.False(t, s.IsAuthenticated())
	require.Equal(t, "bob", s.Username())
}
