package guards_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mindwell-app/mindwell/client/guards"
	"github.com/mindwell-app/mindwell/client/session"
)

func TestPublicOnly(t *testing.T) {
	s := session.New(session.NewMemStore())

	require.Equal(t, guards.Decision{Allow: true}, guards.PublicOnly(s))

	require.NoError(t, s.StoreTokens("a", "r", ""))
	require.Equal(t, guards.Decision{RedirectTo: guards.RouteDashboard}, guards.PublicOnly(s))
}

func TestPrivateOnly(t *testing.T) {
	s := session.New(session.NewMemStore())

	require.Equal(t, guards.Decision{RedirectTo: guards.RouteLogin}, guards.PrivateOnly(s))

	require.NoError(t, s.StoreTokens("a", "r", ""))
	require.Equal(t, guards.Decision{Allow: true}, guards.PrivateOnly(s))
}

func TestGuardsIdempotent(t *testing.T) {
	s := session.New(session.NewMemStore())
	require.NoError(t, s.StoreTokens("a", "r", ""))

	first := guards.PrivateOnly(s)
	for range 5 {
		require.Equal(t, first, guards.PrivateOnly(s))
	}
}
