package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mindwell-app/mindwell/client"
	"github.com/mindwell-app/mindwell/client/session"
)

// apiStub simulates the token-refresh behavior of the backend: bearer
// requests succeed only with the current access token, and the refresh
// endpoint swaps a valid refresh token for the next access token.
type apiStub struct {
	mu             sync.Mutex
	validAccess    string
	validRefresh   string
	nextAccess     string
	refreshCalls   atomic.Int32
	historyCalls   atomic.Int32
	seenBearers    []string
	refreshBroken  bool
	rotatedRefresh string
	slowRefresh    bool
}

func (a *apiStub) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /token/refresh/", func(w http.ResponseWriter, r *http.Request) {
		a.refreshCalls.Add(1)
		if a.slowRefresh {
			// Hold the refresh open long enough for every concurrent
			// request to see its 401 and join the same flight.
			time.Sleep(100 * time.Millisecond)
		}

		a.mu.Lock()
		defer a.mu.Unlock()
		var req struct {
			Refresh string `json:"refresh"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)

		if a.refreshBroken || req.Refresh != a.validRefresh {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"error": true, "message": "Token is invalid or expired",
			})
			return
		}

		a.validAccess = a.nextAccess
		resp := map[string]string{"access": a.validAccess}
		if a.rotatedRefresh != "" {
			a.validRefresh = a.rotatedRefresh
			resp["refresh"] = a.rotatedRefresh
		}
		_ = json.NewEncoder(w).Encode(resp)
	})

	mux.HandleFunc("GET /history/", func(w http.ResponseWriter, r *http.Request) {
		a.historyCalls.Add(1)
		bearer := r.Header.Get("Authorization")

		a.mu.Lock()
		a.seenBearers = append(a.seenBearers, bearer)
		valid := bearer == "Bearer "+a.validAccess
		a.mu.Unlock()

		if !valid {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]any{"error": true, "message": "Token is expired"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"count": 0, "next": nil, "previous": nil, "results": []any{},
		})
	})

	return mux
}

func newClientFixture(t *testing.T, stub *apiStub) (*client.Client, *session.Session, *int32) {
	t.Helper()
	srv := httptest.NewServer(stub.handler())
	t.Cleanup(srv.Close)

	sess := session.New(session.NewMemStore())
	var logouts int32
	c := client.New(srv.URL, sess, client.WithLogoutHook(func() {
		atomic.AddInt32(&logouts, 1)
	}))
	return c, sess, &logouts
}

func TestBearerAttached(t *testing.T) {
	stub := &apiStub{validAccess: "A1", validRefresh: "R1", nextAccess: "A2"}
	c, sess, _ := newClientFixture(t, stub)
	require.NoError(t, sess.StoreTokens("A1", "R1", "alice"))

	_, err := c.History(context.Background(), client.ListOptions{})
	require.NoError(t, err)
	require.Equal(t, []string{"Bearer A1"}, stub.seenBearers)
}

func TestExpiredTokenRefreshedAndRetriedOnce(t *testing.T) {
	// The store holds A1 but the server only accepts A2 after a
	// refresh with R1.
	stub := &apiStub{validAccess: "A2", validRefresh: "R1", nextAccess: "A2"}
	c, sess, logouts := newClientFixture(t, stub)
	require.NoError(t, sess.StoreTokens("A1", "R1", "alice"))

	_, err := c.History(context.Background(), client.ListOptions{})
	require.NoError(t, err)

	// Exactly one refresh, exactly one retry, and the retry carried A2.
	require.Equal(t, int32(1), stub.refreshCalls.Load())
	require.Equal(t, []string{"Bearer A1", "Bearer A2"}, stub.seenBearers)

	// The store now holds A2 and the session stays authenticated.
	require.Equal(t, "A2", sess.AccessToken())
	require.True(t, sess.IsAuthenticated())
	require.Zero(t, atomic.LoadInt32(logouts))
}

func TestRotatedRefreshTokenStored(t *testing.T) {
	stub := &apiStub{validAccess: "A2", validRefresh: "R1", nextAccess: "A2", rotatedRefresh: "R2"}
	c, sess, _ := newClientFixture(t, stub)
	require.NoError(t, sess.StoreTokens("A1", "R1", "alice"))

	_, err := c.History(context.Background(), client.ListOptions{})
	require.NoError(t, err)
	require.Equal(t, "R2", sess.RefreshToken())
}

func TestSecondUnauthorizedIsTerminal(t *testing.T) {
	// The refresh succeeds but the server still rejects the retry:
	// nextAccess never becomes valid for /history/.
	stub := &apiStub{validAccess: "never-valid", validRefresh: "R1", nextAccess: "A2"}
	c, sess, _ := newClientFixture(t, stub)
	require.NoError(t, sess.StoreTokens("A1", "R1", "alice"))

	_, err := c.History(context.Background(), client.ListOptions{})
	require.Error(t, err)
	require.True(t, client.IsAuth(err))

	// One refresh, two dispatches, no loop.
	require.Equal(t, int32(1), stub.refreshCalls.Load())
	require.Equal(t, int32(2), stub.historyCalls.Load())
	// The refreshed token is kept even though the endpoint rejected it.
	require.Equal(t, "A2", sess.AccessToken())
}

func TestRefreshFailureSignsOut(t *testing.T) {
	stub := &apiStub{validAccess: "A2", validRefresh: "R1", nextAccess: "A2", refreshBroken: true}
	c, sess, logouts := newClientFixture(t, stub)
	require.NoError(t, sess.StoreTokens("A1", "R1", "alice"))

	_, err := c.History(context.Background(), client.ListOptions{})
	require.Error(t, err)
	require.True(t, client.IsAuth(err))

	// Both tokens are gone, the flag flipped, and the hook fired.
	require.Empty(t, sess.AccessToken())
	require.Empty(t, sess.RefreshToken())
	require.False(t, sess.IsAuthenticated())
	require.Equal(t, int32(1), atomic.LoadInt32(logouts))

	// No retry happened after the failed refresh.
	require.Equal(t, int32(1), stub.historyCalls.Load())
}

func TestMissingRefreshTokenSignsOut(t *testing.T) {
	stub := &apiStub{validAccess: "A2", validRefresh: "R1", nextAccess: "A2"}
	c, sess, logouts := newClientFixture(t, stub)
	// Access token present but no refresh token stored.
	require.NoError(t, sess.SetAccessToken("A1"))

	_, err := c.History(context.Background(), client.ListOptions{})
	require.Error(t, err)
	require.True(t, client.IsAuth(err))
	require.Zero(t, stub.refreshCalls.Load())
	require.Equal(t, int32(1), atomic.LoadInt32(logouts))
}

func TestConcurrentExpiryRefreshesOnce(t *testing.T) {
	stub := &apiStub{validAccess: "A2", validRefresh: "R1", nextAccess: "A2", slowRefresh: true}
	c, sess, _ := newClientFixture(t, stub)
	require.NoError(t, sess.StoreTokens("A1", "R1", "alice"))

	const parallel = 8
	var wg sync.WaitGroup
	errs := make([]error, parallel)
	start := make(chan struct{})
	for i := range parallel {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, errs[i] = c.History(context.Background(), client.ListOptions{})
		}()
	}
	close(start)
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}
	// All expired requests shared a single refresh.
	require.Equal(t, int32(1), stub.refreshCalls.Load())
	require.Equal(t, "A2", sess.AccessToken())
}

func TestNetworkFailureNotRetried(t *testing.T) {
	sess := session.New(session.NewMemStore())
	c := client.New("http://127.0.0.1:1", sess) // nothing listens here

	_, err := c.History(context.Background(), client.ListOptions{})
	require.Error(t, err)

	clientErr, ok := err.(*client.Error)
	require.True(t, ok)
	require.Equal(t, client.KindNetwork, clientErr.Kind)
	require.False(t, sess.IsAuthenticated())
}

func TestErrorClassification(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /register/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": true, "message": "Validation failed",
			"details": map[string]string{"password": "Password must be at least 8 characters long"},
		})
	})
	mux.HandleFunc("GET /history/99/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]any{"error": true, "message": "Not found"})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	sess := session.New(session.NewMemStore())
	require.NoError(t, sess.StoreTokens("A1", "R1", ""))
	c := client.New(srv.URL, sess)

	_, err := c.Register(context.Background(), "bob", "", "short")
	require.True(t, client.IsValidation(err))
	clientErr := err.(*client.Error)
	require.Contains(t, clientErr.Details, "password")

	_, err = c.HistoryEntry(context.Background(), 99)
	require.True(t, client.IsNotFound(err))
}

func TestLoginStoresTokens(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /token/", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"access": "A1", "refresh": "R1"})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	sess := session.New(session.NewMemStore())
	c := client.New(srv.URL, sess)

	require.NoError(t, c.Login(context.Background(), "alice", "password123"))
	require.True(t, sess.IsAuthenticated())
	require.Equal(t, "A1", sess.AccessToken())
	require.Equal(t, "R1", sess.RefreshToken())
	require.Equal(t, "alice", sess.Username())

	require.NoError(t, c.Logout())
	require.False(t, sess.IsAuthenticated())
	require.Empty(t, sess.RefreshToken())
}
