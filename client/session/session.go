// Package session tracks the authenticated state of a client: the
// token pair, the signed-in username, and an observable flag that
// flips when the user signs in or out.
package session

import "sync"

// Storage keys shared by every Store implementation.
const (
	KeyAccessToken  = "access_token"
	KeyRefreshToken = "refresh_token"
	KeyUsername     = "username"
)

// Store is the persistence behind a Session. Implementations must be
// safe for concurrent use.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
}

// Session exposes the authenticated state and notifies subscribers on
// every change. The flag is derived from the presence of an access
// token in the store.
type Session struct {
	mu            sync.RWMutex
	store         Store
	authenticated bool
	subscribers   []func(authenticated bool)
}

// New creates a session over a store, deriving the initial state from
// any previously persisted access token.
func New(store Store) *Session {
	s := &Session{store: store}
	token, err := store.Get(KeyAccessToken)
	s.authenticated = err == nil && token != ""
	return s
}

// IsAuthenticated reports whether an access token is present.
func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

// Username returns the signed-in username, empty when signed out.
func (s *Session) Username() string {
	username, err := s.store.Get(KeyUsername)
	if err != nil {
		return ""
	}
	return username
}

// AccessToken returns the stored access token, empty when absent.
func (s *Session) AccessToken() string {
	token, err := s.store.Get(KeyAccessToken)
	if err != nil {
		return ""
	}
	return token
}

// RefreshToken returns the stored refresh token, empty when absent.
func (s *Session) RefreshToken() string {
	token, err := s.store.Get(KeyRefreshToken)
	if err != nil {
		return ""
	}
	return token
}

// Subscribe registers a callback invoked on every authentication state
// change. It returns an unsubscribe function.
func (s *Session) Subscribe(fn func(authenticated bool)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.subscribers = append(s.subscribers, fn)
	index := len(s.subscribers) - 1
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.subscribers[index] = nil
	}
}

// StoreTokens persists a full token pair plus the username and marks
// the session authenticated.
func (s *Session) StoreTokens(access, refresh, username string) error {
	if err := s.store.Set(KeyAccessToken, access); err != nil {
		return err
	}
	if err := s.store.Set(KeyRefreshToken, refresh); err != nil {
		return err
	}
	if username != "" {
		if err := s.store.Set(KeyUsername, username); err != nil {
			return err
		}
	}
	s.setAuthenticated(true)
	return nil
}

// SetAccessToken replaces only the access token, e.g. after a refresh.
func (s *Session) SetAccessToken(access string) error {
	if err := s.store.Set(KeyAccessToken, access); err != nil {
		return err
	}
	s.setAuthenticated(access != "")
	return nil
}

// SetRefreshToken replaces only the refresh token after a rotation.
func (s *Session) SetRefreshToken(refresh string) error {
	return s.store.Set(KeyRefreshToken, refresh)
}

// Clear removes both tokens and the username and marks the session
// unauthenticated.
func (s *Session) Clear() error {
	var firstErr error
	for _, key := range []string{KeyAccessToken, KeyRefreshToken, KeyUsername} {
		if err := s.store.Delete(key); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	s.setAuthenticated(false)
	return firstErr
}

// Reload re-derives the authenticated flag from the store. Call this
// when another process may have changed the persisted tokens.
func (s *Session) Reload() {
	token, err := s.store.Get(KeyAccessToken)
	s.setAuthenticated(err == nil && token != "")
}

func (s *Session) setAuthenticated(authenticated bool) {
	s.mu.Lock()
	changed := s.authenticated != authenticated
	s.authenticated = authenticated
	subscribers := make([]func(bool), len(s.subscribers))
	copy(subscribers, s.subscribers)
	s.mu.Unlock()

	if !changed {
		return
	}
	for _, fn := range subscribers {
		if fn != nil {
			fn(authenticated)
		}
	}
}
