// Package refresh handles refresh token creation, validation, and rotation.
package refresh

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	apperrors "github.com/mindwell-app/mindwell/internal/errors"
)

// NowTimeFunc returns the current time. It can be overridden in tests.
var NowTimeFunc = time.Now

const tokenLength = 32 // bytes of entropy (256 bits)

// Manager handles refresh token creation, validation, and rotation.
type Manager struct {
	repo Repo
	ttl  time.Duration
}

// NewManager creates a refresh token manager.
func NewManager(repo Repo, ttl time.Duration) *Manager {
	return &Manager{repo: repo, ttl: ttl}
}

// Create generates a new refresh token and stores it. Any existing token
// for the user is removed first (single refresh token per user).
func (m *Manager) Create(ctx context.Context, userID string) (string, error) {
	if existing, err := m.repo.GetByUserID(ctx, userID); err == nil && existing != nil {
		if err := m.repo.Delete(ctx, existing.Token); err != nil {
			return "", fmt.Errorf("delete existing refresh token: %w", err)
		}
	}

	tokenBytes := make([]byte, tokenLength)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", fmt.Errorf("generate random bytes: %w", err)
	}

	tokenStr := hex.EncodeToString(tokenBytes)
	if err := m.repo.Upsert(ctx, &StoredRefreshToken{
		Token:  tokenStr,
		UserID: userID,
		Iat:    NowTimeFunc(),
	}); err != nil {
		return "", fmt.Errorf("store refresh token: %w", err)
	}
	return tokenStr, nil
}

// Rotate validates the presented token, invalidates it, and issues a
// replacement for the same user. The old token stops working immediately.
func (m *Manager) Rotate(ctx context.Context, token string) (string, string, error) {
	stored, err := m.repo.Get(ctx, token)
	if err != nil || stored == nil {
		return "", "", apperrors.ErrInvalidRefreshToken
	}
	if NowTimeFunc().Sub(stored.Iat) > m.ttl {
		_ = m.repo.Delete(ctx, token)
		return "", "", apperrors.ErrRefreshTokenExpired
	}

	next, err := m.Create(ctx, stored.UserID)
	if err != nil {
		return "", "", err
	}
	return stored.UserID, next, nil
}

// Revoke removes a refresh token from storage.
func (m *Manager) Revoke(ctx context.Context, token string) error {
	return m.repo.Delete(ctx, token)
}
