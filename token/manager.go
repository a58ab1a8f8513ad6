// Package token mints and verifies the short-lived access tokens that
// authorize API requests.
package token

import (
	"errors"
	"fmt"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	apperrors "github.com/mindwell-app/mindwell/internal/errors"
)

// NowTimeFunc returns the current time. It can be overridden in tests.
var NowTimeFunc = time.Now

// Claims are the verified contents of an access token.
type Claims struct {
	UserID   string
	Username string
}

// Manager signs and verifies HS256 access tokens.
type Manager struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewManager creates an access-token manager.
func NewManager(secret, issuer string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), issuer: issuer, ttl: ttl}
}

// Create mints an access token for the user.
func (m *Manager) Create(userID, username string) (string, error) {
	now := NowTimeFunc()
	claims := jwtlib.MapClaims{
		"iss":      m.issuer,
		"sub":      userID,
		"username": username,
		"iat":      now.Unix(),
		"exp":      now.Add(m.ttl).Unix(),
		"jti":      uuid.New().String(),
	}

	signed, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign access token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates an access token and returns its claims.
func (m *Manager) Verify(tokenStr string) (*Claims, error) {
	parsed, err := jwtlib.Parse(tokenStr, func(t *jwtlib.Token) (any, error) {
		if _, ok := t.Method.(*jwtlib.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return m.secret, nil
	},
		jwtlib.WithIssuer(m.issuer),
		jwtlib.WithTimeFunc(func() time.Time { return NowTimeFunc() }),
	)
	if err != nil {
		if errors.Is(err, jwtlib.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrInvalidToken
	}

	mapClaims, ok := parsed.Claims.(jwtlib.MapClaims)
	if !ok || !parsed.Valid {
		return nil, apperrors.ErrInvalidToken
	}

	sub, _ := mapClaims["sub"].(string)
	username, _ := mapClaims["username"].(string)
	if sub == "" {
		return nil, apperrors.ErrInvalidToken
	}
	return &Claims{UserID: sub, Username: username}, nil
}
