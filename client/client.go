// Package client is the typed SDK for the companion REST API. It
// attaches the session's bearer token to every request, transparently
// refreshes an expired access token once per request, and signs the
// session out when the refresh token itself is rejected.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/mindwell-app/mindwell/client/session"
)

const defaultTimeout = 30 * time.Second

// refreshKey is the singleflight key: one refresh per client at a time.
const refreshKey = "token-refresh"

// Client calls the REST API on behalf of one session.
type Client struct {
	baseURL string
	http    *http.Client
	session *session.Session
	log     zerolog.Logger

	// refreshGroup collapses concurrent refresh attempts into one
	// request; every waiter shares its outcome.
	refreshGroup singleflight.Group

	// onLogout runs after a failed refresh has cleared the session,
	// e.g. to navigate to the login page.
	onLogout func()
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.http = httpClient }
}

// WithLogger attaches a logger for request diagnostics.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithLogoutHook registers a callback invoked when the session is
// force-cleared after a refresh failure.
func WithLogoutHook(fn func()) Option {
	return func(c *Client) { c.onLogout = fn }
}

// New creates a client for the API at baseURL, e.g.
// "http://localhost:8000/api".
func New(baseURL string, sess *session.Session, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
		session: sess,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Session returns the session this client operates on.
func (c *Client) Session() *session.Session {
	return c.session
}

// Do performs one API request. body is JSON-encoded when non-nil; the
// response is decoded into out when out is non-nil. On a 401 the
// client refreshes the access token and retries the request exactly
// once; any further 401 is terminal.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	resp, err := c.dispatch(ctx, method, path, body)
	if err != nil {
		return err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		drain(resp)
		if refreshErr := c.refreshAccessToken(ctx); refreshErr != nil {
			return refreshErr
		}

		// One retry with the fresh token. Its outcome is final.
		resp, err = c.dispatch(ctx, method, path, body)
		if err != nil {
			return err
		}
		if resp.StatusCode == http.StatusUnauthorized {
			message := readErrorMessage(resp)
			return &Error{Kind: KindAuth, StatusCode: resp.StatusCode, Message: message}
		}
	}

	return c.handleResponse(resp, out)
}

// dispatch builds and sends a single HTTP request with the current
// bearer token attached.
func (c *Client) dispatch(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, &Error{Kind: KindUnexpected, Message: fmt.Sprintf("encode request: %v", err)}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, &Error{Kind: KindUnexpected, Message: fmt.Sprintf("build request: %v", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.session.AccessToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &Error{Kind: KindNetwork, Message: err.Error(), Err: err}
	}
	return resp, nil
}

// refreshAccessToken exchanges the stored refresh token for a new
// access token. Concurrent callers share a single refresh request.
// On failure the session is cleared and the logout hook fires.
func (c *Client) refreshAccessToken(ctx context.Context) error {
	_, err, _ := c.refreshGroup.Do(refreshKey, func() (any, error) {
		refreshToken := c.session.RefreshToken()
		if refreshToken == "" {
			return nil, &Error{Kind: KindAuth, Message: "no refresh token"}
		}

		// The refresh call goes through dispatch directly: it must
		// never trigger another refresh.
		resp, err := c.dispatch(ctx, http.MethodPost, "/token/refresh/",
			map[string]string{"refresh": refreshToken})
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			message := readErrorMessage(resp)
			return nil, &Error{Kind: KindAuth, StatusCode: resp.StatusCode, Message: message}
		}

		var payload struct {
			Access  string `json:"access"`
			Refresh string `json:"refresh"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil || payload.Access == "" {
			return nil, &Error{Kind: KindAuth, Message: "malformed refresh response"}
		}

		if err := c.session.SetAccessToken(payload.Access); err != nil {
			return nil, &Error{Kind: KindUnexpected, Message: fmt.Sprintf("store access token: %v", err)}
		}
		if payload.Refresh != "" {
			if err := c.session.SetRefreshToken(payload.Refresh); err != nil {
				return nil, &Error{Kind: KindUnexpected, Message: fmt.Sprintf("store refresh token: %v", err)}
			}
		}
		c.log.Debug().Msg("access token refreshed")
		return nil, nil
	})

	if err != nil {
		c.log.Warn().Err(err).Msg("token refresh failed, signing out")
		c.forceLogout()
	}
	return err
}

// forceLogout clears the session and runs the logout hook.
func (c *Client) forceLogout() {
	if clearErr := c.session.Clear(); clearErr != nil {
		c.log.Error().Err(clearErr).Msg("clear session")
	}
	if c.onLogout != nil {
		c.onLogout()
	}
}

// handleResponse classifies the final status code and decodes the body.
func (c *Client) handleResponse(resp *http.Response, out any) error {
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil || resp.StatusCode == http.StatusNoContent {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &Error{Kind: KindUnexpected, StatusCode: resp.StatusCode,
				Message: fmt.Sprintf("decode response: %v", err)}
		}
		return nil
	}

	var envelope struct {
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&envelope)
	if envelope.Message == "" {
		envelope.Message = http.StatusText(resp.StatusCode)
	}

	kind := KindUnexpected
	switch {
	case resp.StatusCode == http.StatusBadRequest:
		kind = KindValidation
	case resp.StatusCode == http.StatusNotFound:
		kind = KindNotFound
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		kind = KindAuth
	}
	return &Error{Kind: kind, StatusCode: resp.StatusCode, Message: envelope.Message, Details: envelope.Details}
}

func readErrorMessage(resp *http.Response) string {
	var envelope struct {
		Message string `json:"message"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&envelope)
	resp.Body.Close()
	if envelope.Message == "" {
		return http.StatusText(resp.StatusCode)
	}
	return envelope.Message
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
	resp.Body.Close()
}
