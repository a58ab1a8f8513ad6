package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// ListOptions select a page of a listing endpoint. Zero values fall
// back to the server defaults.
type ListOptions struct {
	Page     int
	PageSize int
	Emotion  string // history filter
	Status   string // goal filter
}

func (o ListOptions) query() string {
	values := url.Values{}
	if o.Page > 0 {
		values.Set("page", strconv.Itoa(o.Page))
	}
	if o.PageSize > 0 {
		values.Set("page_size", strconv.Itoa(o.PageSize))
	}
	if o.Emotion != "" {
		values.Set("emotion", o.Emotion)
	}
	if o.Status != "" {
		values.Set("status", o.Status)
	}
	if len(values) == 0 {
		return ""
	}
	return "?" + values.Encode()
}

// Register creates a new account. It does not sign the user in.
func (c *Client) Register(ctx context.Context, username, email, password string) (*User, error) {
	var user User
	err := c.Do(ctx, http.MethodPost, "/register/", map[string]string{
		"username": username, "email": email, "password": password,
	}, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Login exchanges credentials for a token pair and stores it in the
// session, flipping it to authenticated.
func (c *Client) Login(ctx context.Context, username, password string) error {
	var pair struct {
		Access  string `json:"access"`
		Refresh string `json:"refresh"`
	}
	if err := c.Do(ctx, http.MethodPost, "/token/", map[string]string{
		"username": username, "password": password,
	}, &pair); err != nil {
		return err
	}
	if storeErr := c.session.StoreTokens(pair.Access, pair.Refresh, username); storeErr != nil {
		return &Error{Kind: KindUnexpected, Message: fmt.Sprintf("store tokens: %v", storeErr)}
	}
	return nil
}

// Logout clears the session. The server keeps no access-token state,
// so this is purely client-side.
func (c *Client) Logout() error {
	return c.session.Clear()
}

// VerifyProtected checks that the current credentials are accepted.
func (c *Client) VerifyProtected(ctx context.Context) error {
	return c.Do(ctx, http.MethodGet, "/protected-view/", nil, nil)
}

// Analyze submits a message for emotion analysis.
func (c *Client) Analyze(ctx context.Context, text string) (*Analysis, error) {
	var analysis Analysis
	if err := c.Do(ctx, http.MethodPost, "/analyze/", map[string]string{"text": text}, &analysis); err != nil {
		return nil, err
	}
	return &analysis, nil
}

// History returns a page of past mood entries.
func (c *Client) History(ctx context.Context, opts ListOptions) (*Page[MoodEntry], error) {
	var page Page[MoodEntry]
	if err := c.Do(ctx, http.MethodGet, "/history/"+opts.query(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// HistoryEntry returns a single mood entry.
func (c *Client) HistoryEntry(ctx context.Context, id int64) (*MoodEntry, error) {
	var entry MoodEntry
	if err := c.Do(ctx, http.MethodGet, fmt.Sprintf("/history/%d/", id), nil, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// DeleteHistoryEntry removes a mood entry.
func (c *Client) DeleteHistoryEntry(ctx context.Context, id int64) error {
	return c.Do(ctx, http.MethodDelete, fmt.Sprintf("/history/%d/", id), nil, nil)
}

// MoodStats returns the aggregate mood statistics.
func (c *Client) MoodStats(ctx context.Context) (*MoodStats, error) {
	var stats MoodStats
	if err := c.Do(ctx, http.MethodGet, "/stats/", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// CheckIn records today's check-in, or returns the existing one.
func (c *Client) CheckIn(ctx context.Context, emotion, note string) (*CheckIn, error) {
	var checkin CheckIn
	if err := c.Do(ctx, http.MethodPost, "/checkin/", map[string]string{
		"emotion": emotion, "note": note,
	}, &checkin); err != nil {
		return nil, err
	}
	return &checkin, nil
}

// CheckIns returns a page of past check-ins.
func (c *Client) CheckIns(ctx context.Context, opts ListOptions) (*Page[CheckIn], error) {
	var page Page[CheckIn]
	if err := c.Do(ctx, http.MethodGet, "/checkin/"+opts.query(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// TodayCheckIn returns today's check-in, a KindNotFound error when the
// user has not checked in yet.
func (c *Client) TodayCheckIn(ctx context.Context) (*CheckIn, error) {
	var checkin CheckIn
	if err := c.Do(ctx, http.MethodGet, "/checkin/today/", nil, &checkin); err != nil {
		return nil, err
	}
	return &checkin, nil
}

// CheckInCalendar returns check-ins between two dates (YYYY-MM-DD,
// empty for the server defaults).
func (c *Client) CheckInCalendar(ctx context.Context, startDate, endDate string) (*Calendar, error) {
	values := url.Values{}
	if startDate != "" {
		values.Set("start_date", startDate)
	}
	if endDate != "" {
		values.Set("end_date", endDate)
	}
	path := "/checkin/calendar/"
	if len(values) > 0 {
		path += "?" + values.Encode()
	}

	var calendar Calendar
	if err := c.Do(ctx, http.MethodGet, path, nil, &calendar); err != nil {
		return nil, err
	}
	return &calendar, nil
}

// Goals returns a page of goals, filtered by status when set.
func (c *Client) Goals(ctx context.Context, opts ListOptions) (*Page[Goal], error) {
	var page Page[Goal]
	if err := c.Do(ctx, http.MethodGet, "/goals/"+opts.query(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// CreateGoal creates a new goal.
func (c *Client) CreateGoal(ctx context.Context, input GoalInput) (*Goal, error) {
	var goal Goal
	if err := c.Do(ctx, http.MethodPost, "/goals/", input, &goal); err != nil {
		return nil, err
	}
	return &goal, nil
}

// Goal returns a single goal.
func (c *Client) Goal(ctx context.Context, id int64) (*Goal, error) {
	var goal Goal
	if err := c.Do(ctx, http.MethodGet, fmt.Sprintf("/goals/%d/", id), nil, &goal); err != nil {
		return nil, err
	}
	return &goal, nil
}

// UpdateGoal applies a partial update to a goal.
func (c *Client) UpdateGoal(ctx context.Context, id int64, patch GoalPatch) (*Goal, error) {
	var goal Goal
	if err := c.Do(ctx, http.MethodPatch, fmt.Sprintf("/goals/%d/", id), patch, &goal); err != nil {
		return nil, err
	}
	return &goal, nil
}

// DeleteGoal removes a goal.
func (c *Client) DeleteGoal(ctx context.Context, id int64) error {
	return c.Do(ctx, http.MethodDelete, fmt.Sprintf("/goals/%d/", id), nil, nil)
}

// CompleteGoal marks a goal completed with its target reached.
func (c *Client) CompleteGoal(ctx context.Context, id int64) (*Goal, error) {
	var goal Goal
	if err := c.Do(ctx, http.MethodPost, fmt.Sprintf("/goals/%d/complete/", id), nil, &goal); err != nil {
		return nil, err
	}
	return &goal, nil
}

// GratitudeList returns a page of journal entries.
func (c *Client) GratitudeList(ctx context.Context, opts ListOptions) (*Page[GratitudeEntry], error) {
	var page Page[GratitudeEntry]
	if err := c.Do(ctx, http.MethodGet, "/gratitude/"+opts.query(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// CreateGratitude records a new journal entry.
func (c *Client) CreateGratitude(ctx context.Context, text string) (*GratitudeEntry, error) {
	var entry GratitudeEntry
	if err := c.Do(ctx, http.MethodPost, "/gratitude/", map[string]string{"text": text}, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// GratitudeEntry returns a single journal entry.
func (c *Client) GratitudeEntry(ctx context.Context, id int64) (*GratitudeEntry, error) {
	var entry GratitudeEntry
	if err := c.Do(ctx, http.MethodGet, fmt.Sprintf("/gratitude/%d/", id), nil, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// DeleteGratitude removes a journal entry.
func (c *Client) DeleteGratitude(ctx context.Context, id int64) error {
	return c.Do(ctx, http.MethodDelete, fmt.Sprintf("/gratitude/%d/", id), nil, nil)
}

// GratitudeStats returns the journal entry count and current streak.
func (c *Client) GratitudeStats(ctx context.Context) (*GratitudeStats, error) {
	var stats GratitudeStats
	if err := c.Do(ctx, http.MethodGet, "/gratitude/stats/", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// WellnessTips returns the tips for an emotion (empty for neutral).
func (c *Client) WellnessTips(ctx context.Context, emotion string) (*Tips, error) {
	path := "/wellness-tips/"
	if emotion != "" {
		path += "?emotion=" + url.QueryEscape(emotion)
	}
	var tips Tips
	if err := c.Do(ctx, http.MethodGet, path, nil, &tips); err != nil {
		return nil, err
	}
	return &tips, nil
}

// Preferences returns the user's settings.
func (c *Client) Preferences(ctx context.Context) (*Preferences, error) {
	var prefs Preferences
	if err := c.Do(ctx, http.MethodGet, "/preferences/", nil, &prefs); err != nil {
		return nil, err
	}
	return &prefs, nil
}

// UpdatePreferences applies a partial settings update.
func (c *Client) UpdatePreferences(ctx context.Context, patch PreferencesPatch) (*Preferences, error) {
	var prefs Preferences
	if err := c.Do(ctx, http.MethodPatch, "/preferences/", patch, &prefs); err != nil {
		return nil, err
	}
	return &prefs, nil
}
