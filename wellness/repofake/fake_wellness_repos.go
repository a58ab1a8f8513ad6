// Package wellnessrepofake provides in-memory wellness repositories for
// tests and local development.
package wellnessrepofake

import (
	"context"
	"sort"
	"sync"

	apperrors "github.com/mindwell-app/mindwell/internal/errors"
	"github.com/mindwell-app/mindwell/wellness"
)

var (
	_ wellness.MoodRepo        = (*FakeMoodRepo)(nil)
	_ wellness.CheckInRepo     = (*FakeCheckInRepo)(nil)
	_ wellness.GoalRepo        = (*FakeGoalRepo)(nil)
	_ wellness.GratitudeRepo   = (*FakeGratitudeRepo)(nil)
	_ wellness.PreferencesRepo = (*FakePreferencesRepo)(nil)
)

// NewRepos returns a full set of in-memory wellness repos.
func NewRepos() wellness.Repos {
	return wellness.Repos{
		Moods:       NewFakeMoodRepo(),
		CheckIns:    NewFakeCheckInRepo(),
		Goals:       NewFakeGoalRepo(),
		Gratitude:   NewFakeGratitudeRepo(),
		Preferences: NewFakePreferencesRepo(),
	}
}

func page[T any](items []T, offset, limit int) []T {
	if offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

// ---- Moods ----

type FakeMoodRepo struct {
	entries map[int64]*wellness.MoodEntry
	nextID  int64
	lock    sync.RWMutex
}

func NewFakeMoodRepo() *FakeMoodRepo {
	return &FakeMoodRepo{entries: make(map[int64]*wellness.MoodEntry), nextID: 1}
}

func (mr *FakeMoodRepo) Create(_ context.Context, entry *wellness.MoodEntry) error {
	mr.lock.Lock()
	defer mr.lock.Unlock()

	entry.ID = mr.nextID
	mr.nextID++
	copied := *entry
	mr.entries[entry.ID] = &copied
	return nil
}

func (mr *FakeMoodRepo) Get(_ context.Context, userID string, id int64) (*wellness.MoodEntry, error) {
	mr.lock.RLock()
	defer mr.lock.RUnlock()

	entry, ok := mr.entries[id]
	if !ok || entry.UserID != userID {
		return nil, apperrors.ErrNotFound
	}
	copied := *entry
	return &copied, nil
}

func (mr *FakeMoodRepo) Delete(_ context.Context, userID string, id int64) error {
	mr.lock.Lock()
	defer mr.lock.Unlock()

	entry, ok := mr.entries[id]
	if !ok || entry.UserID != userID {
		return apperrors.ErrNotFound
	}
	delete(mr.entries, id)
	return nil
}

func (mr *FakeMoodRepo) byUser(userID string, emotion wellness.Emotion) []*wellness.MoodEntry {
	entries := make([]*wellness.MoodEntry, 0)
	for _, e := range mr.entries {
		if e.UserID != userID {
			continue
		}
		if emotion != "" && e.Emotion != emotion {
			continue
		}
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})
	return entries
}

func (mr *FakeMoodRepo) ListByUser(_ context.Context, userID string, emotion wellness.Emotion, offset, limit int) ([]*wellness.MoodEntry, int, error) {
	mr.lock.RLock()
	defer mr.lock.RUnlock()

	entries := mr.byUser(userID, emotion)
	return page(entries, offset, limit), len(entries), nil
}

func (mr *FakeMoodRepo) RecentScores(_ context.Context, userID string, offset, limit int) ([]float64, error) {
	mr.lock.RLock()
	defer mr.lock.RUnlock()

	entries := page(mr.byUser(userID, ""), offset, limit)
	scores := make([]float64, 0, len(entries))
	for _, e := range entries {
		scores = append(scores, e.SentimentScore)
	}
	return scores, nil
}

func (mr *FakeMoodRepo) Stats(_ context.Context, userID string) (*wellness.MoodStatsRow, error) {
	mr.lock.RLock()
	defer mr.lock.RUnlock()

	entries := mr.byUser(userID, "")
	row := &wellness.MoodStatsRow{
		Total:            len(entries),
		EmotionBreakdown: make(map[wellness.Emotion]int),
	}
	var sum float64
	for _, e := range entries {
		row.EmotionBreakdown[e.Emotion]++
		sum += e.SentimentScore
	}
	if row.Total > 0 {
		row.AverageSentiment = sum / float64(row.Total)
	}
	return row, nil
}

// ---- Check-ins ----

type FakeCheckInRepo struct {
	checkins map[int64]*wellness.DailyCheckIn
	nextID   int64
	lock     sync.RWMutex
}

func NewFakeCheckInRepo() *FakeCheckInRepo {
	return &FakeCheckInRepo{checkins: make(map[int64]*wellness.DailyCheckIn), nextID: 1}
}

func (cr *FakeCheckInRepo) Create(_ context.Context, checkin *wellness.DailyCheckIn) error {
	cr.lock.Lock()
	defer cr.lock.Unlock()

	checkin.ID = cr.nextID
	cr.nextID++
	copied := *checkin
	cr.checkins[checkin.ID] = &copied
	return nil
}

func (cr *FakeCheckInRepo) GetByDate(_ context.Context, userID, date string) (*wellness.DailyCheckIn, error) {
	cr.lock.RLock()
	defer cr.lock.RUnlock()

	for _, c := range cr.checkins {
		if c.UserID == userID && c.Date == date {
			copied := *c
			return &copied, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (cr *FakeCheckInRepo) byUser(userID string) []*wellness.DailyCheckIn {
	checkins := make([]*wellness.DailyCheckIn, 0)
	for _, c := range cr.checkins {
		if c.UserID == userID {
			checkins = append(checkins, c)
		}
	}
	return checkins
}

func (cr *FakeCheckInRepo) ListByUser(_ context.Context, userID string, offset, limit int) ([]*wellness.DailyCheckIn, int, error) {
	cr.lock.RLock()
	defer cr.lock.RUnlock()

	checkins := cr.byUser(userID)
	sort.Slice(checkins, func(i, j int) bool {
		return checkins[i].Date > checkins[j].Date
	})
	return page(checkins, offset, limit), len(checkins), nil
}

func (cr *FakeCheckInRepo) ListRange(_ context.Context, userID, start, end string) ([]*wellness.DailyCheckIn, error) {
	cr.lock.RLock()
	defer cr.lock.RUnlock()

	checkins := make([]*wellness.DailyCheckIn, 0)
	for _, c := range cr.byUser(userID) {
		if c.Date >= start && c.Date <= end {
			checkins = append(checkins, c)
		}
	}
	sort.Slice(checkins, func(i, j int) bool {
		return checkins[i].Date < checkins[j].Date
	})
	return checkins, nil
}

// ---- Goals ----

type FakeGoalRepo struct {
	goals  map[int64]*wellness.Goal
	nextID int64
	lock   sync.RWMutex
}

func NewFakeGoalRepo() *FakeGoalRepo {
	return &FakeGoalRepo{goals: make(map[int64]*wellness.Goal), nextID: 1}
}

func (gr *FakeGoalRepo) Create(_ context.Context, goal *wellness.Goal) error {
	gr.lock.Lock()
	defer gr.lock.Unlock()

	goal.ID = gr.nextID
	gr.nextID++
	copied := *goal
	gr.goals[goal.ID] = &copied
	return nil
}

func (gr *FakeGoalRepo) Get(_ context.Context, userID string, id int64) (*wellness.Goal, error) {
	gr.lock.RLock()
	defer gr.lock.RUnlock()

	goal, ok := gr.goals[id]
	if !ok || goal.UserID != userID {
		return nil, apperrors.ErrNotFound
	}
	copied := *goal
	return &copied, nil
}

func (gr *FakeGoalRepo) Update(_ context.Context, goal *wellness.Goal) error {
	gr.lock.Lock()
	defer gr.lock.Unlock()

	existing, ok := gr.goals[goal.ID]
	if !ok || existing.UserID != goal.UserID {
		return apperrors.ErrNotFound
	}
	copied := *goal
	gr.goals[goal.ID] = &copied
	return nil
}

func (gr *FakeGoalRepo) Delete(_ context.Context, userID string, id int64) error {
	gr.lock.Lock()
	defer gr.lock.Unlock()

	goal, ok := gr.goals[id]
	if !ok || goal.UserID != userID {
		return apperrors.ErrNotFound
	}
	delete(gr.goals, id)
	return nil
}

func (gr *FakeGoalRepo) ListByUser(_ context.Context, userID string, status wellness.GoalStatus, today string, offset, limit int) ([]*wellness.Goal, int, error) {
	gr.lock.RLock()
	defer gr.lock.RUnlock()

	goals := make([]*wellness.Goal, 0)
	for _, g := range gr.goals {
		if g.UserID != userID {
			continue
		}
		switch status {
		case wellness.GoalStatusCompleted:
			if !g.Completed {
				continue
			}
		case wellness.GoalStatusActive:
			if g.Completed || g.TargetDate < today {
				continue
			}
		case wellness.GoalStatusOverdue:
			if g.Completed || g.TargetDate >= today {
				continue
			}
		}
		goals = append(goals, g)
	}
	sort.Slice(goals, func(i, j int) bool {
		return goals[i].CreatedAt.After(goals[j].CreatedAt)
	})
	return page(goals, offset, limit), len(goals), nil
}

// ---- Gratitude ----

type FakeGratitudeRepo struct {
	entries map[int64]*wellness.GratitudeEntry
	nextID  int64
	lock    sync.RWMutex
}

func NewFakeGratitudeRepo() *FakeGratitudeRepo {
	return &FakeGratitudeRepo{entries: make(map[int64]*wellness.GratitudeEntry), nextID: 1}
}

func (gr *FakeGratitudeRepo) Create(_ context.Context, entry *wellness.GratitudeEntry) error {
	gr.lock.Lock()
	defer gr.lock.Unlock()

	entry.ID = gr.nextID
	gr.nextID++
	copied := *entry
	gr.entries[entry.ID] = &copied
	return nil
}

func (gr *FakeGratitudeRepo) Get(_ context.Context, userID string, id int64) (*wellness.GratitudeEntry, error) {
	gr.lock.RLock()
	defer gr.lock.RUnlock()

	entry, ok := gr.entries[id]
	if !ok || entry.UserID != userID {
		return nil, apperrors.ErrNotFound
	}
	copied := *entry
	return &copied, nil
}

func (gr *FakeGratitudeRepo) Delete(_ context.Context, userID string, id int64) error {
	gr.lock.Lock()
	defer gr.lock.Unlock()

	entry, ok := gr.entries[id]
	if !ok || entry.UserID != userID {
		return apperrors.ErrNotFound
	}
	delete(gr.entries, id)
	return nil
}

func (gr *FakeGratitudeRepo) ListByUser(_ context.Context, userID string, offset, limit int) ([]*wellness.GratitudeEntry, int, error) {
	gr.lock.RLock()
	defer gr.lock.RUnlock()

	entries := make([]*wellness.GratitudeEntry, 0)
	for _, e := range gr.entries {
		if e.UserID == userID {
			entries = append(entries, e)
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})
	return page(entries, offset, limit), len(entries), nil
}

func (gr *FakeGratitudeRepo) EntryDates(_ context.Context, userID string) ([]string, error) {
	gr.lock.RLock()
	defer gr.lock.RUnlock()

	seen := make(map[string]bool)
	for _, e := range gr.entries {
		if e.UserID == userID {
			seen[wellness.DateOf(e.Timestamp)] = true
		}
	}
	dates := make([]string, 0, len(seen))
	for d := range seen {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates, nil
}

// ---- Preferences ----

type FakePreferencesRepo struct {
	prefs map[string]*wellness.Preferences
	lock  sync.RWMutex
}

func NewFakePreferencesRepo() *FakePreferencesRepo {
	return &FakePreferencesRepo{prefs: make(map[string]*wellness.Preferences)}
}

func (pr *FakePreferencesRepo) Get(_ context.Context, userID string) (*wellness.Preferences, error) {
	pr.lock.RLock()
	defer pr.lock.RUnlock()

	prefs, ok := pr.prefs[userID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	copied := *prefs
	return &copied, nil
}

func (pr *FakePreferencesRepo) Upsert(_ context.Context, prefs *wellness.Preferences) error {
	pr.lock.Lock()
	defer pr.lock.Unlock()

	copied := *prefs
	pr.prefs[prefs.UserID] = &copied
	return nil
}
