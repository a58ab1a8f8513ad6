package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	apperrors "github.com/mindwell-app/mindwell/internal/errors"
	"github.com/mindwell-app/mindwell/storage/sqlite"
	"github.com/mindwell-app/mindwell/token/refresh"
	"github.com/mindwell-app/mindwell/users"
	"github.com/mindwell-app/mindwell/wellness"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	store, err := sqlite.Open(filepath.Join(t.TempDir(), "mindwell.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func createTestUser(t *testing.T, store *sqlite.Store, username string) *users.User {
	t.Helper()
	user := &users.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "not-a-real-hash",
		DateJoined:   time.Now().UTC(),
	}
	require.NoError(t, store.UserRepo().Upsert(user))
	return user
}

func TestUserRepo(t *testing.T) {
	store := newTestStore(t)
	repo := store.UserRepo()

	user := createTestUser(t, store, "alice")
	require.NotEmpty(t, user.ID)

	found, err := repo.GetByUsername("alice")
	require.NoError(t, err)
	require.Equal(t, user.ID, found.ID)
	require.Equal(t, "alice@example.com", found.Email)

	byID, err := repo.GetByID(user.ID)
	require.NoError(t, err)
	require.Equal(t, "alice", byID.Username)

	_, err = repo.GetByUsername("nobody")
	require.ErrorIs(t, err, apperrors.ErrUserNotFound)

	// Duplicate usernames are rejected by the unique constraint.
	err = repo.Upsert(&users.User{Username: "alice", PasswordHash: "x", DateJoined: time.Now()})
	require.Error(t, err)

	require.NoError(t, repo.Delete("alice"))
	require.ErrorIs(t, repo.Delete("alice"), apperrors.ErrUserNotFound)
}

func TestRefreshRepo(t *testing.T) {
	store := newTestStore(t)
	repo := store.RefreshRepo()
	ctx := context.Background()

	user := createTestUser(t, store, "bob")
	iat := time.Now().UTC().Truncate(time.Millisecond)

	require.NoError(t, repo.Upsert(ctx, &refresh.StoredRefreshToken{
		Token: "token-one", UserID: user.ID, Iat: iat,
	}))

	found, err := repo.Get(ctx, "token-one")
	require.NoError(t, err)
	require.Equal(t, user.ID, found.UserID)
	require.Equal(t, iat, found.Iat)

	// A second upsert for the same user replaces the stored token.
	require.NoError(t, repo.Upsert(ctx, &refresh.StoredRefreshToken{
		Token: "token-two", UserID: user.ID, Iat: iat,
	}))
	_, err = repo.Get(ctx, "token-one")
	require.ErrorIs(t, err, apperrors.ErrNotFound)

	byUser, err := repo.GetByUserID(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, "token-two", byUser.Token)

	require.NoError(t, repo.Delete(ctx, "token-two"))
	require.ErrorIs(t, repo.Delete(ctx, "token-two"), apperrors.ErrNotFound)
}

func TestMoodRepo(t *testing.T) {
	store := newTestStore(t)
	repos := store.WellnessRepos()
	ctx := context.Background()
	user := createTestUser(t, store, "carol")

	base := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	emotions := []wellness.Emotion{
		wellness.EmotionHappy, wellness.EmotionSad, wellness.EmotionHappy,
	}
	scores := []float64{0.8, -0.6, 0.7}
	for i, emotion := range emotions {
		require.NoError(t, repos.Moods.Create(ctx, &wellness.MoodEntry{
			UserID:         user.ID,
			Text:           "entry text number " + string(rune('a'+i)),
			SentimentScore: scores[i],
			Emotion:        emotion,
			Response:       "a supportive reply",
			Timestamp:      base.Add(time.Duration(i) * time.Hour),
		}))
	}

	entries, total, err := repos.Moods.ListByUser(ctx, user.ID, "", 0, 10)
	require.NoError(t, err)
	require.Equal(t, 3, total)
	require.Len(t, entries, 3)
	// Newest first.
	require.Equal(t, 0.7, entries[0].SentimentScore)

	happy, total, err := repos.Moods.ListByUser(ctx, user.ID, wellness.EmotionHappy, 0, 10)
	require.NoError(t, err)
	require.Equal(t, 2, total)
	require.Len(t, happy, 2)

	recent, err := repos.Moods.RecentScores(ctx, user.ID, 0, 2)
	require.NoError(t, err)
	require.Equal(t, []float64{0.7, -0.6}, recent)

	stats, err := repos.Moods.Stats(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, 3, stats.Total)
	require.Equal(t, 2, stats.EmotionBreakdown[wellness.EmotionHappy])
	require.InDelta(t, 0.3, stats.AverageSentiment, 0.0001)

	require.NoError(t, repos.Moods.Delete(ctx, user.ID, entries[0].ID))
	_, err = repos.Moods.Get(ctx, user.ID, entries[0].ID)
	require.ErrorIs(t, err, apperrors.ErrNotFound)

	// Other users cannot touch the entry.
	require.ErrorIs(t, repos.Moods.Delete(ctx, "someone-else", entries[1].ID), apperrors.ErrNotFound)
}

func TestCheckInRepo(t *testing.T) {
	store := newTestStore(t)
	repos := store.WellnessRepos()
	ctx := context.Background()
	user := createTestUser(t, store, "dave")

	for _, date := range []string{"2026-08-18", "2026-08-19", "2026-08-21"} {
		ts, err := time.Parse("2006-01-02", date)
		require.NoError(t, err)
		require.NoError(t, repos.CheckIns.Create(ctx, &wellness.DailyCheckIn{
			UserID: user.ID, Emotion: wellness.EmotionNeutral, Date: date, Timestamp: ts,
		}))
	}

	// One check-in per user per date.
	err := repos.CheckIns.Create(ctx, &wellness.DailyCheckIn{
		UserID: user.ID, Emotion: wellness.EmotionHappy, Date: "2026-08-19", Timestamp: time.Now(),
	})
	require.Error(t, err)

	checkin, err := repos.CheckIns.GetByDate(ctx, user.ID, "2026-08-19")
	require.NoError(t, err)
	require.Equal(t, wellness.EmotionNeutral, checkin.Emotion)

	_, err = repos.CheckIns.GetByDate(ctx, user.ID, "2026-08-20")
	require.ErrorIs(t, err, apperrors.ErrNotFound)

	listed, total, err := repos.CheckIns.ListByUser(ctx, user.ID, 0, 2)
	require.NoError(t, err)
	require.Equal(t, 3, total)
	require.Len(t, listed, 2)
	require.Equal(t, "2026-08-21", listed[0].Date)

	ranged, err := repos.CheckIns.ListRange(ctx, user.ID, "2026-08-19", "2026-08-21")
	require.NoError(t, err)
	require.Len(t, ranged, 2)
	require.Equal(t, "2026-08-19", ranged[0].Date)
}

func TestGoalRepo(t *testing.T) {
	store := newTestStore(t)
	repos := store.WellnessRepos()
	ctx := context.Background()
	user := createTestUser(t, store, "erin")
	today := "2026-08-24"

	mk := func(title, targetDate string, completed bool) *wellness.Goal {
		goal := &wellness.Goal{
			UserID:      user.ID,
			Title:       title,
			GoalType:    wellness.GoalCustom,
			TargetValue: 10,
			StartDate:   "2026-08-01",
			TargetDate:  targetDate,
			Completed:   completed,
			CreatedAt:   time.Now().UTC(),
		}
		require.NoError(t, repos.Goals.Create(ctx, goal))
		return goal
	}

	active := mk("active goal", "2026-09-01", false)
	mk("completed goal", "2026-08-10", true)
	mk("overdue goal", "2026-08-10", false)

	for _, tt := range []struct {
		status wellness.GoalStatus
		want   int
	}{
		{wellness.GoalStatusAll, 3},
		{wellness.GoalStatusActive, 1},
		{wellness.GoalStatusCompleted, 1},
		{wellness.GoalStatusOverdue, 1},
	} {
		_, total, err := repos.Goals.ListByUser(ctx, user.ID, tt.status, today, 0, 10)
		require.NoError(t, err)
		require.Equal(t, tt.want, total, string(tt.status))
	}

	active.CurrentValue = 10
	active.Completed = true
	require.NoError(t, repos.Goals.Update(ctx, active))

	updated, err := repos.Goals.Get(ctx, user.ID, active.ID)
	require.NoError(t, err)
	require.True(t, updated.Completed)
	require.Equal(t, 10, updated.CurrentValue)

	require.NoError(t, repos.Goals.Delete(ctx, user.ID, active.ID))
	_, err = repos.Goals.Get(ctx, user.ID, active.ID)
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestGratitudeRepo(t *testing.T) {
	store := newTestStore(t)
	repos := store.WellnessRepos()
	ctx := context.Background()
	user := createTestUser(t, store, "frank")

	day := time.Date(2026, 8, 22, 9, 0, 0, 0, time.UTC)
	for i := range 3 {
		require.NoError(t, repos.Gratitude.Create(ctx, &wellness.GratitudeEntry{
			UserID:    user.ID,
			Text:      "grateful for small things",
			Timestamp: day.Add(time.Duration(i*13) * time.Hour),
		}))
	}

	entries, total, err := repos.Gratitude.ListByUser(ctx, user.ID, 0, 10)
	require.NoError(t, err)
	require.Equal(t, 3, total)
	require.Len(t, entries, 3)

	// Two entries land on the 22nd, one on the 23rd.
	dates, err := repos.Gratitude.EntryDates(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, []string{"2026-08-23", "2026-08-22"}, dates)

	require.NoError(t, repos.Gratitude.Delete(ctx, user.ID, entries[0].ID))
	require.ErrorIs(t, repos.Gratitude.Delete(ctx, user.ID, entries[0].ID), apperrors.ErrNotFound)
}

func TestPreferencesRepo(t *testing.T) {
	store := newTestStore(t)
	repos := store.WellnessRepos()
	ctx := context.Background()
	user := createTestUser(t, store, "grace")

	_, err := repos.Preferences.Get(ctx, user.ID)
	require.ErrorIs(t, err, apperrors.ErrNotFound)

	now := time.Now().UTC().Truncate(time.Millisecond)
	prefs := wellness.DefaultPreferences(user.ID, now)
	require.NoError(t, repos.Preferences.Upsert(ctx, prefs))

	stored, err := repos.Preferences.Get(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, wellness.ThemeAuto, stored.PreferredTheme)
	require.Equal(t, wellness.DefaultReminderTime, stored.ReminderTime)

	stored.ReminderEnabled = true
	stored.PreferredTheme = wellness.ThemeDark
	stored.UpdatedAt = now.Add(time.Minute)
	require.NoError(t, repos.Preferences.Upsert(ctx, stored))

	again, err := repos.Preferences.Get(ctx, user.ID)
	require.NoError(t, err)
	require.True(t, again.ReminderEnabled)
	require.Equal(t, wellness.ThemeDark, again.PreferredTheme)
	require.Equal(t, now, again.CreatedAt)
	require.Equal(t, now.Add(time.Minute), again.UpdatedAt)
}
