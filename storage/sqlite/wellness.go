package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	apperrors "github.com/mindwell-app/mindwell/internal/errors"
	"github.com/mindwell-app/mindwell/wellness"
)

type moodRepo Store
type checkinRepo Store
type goalRepo Store
type gratitudeRepo Store
type preferencesRepo Store

var (
	_ wellness.MoodRepo        = (*moodRepo)(nil)
	_ wellness.CheckInRepo     = (*checkinRepo)(nil)
	_ wellness.GoalRepo        = (*goalRepo)(nil)
	_ wellness.GratitudeRepo   = (*gratitudeRepo)(nil)
	_ wellness.PreferencesRepo = (*preferencesRepo)(nil)
)

// ---- wellness.MoodRepo ----

func (r *moodRepo) Create(ctx context.Context, entry *wellness.MoodEntry) error {
	res, err := r.sqlDB.ExecContext(ctx, `
		INSERT INTO mood_entries (user_id, text, sentiment_score, emotion, response, timestamp)
		VALUES (?, ?, ?, ?, ?, ?)`,
		entry.UserID, entry.Text, entry.SentimentScore, string(entry.Emotion),
		entry.Response, toMillis(entry.Timestamp))
	if err != nil {
		return fmt.Errorf("insert mood entry: %w", err)
	}
	entry.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("mood entry id: %w", err)
	}
	return nil
}

func (r *moodRepo) Get(ctx context.Context, userID string, id int64) (*wellness.MoodEntry, error) {
	row := r.sqlDB.QueryRowContext(ctx, `
		SELECT id, user_id, text, sentiment_score, emotion, response, timestamp
		FROM mood_entries WHERE id = ? AND user_id = ?`, id, userID)
	return scanMood(row.Scan)
}

func scanMood(scan func(...any) error) (*wellness.MoodEntry, error) {
	var entry wellness.MoodEntry
	var emotion string
	var ts int64
	err := scan(&entry.ID, &entry.UserID, &entry.Text, &entry.SentimentScore, &emotion, &entry.Response, &ts)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan mood entry: %w", err)
	}
	entry.Emotion = wellness.Emotion(emotion)
	entry.Timestamp = fromMillis(ts)
	return &entry, nil
}

func (r *moodRepo) Delete(ctx context.Context, userID string, id int64) error {
	res, err := r.sqlDB.ExecContext(ctx,
		`DELETE FROM mood_entries WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("delete mood entry: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *moodRepo) ListByUser(ctx context.Context, userID string, emotion wellness.Emotion, offset, limit int) ([]*wellness.MoodEntry, int, error) {
	where := `WHERE user_id = ?`
	args := []any{userID}
	if emotion != "" {
		where += ` AND emotion = ?`
		args = append(args, string(emotion))
	}

	var total int
	if err := r.sqlDB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM mood_entries `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count mood entries: %w", err)
	}

	rows, err := r.sqlDB.QueryContext(ctx, `
		SELECT id, user_id, text, sentiment_score, emotion, response, timestamp
		FROM mood_entries `+where+` ORDER BY timestamp DESC, id DESC LIMIT ? OFFSET ?`,
		append(args, limit, offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("list mood entries: %w", err)
	}
	defer rows.Close()

	entries := []*wellness.MoodEntry{}
	for rows.Next() {
		entry, err := scanMood(rows.Scan)
		if err != nil {
			return nil, 0, err
		}
		entries = append(entries, entry)
	}
	return entries, total, rows.Err()
}

func (r *moodRepo) RecentScores(ctx context.Context, userID string, offset, limit int) ([]float64, error) {
	rows, err := r.sqlDB.QueryContext(ctx, `
		SELECT sentiment_score FROM mood_entries
		WHERE user_id = ? ORDER BY timestamp DESC, id DESC LIMIT ? OFFSET ?`,
		userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sentiment scores: %w", err)
	}
	defer rows.Close()

	scores := []float64{}
	for rows.Next() {
		var score float64
		if err := rows.Scan(&score); err != nil {
			return nil, fmt.Errorf("scan sentiment score: %w", err)
		}
		scores = append(scores, score)
	}
	return scores, rows.Err()
}

func (r *moodRepo) Stats(ctx context.Context, userID string) (*wellness.MoodStatsRow, error) {
	stats := &wellness.MoodStatsRow{EmotionBreakdown: map[wellness.Emotion]int{}}

	rows, err := r.sqlDB.QueryContext(ctx, `
		SELECT emotion, COUNT(*) FROM mood_entries
		WHERE user_id = ? GROUP BY emotion`, userID)
	if err != nil {
		return nil, fmt.Errorf("mood emotion breakdown: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var emotion string
		var count int
		if err := rows.Scan(&emotion, &count); err != nil {
			return nil, fmt.Errorf("scan emotion breakdown: %w", err)
		}
		stats.EmotionBreakdown[wellness.Emotion(emotion)] = count
		stats.Total += count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if stats.Total > 0 {
		if err := r.sqlDB.QueryRowContext(ctx, `
			SELECT AVG(sentiment_score) FROM mood_entries WHERE user_id = ?`,
			userID).Scan(&stats.AverageSentiment); err != nil {
			return nil, fmt.Errorf("average sentiment: %w", err)
		}
	}
	return stats, nil
}

// ---- wellness.CheckInRepo ----

func (r *checkinRepo) Create(ctx context.Context, checkin *wellness.DailyCheckIn) error {
	res, err := r.sqlDB.ExecContext(ctx, `
		INSERT INTO daily_checkins (user_id, emotion, note, date, timestamp)
		VALUES (?, ?, ?, ?, ?)`,
		checkin.UserID, string(checkin.Emotion), checkin.Note, checkin.Date, toMillis(checkin.Timestamp))
	if err != nil {
		return fmt.Errorf("insert check-in: %w", err)
	}
	checkin.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("check-in id: %w", err)
	}
	return nil
}

func scanCheckIn(scan func(...any) error) (*wellness.DailyCheckIn, error) {
	var checkin wellness.DailyCheckIn
	var emotion string
	var ts int64
	err := scan(&checkin.ID, &checkin.UserID, &emotion, &checkin.Note, &checkin.Date, &ts)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan check-in: %w", err)
	}
	checkin.Emotion = wellness.Emotion(emotion)
	checkin.Timestamp = fromMillis(ts)
	return &checkin, nil
}

func (r *checkinRepo) GetByDate(ctx context.Context, userID, date string) (*wellness.DailyCheckIn, error) {
	row := r.sqlDB.QueryRowContext(ctx, `
		SELECT id, user_id, emotion, note, date, timestamp
		FROM daily_checkins WHERE user_id = ? AND date = ?`, userID, date)
	return scanCheckIn(row.Scan)
}

func (r *checkinRepo) ListByUser(ctx context.Context, userID string, offset, limit int) ([]*wellness.DailyCheckIn, int, error) {
	var total int
	if err := r.sqlDB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM daily_checkins WHERE user_id = ?`, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count check-ins: %w", err)
	}

	rows, err := r.sqlDB.QueryContext(ctx, `
		SELECT id, user_id, emotion, note, date, timestamp
		FROM daily_checkins WHERE user_id = ? ORDER BY date DESC LIMIT ? OFFSET ?`,
		userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list check-ins: %w", err)
	}
	defer rows.Close()

	checkins := []*wellness.DailyCheckIn{}
	for rows.Next() {
		checkin, err := scanCheckIn(rows.Scan)
		if err != nil {
			return nil, 0, err
		}
		checkins = append(checkins, checkin)
	}
	return checkins, total, rows.Err()
}

func (r *checkinRepo) ListRange(ctx context.Context, userID, start, end string) ([]*wellness.DailyCheckIn, error) {
	rows, err := r.sqlDB.QueryContext(ctx, `
		SELECT id, user_id, emotion, note, date, timestamp
		FROM daily_checkins WHERE user_id = ? AND date >= ? AND date <= ?
		ORDER BY date ASC`, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("list check-in range: %w", err)
	}
	defer rows.Close()

	checkins := []*wellness.DailyCheckIn{}
	for rows.Next() {
		checkin, err := scanCheckIn(rows.Scan)
		if err != nil {
			return nil, err
		}
		checkins = append(checkins, checkin)
	}
	return checkins, rows.Err()
}

// ---- wellness.GoalRepo ----

func (r *goalRepo) Create(ctx context.Context, goal *wellness.Goal) error {
	res, err := r.sqlDB.ExecContext(ctx, `
		INSERT INTO goals (user_id, title, description, goal_type, target_value,
			current_value, start_date, target_date, completed, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		goal.UserID, goal.Title, goal.Description, string(goal.GoalType), goal.TargetValue,
		goal.CurrentValue, goal.StartDate, goal.TargetDate, boolToInt(goal.Completed),
		toMillis(goal.CreatedAt))
	if err != nil {
		return fmt.Errorf("insert goal: %w", err)
	}
	goal.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("goal id: %w", err)
	}
	return nil
}

func scanGoal(scan func(...any) error) (*wellness.Goal, error) {
	var goal wellness.Goal
	var goalType string
	var completed int
	var created int64
	err := scan(&goal.ID, &goal.UserID, &goal.Title, &goal.Description, &goalType,
		&goal.TargetValue, &goal.CurrentValue, &goal.StartDate, &goal.TargetDate,
		&completed, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan goal: %w", err)
	}
	goal.GoalType = wellness.GoalType(goalType)
	goal.Completed = completed != 0
	goal.CreatedAt = fromMillis(created)
	return &goal, nil
}

const goalColumns = `id, user_id, title, description, goal_type, target_value,
	current_value, start_date, target_date, completed, created_at`

func (r *goalRepo) Get(ctx context.Context, userID string, id int64) (*wellness.Goal, error) {
	row := r.sqlDB.QueryRowContext(ctx,
		`SELECT `+goalColumns+` FROM goals WHERE id = ? AND user_id = ?`, id, userID)
	return scanGoal(row.Scan)
}

func (r *goalRepo) Update(ctx context.Context, goal *wellness.Goal) error {
	res, err := r.sqlDB.ExecContext(ctx, `
		UPDATE goals SET title = ?, description = ?, goal_type = ?, target_value = ?,
			current_value = ?, start_date = ?, target_date = ?, completed = ?
		WHERE id = ? AND user_id = ?`,
		goal.Title, goal.Description, string(goal.GoalType), goal.TargetValue,
		goal.CurrentValue, goal.StartDate, goal.TargetDate, boolToInt(goal.Completed),
		goal.ID, goal.UserID)
	if err != nil {
		return fmt.Errorf("update goal: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *goalRepo) Delete(ctx context.Context, userID string, id int64) error {
	res, err := r.sqlDB.ExecContext(ctx,
		`DELETE FROM goals WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("delete goal: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *goalRepo) ListByUser(ctx context.Context, userID string, status wellness.GoalStatus, today string, offset, limit int) ([]*wellness.Goal, int, error) {
	where := `WHERE user_id = ?`
	args := []any{userID}
	switch status {
	case wellness.GoalStatusActive:
		where += ` AND completed = 0 AND target_date >= ?`
		args = append(args, today)
	case wellness.GoalStatusCompleted:
		where += ` AND completed = 1`
	case wellness.GoalStatusOverdue:
		where += ` AND completed = 0 AND target_date < ?`
		args = append(args, today)
	}

	var total int
	if err := r.sqlDB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM goals `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count goals: %w", err)
	}

	rows, err := r.sqlDB.QueryContext(ctx,
		`SELECT `+goalColumns+` FROM goals `+where+` ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`,
		append(args, limit, offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("list goals: %w", err)
	}
	defer rows.Close()

	goals := []*wellness.Goal{}
	for rows.Next() {
		goal, err := scanGoal(rows.Scan)
		if err != nil {
			return nil, 0, err
		}
		goals = append(goals, goal)
	}
	return goals, total, rows.Err()
}

// ---- wellness.GratitudeRepo ----

func (r *gratitudeRepo) Create(ctx context.Context, entry *wellness.GratitudeEntry) error {
	res, err := r.sqlDB.ExecContext(ctx, `
		INSERT INTO gratitude_entries (user_id, text, timestamp) VALUES (?, ?, ?)`,
		entry.UserID, entry.Text, toMillis(entry.Timestamp))
	if err != nil {
		return fmt.Errorf("insert gratitude entry: %w", err)
	}
	entry.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("gratitude entry id: %w", err)
	}
	return nil
}

func scanGratitude(scan func(...any) error) (*wellness.GratitudeEntry, error) {
	var entry wellness.GratitudeEntry
	var ts int64
	err := scan(&entry.ID, &entry.UserID, &entry.Text, &ts)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan gratitude entry: %w", err)
	}
	entry.Timestamp = fromMillis(ts)
	return &entry, nil
}

func (r *gratitudeRepo) Get(ctx context.Context, userID string, id int64) (*wellness.GratitudeEntry, error) {
	row := r.sqlDB.QueryRowContext(ctx, `
		SELECT id, user_id, text, timestamp
		FROM gratitude_entries WHERE id = ? AND user_id = ?`, id, userID)
	return scanGratitude(row.Scan)
}

func (r *gratitudeRepo) Delete(ctx context.Context, userID string, id int64) error {
	res, err := r.sqlDB.ExecContext(ctx,
		`DELETE FROM gratitude_entries WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("delete gratitude entry: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *gratitudeRepo) ListByUser(ctx context.Context, userID string, offset, limit int) ([]*wellness.GratitudeEntry, int, error) {
	var total int
	if err := r.sqlDB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM gratitude_entries WHERE user_id = ?`, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count gratitude entries: %w", err)
	}

	rows, err := r.sqlDB.QueryContext(ctx, `
		SELECT id, user_id, text, timestamp
		FROM gratitude_entries WHERE user_id = ?
		ORDER BY timestamp DESC, id DESC LIMIT ? OFFSET ?`, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list gratitude entries: %w", err)
	}
	defer rows.Close()

	entries := []*wellness.GratitudeEntry{}
	for rows.Next() {
		entry, err := scanGratitude(rows.Scan)
		if err != nil {
			return nil, 0, err
		}
		entries = append(entries, entry)
	}
	return entries, total, rows.Err()
}

func (r *gratitudeRepo) EntryDates(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.sqlDB.QueryContext(ctx, `
		SELECT DISTINCT date(timestamp / 1000, 'unixepoch')
		FROM gratitude_entries WHERE user_id = ? ORDER BY 1 DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list gratitude dates: %w", err)
	}
	defer rows.Close()

	dates := []string{}
	for rows.Next() {
		var date string
		if err := rows.Scan(&date); err != nil {
			return nil, fmt.Errorf("scan gratitude date: %w", err)
		}
		dates = append(dates, date)
	}
	return dates, rows.Err()
}

// ---- wellness.PreferencesRepo ----

func (r *preferencesRepo) Get(ctx context.Context, userID string) (*wellness.Preferences, error) {
	var prefs wellness.Preferences
	var reminder, notification int
	var theme string
	var created, updated int64
	err := r.sqlDB.QueryRowContext(ctx, `
		SELECT user_id, reminder_enabled, reminder_time, notification_enabled,
			preferred_theme, created_at, updated_at
		FROM user_preferences WHERE user_id = ?`, userID).
		Scan(&prefs.UserID, &reminder, &prefs.ReminderTime, &notification, &theme, &created, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan preferences: %w", err)
	}
	prefs.ReminderEnabled = reminder != 0
	prefs.NotificationEnabled = notification != 0
	prefs.PreferredTheme = wellness.Theme(theme)
	prefs.CreatedAt = fromMillis(created)
	prefs.UpdatedAt = fromMillis(updated)
	return &prefs, nil
}

func (r *preferencesRepo) Upsert(ctx context.Context, prefs *wellness.Preferences) error {
	_, err := r.sqlDB.ExecContext(ctx, `
		INSERT INTO user_preferences (user_id, reminder_enabled, reminder_time,
			notification_enabled, preferred_theme, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			reminder_enabled = excluded.reminder_enabled,
			reminder_time = excluded.reminder_time,
			notification_enabled = excluded.notification_enabled,
			preferred_theme = excluded.preferred_theme,
			updated_at = excluded.updated_at`,
		prefs.UserID, boolToInt(prefs.ReminderEnabled), prefs.ReminderTime,
		boolToInt(prefs.NotificationEnabled), string(prefs.PreferredTheme),
		toMillis(prefs.CreatedAt), toMillis(prefs.UpdatedAt))
	if err != nil {
		return fmt.Errorf("upsert preferences: %w", err)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
