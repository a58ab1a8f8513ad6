package wellness

import "context"

// GoalStatus filters goal listings.
type GoalStatus string

const (
	GoalStatusAll       GoalStatus = "all"
	GoalStatusActive    GoalStatus = "active"
	GoalStatusCompleted GoalStatus = "completed"
	GoalStatusOverdue   GoalStatus = "overdue"
)

// MoodStatsRow is the aggregate a MoodRepo computes over a user's entries.
type MoodStatsRow struct {
	Total            int
	EmotionBreakdown map[Emotion]int
	AverageSentiment float64
}

// MoodRepo persists chat mood entries.
type MoodRepo interface {
	Create(ctx context.Context, entry *MoodEntry) error
	Get(ctx context.Context, userID string, id int64) (*MoodEntry, error)
	Delete(ctx context.Context, userID string, id int64) error
	// ListByUser returns a page of entries newest first, optionally
	// filtered by emotion (empty means all), plus the total count.
	ListByUser(ctx context.Context, userID string, emotion Emotion, offset, limit int) ([]*MoodEntry, int, error)
	// RecentScores returns sentiment scores newest first.
	RecentScores(ctx context.Context, userID string, offset, limit int) ([]float64, error)
	Stats(ctx context.Context, userID string) (*MoodStatsRow, error)
}

// CheckInRepo persists daily check-ins.
type CheckInRepo interface {
	Create(ctx context.Context, checkin *DailyCheckIn) error
	GetByDate(ctx context.Context, userID, date string) (*DailyCheckIn, error)
	ListByUser(ctx context.Context, userID string, offset, limit int) ([]*DailyCheckIn, int, error)
	// ListRange returns check-ins with start <= date <= end, oldest first.
	ListRange(ctx context.Context, userID, start, end string) ([]*DailyCheckIn, error)
}

// GoalRepo persists goals.
type GoalRepo interface {
	Create(ctx context.Context, goal *Goal) error
	Get(ctx context.Context, userID string, id int64) (*Goal, error)
	Update(ctx context.Context, goal *Goal) error
	Delete(ctx context.Context, userID string, id int64) error
	// ListByUser filters by status relative to today (YYYY-MM-DD) and
	// returns a page newest first plus the total count.
	ListByUser(ctx context.Context, userID string, status GoalStatus, today string, offset, limit int) ([]*Goal, int, error)
}

// GratitudeRepo persists gratitude journal entries.
type GratitudeRepo interface {
	Create(ctx context.Context, entry *GratitudeEntry) error
	Get(ctx context.Context, userID string, id int64) (*GratitudeEntry, error)
	Delete(ctx context.Context, userID string, id int64) error
	ListByUser(ctx context.Context, userID string, offset, limit int) ([]*GratitudeEntry, int, error)
	// EntryDates returns the distinct calendar dates (YYYY-MM-DD) that
	// have at least one entry.
	EntryDates(ctx context.Context, userID string) ([]string, error)
}

// PreferencesRepo persists user preferences.
type PreferencesRepo interface {
	Get(ctx context.Context, userID string) (*Preferences, error)
	Upsert(ctx context.Context, prefs *Preferences) error
}

// Repos bundles every wellness repository dependency.
type Repos struct {
	Moods       MoodRepo
	CheckIns    CheckInRepo
	Goals       GoalRepo
	Gratitude   GratitudeRepo
	Preferences PreferencesRepo
}
