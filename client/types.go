package client

import "time"

// Page is the list envelope returned by every paginated endpoint.
type Page[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// User is the account payload returned on registration.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
}

// Analysis is the outcome of analyzing one message.
type Analysis struct {
	SentimentScore float64 `json:"sentiment_score"`
	Emotion        string  `json:"emotion"`
	EmotionColor   string  `json:"emotion_color"`
	Response       string  `json:"response"`
	Confidence     float64 `json:"confidence"`
	EntryID        int64   `json:"entry_id"`
}

// MoodEntry is one row of the mood history.
type MoodEntry struct {
	ID             int64     `json:"id"`
	Text           string    `json:"text"`
	SentimentScore float64   `json:"sentiment_score"`
	Emotion        string    `json:"emotion"`
	EmotionColor   string    `json:"emotion_color"`
	Response       string    `json:"response,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
	TimeAgo        string    `json:"time_ago"`
}

// MoodStats aggregates the mood history.
type MoodStats struct {
	TotalEntries     int            `json:"total_entries"`
	EmotionBreakdown map[string]int `json:"emotion_breakdown"`
	AverageSentiment float64        `json:"average_sentiment"`
	RecentTrend      string         `json:"recent_trend"`
}

// CheckIn is one daily check-in.
type CheckIn struct {
	ID           int64     `json:"id"`
	Emotion      string    `json:"emotion"`
	EmotionColor string    `json:"emotion_color"`
	Note         string    `json:"note,omitempty"`
	Date         string    `json:"date"`
	Timestamp    time.Time `json:"timestamp"`
}

// Calendar is a date-bounded slice of check-ins.
type Calendar struct {
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
	CheckIns  []CheckIn `json:"checkins"`
}

// Goal is one wellness goal with its derived progress fields.
type Goal struct {
	ID                 int64     `json:"id"`
	Title              string    `json:"title"`
	Description        string    `json:"description,omitempty"`
	GoalType           string    `json:"goal_type"`
	TargetValue        int       `json:"target_value"`
	CurrentValue       int       `json:"current_value"`
	StartDate          string    `json:"start_date"`
	TargetDate         string    `json:"target_date"`
	Completed          bool      `json:"completed"`
	CreatedAt          time.Time `json:"created_at"`
	ProgressPercentage float64   `json:"progress_percentage"`
	DaysRemaining      int       `json:"days_remaining"`
	IsOverdue          bool      `json:"is_overdue"`
}

// GoalInput is the payload for creating a goal.
type GoalInput struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	GoalType    string `json:"goal_type,omitempty"`
	TargetValue int    `json:"target_value"`
	StartDate   string `json:"start_date,omitempty"`
	TargetDate  string `json:"target_date"`
}

// GoalPatch is a partial goal update; nil fields are untouched.
type GoalPatch struct {
	Title        *string `json:"title,omitempty"`
	Description  *string `json:"description,omitempty"`
	GoalType     *string `json:"goal_type,omitempty"`
	TargetValue  *int    `json:"target_value,omitempty"`
	CurrentValue *int    `json:"current_value,omitempty"`
	TargetDate   *string `json:"target_date,omitempty"`
	Completed    *bool   `json:"completed,omitempty"`
}

// GratitudeEntry is one journal entry.
type GratitudeEntry struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
	TimeAgo   string    `json:"time_ago"`
}

// GratitudeStats summarizes the journal.
type GratitudeStats struct {
	TotalEntries  int `json:"total_entries"`
	CurrentStreak int `json:"current_streak"`
}

// Tip is one wellness suggestion.
type Tip struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// Tips is the wellness-tips payload for an emotion.
type Tips struct {
	Emotion string `json:"emotion"`
	Tips    []Tip  `json:"tips"`
}

// Preferences are the user's application settings.
type Preferences struct {
	ReminderEnabled     bool   `json:"reminder_enabled"`
	ReminderTime        string `json:"reminder_time"`
	NotificationEnabled bool   `json:"notification_enabled"`
	PreferredTheme      string `json:"preferred_theme"`
}

// PreferencesPatch is a partial settings update; nil fields are untouched.
type PreferencesPatch struct {
	ReminderEnabled     *bool   `json:"reminder_enabled,omitempty"`
	ReminderTime        *string `json:"reminder_time,omitempty"`
	NotificationEnabled *bool   `json:"notification_enabled,omitempty"`
	PreferredTheme      *string `json:"preferred_theme,omitempty"`
}
