package wellness

import "time"

// Trend values reported by mood statistics.
const (
	TrendNoData           = "no_data"
	TrendInsufficientData = "insufficient_data"
	TrendNewUser          = "new_user"
	TrendImproving        = "improving"
	TrendDeclining        = "declining"
	TrendStable           = "stable"
)

// TrendFromScores compares the average of the most recent scores with
// the average of the previous batch. Fewer than five recent entries is
// insufficient data; no previous batch means a new user. A shift of
// more than 0.1 in either direction counts as a trend.
func TrendFromScores(recent, previous []float64) string {
	if len(recent) < 5 {
		return TrendInsufficientData
	}
	if len(previous) == 0 {
		return TrendNewUser
	}

	diff := average(recent) - average(previous)
	switch {
	case diff > 0.1:
		return TrendImproving
	case diff < -0.1:
		return TrendDeclining
	default:
		return TrendStable
	}
}

func average(scores []float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	var sum float64
	for _, s := range scores {
		sum += s
	}
	return sum / float64(len(scores))
}

// MoodStats is the payload of the mood statistics endpoint.
type MoodStats struct {
	TotalEntries     int             `json:"total_entries"`
	EmotionBreakdown map[Emotion]int `json:"emotion_breakdown"`
	AverageSentiment float64         `json:"average_sentiment"`
	RecentTrend      string          `json:"recent_trend"`
}

// GratitudeStats is the payload of the gratitude statistics endpoint.
type GratitudeStats struct {
	TotalEntries  int `json:"total_entries"`
	CurrentStreak int `json:"current_streak"`
}

// CurrentStreak counts consecutive days with at least one entry,
// ending today. No entry today means the streak is zero.
func CurrentStreak(entryDates []string, today time.Time) int {
	dates := make(map[string]bool, len(entryDates))
	for _, d := range entryDates {
		dates[d] = true
	}

	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	if !dates[DateOf(day)] {
		return 0
	}

	streak := 1
	for {
		day = day.AddDate(0, 0, -1)
		if !dates[DateOf(day)] {
			break
		}
		streak++
	}
	return streak
}
