// Package wellness holds the domain model of the companion: mood
// entries, daily check-ins, goals, gratitude journal entries and user
// preferences.
package wellness

// Emotion is one of the five mood categories tracked by the app.
type Emotion string

const (
	EmotionHappy   Emotion = "happy"
	EmotionSad     Emotion = "sad"
	EmotionAngry   Emotion = "angry"
	EmotionAnxious Emotion = "anxious"
	EmotionNeutral Emotion = "neutral"
)

// Emotions lists every valid emotion.
var Emotions = []Emotion{EmotionHappy, EmotionSad, EmotionAngry, EmotionAnxious, EmotionNeutral}

// ValidEmotion reports whether e is one of the tracked emotions.
func ValidEmotion(e Emotion) bool {
	switch e {
	case EmotionHappy, EmotionSad, EmotionAngry, EmotionAnxious, EmotionNeutral:
		return true
	}
	return false
}

// EmotionColors maps each emotion to its UI display color.
var EmotionColors = map[Emotion]string{
	EmotionHappy:   "#10b981", // green
	EmotionSad:     "#3b82f6", // blue
	EmotionAngry:   "#ef4444", // red
	EmotionAnxious: "#f59e0b", // yellow/orange
	EmotionNeutral: "#6b7280", // gray
}

// ColorFor returns the display color for an emotion, falling back to
// the neutral gray for unknown values.
func ColorFor(e Emotion) string {
	if c, ok := EmotionColors[e]; ok {
		return c
	}
	return "#6b7280"
}

// GoalType categorizes a goal.
type GoalType string

const (
	GoalDailyCheckIn    GoalType = "daily_checkin"
	GoalMoodImprovement GoalType = "mood_improvement"
	GoalGratitude       GoalType = "gratitude"
	GoalCustom          GoalType = "custom"
)

// ValidGoalType reports whether t is a known goal type.
func ValidGoalType(t GoalType) bool {
	switch t {
	case GoalDailyCheckIn, GoalMoodImprovement, GoalGratitude, GoalCustom:
		return true
	}
	return false
}

// Theme is the preferred UI theme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
	ThemeAuto  Theme = "auto"
)

// ValidTheme reports whether t is a known theme.
func ValidTheme(t Theme) bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeAuto:
		return true
	}
	return false
}

// Validation limits shared with the original API contract.
const (
	MinAnalyzeTextLength = 5
	MaxAnalyzeTextLength = 1000

	MinGratitudeTextLength = 5
	MaxGratitudeTextLength = 500

	MinGoalTitleLength       = 3
	MaxGoalTitleLength       = 200
	MinGoalDescriptionLength = 10
	MaxGoalDescriptionLength = 1000

	MaxCheckInNoteLength = 500
)

// Pagination defaults.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// DefaultReminderTime is the initial daily reminder time for new users.
const DefaultReminderTime = "09:00:00"
