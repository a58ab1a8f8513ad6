package wellness

import (
	"fmt"
	"time"
)

// DailyCheckIn is a quick once-per-day mood log without full analysis.
// Date is a calendar date in YYYY-MM-DD form; at most one check-in
// exists per user per date.
type DailyCheckIn struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"-"`
	Emotion   Emotion   `json:"emotion"`
	Note      string    `json:"note,omitempty"`
	Date      string    `json:"date"`
	Timestamp time.Time `json:"timestamp"`
}

// ValidateCheckIn checks the fields of a new check-in.
func ValidateCheckIn(emotion Emotion, note string) map[string]string {
	problems := map[string]string{}
	if !ValidEmotion(emotion) {
		problems["emotion"] = fmt.Sprintf("%q is not a valid choice", string(emotion))
	}
	if len(note) > MaxCheckInNoteLength {
		problems["note"] = fmt.Sprintf("Ensure this field has no more than %d characters", MaxCheckInNoteLength)
	}
	if len(problems) == 0 {
		return nil
	}
	return problems
}

// DateOf formats a time as the calendar-date key used by check-ins.
func DateOf(t time.Time) string {
	return t.Format("2006-01-02")
}
