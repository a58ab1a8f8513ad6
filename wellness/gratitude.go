package wellness

import (
	"fmt"
	"time"
)

// GratitudeEntry records one thing the user is grateful for.
type GratitudeEntry struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"-"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// ValidateGratitudeText checks a new journal entry.
func ValidateGratitudeText(text string) map[string]string {
	if len(text) < MinGratitudeTextLength {
		return map[string]string{"text": fmt.Sprintf("Ensure this field has at least %d characters", MinGratitudeTextLength)}
	}
	if len(text) > MaxGratitudeTextLength {
		return map[string]string{"text": fmt.Sprintf("Ensure this field has no more than %d characters", MaxGratitudeTextLength)}
	}
	return nil
}
