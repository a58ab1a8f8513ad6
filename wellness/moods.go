package wellness

import (
	"fmt"
	"time"
)

// MoodEntry is one chat interaction: the user's message, the detected
// emotion, and the generated supportive response.
type MoodEntry struct {
	ID             int64     `json:"id"`
	UserID         string    `json:"-"`
	Text           string    `json:"text"`
	SentimentScore float64   `json:"sentiment_score"`
	Emotion        Emotion   `json:"emotion"`
	Response       string    `json:"response,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
}

// ValidateAnalyzeText checks the free-text message sent for analysis.
func ValidateAnalyzeText(text string) map[string]string {
	if len(text) < MinAnalyzeTextLength {
		return map[string]string{"text": fmt.Sprintf("Ensure this field has at least %d characters", MinAnalyzeTextLength)}
	}
	if len(text) > MaxAnalyzeTextLength {
		return map[string]string{"text": fmt.Sprintf("Ensure this field has no more than %d characters", MaxAnalyzeTextLength)}
	}
	return nil
}
