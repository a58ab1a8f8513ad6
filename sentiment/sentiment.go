// Package sentiment classifies free-text messages into one of the five
// tracked emotions and generates supportive replies. The heavy model is
// an external collaborator; this package defines its contract and ships
// a keyword-based classifier usable without it.
package sentiment

import (
	"context"

	"github.com/mindwell-app/mindwell/wellness"
)

// Result is the outcome of classifying a piece of text.
type Result struct {
	Emotion    wellness.Emotion `json:"emotion"`
	Score      float64          `json:"sentiment_score"`
	Confidence float64          `json:"confidence"`
}

// Analyzer classifies text. Implementations must be safe for concurrent
// use.
type Analyzer interface {
	Analyze(ctx context.Context, text string) (Result, error)
}

// maxTextLength truncates overly long input before classification, the
// same limit the model service applies.
const maxTextLength = 512

// baseScores are the sentiment anchors per emotion; the final score is
// the anchor scaled by confidence and clamped to [-1, 1].
var baseScores = map[wellness.Emotion]float64{
	wellness.EmotionHappy:   0.8,
	wellness.EmotionSad:     -0.7,
	wellness.EmotionAngry:   -0.8,
	wellness.EmotionAnxious: -0.5,
	wellness.EmotionNeutral: 0.0,
}

// ScoreFor computes the sentiment score for an emotion at a confidence.
func ScoreFor(emotion wellness.Emotion, confidence float64) float64 {
	score := baseScores[emotion] * confidence
	if score > 1 {
		return 1
	}
	if score < -1 {
		return -1
	}
	return score
}

// MapLabel maps a raw model label onto the five tracked emotions.
func MapLabel(raw string) wellness.Emotion {
	if mapped, ok := labelMapping[raw]; ok {
		return mapped
	}
	return wellness.EmotionNeutral
}

var labelMapping = map[string]wellness.Emotion{
	// Positive emotions
	"joy":       wellness.EmotionHappy,
	"happiness": wellness.EmotionHappy,
	"happy":     wellness.EmotionHappy,
	"love":      wellness.EmotionHappy,
	"optimism":  wellness.EmotionHappy,

	// Sad emotions
	"sadness":        wellness.EmotionSad,
	"sad":            wellness.EmotionSad,
	"grief":          wellness.EmotionSad,
	"disappointment": wellness.EmotionSad,
	"loneliness":     wellness.EmotionSad,
	"down":           wellness.EmotionSad,
	"depressed":      wellness.EmotionSad,
	"depression":     wellness.EmotionSad,

	// Angry emotions
	"anger":     wellness.EmotionAngry,
	"angry":     wellness.EmotionAngry,
	"rage":      wellness.EmotionAngry,
	"fury":      wellness.EmotionAngry,
	"annoyance": wellness.EmotionAngry,

	// Anxious emotions
	"fear":        wellness.EmotionAnxious,
	"anxious":     wellness.EmotionAnxious,
	"anxiety":     wellness.EmotionAnxious,
	"worry":       wellness.EmotionAnxious,
	"nervous":     wellness.EmotionAnxious,
	"nervousness": wellness.EmotionAnxious,
	"stress":      wellness.EmotionAnxious,
	"stressed":    wellness.EmotionAnxious,

	// Neutral emotions
	"surprise":  wellness.EmotionNeutral,
	"neutral":   wellness.EmotionNeutral,
	"confusion": wellness.EmotionNeutral,
}
