package sentiment

import (
	"context"
	"strings"

	"github.com/mindwell-app/mindwell/wellness"
)

var sadKeywords = []string{
	"down", "depressed", "depression", "sad", "sadness", "unhappy",
	"miserable", "hopeless", "lonely", "loneliness", "empty",
	"crying", "tears", "hurt", "pain", "suffering", "grief",
	"disappointed", "disappointment", "upset", "feeling down",
}

var angryKeywords = []string{
	"angry", "anger", "mad", "furious", "rage", "annoyed",
	"frustrated", "irritated", "hate", "hatred", "resent",
	"outraged", "livid", "fuming",
}

var anxiousKeywords = []string{
	"anxious", "anxiety", "worried", "worry", "nervous", "stress",
	"stressed", "panic", "panicking", "afraid", "fear", "scared",
	"overwhelmed", "overwhelming", "tense", "uneasy",
}

var happyKeywords = []string{
	"happy", "happiness", "joy", "joyful", "excited", "excitement",
	"great", "wonderful", "amazing", "fantastic", "love", "loving",
	"grateful", "thankful", "blessed", "cheerful", "glad", "pleased",
}

func countMatches(text string, keywords []string) int {
	matches := 0
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			matches++
		}
	}
	return matches
}

// ApplyContextOverride corrects a model classification using explicit
// keywords in the text. Explicit sadness beats a mislabelled "happy";
// anger and anxiety override anything except an already-negative read;
// below 0.6 confidence a keyword majority wins outright.
func ApplyContextOverride(text string, detected wellness.Emotion, confidence float64) wellness.Emotion {
	lower := strings.ToLower(text)

	sadMatches := countMatches(lower, sadKeywords)
	angryMatches := countMatches(lower, angryKeywords)
	anxiousMatches := countMatches(lower, anxiousKeywords)
	happyMatches := countMatches(lower, happyKeywords)

	if sadMatches > 0 && detected == wellness.EmotionHappy {
		return wellness.EmotionSad
	}
	if angryMatches > 0 && detected != wellness.EmotionAngry && detected != wellness.EmotionSad {
		return wellness.EmotionAngry
	}
	if anxiousMatches > 0 && detected != wellness.EmotionAnxious && detected != wellness.EmotionSad {
		return wellness.EmotionAnxious
	}

	if confidence < 0.6 {
		switch {
		case sadMatches > angryMatches && sadMatches > anxiousMatches && sadMatches > happyMatches:
			return wellness.EmotionSad
		case angryMatches > sadMatches && angryMatches > anxiousMatches:
			return wellness.EmotionAngry
		case anxiousMatches > sadMatches && anxiousMatches > angryMatches:
			return wellness.EmotionAnxious
		}
	}

	return detected
}

var _ Analyzer = (*KeywordAnalyzer)(nil)

// KeywordAnalyzer classifies text purely from keyword occurrences. It
// is the in-process fallback used when no model service is configured.
type KeywordAnalyzer struct{}

// NewKeywordAnalyzer returns a keyword-based analyzer.
func NewKeywordAnalyzer() *KeywordAnalyzer {
	return &KeywordAnalyzer{}
}

// Analyze classifies text. The emotion with the most keyword matches
// wins; confidence grows with the match count. No matches at all yields
// a neutral result at 0.5 confidence.
func (a *KeywordAnalyzer) Analyze(_ context.Context, text string) (Result, error) {
	if len(text) > maxTextLength {
		text = text[:maxTextLength]
	}
	lower := strings.ToLower(text)

	counts := map[wellness.Emotion]int{
		wellness.EmotionSad:     countMatches(lower, sadKeywords),
		wellness.EmotionAngry:   countMatches(lower, angryKeywords),
		wellness.EmotionAnxious: countMatches(lower, anxiousKeywords),
		wellness.EmotionHappy:   countMatches(lower, happyKeywords),
	}

	best := wellness.EmotionNeutral
	bestCount := 0
	// Fixed evaluation order keeps ties deterministic.
	for _, emotion := range []wellness.Emotion{wellness.EmotionSad, wellness.EmotionAngry, wellness.EmotionAnxious, wellness.EmotionHappy} {
		if counts[emotion] > bestCount {
			best = emotion
			bestCount = counts[emotion]
		}
	}

	confidence := 0.5
	if bestCount > 0 {
		confidence = 0.6 + 0.1*float64(bestCount)
		if confidence > 0.95 {
			confidence = 0.95
		}
	}

	best = ApplyContextOverride(text, best, confidence)
	return Result{
		Emotion:    best,
		Score:      ScoreFor(best, confidence),
		Confidence: confidence,
	}, nil
}
