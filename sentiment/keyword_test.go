package sentiment_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mindwell-app/mindwell/sentiment"
	"github.com/mindwell-app/mindwell/wellness"
)

func TestKeywordAnalyzer(t *testing.T) {
	analyzer := sentiment.NewKeywordAnalyzer()
	ctx := context.Background()

	tests := []struct {
		name string
		text string
		want wellness.Emotion
	}{
		{"sad", "I have been feeling down and lonely all week", wellness.EmotionSad},
		{"angry", "I am so frustrated and mad at everything", wellness.EmotionAngry},
		{"anxious", "I'm worried and stressed about the exam", wellness.EmotionAnxious},
		{"happy", "Today was wonderful, I feel so grateful and glad", wellness.EmotionHappy},
		{"neutral", "I went to the store and bought bread", wellness.EmotionNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := analyzer.Analyze(ctx, tt.text)
			require.NoError(t, err)
			require.Equal(t, tt.want, result.Emotion)
		})
	}
}

func TestScoreSigns(t *testing.T) {
	analyzer := sentiment.NewKeywordAnalyzer()
	ctx := context.Background()

	result, err := analyzer.Analyze(ctx, "I feel happy and blessed today")
	require.NoError(t, err)
	require.Greater(t, result.Score, 0.0)

	result, err = analyzer.Analyze(ctx, "I feel hopeless and miserable")
	require.NoError(t, err)
	require.Less(t, result.Score, 0.0)

	result, err = analyzer.Analyze(ctx, "the sky is blue")
	require.NoError(t, err)
	require.Zero(t, result.Score)
	require.Equal(t, 0.5, result.Confidence)
}

func TestScoreClamped(t *testing.T) {
	require.LessOrEqual(t, sentiment.ScoreFor(wellness.EmotionHappy, 2.0), 1.0)
	require.GreaterOrEqual(t, sentiment.ScoreFor(wellness.EmotionAngry, 2.0), -1.0)
}

func TestApplyContextOverride(t *testing.T) {
	// Explicit sad keywords beat a mislabelled happy.
	got := sentiment.ApplyContextOverride("I am feeling down", wellness.EmotionHappy, 0.9)
	require.Equal(t, wellness.EmotionSad, got)

	// Angry keywords do not override an already-sad read.
	got = sentiment.ApplyContextOverride("I am sad and frustrated", wellness.EmotionSad, 0.9)
	require.Equal(t, wellness.EmotionSad, got)

	// Anxious keywords override a neutral read.
	got = sentiment.ApplyContextOverride("I feel so nervous", wellness.EmotionNeutral, 0.9)
	require.Equal(t, wellness.EmotionAnxious, got)

	// High-confidence classification without keyword conflicts stands.
	got = sentiment.ApplyContextOverride("everything is fine", wellness.EmotionHappy, 0.9)
	require.Equal(t, wellness.EmotionHappy, got)
}

func TestMapLabel(t *testing.T) {
	require.Equal(t, wellness.EmotionHappy, sentiment.MapLabel("joy"))
	require.Equal(t, wellness.EmotionSad, sentiment.MapLabel("grief"))
	require.Equal(t, wellness.EmotionAngry, sentiment.MapLabel("rage"))
	require.Equal(t, wellness.EmotionAnxious, sentiment.MapLabel("fear"))
	require.Equal(t, wellness.EmotionNeutral, sentiment.MapLabel("surprise"))
	require.Equal(t, wellness.EmotionNeutral, sentiment.MapLabel("unknown-label"))
}

func TestSupportiveResponse(t *testing.T) {
	response := sentiment.SupportiveResponse(wellness.EmotionSad, -0.3)
	require.NotEmpty(t, response)
	require.False(t, strings.Contains(response, "professional or trusted person"))

	// Strongly negative sentiment appends the crisis note.
	response = sentiment.SupportiveResponse(wellness.EmotionAngry, -0.75)
	require.Contains(t, response, "You don't have to face this alone")
}
