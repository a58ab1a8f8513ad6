package wellness_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mindwell-app/mindwell/wellness"
)

func TestTimeAgo(t *testing.T) {
	now := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{"just now", now.Add(-30 * time.Second), "Just now"},
		{"one minute", now.Add(-1 * time.Minute), "1 minute ago"},
		{"minutes", now.Add(-45 * time.Minute), "45 minutes ago"},
		{"one hour", now.Add(-1 * time.Hour), "1 hour ago"},
		{"hours", now.Add(-5 * time.Hour), "5 hours ago"},
		{"days", now.Add(-3 * 24 * time.Hour), "3 days ago"},
		{"weeks", now.Add(-2 * 7 * 24 * time.Hour), "2 weeks ago"},
		{"months", now.Add(-70 * 24 * time.Hour), "2 months ago"},
		{"years", now.Add(-400 * 24 * time.Hour), "1 year ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, wellness.TimeAgo(tt.at, now))
		})
	}
}

func TestTipsFor(t *testing.T) {
	for _, emotion := range wellness.Emotions {
		tips := wellness.TipsFor(emotion)
		require.NotEmpty(t, tips, "emotion %s", emotion)
		for _, tip := range tips {
			require.NotEmpty(t, tip.Title)
			require.NotEmpty(t, tip.Description)
			require.NotEmpty(t, tip.Category)
		}
	}

	// Unknown emotions fall back to the neutral set.
	require.Equal(t, wellness.TipsFor(wellness.EmotionNeutral), wellness.TipsFor(wellness.Emotion("bogus")))
}
