package wellness_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mindwell-app/mindwell/wellness"
)

func TestTrendFromScores(t *testing.T) {
	tests := []struct {
		name     string
		recent   []float64
		previous []float64
		want     string
	}{
		{"too few recent", []float64{0.5, 0.5}, []float64{0.1}, wellness.TrendInsufficientData},
		{"no previous batch", []float64{0.5, 0.5, 0.5, 0.5, 0.5}, nil, wellness.TrendNewUser},
		{"improving", []float64{0.6, 0.6, 0.6, 0.6, 0.6}, []float64{0.1, 0.1}, wellness.TrendImproving},
		{"declining", []float64{-0.5, -0.5, -0.5, -0.5, -0.5}, []float64{0.2, 0.2}, wellness.TrendDeclining},
		{"stable", []float64{0.5, 0.5, 0.5, 0.5, 0.5}, []float64{0.45, 0.5}, wellness.TrendStable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, wellness.TrendFromScores(tt.recent, tt.previous))
		})
	}
}

func TestCurrentStreak(t *testing.T) {
	today := time.Date(2026, 8, 24, 18, 0, 0, 0, time.UTC)

	require.Equal(t, 0, wellness.CurrentStreak(nil, today))

	// Entry yesterday but not today: streak broken.
	require.Equal(t, 0, wellness.CurrentStreak([]string{"2026-08-23"}, today))

	require.Equal(t, 1, wellness.CurrentStreak([]string{"2026-08-24"}, today))

	require.Equal(t, 3, wellness.CurrentStreak([]string{
		"2026-08-22", "2026-08-23", "2026-08-24",
	}, today))

	// Gap two days back limits the streak.
	require.Equal(t, 2, wellness.CurrentStreak([]string{
		"2026-08-20", "2026-08-23", "2026-08-24",
	}, today))
}
