package sentiment_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/mindwell-app/mindwell/sentiment"
	"github.com/mindwell-app/mindwell/wellness"
)

func TestRemoteAnalyzer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/classify", r.URL.Path)

		var req struct {
			Text string `json:"text"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotEmpty(t, req.Text)

		_ = json.NewEncoder(w).Encode(map[string]any{"label": "joy", "score": 0.92})
	}))
	defer srv.Close()

	analyzer := sentiment.NewRemoteAnalyzer(srv.URL, zerolog.Nop())
	result, err := analyzer.Analyze(context.Background(), "what a wonderful day")
	require.NoError(t, err)
	require.Equal(t, wellness.EmotionHappy, result.Emotion)
	require.InDelta(t, 0.92, result.Confidence, 0.001)
	require.Greater(t, result.Score, 0.0)
}

func TestRemoteAnalyzerDegradesToNeutral(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	analyzer := sentiment.NewRemoteAnalyzer(srv.URL, zerolog.Nop())
	result, err := analyzer.Analyze(context.Background(), "anything at all")
	require.NoError(t, err)
	require.Equal(t, wellness.EmotionNeutral, result.Emotion)
	require.Zero(t, result.Score)
	require.Equal(t, 0.5, result.Confidence)
}

func TestRemoteAnalyzerAppliesOverrides(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"label": "joy", "score": 0.9})
	}))
	defer srv.Close()

	analyzer := sentiment.NewRemoteAnalyzer(srv.URL, zerolog.Nop())
	result, err := analyzer.Analyze(context.Background(), "honestly I feel really depressed")
	require.NoError(t, err)
	require.Equal(t, wellness.EmotionSad, result.Emotion)
}
