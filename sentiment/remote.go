package sentiment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/mindwell-app/mindwell/wellness"
)

var _ Analyzer = (*RemoteAnalyzer)(nil)

// RemoteAnalyzer calls an external emotion-classification model service.
// The service contract: POST <baseURL>/classify with {"text": ...},
// returning {"label": ..., "score": ...}. Labels are mapped onto the
// five tracked emotions and run through the same context overrides as
// the keyword classifier. Any failure degrades to a neutral result so a
// model outage never breaks the chat flow.
type RemoteAnalyzer struct {
	baseURL string
	client  *http.Client
	log     zerolog.Logger
}

// NewRemoteAnalyzer creates an analyzer backed by the model service.
func NewRemoteAnalyzer(baseURL string, log zerolog.Logger) *RemoteAnalyzer {
	return &RemoteAnalyzer{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
		log:     log,
	}
}

type classifyRequest struct {
	Text string `json:"text"`
}

type classifyResponse struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Analyze classifies text via the remote model.
func (a *RemoteAnalyzer) Analyze(ctx context.Context, text string) (Result, error) {
	if len(text) > maxTextLength {
		text = text[:maxTextLength]
	}

	result, err := a.classify(ctx, text)
	if err != nil {
		a.log.Warn().Err(err).Msg("model service unavailable, returning neutral result")
		return Result{Emotion: wellness.EmotionNeutral, Score: 0.0, Confidence: 0.5}, nil
	}

	emotion := MapLabel(result.Label)
	emotion = ApplyContextOverride(text, emotion, result.Score)
	return Result{
		Emotion:    emotion,
		Score:      ScoreFor(emotion, result.Score),
		Confidence: result.Score,
	}, nil
}

func (a *RemoteAnalyzer) classify(ctx context.Context, text string) (*classifyResponse, error) {
	payload, err := json.Marshal(classifyRequest{Text: text})
	if err != nil {
		return nil, fmt.Errorf("marshal classify request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/classify", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build classify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call model service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("model service returned status %d", resp.StatusCode)
	}

	var out classifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode classify response: %w", err)
	}
	return &out, nil
}
