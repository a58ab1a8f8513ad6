package server

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	apperrors "github.com/mindwell-app/mindwell/internal/errors"
	"github.com/mindwell-app/mindwell/sentiment"
	"github.com/mindwell-app/mindwell/wellness"
)

// moodEntryView is the wire shape of a history entry.
type moodEntryView struct {
	ID             int64     `json:"id"`
	Text           string    `json:"text"`
	SentimentScore float64   `json:"sentiment_score"`
	Emotion        string    `json:"emotion"`
	EmotionColor   string    `json:"emotion_color"`
	Response       string    `json:"response,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
	TimeAgo        string    `json:"time_ago"`
}

func moodEntryViewOf(entry *wellness.MoodEntry, now time.Time) moodEntryView {
	return moodEntryView{
		ID:             entry.ID,
		Text:           entry.Text,
		SentimentScore: entry.SentimentScore,
		Emotion:        string(entry.Emotion),
		EmotionColor:   wellness.ColorFor(entry.Emotion),
		Response:       entry.Response,
		Timestamp:      entry.Timestamp,
		TimeAgo:        wellness.TimeAgo(entry.Timestamp, now),
	}
}

// AnalyzeHandler classifies a message, stores the resulting mood entry
// and returns the supportive response.
func (s *Server) AnalyzeHandler() http.HandlerFunc {
	type request struct {
		Text string `json:"text"`
	}
	type response struct {
		SentimentScore float64 `json:"sentiment_score"`
		Emotion        string  `json:"emotion"`
		EmotionColor   string  `json:"emotion_color"`
		Response       string  `json:"response"`
		Confidence     float64 `json:"confidence"`
		EntryID        int64   `json:"entry_id"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if !s.decodeJSON(w, r, &req) {
			return
		}
		if problems := wellness.ValidateAnalyzeText(req.Text); problems != nil {
			s.writeError(w, http.StatusBadRequest, "Validation failed", problems)
			return
		}

		result, err := s.analyzer.Analyze(r.Context(), req.Text)
		if err != nil {
			s.log.Error().Err(err).Msg("analyze text")
			s.writeError(w, http.StatusInternalServerError, "An unexpected error occurred", nil)
			return
		}

		entry := &wellness.MoodEntry{
			UserID:         userIDFrom(r.Context()),
			Text:           req.Text,
			SentimentScore: result.Score,
			Emotion:        result.Emotion,
			Response:       sentiment.SupportiveResponse(result.Emotion, result.Score),
			Timestamp:      time.Now().UTC(),
		}
		if err := s.repos.Moods.Create(r.Context(), entry); err != nil {
			s.log.Error().Err(err).Msg("store mood entry")
			s.writeError(w, http.StatusInternalServerError, "An unexpected error occurred", nil)
			return
		}

		s.writeJSON(w, http.StatusOK, response{
			SentimentScore: entry.SentimentScore,
			Emotion:        string(entry.Emotion),
			EmotionColor:   wellness.ColorFor(entry.Emotion),
			Response:       entry.Response,
			Confidence:     result.Confidence,
			EntryID:        entry.ID,
		})
	}
}

// HistoryListHandler returns a page of past mood entries, newest first.
func (s *Server) HistoryListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := parsePageParams(r)

		emotion := wellness.Emotion(r.URL.Query().Get("emotion"))
		if emotion != "" && !wellness.ValidEmotion(emotion) {
			s.writeError(w, http.StatusBadRequest, "Validation failed",
				map[string]string{"emotion": "\"" + string(emotion) + "\" is not a valid choice"})
			return
		}

		entries, total, err := s.repos.Moods.ListByUser(r.Context(), userIDFrom(r.Context()), emotion, params.Offset(), params.PageSize)
		if err != nil {
			s.log.Error().Err(err).Msg("list mood entries")
			s.writeError(w, http.StatusInternalServerError, "An unexpected error occurred", nil)
			return
		}

		now := time.Now().UTC()
		results := make([]moodEntryView, 0, len(entries))
		for _, entry := range entries {
			results = append(results, moodEntryViewOf(entry, now))
		}
		s.writeJSON(w, http.StatusOK, paginate(r, params, total, results))
	}
}

// HistoryDetailHandler returns a single mood entry.
func (s *Server) HistoryDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := s.pathID(w, r)
		if !ok {
			return
		}

		entry, err := s.repos.Moods.Get(r.Context(), userIDFrom(r.Context()), id)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				s.writeError(w, http.StatusNotFound, "Not found", nil)
				return
			}
			s.log.Error().Err(err).Msg("get mood entry")
			s.writeError(w, http.StatusInternalServerError, "An unexpected error occurred", nil)
			return
		}
		s.writeJSON(w, http.StatusOK, moodEntryViewOf(entry, time.Now().UTC()))
	}
}

// HistoryDeleteHandler removes a single mood entry.
func (s *Server) HistoryDeleteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := s.pathID(w, r)
		if !ok {
			return
		}

		if err := s.repos.Moods.Delete(r.Context(), userIDFrom(r.Context()), id); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				s.writeError(w, http.StatusNotFound, "Not found", nil)
				return
			}
			s.log.Error().Err(err).Msg("delete mood entry")
			s.writeError(w, http.StatusInternalServerError, "An unexpected error occurred", nil)
			return
		}
		s.writeJSON(w, http.StatusNoContent, nil)
	}
}

// StatsHandler aggregates the user's mood history.
func (s *Server) StatsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := userIDFrom(r.Context())

		row, err := s.repos.Moods.Stats(r.Context(), userID)
		if err != nil {
			s.log.Error().Err(err).Msg("mood stats")
			s.writeError(w, http.StatusInternalServerError, "An unexpected error occurred", nil)
			return
		}

		stats := wellness.MoodStats{
			TotalEntries:     row.Total,
			EmotionBreakdown: row.EmotionBreakdown,
			AverageSentiment: row.AverageSentiment,
			RecentTrend:      wellness.TrendNoData,
		}
		if row.Total > 0 {
			recent, err := s.repos.Moods.RecentScores(r.Context(), userID, 0, 10)
			if err != nil {
				s.log.Error().Err(err).Msg("recent sentiment scores")
				s.writeError(w, http.StatusInternalServerError, "An unexpected error occurred", nil)
				return
			}
			previous, err := s.repos.Moods.RecentScores(r.Context(), userID, 10, 10)
			if err != nil {
				s.log.Error().Err(err).Msg("previous sentiment scores")
				s.writeError(w, http.StatusInternalServerError, "An unexpected error occurred", nil)
				return
			}
			stats.RecentTrend = wellness.TrendFromScores(recent, previous)
		}
		s.writeJSON(w, http.StatusOK, stats)
	}
}

// pathID parses the {id} path segment, reporting 404 on garbage since
// no resource can exist under a non-numeric ID.
func (s *Server) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		s.writeError(w, http.StatusNotFound, "Not found", nil)
		return 0, false
	}
	return id, true
}
