package server

import (
	"errors"
	"net/http"
	"time"

	apperrors "github.com/mindwell-app/mindwell/internal/errors"
	"github.com/mindwell-app/mindwell/wellness"
)

// gratitudeView is the wire shape of a gratitude journal entry.
type gratitudeView struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
	TimeAgo   string    `json:"time_ago"`
}

func gratitudeViewOf(entry *wellness.GratitudeEntry, now time.Time) gratitudeView {
	return gratitudeView{
		ID:        entry.ID,
		Text:      entry.Text,
		Timestamp: entry.Timestamp,
		TimeAgo:   wellness.TimeAgo(entry.Timestamp, now),
	}
}

// GratitudeListHandler returns a page of journal entries, newest first.
func (s *Server) GratitudeListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := parsePageParams(r)

		entries, total, err := s.repos.Gratitude.ListByUser(r.Context(), userIDFrom(r.Context()), params.Offset(), params.PageSize)
		if err != nil {
			s.log.Error().Err(err).Msg("list gratitude entries")
			s.writeError(w, http.StatusInternalServerError, "An unexpected error occurred", nil)
			return
		}

		now := time.Now().UTC()
		results := make([]gratitudeView, 0, len(entries))
		for _, entry := range entries {
			results = append(results, gratitudeViewOf(entry, now))
		}
		s.writeJSON(w, http.StatusOK, paginate(r, params, total, results))
	}
}

// GratitudeCreateHandler records a new journal entry.
func (s *Server) GratitudeCreateHandler() http.HandlerFunc {
	type request struct {
		Text string `json:"text"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if !s.decodeJSON(w, r, &req) {
			return
		}
		if problems := wellness.ValidateGratitudeText(req.Text); problems != nil {
			s.writeError(w, http.StatusBadRequest, "Validation failed", problems)
			return
		}

		now := time.Now().UTC()
		entry := &wellness.GratitudeEntry{
			UserID:    userIDFrom(r.Context()),
			Text:      req.Text,
			Timestamp: now,
		}
		if err := s.repos.Gratitude.Create(r.Context(), entry); err != nil {
			s.log.Error().Err(err).Msg("store gratitude entry")
			s.writeError(w, http.StatusInternalServerError, "An unexpected error occurred", nil)
			return
		}
		s.writeJSON(w, http.StatusCreated, gratitudeViewOf(entry, now))
	}
}

// GratitudeDetailHandler returns a single journal entry.
func (s *Server) GratitudeDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := s.pathID(w, r)
		if !ok {
			return
		}
		entry, err := s.repos.Gratitude.Get(r.Context(), userIDFrom(r.Context()), id)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				s.writeError(w, http.StatusNotFound, "Not found", nil)
				return
			}
			s.log.Error().Err(err).Msg("get gratitude entry")
			s.writeError(w, http.StatusInternalServerError, "An unexpected error occurred", nil)
			return
		}
		s.writeJSON(w, http.StatusOK, gratitudeViewOf(entry, time.Now().UTC()))
	}
}

// GratitudeDeleteHandler removes a journal entry.
func (s *Server) GratitudeDeleteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := s.pathID(w, r)
		if !ok {
			return
		}
		if err := s.repos.Gratitude.Delete(r.Context(), userIDFrom(r.Context()), id); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				s.writeError(w, http.StatusNotFound, "Not found", nil)
				return
			}
			s.log.Error().Err(err).Msg("delete gratitude entry")
			s.writeError(w, http.StatusInternalServerError, "An unexpected error occurred", nil)
			return
		}
		s.writeJSON(w, http.StatusNoContent, nil)
	}
}

// GratitudeStatsHandler returns the entry count and current streak.
func (s *Server) GratitudeStatsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := userIDFrom(r.Context())

		_, total, err := s.repos.Gratitude.ListByUser(r.Context(), userID, 0, 1)
		if err != nil {
			s.log.Error().Err(err).Msg("count gratitude entries")
			s.writeError(w, http.StatusInternalServerError, "An unexpected error occurred", nil)
			return
		}
		dates, err := s.repos.Gratitude.EntryDates(r.Context(), userID)
		if err != nil {
			s.log.Error().Err(err).Msg("list gratitude dates")
			s.writeError(w, http.StatusInternalServerError, "An unexpected error occurred", nil)
			return
		}

		s.writeJSON(w, http.StatusOK, wellness.GratitudeStats{
			TotalEntries:  total,
			CurrentStreak: wellness.CurrentStreak(dates, time.Now().UTC()),
		})
	}
}
