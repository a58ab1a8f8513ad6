package server

import (
	"errors"
	"net/http"
	"time"

	apperrors "github.com/mindwell-app/mindwell/internal/errors"
	"github.com/mindwell-app/mindwell/wellness"
)

// checkInView is the wire shape of a daily check-in.
type checkInView struct {
	ID           int64     `json:"id"`
	Emotion      string    `json:"emotion"`
	EmotionColor string    `json:"emotion_color"`
	Note         string    `json:"note,omitempty"`
	Date         string    `json:"date"`
	Timestamp    time.Time `json:"timestamp"`
}

func checkInViewOf(checkin *wellness.DailyCheckIn) checkInView {
	return checkInView{
		ID:           checkin.ID,
		Emotion:      string(checkin.Emotion),
		EmotionColor: wellness.ColorFor(checkin.Emotion),
		Note:         checkin.Note,
		Date:         checkin.Date,
		Timestamp:    checkin.Timestamp,
	}
}

// CheckInCreateHandler records today's check-in. A repeat on the same
// day returns the existing row unchanged.
func (s *Server) CheckInCreateHandler() http.HandlerFunc {
	type request struct {
		Emotion wellness.Emotion `json:"emotion"`
		Note    string           `json:"note"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if !s.decodeJSON(w, r, &req) {
			return
		}
		if problems := wellness.ValidateCheckIn(req.Emotion, req.Note); problems != nil {
			s.writeError(w, http.StatusBadRequest, "Validation failed", problems)
			return
		}

		userID := userIDFrom(r.Context())
		now := time.Now().UTC()
		today := wellness.DateOf(now)

		if existing, err := s.repos.CheckIns.GetByDate(r.Context(), userID, today); err == nil {
			s.writeJSON(w, http.StatusOK, checkInViewOf(existing))
			return
		}

		checkin := &wellness.DailyCheckIn{
			UserID:    userID,
			Emotion:   req.Emotion,
			Note:      req.Note,
			Date:      today,
			Timestamp: now,
		}
		if err := s.repos.CheckIns.Create(r.Context(), checkin); err != nil {
			s.log.Error().Err(err).Msg("store check-in")
			s.writeError(w, http.StatusInternalServerError, "An unexpected error occurred", nil)
			return
		}
		s.writeJSON(w, http.StatusCreated, checkInViewOf(checkin))
	}
}

// CheckInListHandler returns a page of past check-ins, newest first.
func (s *Server) CheckInListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := parsePageParams(r)

		checkins, total, err := s.repos.CheckIns.ListByUser(r.Context(), userIDFrom(r.Context()), params.Offset(), params.PageSize)
		if err != nil {
			s.log.Error().Err(err).Msg("list check-ins")
			s.writeError(w, http.StatusInternalServerError, "An unexpected error occurred", nil)
			return
		}

		results := make([]checkInView, 0, len(checkins))
		for _, checkin := range checkins {
			results = append(results, checkInViewOf(checkin))
		}
		s.writeJSON(w, http.StatusOK, paginate(r, params, total, results))
	}
}

// CheckInTodayHandler returns today's check-in, 404 when absent.
func (s *Server) CheckInTodayHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		today := wellness.DateOf(time.Now().UTC())
		checkin, err := s.repos.CheckIns.GetByDate(r.Context(), userIDFrom(r.Context()), today)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				s.writeError(w, http.StatusNotFound, "No check-in for today", nil)
				return
			}
			s.log.Error().Err(err).Msg("get today's check-in")
			s.writeError(w, http.StatusInternalServerError, "An unexpected error occurred", nil)
			return
		}
		s.writeJSON(w, http.StatusOK, checkInViewOf(checkin))
	}
}

// CheckInCalendarHandler returns check-ins within a date range, oldest
// first. The range defaults to the last 30 days.
func (s *Server) CheckInCalendarHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		endDay := time.Now().UTC()
		if raw := r.URL.Query().Get("end_date"); raw != "" {
			day, err := time.Parse("2006-01-02", raw)
			if err != nil {
				s.writeError(w, http.StatusBadRequest, "Validation failed",
					map[string]string{"end_date": "Date has wrong format. Use YYYY-MM-DD"})
				return
			}
			endDay = day
		}
		end := wellness.DateOf(endDay)

		// The default window starts 30 days before the resolved end
		// date, not before today.
		start := wellness.DateOf(endDay.AddDate(0, 0, -30))
		if raw := r.URL.Query().Get("start_date"); raw != "" {
			if _, err := time.Parse("2006-01-02", raw); err != nil {
				s.writeError(w, http.StatusBadRequest, "Validation failed",
					map[string]string{"start_date": "Date has wrong format. Use YYYY-MM-DD"})
				return
			}
			start = raw
		}

		checkins, err := s.repos.CheckIns.ListRange(r.Context(), userIDFrom(r.Context()), start, end)
		if err != nil {
			s.log.Error().Err(err).Msg("list check-in calendar")
			s.writeError(w, http.StatusInternalServerError, "An unexpected error occurred", nil)
			return
		}

		results := make([]checkInView, 0, len(checkins))
		for _, checkin := range checkins {
			results = append(results, checkInViewOf(checkin))
		}
		s.writeJSON(w, http.StatusOK, map[string]any{
			"start_date": start,
			"end_date":   end,
			"checkins":   results,
		})
	}
}
