package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	apperrors "github.com/mindwell-app/mindwell/internal/errors"
	"github.com/mindwell-app/mindwell/wellness"
)

// WellnessTipsHandler returns the curated tips for an emotion. Unknown
// or missing emotions fall back to the neutral set.
func (s *Server) WellnessTipsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		emotion := wellness.Emotion(r.URL.Query().Get("emotion"))
		s.writeJSON(w, http.StatusOK, map[string]any{
			"emotion": string(emotion),
			"tips":    wellness.TipsFor(emotion),
		})
	}
}

// PreferencesGetHandler returns the user's settings, creating the
// defaults on first access.
func (s *Server) PreferencesGetHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		prefs, err := s.getOrCreatePreferences(r.Context(), userIDFrom(r.Context()))
		if err != nil {
			s.log.Error().Err(err).Msg("load preferences")
			s.writeError(w, http.StatusInternalServerError, "An unexpected error occurred", nil)
			return
		}
		s.writeJSON(w, http.StatusOK, prefs)
	}
}

// PreferencesUpdateHandler applies a partial settings update.
func (s *Server) PreferencesUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch wellness.PreferencesPatch
		if !s.decodeJSON(w, r, &patch) {
			return
		}
		if problems := patch.Validate(); problems != nil {
			s.writeError(w, http.StatusBadRequest, "Validation failed", problems)
			return
		}

		prefs, err := s.getOrCreatePreferences(r.Context(), userIDFrom(r.Context()))
		if err != nil {
			s.log.Error().Err(err).Msg("load preferences")
			s.writeError(w, http.StatusInternalServerError, "An unexpected error occurred", nil)
			return
		}

		patch.Apply(prefs, time.Now().UTC())
		if err := s.repos.Preferences.Upsert(r.Context(), prefs); err != nil {
			s.log.Error().Err(err).Msg("store preferences")
			s.writeError(w, http.StatusInternalServerError, "An unexpected error occurred", nil)
			return
		}
		s.writeJSON(w, http.StatusOK, prefs)
	}
}

func (s *Server) getOrCreatePreferences(ctx context.Context, userID string) (*wellness.Preferences, error) {
	prefs, err := s.repos.Preferences.Get(ctx, userID)
	if err == nil {
		return prefs, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	prefs = wellness.DefaultPreferences(userID, time.Now().UTC())
	if err := s.repos.Preferences.Upsert(ctx, prefs); err != nil {
		return nil, err
	}
	return prefs, nil
}
