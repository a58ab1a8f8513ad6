package server

import (
	"errors"
	"net/http"
	"time"

	apperrors "github.com/mindwell-app/mindwell/internal/errors"
	"github.com/mindwell-app/mindwell/internal/utils"
	"github.com/mindwell-app/mindwell/wellness"
)

// goalView is the wire shape of a goal, including the derived fields.
type goalView struct {
	ID                 int64     `json:"id"`
	Title              string    `json:"title"`
	Description        string    `json:"description,omitempty"`
	GoalType           string    `json:"goal_type"`
	TargetValue        int       `json:"target_value"`
	CurrentValue       int       `json:"current_value"`
	StartDate          string    `json:"start_date"`
	TargetDate         string    `json:"target_date"`
	Completed          bool      `json:"completed"`
	CreatedAt          time.Time `json:"created_at"`
	ProgressPercentage float64   `json:"progress_percentage"`
	DaysRemaining      int       `json:"days_remaining"`
	IsOverdue          bool      `json:"is_overdue"`
}

func goalViewOf(goal *wellness.Goal, today time.Time) goalView {
	return goalView{
		ID:                 goal.ID,
		Title:              goal.Title,
		Description:        goal.Description,
		GoalType:           string(goal.GoalType),
		TargetValue:        goal.TargetValue,
		CurrentValue:       goal.CurrentValue,
		StartDate:          goal.StartDate,
		TargetDate:         goal.TargetDate,
		Completed:          goal.Completed,
		CreatedAt:          goal.CreatedAt,
		ProgressPercentage: goal.ProgressPercentage(),
		DaysRemaining:      goal.DaysRemaining(today),
		IsOverdue:          goal.IsOverdue(today),
	}
}

// GoalListHandler returns a page of goals filtered by status.
func (s *Server) GoalListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := parsePageParams(r)

		status := wellness.GoalStatus(r.URL.Query().Get("status"))
		if status == "" {
			status = wellness.GoalStatusAll
		}
		switch status {
		case wellness.GoalStatusAll, wellness.GoalStatusActive, wellness.GoalStatusCompleted, wellness.GoalStatusOverdue:
		default:
			s.writeError(w, http.StatusBadRequest, "Validation failed",
				map[string]string{"status": "\"" + string(status) + "\" is not a valid choice"})
			return
		}

		now := time.Now().UTC()
		goals, total, err := s.repos.Goals.ListByUser(r.Context(), userIDFrom(r.Context()), status, wellness.DateOf(now), params.Offset(), params.PageSize)
		if err != nil {
			s.log.Error().Err(err).Msg("list goals")
			s.writeError(w, http.StatusInternalServerError, "An unexpected error occurred", nil)
			return
		}

		results := make([]goalView, 0, len(goals))
		for _, goal := range goals {
			results = append(results, goalViewOf(goal, now))
		}
		s.writeJSON(w, http.StatusOK, paginate(r, params, total, results))
	}
}

type goalRequest struct {
	Title        string            `json:"title"`
	Description  string            `json:"description"`
	GoalType     wellness.GoalType `json:"goal_type"`
	TargetValue  int               `json:"target_value"`
	CurrentValue *int              `json:"current_value"`
	StartDate    string            `json:"start_date"`
	TargetDate   string            `json:"target_date"`
}

// GoalCreateHandler creates a new goal.
func (s *Server) GoalCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req goalRequest
		if !s.decodeJSON(w, r, &req) {
			return
		}
		if problems := wellness.ValidateGoal(req.Title, req.Description, req.GoalType, req.TargetValue, req.TargetDate); problems != nil {
			s.writeError(w, http.StatusBadRequest, "Validation failed", problems)
			return
		}

		now := time.Now().UTC()
		goal := &wellness.Goal{
			UserID:       userIDFrom(r.Context()),
			Title:        req.Title,
			Description:  req.Description,
			GoalType:     req.GoalType,
			TargetValue:  req.TargetValue,
			CurrentValue: utils.Value(req.CurrentValue),
			StartDate:    req.StartDate,
			TargetDate:   req.TargetDate,
			CreatedAt:    now,
		}
		if goal.GoalType == "" {
			goal.GoalType = wellness.GoalCustom
		}
		if goal.StartDate == "" {
			goal.StartDate = wellness.DateOf(now)
		}

		if err := s.repos.Goals.Create(r.Context(), goal); err != nil {
			s.log.Error().Err(err).Msg("store goal")
			s.writeError(w, http.StatusInternalServerError, "An unexpected error occurred", nil)
			return
		}
		s.writeJSON(w, http.StatusCreated, goalViewOf(goal, now))
	}
}

// GoalDetailHandler returns a single goal.
func (s *Server) GoalDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		goal, ok := s.loadGoal(w, r)
		if !ok {
			return
		}
		s.writeJSON(w, http.StatusOK, goalViewOf(goal, time.Now().UTC()))
	}
}

// GoalUpdateHandler applies a partial update, validating only the
// fields the request supplies.
func (s *Server) GoalUpdateHandler() http.HandlerFunc {
	type request struct {
		Title        *string            `json:"title"`
		Description  *string            `json:"description"`
		GoalType     *wellness.GoalType `json:"goal_type"`
		TargetValue  *int               `json:"target_value"`
		CurrentValue *int               `json:"current_value"`
		TargetDate   *string            `json:"target_date"`
		Completed    *bool              `json:"completed"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		goal, ok := s.loadGoal(w, r)
		if !ok {
			return
		}

		var req request
		if !s.decodeJSON(w, r, &req) {
			return
		}

		if req.Title != nil {
			goal.Title = *req.Title
		}
		if req.Description != nil {
			goal.Description = *req.Description
		}
		if req.GoalType != nil {
			goal.GoalType = *req.GoalType
		}
		if req.TargetValue != nil {
			goal.TargetValue = *req.TargetValue
		}
		if req.CurrentValue != nil {
			goal.CurrentValue = *req.CurrentValue
		}
		if req.TargetDate != nil {
			goal.TargetDate = *req.TargetDate
		}
		if req.Completed != nil {
			goal.Completed = *req.Completed
		}

		if problems := wellness.ValidateGoal(goal.Title, goal.Description, goal.GoalType, goal.TargetValue, goal.TargetDate); problems != nil {
			s.writeError(w, http.StatusBadRequest, "Validation failed", problems)
			return
		}

		if err := s.repos.Goals.Update(r.Context(), goal); err != nil {
			s.log.Error().Err(err).Msg("update goal")
			s.writeError(w, http.StatusInternalServerError, "An unexpected error occurred", nil)
			return
		}
		s.writeJSON(w, http.StatusOK, goalViewOf(goal, time.Now().UTC()))
	}
}

// GoalDeleteHandler removes a goal.
func (s *Server) GoalDeleteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := s.pathID(w, r)
		if !ok {
			return
		}
		if err := s.repos.Goals.Delete(r.Context(), userIDFrom(r.Context()), id); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				s.writeError(w, http.StatusNotFound, "Not found", nil)
				return
			}
			s.log.Error().Err(err).Msg("delete goal")
			s.writeError(w, http.StatusInternalServerError, "An unexpected error occurred", nil)
			return
		}
		s.writeJSON(w, http.StatusNoContent, nil)
	}
}

// GoalCompleteHandler marks a goal completed with its target reached.
func (s *Server) GoalCompleteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		goal, ok := s.loadGoal(w, r)
		if !ok {
			return
		}

		goal.Completed = true
		goal.CurrentValue = goal.TargetValue
		if err := s.repos.Goals.Update(r.Context(), goal); err != nil {
			s.log.Error().Err(err).Msg("complete goal")
			s.writeError(w, http.StatusInternalServerError, "An unexpected error occurred", nil)
			return
		}
		s.writeJSON(w, http.StatusOK, goalViewOf(goal, time.Now().UTC()))
	}
}

func (s *Server) loadGoal(w http.ResponseWriter, r *http.Request) (*wellness.Goal, bool) {
	id, ok := s.pathID(w, r)
	if !ok {
		return nil, false
	}
	goal, err := s.repos.Goals.Get(r.Context(), userIDFrom(r.Context()), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.writeError(w, http.StatusNotFound, "Not found", nil)
			return nil, false
		}
		s.log.Error().Err(err).Msg("get goal")
		s.writeError(w, http.StatusInternalServerError, "An unexpected error occurred", nil)
		return nil, false
	}
	return goal, true
}
