package server

import (
	"errors"
	"net/http"

	apperrors "github.com/mindwell-app/mindwell/internal/errors"
	"github.com/mindwell-app/mindwell/users"
)

// RegisterHandler creates a new account.
func (s *Server) RegisterHandler() http.HandlerFunc {
	type request struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if !s.decodeJSON(w, r, &req) {
			return
		}

		if problems := users.ValidateRegistration(req.Username, req.Email, req.Password); problems != nil {
			s.writeError(w, http.StatusBadRequest, "Validation failed", problems)
			return
		}

		user, err := s.users.Register(req.Username, req.Email, req.Password)
		if err != nil {
			if errors.Is(err, apperrors.ErrUserExists) {
				s.writeError(w, http.StatusBadRequest, "Validation failed",
					map[string]string{"username": "A user with that username already exists"})
				return
			}
			s.log.Error().Err(err).Msg("register user")
			s.writeError(w, http.StatusInternalServerError, "An unexpected error occurred", nil)
			return
		}

		s.writeJSON(w, http.StatusCreated, user)
	}
}

// TokenHandler exchanges credentials for an access/refresh token pair.
func (s *Server) TokenHandler() http.HandlerFunc {
	type request struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	type response struct {
		Access  string `json:"access"`
		Refresh string `json:"refresh"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if !s.decodeJSON(w, r, &req) {
			return
		}

		user, err := s.users.Authenticate(req.Username, req.Password)
		if err != nil {
			if errors.Is(err, apperrors.ErrInvalidCredentials) {
				s.writeError(w, http.StatusUnauthorized, "No active account found with the given credentials", nil)
				return
			}
			s.log.Error().Err(err).Msg("authenticate user")
			s.writeError(w, http.StatusInternalServerError, "An unexpected error occurred", nil)
			return
		}

		access, err := s.tokens.Create(user.ID, user.Username)
		if err != nil {
			s.log.Error().Err(err).Msg("mint access token")
			s.writeError(w, http.StatusInternalServerError, "An unexpected error occurred", nil)
			return
		}
		refreshToken, err := s.refresh.Create(r.Context(), user.ID)
		if err != nil {
			s.log.Error().Err(err).Msg("mint refresh token")
			s.writeError(w, http.StatusInternalServerError, "An unexpected error occurred", nil)
			return
		}

		s.writeJSON(w, http.StatusOK, response{Access: access, Refresh: refreshToken})
	}
}

// TokenRefreshHandler rotates a refresh token into a fresh access token.
func (s *Server) TokenRefreshHandler() http.HandlerFunc {
	type request struct {
		Refresh string `json:"refresh"`
	}
	type response struct {
		Access  string `json:"access"`
		Refresh string `json:"refresh,omitempty"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if !s.decodeJSON(w, r, &req) {
			return
		}
		if req.Refresh == "" {
			s.writeError(w, http.StatusBadRequest, "Validation failed",
				map[string]string{"refresh": "This field is required"})
			return
		}

		userID, next, err := s.refresh.Rotate(r.Context(), req.Refresh)
		if err != nil {
			s.writeError(w, http.StatusUnauthorized, "Token is invalid or expired", nil)
			return
		}

		user, err := s.users.Get(userID)
		if err != nil {
			s.writeError(w, http.StatusUnauthorized, "Token is invalid or expired", nil)
			return
		}

		access, err := s.tokens.Create(user.ID, user.Username)
		if err != nil {
			s.log.Error().Err(err).Msg("mint access token")
			s.writeError(w, http.StatusInternalServerError, "An unexpected error occurred", nil)
			return
		}

		s.writeJSON(w, http.StatusOK, response{Access: access, Refresh: next})
	}
}

// ProtectedHandler is a trivial endpoint for verifying authentication.
func (s *Server) ProtectedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.writeJSON(w, http.StatusOK, map[string]string{"status": "Request was permitted"})
	}
}
