package server

import (
	"encoding/json"
	"net/http"
)

// errorResponse is the uniform error envelope returned by every endpoint.
type errorResponse struct {
	Error   bool              `json:"error"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log.Error().Err(err).Msg("encode response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string, details map[string]string) {
	s.writeJSON(w, status, errorResponse{Error: true, Message: message, Details: details})
}

// decodeJSON parses the request body into dst, reporting a client error
// on malformed input.
func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid request body", nil)
		return false
	}
	return true
}
