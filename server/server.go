// Package server exposes the REST API consumed by the companion clients.
package server

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mindwell-app/mindwell/internal/config"
	"github.com/mindwell-app/mindwell/sentiment"
	"github.com/mindwell-app/mindwell/token"
	"github.com/mindwell-app/mindwell/token/refresh"
	"github.com/mindwell-app/mindwell/users"
	"github.com/mindwell-app/mindwell/wellness"
)

type Server struct {
	env    string // Environment (e.g., "DEV", "production")
	mux    *http.ServeMux
	routes []string
	config *config.Config
	log    zerolog.Logger

	users    *users.Service
	tokens   *token.Manager
	refresh  *refresh.Manager
	repos    wellness.Repos
	analyzer sentiment.Analyzer
}

func New(cfg *config.Config, userService *users.Service, tokenManager *token.Manager, refreshManager *refresh.Manager, repos wellness.Repos, analyzer sentiment.Analyzer, logger zerolog.Logger) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("[Server New] config is required")
	}

	s := &Server{
		env:      cfg.Env,
		mux:      http.NewServeMux(),
		config:   cfg,
		log:      logger,
		users:    userService,
		tokens:   tokenManager,
		refresh:  refreshManager,
		repos:    repos,
		analyzer: analyzer,
	}

	s.initRoutes()
	s.logRoutes()

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteHandler(pattern string, handler http.Handler) {
	s.routes = append(s.routes, pattern)
	s.mux.Handle(pattern, handler)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		parts := strings.SplitN(route, " ", 2)

		if len(parts) > 1 {
			logRoute(parts[0], parts[1])
		} else {
			logRoute("", parts[0])
		}
	}
}

func logRoute(method, path string) {
	var displayMethod string
	paddedMethod := fmt.Sprintf(" %-7s", method)
	if color, ok := methodColors[method]; ok {
		displayMethod = color + paddedMethod + ResetColor
	} else {
		displayMethod = Gray + paddedMethod + ResetColor
	}
	log.Printf("[%-19s] %s\n", displayMethod, path)
}
