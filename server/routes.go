package server

import "net/http"

func (s *Server) initRoutes() {
	public := s.APIMiddleware()
	private := s.APIMiddleware(s.RequireAuth())

	// CORS preflight for every API route
	s.RegisterRouteFunc("OPTIONS /api/", ChainMiddleware(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}, public...))

	// Accounts and tokens
	s.RegisterRouteFunc("POST "+RouteRegister, ChainMiddleware(s.RegisterHandler(), public...))
	s.RegisterRouteFunc("POST "+RouteToken, ChainMiddleware(s.TokenHandler(), public...))
	s.RegisterRouteFunc("POST "+RouteTokenRefresh, ChainMiddleware(s.TokenRefreshHandler(), public...))
	s.RegisterRouteFunc("GET "+RouteProtected, ChainMiddleware(s.ProtectedHandler(), private...))

	// Mood analysis and history
	s.RegisterRouteFunc("POST "+RouteAnalyze, ChainMiddleware(s.AnalyzeHandler(), private...))
	s.RegisterRouteFunc("GET "+RouteHistory, ChainMiddleware(s.HistoryListHandler(), private...))
	s.RegisterRouteFunc("GET "+RouteHistoryDetail, ChainMiddleware(s.HistoryDetailHandler(), private...))
	s.RegisterRouteFunc("DELETE "+RouteHistoryDetail, ChainMiddleware(s.HistoryDeleteHandler(), private...))
	s.RegisterRouteFunc("GET "+RouteStats, ChainMiddleware(s.StatsHandler(), private...))

	// Daily check-ins
	s.RegisterRouteFunc("POST "+RouteCheckIn, ChainMiddleware(s.CheckInCreateHandler(), private...))
	s.RegisterRouteFunc("GET "+RouteCheckIn, ChainMiddleware(s.CheckInListHandler(), private...))
	s.RegisterRouteFunc("GET "+RouteCheckInToday, ChainMiddleware(s.CheckInTodayHandler(), private...))
	s.RegisterRouteFunc("GET "+RouteCheckInCalendar, ChainMiddleware(s.CheckInCalendarHandler(), private...))

	// Goals
	s.RegisterRouteFunc("GET "+RouteGoals, ChainMiddleware(s.GoalListHandler(), private...))
	s.RegisterRouteFunc("POST "+RouteGoals, ChainMiddleware(s.GoalCreateHandler(), private...))
	s.RegisterRouteFunc("GET "+RouteGoalDetail, ChainMiddleware(s.GoalDetailHandler(), private...))
	s.RegisterRouteFunc("PATCH "+RouteGoalDetail, ChainMiddleware(s.GoalUpdateHandler(), private...))
	s.RegisterRouteFunc("DELETE "+RouteGoalDetail, ChainMiddleware(s.GoalDeleteHandler(), private...))
	s.RegisterRouteFunc("POST "+RouteGoalComplete, ChainMiddleware(s.GoalCompleteHandler(), private...))

	// Gratitude journal
	s.RegisterRouteFunc("GET "+RouteGratitude, ChainMiddleware(s.GratitudeListHandler(), private...))
	s.RegisterRouteFunc("POST "+RouteGratitude, ChainMiddleware(s.GratitudeCreateHandler(), private...))
	s.RegisterRouteFunc("GET "+RouteGratitudeStats, ChainMiddleware(s.GratitudeStatsHandler(), private...))
	s.RegisterRouteFunc("GET "+RouteGratitudeItem, ChainMiddleware(s.GratitudeDetailHandler(), private...))
	s.RegisterRouteFunc("DELETE "+RouteGratitudeItem, ChainMiddleware(s.GratitudeDeleteHandler(), private...))

	// Tips and preferences
	s.RegisterRouteFunc("GET "+RouteWellnessTips, ChainMiddleware(s.WellnessTipsHandler(), private...))
	s.RegisterRouteFunc("GET "+RoutePreferences, ChainMiddleware(s.PreferencesGetHandler(), private...))
	s.RegisterRouteFunc("PATCH "+RoutePreferences, ChainMiddleware(s.PreferencesUpdateHandler(), private...))
}
