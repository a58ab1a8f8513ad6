package server

// Route path constants
// All application routes are defined here to ensure consistency and prevent typos
const (
	// Auth Routes
	RouteRegister     = "/api/register/"
	RouteToken        = "/api/token/"
	RouteTokenRefresh = "/api/token/refresh/"
	RouteProtected    = "/api/protected-view/"

	// Mood Routes
	RouteAnalyze       = "/api/analyze/"
	RouteHistory       = "/api/history/"
	RouteHistoryDetail = "/api/history/{id}/"
	RouteStats         = "/api/stats/"

	// Check-in Routes
	RouteCheckIn         = "/api/checkin/"
	RouteCheckInToday    = "/api/checkin/today/"
	RouteCheckInCalendar = "/api/checkin/calendar/"

	// Goal Routes
	RouteGoals        = "/api/goals/"
	RouteGoalDetail   = "/api/goals/{id}/"
	RouteGoalComplete = "/api/goals/{id}/complete/"

	// Gratitude Routes
	RouteGratitude      = "/api/gratitude/"
	RouteGratitudeItem  = "/api/gratitude/{id}/"
	RouteGratitudeStats = "/api/gratitude/stats/"

	// Misc Routes
	RouteWellnessTips = "/api/wellness-tips/"
	RoutePreferences  = "/api/preferences/"
)
