// Package guards decides whether a navigation target is reachable in
// the current authentication state.
package guards

// Default redirect targets.
const (
	RouteLogin     = "/login"
	RouteDashboard = "/dashboard"
)

// Authenticator reports the current authentication state.
type Authenticator interface {
	IsAuthenticated() bool
}

// Decision is the outcome of a guard check. When Allow is false,
// RedirectTo names the route to send the user to instead.
type Decision struct {
	Allow      bool
	RedirectTo string
}

// PublicOnly guards routes for signed-out users (login, signup).
// Authenticated users are redirected to the dashboard.
func PublicOnly(auth Authenticator) Decision {
	if auth.IsAuthenticated() {
		return Decision{RedirectTo: RouteDashboard}
	}
	return Decision{Allow: true}
}

// PrivateOnly guards routes that need a signed-in user. Unauthenticated
// users are redirected to the login page.
func PrivateOnly(auth Authenticator) Decision {
	if !auth.IsAuthenticated() {
		return Decision{RedirectTo: RouteLogin}
	}
	return Decision{Allow: true}
}
