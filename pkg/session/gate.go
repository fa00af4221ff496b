package session

// Well-known client routes.
const (
	RouteLogin     = "/login"
	RouteRegister  = "/register"
	RouteDashboard = "/dashboard"
)

// RouteMeta carries the auth flags a route declares.
type RouteMeta struct {
	RequiresAuth  bool
	RequiresGuest bool
}

// Decision is the gate's verdict on a navigation attempt.
type Decision struct {
	Allowed    bool
	RedirectTo string
}

// Gate decides whether navigation to a route is allowed for the current
// session: authenticated-only routes bounce guests to the login page, and
// guest-only routes bounce signed-in users to the dashboard.
func (m *Manager) Gate(meta RouteMeta) Decision {
	authenticated := m.IsAuthenticated()

	switch {
	case meta.RequiresAuth && !authenticated:
		return Decision{RedirectTo: RouteLogin}
	case meta.RequiresGuest && authenticated:
		return Decision{RedirectTo: RouteDashboard}
	default:
		return Decision{Allowed: true}
	}
}
