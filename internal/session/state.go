package session

// Route is the render state derived from the session: exactly one of the
// three applies at any moment.
type Route int

const (
	// RouteLoading is shown while the session is being restored.
	RouteLoading Route = iota
	// RouteApp is the authenticated application shell.
	RouteApp
	// RouteEntry is the unauthenticated entry flow (login/register).
	RouteEntry
)

// String returns the route name for logs and tests.
func (r Route) String() string {
	switch r {
	case RouteLoading:
		return "loading"
	case RouteApp:
		return "app"
	case RouteEntry:
		return "entry"
	default:
		return "unknown"
	}
}

// Route derives the render state from a snapshot. Pure function, no side
// effects: token presence alone decides authentication, a missing user object
// does not demote the session.
func (s Snapshot) Route() Route {
	switch {
	case s.Loading:
		return RouteLoading
	case s.Token != "":
		return RouteApp
	default:
		return RouteEntry
	}
}
