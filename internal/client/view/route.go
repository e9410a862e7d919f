package view

import "strings"

// Route is a top-level page of the client.
type Route int

const (
	RouteHome Route = iota
	RouteMap
	RouteAdoption
	RouteNotifications
	RouteSettings
	RouteLogin
	RouteSignup
)

var routeNames = map[Route]string{
	RouteHome:          "home",
	RouteMap:           "map",
	RouteAdoption:      "adoption",
	RouteNotifications: "notifications",
	RouteSettings:      "settings",
	RouteLogin:         "login",
	RouteSignup:        "signup",
}

// Routes lists every route in menu order.
var Routes = []Route{RouteHome, RouteMap, RouteAdoption, RouteNotifications, RouteSettings, RouteLogin, RouteSignup}

func (r Route) String() string {
	if n, ok := routeNames[r]; ok {
		return n
	}
	return "home"
}

// ParseRoute accepts route names with or without a leading slash. Anything
// unrecognised is home.
func ParseRoute(s string) Route {
	s = strings.ToLower(strings.Trim(strings.TrimSpace(s), "/"))
	for r, n := range routeNames {
		if n == s {
			return r
		}
	}
	return RouteHome
}

// Public reports whether the route is only for signed-out users.
func (r Route) Public() bool {
	return r == RouteLogin || r == RouteSignup
}

// Guard redirects according to token presence: without a token every
// non-public route goes to login, and with one the public routes go home.
func Guard(r Route, hasToken bool) Route {
	switch {
	case !hasToken && !r.Public():
		return RouteLogin
	case hasToken && r.Public():
		return RouteHome
	}
	return r
}
