package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRoute(t *testing.T) {
	tests := map[string]Route{
		"map":            RouteMap,
		"/map":           RouteMap,
		"/Notifications": RouteNotifications,
		" adoption/ ":    RouteAdoption,
		"settings":       RouteSettings,
		"login":          RouteLogin,
		"/signup":        RouteSignup,
		"/":              RouteHome,
		"":               RouteHome,
		"/nowhere":       RouteHome,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseRoute(in), in)
	}
}

func TestRoute_StringRoundTrips(t *testing.T) {
	for _, r := range Routes {
		assert.Equal(t, r, ParseRoute(r.String()))
		assert.Equal(t, r, ParseRoute("/"+r.String()))
	}
	assert.Equal(t, "home", Route(99).String())
}

func TestGuard(t *testing.T) {
	for _, r := range Routes {
		if r.Public() {
			assert.Equal(t, r, Guard(r, false), r.String())
			assert.Equal(t, RouteHome, Guard(r, true), r.String())
			continue
		}
		assert.Equal(t, RouteLogin, Guard(r, false), r.String())
		assert.Equal(t, r, Guard(r, true), r.String())
	}
}
