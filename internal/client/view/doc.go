// Package view maps the active route and the selection store to the panel
// shown in the secondary pane, and clears selections that belong to a route
// once the user leaves it.
package view
