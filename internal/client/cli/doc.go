// Package cli provides the interactive SafePaws terminal client.
//
// The REPL mirrors the web client's pages: home, map, adoption,
// notifications and settings, plus login and signup for signed-out users.
// Every page render prints the page body next to the secondary panel the
// view composer picks for the current selection.
//
// Pages that show live data own a poller: the map re-fetches pins and the
// notifications page re-fetches its overview. Entering a page starts its
// poller and leaving it stops it.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
