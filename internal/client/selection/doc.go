// Package selection holds the client's focus state: which pin, listing or
// adoption request the secondary panel currently shows.
//
// A Store is created once per session and passed explicitly to the pages
// and the view composer. All methods are safe for concurrent use; pollers
// reconcile pins from their own goroutines while the REPL mutates the
// selection.
//
// Invariant: a selected pin and a pending new-pin coordinate are never set
// at the same time.
package selection
