// Package services contains application services for the SafePaws client.
// Services sit between the REPL and the REST client: they validate forms,
// apply the workflow gate, keep the selection store in step with the
// backend and decide which failures are shown and which are only logged.
//
// List fetches degrade to an empty result and a logged error. Mutations
// return their error to the caller.
package services
