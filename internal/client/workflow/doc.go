// Package workflow decides which actions an actor may perform on pins,
// listings and adoption requests.
//
// Every function is pure: it looks only at its arguments, performs no I/O and
// keeps no state. Callers evaluate the gate before rendering a control and
// again before submitting a mutation. The backend enforces the same rules;
// these checks exist so the client never offers an action that would be
// rejected.
package workflow
