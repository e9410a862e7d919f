// Package models defines the client-side copies of SafePaws backend entities.
//
// All durable entities are owned by the backend; values here are read-through
// copies decoded from JSON and, after a successful mutation, patched locally
// until the next fetch replaces them.
package models
