// Package client is the transport layer between the SafePaws terminal client
// and its REST backend, plus the bootstrap of the local SQLite database.
//
// # Overview
//
//  1. Client is the full API contract the services depend on: auth and
//     profile, pins, cats, adoption listings and requests, activity logs and
//     notifications.
//  2. HTTPClient implements Client over JSON/HTTP. Authenticated calls read
//     the bearer token from a TokenSource right before the request; a
//     missing token fails with ErrNoToken without touching the network.
//     Every request carries an X-Request-ID header for log correlation.
//  3. InitDatabase and RunMigrations open the local SQLite file and apply
//     the embedded goose migrations.
//
// # Error Handling
//
// Connectivity failures wrap ErrUnavailable. Non-2xx responses are returned
// as *APIError whose message is the backend's "detail" text; 401, 403 and
// 404 additionally match ErrUnauthorized, ErrForbidden and ErrNotFound with
// errors.Is.
package client
