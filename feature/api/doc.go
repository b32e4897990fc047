// Package api exposes the journal over a read-only HTTP interface.
//
// Routes:
//
//	GET /entries        list entries (optional ?tag= and ?limit=)
//	GET /entries/:id    fetch one entry by identity (case-insensitive)
//
// The API never mutates the journal; editing stays a local, file-based
// operation so the single-writer assumption of the store holds.
package api
