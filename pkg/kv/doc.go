// Package kv provides a minimal durable string key-value capability used for
// client-side state: the session token, the cached user snapshot, and UI
// preferences.
//
// The package is storage-agnostic: anything satisfying the Store interface
// can be plugged in. Three implementations ship out of the box: a concurrent
// in-memory store for tests, a single-file JSON store, and a SQLite-backed
// store for durable workstation state.
//
// Stores treat values as opaque strings. They never validate shape and never
// surface corruption as an error — a key that cannot be read behaves as if
// it were absent.
package kv
