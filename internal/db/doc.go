// Package db holds the in-memory database linking near-Earth objects to
// their close approaches.
//
// New performs the one-time linking pass: it indexes objects by
// designation and by name, resolves each approach's foreign key and
// connects the two sides. After New returns the database is immutable,
// so any number of query iterations may run concurrently over it.
//
// Ordering discipline: approaches keep the exact order they were handed
// to New, independent of their timestamps. Query streams honor that
// order, which makes results deterministic and lets a caller truncate a
// stream lazily without changing which rows come first.
package db
