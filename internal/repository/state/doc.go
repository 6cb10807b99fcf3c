// Package state implements persistence for the seal Record.
//
// The FileRepository stores and loads the record as JSON on disk and exposes
// a Repository interface that the server service depends on. Persistence is
// what keeps the fire-once guarantee monotonic across server restarts.
package state
