// Package store persists reconstruction runs to SQLite so a finished
// running order can be inspected later without reprocessing the episode
// evidence. Each run keeps the full result document alongside a flattened
// boundaries table for listing and querying.
package store
