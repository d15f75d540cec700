// Package logging assembles structured slog loggers and attribute helpers
// used across the rundown pipeline.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes typed attribute constructors so matching and
// reconstruction code can log accept/reject decisions with a consistent
// shape. The package also provides a no-op logger for tests and wiring code
// that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits data with the same shape and routing guarantees.
package logging
