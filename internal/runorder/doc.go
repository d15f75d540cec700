// Package runorder aggregates per-scene match detections into a
// chronological, cross-validated running order for an episode.
//
// Two independent strategies are computed over the complete detection set:
// first scoreboard appearance per team pair (data-abundant, treated as
// primary) and deduplicated full-time graphic appearance (reliable anchor
// points). Their ordered sequences are compared for exact equality; full
// agreement yields consensus confidence 1.0, any divergence a fixed reduced
// value, with the scoreboard order remaining authoritative and the
// disagreements retained for diagnostics.
//
// The final ordered list is validated at construction: positions must be
// exactly 1..N with no gaps or repeats. A violation indicates an upstream
// logic defect and fails loudly rather than silently renumbering.
package runorder
