// Package detect turns one scene's raw frame evidence into at most one
// validated two-team match detection.
//
// The processor runs two passes over a scene's frames: the first looks only
// for full-time result graphics, which are the most reliable boundary
// markers and take strict priority even when a weaker detection appears
// earlier in the frame list; the second accepts the first frame yielding any
// valid detection. Within a frame, candidate teams are resolved against the
// episode's expected universe, a missing opponent can be inferred from the
// fixture schedule, full-time graphics are structurally validated, and the
// accepted team pair must correspond to a scheduled fixture — with
// combinatorial recovery over the wider candidate list when the two
// top-ranked names do not form one.
//
// Every per-frame failure is local: caught, logged, and treated as "this
// frame yielded nothing". A scene without a detection is the expected
// steady-state outcome for most footage, never an error.
package detect
