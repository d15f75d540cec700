// Package pipeline orchestrates a full episode run: it loads the registry
// and evidence artifacts, fans scene processing out over a worker pool,
// reconstructs the running order, and persists the result. Input problems
// are fatal before any scene work starts; per-scene failures are absorbed
// by the detector and never abort the run.
package pipeline
