// Package config loads, normalizes, and validates rundown configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config type centralizes every knob
// the pipeline and CLI need: registry and evidence locations, the matching
// thresholds, running-order reconstruction constants, worker counts, and log
// routing.
//
// The matching and reconstruction constants are empirically tuned values
// carried over from production episodes. They are exposed here as overridable
// settings rather than re-derived; treat the defaults as authoritative unless
// a specific episode demands otherwise.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
