// Package registry loads the closed team, fixture, episode, and venue
// registries that define the universe of valid matching targets for a run.
//
// All registry data is loaded once from JSON files, validated for internal
// consistency (unique keys, known fixture references, one fixture per team
// per episode), and treated as immutable afterwards. A malformed or missing
// registry file is a fatal configuration error: no scene processing may
// start against a partially loaded universe.
package registry
