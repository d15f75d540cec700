// Package match resolves noisy free-text evidence against the closed team,
// fixture, and venue registries.
//
// TeamMatcher ranks candidate teams for a text fragment using
// substring-tolerant fuzzy scoring over a variant search index. Restricting
// the search space to an episode's expected teams is the primary defense
// against cross-team ambiguity: a shared abbreviation resolves correctly
// once the universe is narrowed to the teams actually scheduled.
//
// FixtureMatcher is the authoritative source of truth for which matches are
// expected in an episode and whether two teams actually play each other.
// Fixture lookups are symmetric under team-pair order because optical
// evidence carries no home/away information.
//
// VenueMatcher resolves transcript fragments to stadiums as an independent
// corroborating signal. It matches official stadium names only; alias
// matching is deliberately excluded because casual phrases incidentally
// matched nicknames.
//
// Absence of a match is a normal empty result throughout this package, never
// an error. Errors are reserved for configuration problems such as an
// unknown episode identifier.
package match
