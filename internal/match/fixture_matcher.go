package match

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"rundown/internal/logging"
	"rundown/internal/registry"
)

// ErrUnknownEpisode marks a lookup against an episode missing from the
// manifest. Callers must treat it as fatal configuration, not a per-scene
// retryable condition.
var ErrUnknownEpisode = errors.New("unknown episode")

// FixtureMatcher answers which fixtures are expected in an episode and
// whether a detected team pair corresponds to a scheduled match.
type FixtureMatcher struct {
	registry        *registry.Registry
	logger          *slog.Logger
	validationBoost float64
}

// NewFixtureMatcher wraps the loaded registry. validationBoost is the
// multiplier granted to clean detections by ValidateTeams.
func NewFixtureMatcher(reg *registry.Registry, validationBoost float64, logger *slog.Logger) *FixtureMatcher {
	return &FixtureMatcher{
		registry:        reg,
		logger:          logging.NewComponentLogger(logger, "fixture-matcher"),
		validationBoost: validationBoost,
	}
}

// ExpectedFixtures returns the fixtures scheduled for the episode in
// manifest order.
func (m *FixtureMatcher) ExpectedFixtures(episodeID string) ([]registry.Fixture, error) {
	episode, ok := m.registry.EpisodeByID(episodeID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEpisode, episodeID)
	}
	fixtures := make([]registry.Fixture, 0, len(episode.ExpectedMatches))
	for _, matchID := range episode.ExpectedMatches {
		fixture, known := m.registry.FixtureByID(matchID)
		if !known {
			// Load-time validation rejects this; reaching it means the
			// registry was mutated after load.
			return nil, fmt.Errorf("episode %q references unknown fixture %q", episodeID, matchID)
		}
		fixtures = append(fixtures, fixture)
	}
	return fixtures, nil
}

// ExpectedTeams returns the sorted union of home and away teams across the
// episode's expected fixtures, used to narrow the team matcher's search space.
func (m *FixtureMatcher) ExpectedTeams(episodeID string) ([]string, error) {
	fixtures, err := m.ExpectedFixtures(episodeID)
	if err != nil {
		return nil, err
	}
	set := make(map[string]struct{}, len(fixtures)*2)
	for _, fixture := range fixtures {
		set[fixture.HomeTeam] = struct{}{}
		set[fixture.AwayTeam] = struct{}{}
	}
	teams := make([]string, 0, len(set))
	for team := range set {
		teams = append(teams, team)
	}
	sort.Strings(teams)
	return teams, nil
}

// IdentifyFixture returns the episode fixture matching the unordered pair
// {teamA, teamB}, or nil when the pair is not scheduled. The lookup is
// symmetric: optical evidence does not indicate which side was detected first.
func (m *FixtureMatcher) IdentifyFixture(teamA, teamB, episodeID string) (*registry.Fixture, error) {
	fixtures, err := m.ExpectedFixtures(episodeID)
	if err != nil {
		return nil, err
	}
	for i := range fixtures {
		fixture := fixtures[i]
		if (fixture.HomeTeam == teamA && fixture.AwayTeam == teamB) ||
			(fixture.HomeTeam == teamB && fixture.AwayTeam == teamA) {
			return &fixture, nil
		}
	}
	return nil, nil
}

// ScheduledFixtureFor returns the single fixture the team plays in this
// episode, or nil when the team is not scheduled. Uniqueness is guaranteed
// by registry load validation.
func (m *FixtureMatcher) ScheduledFixtureFor(team, episodeID string) (*registry.Fixture, error) {
	fixtures, err := m.ExpectedFixtures(episodeID)
	if err != nil {
		return nil, err
	}
	for i := range fixtures {
		if fixtures[i].HasTeam(team) {
			fixture := fixtures[i]
			return &fixture, nil
		}
	}
	return nil, nil
}

// ValidateTeams checks detected team names against the episode's expected
// universe. Unexpected teams are a soft signal: logged, never failed. The
// confidence boost is granted only for a clean detection, where at least one
// team validates and none are unexpected.
func (m *FixtureMatcher) ValidateTeams(detected []string, episodeID string) (TeamValidation, error) {
	expected, err := m.ExpectedTeams(episodeID)
	if err != nil {
		return TeamValidation{}, err
	}
	expectedSet := make(map[string]struct{}, len(expected))
	for _, team := range expected {
		expectedSet[team] = struct{}{}
	}

	result := TeamValidation{ConfidenceBoost: 1.0}
	for _, team := range detected {
		if _, ok := expectedSet[team]; ok {
			result.Validated = append(result.Validated, team)
		} else {
			result.Unexpected = append(result.Unexpected, team)
		}
	}

	if len(result.Unexpected) > 0 {
		m.logger.Warn("detected teams outside expected universe",
			logging.String("episode", episodeID),
			logging.Any("unexpected", result.Unexpected))
	}
	if len(result.Validated) > 0 && len(result.Unexpected) == 0 {
		result.ConfidenceBoost = m.validationBoost
	}
	return result, nil
}
