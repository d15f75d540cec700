package detect

import (
	"rundown/internal/logging"
	"rundown/internal/match"
	"rundown/internal/registry"
)

// selectFixturePair accepts the two top-ranked candidates when they form a
// scheduled fixture. When they do not, it searches every unordered pair in
// the candidate list and keeps the fixture-consistent pair with the highest
// combined confidence. Fuzzy matching on short substrings can rank a
// spurious third team above the true second one; restricting acceptance to
// fixture-consistent pairs is the correctness backstop for the pipeline.
func (p *Processor) selectFixturePair(sceneNumber int, candidates []match.TeamMatch) (match.TeamMatch, match.TeamMatch, *registry.Fixture) {
	if len(candidates) < 2 {
		return match.TeamMatch{}, match.TeamMatch{}, nil
	}

	if fixture := p.lookupFixture(candidates[0].Team, candidates[1].Team); fixture != nil {
		return candidates[0], candidates[1], fixture
	}

	var (
		bestA, bestB match.TeamMatch
		bestFixture  *registry.Fixture
		bestCombined float64
	)
	for i := 0; i < len(candidates); i++ {
		for j := i + 1; j < len(candidates); j++ {
			fixture := p.lookupFixture(candidates[i].Team, candidates[j].Team)
			if fixture == nil {
				continue
			}
			combined := candidates[i].Confidence + candidates[j].Confidence
			if combined > bestCombined {
				bestA, bestB = candidates[i], candidates[j]
				bestFixture = fixture
				bestCombined = combined
			}
		}
	}

	if bestFixture == nil {
		p.logger.Debug("no candidate pair forms a scheduled fixture",
			logging.Int("scene", sceneNumber),
			logging.Int("candidates", len(candidates)))
		return match.TeamMatch{}, match.TeamMatch{}, nil
	}

	p.logger.Info("fixture pair recovered from wider candidate list",
		logging.Int("scene", sceneNumber),
		logging.String("team_a", bestA.Team),
		logging.String("team_b", bestB.Team),
		logging.String("fixture", bestFixture.MatchID),
		logging.Float64("combined_confidence", bestCombined))
	return bestA, bestB, bestFixture
}

func (p *Processor) lookupFixture(teamA, teamB string) *registry.Fixture {
	fixture, err := p.fixtures.IdentifyFixture(teamA, teamB, p.episodeID)
	if err != nil {
		// Episode existence was checked at construction; an error here is a
		// registry defect, logged and treated as no fixture.
		p.logger.Warn("fixture lookup failed", logging.Error(err))
		return nil
	}
	return fixture
}
