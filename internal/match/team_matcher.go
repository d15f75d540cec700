package match

import (
	"log/slog"
	"sort"

	"rundown/internal/config"
	"rundown/internal/logging"
	"rundown/internal/registry"
	"rundown/internal/textutil"
)

// TeamMatcher resolves free text to ranked canonical team candidates.
//
// The search index maps every normalized name variant (full name,
// abbreviation, short codes, alternate spellings) to its canonical teams.
// A variant may legitimately map to more than one team; the index never
// resolves such collisions itself, leaving disambiguation to the caller's
// candidate filtering.
type TeamMatcher struct {
	index     map[string][]string
	logger    *slog.Logger
	threshold float64
	boost     float64
}

// NewTeamMatcher builds the search index once from the immutable team registry.
func NewTeamMatcher(teams []registry.Team, cfg config.Matching, logger *slog.Logger) *TeamMatcher {
	m := &TeamMatcher{
		index:     make(map[string][]string),
		logger:    logging.NewComponentLogger(logger, "team-matcher"),
		threshold: cfg.Threshold,
		boost:     cfg.CandidateBoost,
	}
	for _, team := range teams {
		for _, variant := range team.Variants() {
			key := textutil.NormalizeName(variant)
			if key == "" {
				continue
			}
			owners := m.index[key]
			if len(owners) > 0 && !containsString(owners, team.Name) {
				m.logger.Warn("name variant shared by multiple teams",
					logging.String("variant", key),
					logging.String("existing_team", owners[0]),
					logging.String("new_team", team.Name))
			}
			if !containsString(owners, team.Name) {
				m.index[key] = append(owners, team.Name)
			}
		}
	}
	return m
}

// Match resolves text to ranked team candidates above threshold. A
// non-positive threshold selects the configured default. When candidates is
// non-empty the search space is restricted to those teams, and matches gain
// a small fixed confidence boost reflecting prior validation.
func (m *TeamMatcher) Match(text string, candidates []string, threshold float64) []TeamMatch {
	if threshold <= 0 {
		threshold = m.threshold
	}
	normalized := textutil.NormalizeName(text)
	if normalized == "" {
		return nil
	}

	restricted := len(candidates) > 0
	candidateSet := make(map[string]struct{}, len(candidates))
	for _, name := range candidates {
		candidateSet[name] = struct{}{}
	}

	best := make(map[string]TeamMatch)
	searched := 0
	for variant, owners := range m.index {
		for _, team := range owners {
			if restricted {
				if _, ok := candidateSet[team]; !ok {
					continue
				}
			}
			searched++
			score := textutil.PartialRatio(variant, normalized)
			if score < threshold {
				continue
			}
			if restricted {
				score += m.boost
				if score > 1 {
					score = 1
				}
			}
			current, seen := best[team]
			if !seen || score > current.Confidence {
				best[team] = TeamMatch{
					Team:        team,
					Confidence:  score,
					MatchedText: variant,
					Provenance:  ProvenanceOCR,
				}
			}
		}
	}

	if restricted && searched == 0 {
		m.logger.Warn("no index entries for supplied candidate teams",
			logging.Int("candidates", len(candidates)))
		return nil
	}

	ranked := make([]TeamMatch, 0, len(best))
	for _, match := range best {
		ranked = append(ranked, match)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Confidence != ranked[j].Confidence {
			return ranked[i].Confidence > ranked[j].Confidence
		}
		return ranked[i].Team < ranked[j].Team
	})
	return ranked
}

// MatchMultiple resolves text expected to contain several team names,
// truncated to the top maxTeams candidates. A non-positive maxTeams
// defaults to 2, the common scoreboard case.
func (m *TeamMatcher) MatchMultiple(text string, candidates []string, threshold float64, maxTeams int) []TeamMatch {
	if maxTeams <= 0 {
		maxTeams = 2
	}
	ranked := m.Match(text, candidates, threshold)
	if len(ranked) > maxTeams {
		ranked = ranked[:maxTeams]
	}
	return ranked
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
