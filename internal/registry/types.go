package registry

import "strings"

// Team is one entry in the closed team registry. Name is the canonical full
// name and the unique key; the optional short forms feed the search index.
type Team struct {
	Name         string   `json:"full_name"`
	Abbreviation string   `json:"abbrev,omitempty"`
	Codes        []string `json:"codes,omitempty"`
	Alternates   []string `json:"alternates,omitempty"`
}

// Variants returns every name form that should resolve to this team,
// canonical name first. Empty entries are dropped.
func (t Team) Variants() []string {
	variants := make([]string, 0, 2+len(t.Codes)+len(t.Alternates))
	variants = append(variants, t.Name)
	if strings.TrimSpace(t.Abbreviation) != "" {
		variants = append(variants, t.Abbreviation)
	}
	for _, code := range t.Codes {
		if strings.TrimSpace(code) != "" {
			variants = append(variants, code)
		}
	}
	for _, alt := range t.Alternates {
		if strings.TrimSpace(alt) != "" {
			variants = append(variants, alt)
		}
	}
	return variants
}

// Fixture is one scheduled match. MatchID is unique across the registry.
type Fixture struct {
	MatchID  string `json:"match_id"`
	HomeTeam string `json:"home_team"`
	AwayTeam string `json:"away_team"`
	Score    string `json:"score,omitempty"`
}

// HasTeam reports whether name is the home or away side of the fixture.
func (f Fixture) HasTeam(name string) bool {
	return f.HomeTeam == name || f.AwayTeam == name
}

// Opponent returns the other side of the fixture, or "" if name does not play in it.
func (f Fixture) Opponent(name string) string {
	switch name {
	case f.HomeTeam:
		return f.AwayTeam
	case f.AwayTeam:
		return f.HomeTeam
	default:
		return ""
	}
}

// Episode lists the fixtures expected to appear in one broadcast episode.
type Episode struct {
	ID              string   `json:"episode_id"`
	ExpectedMatches []string `json:"expected_matches"`
}

// Venue maps a team to its home stadium. Aliases and additional references
// are retained from the source data but deliberately not matched against:
// alias matching produced false positives on casual transcript phrases.
type Venue struct {
	Team                 string   `json:"team"`
	Stadium              string   `json:"stadium"`
	Aliases              []string `json:"aliases,omitempty"`
	AdditionalReferences []string `json:"additional_references,omitempty"`
}
