package runorder

import (
	"fmt"

	"rundown/internal/evidence"
)

// PairKey is an order-independent identity for a team pair: both
// orientations of the same fixture produce the same key.
type PairKey string

// NewPairKey builds the alphabetically normalized key for two team names.
func NewPairKey(teamA, teamB string) PairKey {
	if teamB < teamA {
		teamA, teamB = teamB, teamA
	}
	return PairKey(teamA + " | " + teamB)
}

// Boundary is one match in the final running order, with the timestamps
// that bracket its segment of the episode.
type Boundary struct {
	HomeTeam  string `json:"home_team"`
	AwayTeam  string `json:"away_team"`
	FixtureID string `json:"fixture_id,omitempty"`
	// Position is 1-based and contiguous across the result.
	Position        int     `json:"position"`
	IntroStart      float64 `json:"intro_start"`
	HighlightsStart float64 `json:"highlights_start"`
	HighlightsEnd   float64 `json:"highlights_end"`
	PostMatchEnd    float64 `json:"post_match_end"`
	// Sources lists the evidence regions that contributed detections.
	Sources    []evidence.Region `json:"sources"`
	Confidence float64           `json:"confidence"`
}

// Pair returns the boundary's order-independent team pair identity.
func (b Boundary) Pair() PairKey {
	return NewPairKey(b.HomeTeam, b.AwayTeam)
}

// Disagreement records one position where the two strategies produced
// different team pairs. An empty pair means that strategy had no entry at
// the position.
type Disagreement struct {
	Position   int     `json:"position"`
	Scoreboard PairKey `json:"scoreboard"`
	FullTime   PairKey `json:"full_time"`
}

// Result is the final output artifact of a run: the ordered match list plus
// the per-strategy orders and consensus metadata needed for diagnostics.
type Result struct {
	Matches         []Boundary     `json:"matches"`
	ScoreboardOrder []PairKey      `json:"scoreboard_order"`
	FullTimeOrder   []PairKey      `json:"full_time_order"`
	Consensus       float64        `json:"consensus_confidence"`
	Disagreements   []Disagreement `json:"disagreements,omitempty"`
}

// NewResult validates the position invariant at construction: matches must
// occupy positions exactly 1..N with no gaps and no repeats.
func NewResult(matches []Boundary, scoreboardOrder, fullTimeOrder []PairKey, consensus float64, disagreements []Disagreement) (*Result, error) {
	seen := make(map[int]struct{}, len(matches))
	for _, boundary := range matches {
		if boundary.Position < 1 || boundary.Position > len(matches) {
			return nil, fmt.Errorf("running order: position %d outside 1..%d", boundary.Position, len(matches))
		}
		if _, dup := seen[boundary.Position]; dup {
			return nil, fmt.Errorf("running order: duplicate position %d", boundary.Position)
		}
		seen[boundary.Position] = struct{}{}
	}
	return &Result{
		Matches:         matches,
		ScoreboardOrder: scoreboardOrder,
		FullTimeOrder:   fullTimeOrder,
		Consensus:       consensus,
		Disagreements:   disagreements,
	}, nil
}
