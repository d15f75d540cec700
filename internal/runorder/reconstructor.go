package runorder

import (
	"log/slog"
	"sort"

	"rundown/internal/detect"
	"rundown/internal/evidence"
	"rundown/internal/logging"
)

// Options carries the reconstruction constants. The defaults in the config
// package are the tuned production values.
type Options struct {
	DedupWindowSeconds     float64
	DisagreementConfidence float64
	MatchConfidence        float64
}

// Reconstruct computes both ordering strategies over the complete detection
// set for an episode, cross-validates them, and assembles the final running
// order. It requires all scene processing to have finished: the strategies
// are whole-set computations, not incremental ones.
func Reconstruct(detections []detect.Detection, opts Options, logger *slog.Logger) (*Result, error) {
	logger = logging.NewComponentLogger(logger, "run-order")

	scoreboard := scoreboardOrder(detections)
	fullTime := fullTimeOrder(fullTimeEvents(detections, opts.DedupWindowSeconds))

	scoreboardPairs := pairs(scoreboard)
	fullTimePairs := pairs(fullTime)

	consensus := 1.0
	disagreements := comparePairSequences(scoreboardPairs, fullTimePairs)
	if len(disagreements) > 0 {
		consensus = opts.DisagreementConfidence
		logger.Warn("ordering strategies disagree",
			logging.Int("positions", len(disagreements)),
			logging.Float64("consensus", consensus))
	}

	// Scoreboard order is authoritative: data abundance outweighs anchor
	// reliability. Pairs only the full-time strategy saw are appended so a
	// match with no scoreboard coverage still makes the list.
	authoritative := make([]PairKey, 0, len(scoreboardPairs)+len(fullTimePairs))
	authoritative = append(authoritative, scoreboardPairs...)
	for _, pair := range fullTimePairs {
		if !containsPair(authoritative, pair) {
			logger.Info("match seen only by full-time strategy", logging.String("pair", string(pair)))
			authoritative = append(authoritative, pair)
		}
	}

	matches := make([]Boundary, 0, len(authoritative))
	for position, pair := range authoritative {
		boundary := buildBoundary(pair, detections)
		boundary.Position = position + 1
		boundary.Confidence = opts.MatchConfidence
		matches = append(matches, boundary)
	}

	result, err := NewResult(matches, scoreboardPairs, fullTimePairs, consensus, disagreements)
	if err != nil {
		return nil, err
	}

	logger.Info("running order reconstructed",
		logging.Int("matches", len(result.Matches)),
		logging.Float64("consensus", result.Consensus))
	return result, nil
}

// comparePairSequences reports every position at which the two strategies
// diverge. An empty key marks a strategy with no entry at that position.
func comparePairSequences(scoreboard, fullTime []PairKey) []Disagreement {
	length := len(scoreboard)
	if len(fullTime) > length {
		length = len(fullTime)
	}
	var disagreements []Disagreement
	for i := 0; i < length; i++ {
		var a, b PairKey
		if i < len(scoreboard) {
			a = scoreboard[i]
		}
		if i < len(fullTime) {
			b = fullTime[i]
		}
		if a != b {
			disagreements = append(disagreements, Disagreement{Position: i + 1, Scoreboard: a, FullTime: b})
		}
	}
	return disagreements
}

// buildBoundary aggregates every detection of the pair, from all evidence
// sources, into the match's segment timestamps.
func buildBoundary(pair PairKey, detections []detect.Detection) Boundary {
	boundary := Boundary{}
	sources := make(map[evidence.Region]struct{})
	var scoreboardStart, fullTimeStart float64
	var haveScoreboard, haveFullTime, first bool

	for _, detection := range detections {
		if NewPairKey(detection.Home.Team, detection.Away.Team) != pair {
			continue
		}
		if !first {
			boundary.HomeTeam = detection.Home.Team
			boundary.AwayTeam = detection.Away.Team
			boundary.FixtureID = detection.FixtureID
			boundary.IntroStart = detection.SceneStart
			boundary.PostMatchEnd = detection.SceneEnd
			first = true
		}
		if detection.SceneStart < boundary.IntroStart {
			boundary.IntroStart = detection.SceneStart
		}
		if detection.SceneEnd > boundary.PostMatchEnd {
			boundary.PostMatchEnd = detection.SceneEnd
		}
		sources[detection.Source] = struct{}{}
		switch detection.Source {
		case evidence.RegionScoreboard:
			if !haveScoreboard || detection.SceneStart < scoreboardStart {
				scoreboardStart = detection.SceneStart
				haveScoreboard = true
			}
		case evidence.RegionFullTimeScore:
			if !haveFullTime || detection.SceneStart > fullTimeStart {
				fullTimeStart = detection.SceneStart
				haveFullTime = true
			}
		}
	}

	boundary.HighlightsStart = boundary.IntroStart
	if haveScoreboard {
		boundary.HighlightsStart = scoreboardStart
	}
	boundary.HighlightsEnd = boundary.PostMatchEnd
	if haveFullTime {
		boundary.HighlightsEnd = fullTimeStart
	}

	boundary.Sources = make([]evidence.Region, 0, len(sources))
	for source := range sources {
		boundary.Sources = append(boundary.Sources, source)
	}
	sort.Slice(boundary.Sources, func(i, j int) bool { return boundary.Sources[i] < boundary.Sources[j] })
	return boundary
}

func containsPair(keys []PairKey, target PairKey) bool {
	for _, key := range keys {
		if key == target {
			return true
		}
	}
	return false
}
