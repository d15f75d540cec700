package match

import (
	"log/slog"
	"sort"

	"rundown/internal/config"
	"rundown/internal/logging"
	"rundown/internal/registry"
	"rundown/internal/textutil"
)

// stadiumNameWeight is the per-source weight for an official stadium name
// match. Kept explicit so additional, lower-trust venue sources slot in
// with their own weights.
const stadiumNameWeight = 1.0

// VenueMatcher resolves transcript fragments to stadiums. Only official
// stadium names are matched; aliases in the registry are carried as data but
// excluded from matching.
type VenueMatcher struct {
	venues []registry.Venue
	logger *slog.Logger
	cfg    config.Matching
}

// NewVenueMatcher wraps the loaded venue registry.
func NewVenueMatcher(venues []registry.Venue, cfg config.Matching, logger *slog.Logger) *VenueMatcher {
	return &VenueMatcher{
		venues: venues,
		logger: logging.NewComponentLogger(logger, "venue-matcher"),
		cfg:    cfg,
	}
}

// Match resolves a transcript fragment to ranked venue candidates. Leading
// prepositions and articles are stripped before comparison, and the
// acceptance threshold relaxes for very short inputs where fuzzy matching
// is inherently harder.
func (m *VenueMatcher) Match(text string) []VenueMatch {
	stripped := textutil.StripLeadingArticles(text)
	normalized := textutil.NormalizeName(stripped)
	if normalized == "" {
		return nil
	}

	threshold := m.cfg.VenueThreshold
	if len([]rune(normalized)) <= m.cfg.VenueShortTextLength {
		threshold = m.cfg.VenueShortTextThreshold
	}

	var matches []VenueMatch
	for _, venue := range m.venues {
		stadium := textutil.NormalizeName(venue.Stadium)
		if stadium == "" {
			continue
		}
		score := stadiumNameWeight * textutil.PartialRatio(stadium, normalized)
		if score < threshold {
			continue
		}
		matches = append(matches, VenueMatch{
			Team:        venue.Team,
			Stadium:     venue.Stadium,
			Confidence:  score,
			MatchedText: stripped,
		})
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Confidence != matches[j].Confidence {
			return matches[i].Confidence > matches[j].Confidence
		}
		return matches[i].Team < matches[j].Team
	})
	if len(matches) > 0 {
		m.logger.Debug("venue resolved",
			logging.String("text", stripped),
			logging.String("stadium", matches[0].Stadium),
			logging.String("team", matches[0].Team),
			logging.Float64("confidence", matches[0].Confidence))
	}
	return matches
}
