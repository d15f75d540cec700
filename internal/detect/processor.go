package detect

import (
	"log/slog"
	"strings"

	"rundown/internal/config"
	"rundown/internal/evidence"
	"rundown/internal/logging"
	"rundown/internal/match"
)

// passTiers lists the regions tried per frame, most reliable first. The
// first pass restricts itself to the full-time tier; the second walks all
// tiers in order.
var passTiers = []evidence.Region{
	evidence.RegionFullTimeScore,
	evidence.RegionScoreboard,
	evidence.RegionFormation,
}

// Processor disambiguates one scene at a time against a fixed episode
// universe. It is stateless across scenes and safe for concurrent use once
// constructed.
type Processor struct {
	teams     *match.TeamMatcher
	fixtures  *match.FixtureMatcher
	extractor evidence.Extractor
	logger    *slog.Logger
	cfg       config.Matching

	episodeID     string
	expectedTeams []string
}

// NewProcessor binds the matchers and evidence source to one episode. An
// unknown episode fails here, before any scene work starts.
func NewProcessor(teams *match.TeamMatcher, fixtures *match.FixtureMatcher, extractor evidence.Extractor, episodeID string, cfg config.Matching, logger *slog.Logger) (*Processor, error) {
	expected, err := fixtures.ExpectedTeams(episodeID)
	if err != nil {
		return nil, err
	}
	return &Processor{
		teams:         teams,
		fixtures:      fixtures,
		extractor:     extractor,
		logger:        logging.NewComponentLogger(logger, "scene-processor"),
		cfg:           cfg,
		episodeID:     episodeID,
		expectedTeams: expected,
	}, nil
}

// ProcessScene examines all frames of one scene and returns at most one
// validated detection. A nil result means the scene carried no usable match
// evidence, which is the normal outcome for most scenes.
func (p *Processor) ProcessScene(scene evidence.Scene) *Detection {
	if len(scene.Frames) == 0 {
		p.logger.Debug("scene has no frames", logging.Int("scene", scene.Number))
		return nil
	}

	// Pass 1: full-time graphics take strict priority even when another
	// frame earlier in the list would yield a weaker detection.
	for _, frame := range scene.Frames {
		if detection := p.processFrame(scene, frame, true); detection != nil {
			return detection
		}
	}
	for _, frame := range scene.Frames {
		if detection := p.processFrame(scene, frame, false); detection != nil {
			return detection
		}
	}
	return nil
}

// processFrame runs the per-frame pipeline. When ftOnly is set, only the
// full-time tier is considered.
func (p *Processor) processFrame(scene evidence.Scene, frame string, ftOnly bool) *Detection {
	text, source, ok := p.extractText(frame, ftOnly)
	if !ok {
		return nil
	}

	candidates := p.teams.MatchMultiple(text, p.expectedTeams, 0, p.cfg.MaxCandidates)
	if len(candidates) == 0 {
		return nil
	}

	// Opponent inference recovers full-time graphics where the away side is
	// rendered too faintly for recognition: the one detected team's
	// scheduled opponent stands in, at a fixed lower confidence.
	if len(candidates) == 1 && source == evidence.RegionFullTimeScore {
		if inferred := p.inferOpponent(candidates[0]); inferred != nil {
			candidates = append(candidates, *inferred)
		}
	}
	if len(candidates) < 2 {
		return nil
	}

	if source == evidence.RegionFullTimeScore && !validFullTimeGraphic(text, true) {
		p.logger.Debug("full-time graphic validation rejected frame",
			logging.Int("scene", scene.Number),
			logging.String("frame", frame),
			logging.String("text", text))
		return nil
	}

	first, second, fixture := p.selectFixturePair(scene.Number, candidates)
	if fixture == nil {
		return nil
	}

	// Optical evidence carries no side information; adopt the fixture's
	// recorded home/away order.
	home, away := first, second
	if fixture.HomeTeam == second.Team {
		home, away = second, first
	}

	confidence := (home.Confidence + away.Confidence) / 2
	validation, err := p.fixtures.ValidateTeams([]string{home.Team, away.Team}, p.episodeID)
	if err != nil {
		p.logger.Warn("team validation failed", logging.Int("scene", scene.Number), logging.Error(err))
	} else {
		confidence *= validation.ConfidenceBoost
	}
	if confidence > 1 {
		confidence = 1
	}

	p.logger.Info("scene detection accepted",
		logging.Int("scene", scene.Number),
		logging.String("source", string(source)),
		logging.String("home", home.Team),
		logging.String("away", away.Team),
		logging.String("fixture", fixture.MatchID),
		logging.Float64("confidence", confidence))

	return &Detection{
		SceneNumber: scene.Number,
		SceneStart:  scene.Start,
		SceneEnd:    scene.End,
		Source:      source,
		Home:        home,
		Away:        away,
		FixtureID:   fixture.MatchID,
		Confidence:  confidence,
	}
}

// extractText gathers the frame's text with source-tiered fallback. A tier
// returning an extraction error is skipped, never fatal to the frame.
func (p *Processor) extractText(frame string, ftOnly bool) (string, evidence.Region, bool) {
	tiers := passTiers
	if ftOnly {
		tiers = passTiers[:1]
	}
	for _, region := range tiers {
		detections, err := p.extractor.Extract(frame, region)
		if err != nil {
			p.logger.Debug("evidence extraction failed",
				logging.String("frame", frame),
				logging.String("region", string(region)),
				logging.Error(err))
			continue
		}
		texts := make([]string, 0, len(detections))
		for _, detection := range detections {
			if strings.TrimSpace(detection.Text) != "" {
				texts = append(texts, detection.Text)
			}
		}
		if len(texts) > 0 {
			return strings.Join(texts, " "), region, true
		}
	}
	return "", "", false
}

func (p *Processor) inferOpponent(detected match.TeamMatch) *match.TeamMatch {
	fixture, err := p.fixtures.ScheduledFixtureFor(detected.Team, p.episodeID)
	if err != nil || fixture == nil {
		return nil
	}
	opponent := fixture.Opponent(detected.Team)
	if opponent == "" {
		return nil
	}
	p.logger.Info("opponent inferred from fixture schedule",
		logging.String("detected", detected.Team),
		logging.String("inferred", opponent),
		logging.String("fixture", fixture.MatchID),
		logging.Float64("confidence", p.cfg.InferredConfidence))
	return &match.TeamMatch{
		Team:       opponent,
		Confidence: p.cfg.InferredConfidence,
		Provenance: match.ProvenanceInferred,
	}
}
