package detect

import (
	"errors"
	"testing"

	"rundown/internal/config"
	"rundown/internal/evidence"
	"rundown/internal/logging"
	"rundown/internal/match"
	"rundown/internal/registry"
)

func testRegistry() *registry.Registry {
	return &registry.Registry{
		Teams: []registry.Team{
			{Name: "Liverpool", Abbreviation: "LIV"},
			{Name: "Everton", Abbreviation: "EVE"},
			{Name: "Arsenal", Abbreviation: "ARS"},
			{Name: "Chelsea", Abbreviation: "CHE"},
			{Name: "Manchester United", Abbreviation: "MUN", Alternates: []string{"Man Utd"}},
			{Name: "Tottenham Hotspur", Abbreviation: "TOT", Alternates: []string{"Spurs"}},
			{Name: "West Ham United", Abbreviation: "WHU", Alternates: []string{"West Ham"}},
			{Name: "Aston Villa", Abbreviation: "AVL", Alternates: []string{"Villa"}},
		},
		Fixtures: []registry.Fixture{
			{MatchID: "m1", HomeTeam: "Liverpool", AwayTeam: "Everton", Score: "2-0"},
			{MatchID: "m2", HomeTeam: "Arsenal", AwayTeam: "Chelsea", Score: "1-1"},
			{MatchID: "m3", HomeTeam: "Tottenham Hotspur", AwayTeam: "Manchester United", Score: "0-3"},
			{MatchID: "m4", HomeTeam: "West Ham United", AwayTeam: "Aston Villa", Score: "2-2"},
		},
		Episodes: []registry.Episode{
			{ID: "ep1", ExpectedMatches: []string{"m1", "m2", "m3", "m4"}},
		},
	}
}

func newTestProcessor(t *testing.T, extractor evidence.Extractor) *Processor {
	t.Helper()
	reg := testRegistry()
	cfg := config.Default().Matching
	teams := match.NewTeamMatcher(reg.Teams, cfg, logging.NewNop())
	fixtures := match.NewFixtureMatcher(reg, cfg.CleanValidationBoost, logging.NewNop())
	processor, err := NewProcessor(teams, fixtures, extractor, "ep1", cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("NewProcessor: %v", err)
	}
	return processor
}

func mustScene(t *testing.T, number int, start, end float64, frames ...string) evidence.Scene {
	t.Helper()
	scene, err := evidence.NewScene(number, start, end, frames)
	if err != nil {
		t.Fatalf("NewScene: %v", err)
	}
	return scene
}

func frameText(region evidence.Region, text string) map[evidence.Region][]evidence.OCRDetection {
	return map[evidence.Region][]evidence.OCRDetection{
		region: {{Text: text, Confidence: 0.9, Region: region}},
	}
}

type failingExtractor struct {
	inner   evidence.FrameEvidence
	failing evidence.Region
}

func (f failingExtractor) Extract(frame string, region evidence.Region) ([]evidence.OCRDetection, error) {
	if region == f.failing {
		return nil, errors.New("extraction backend unavailable")
	}
	return f.inner.Extract(frame, region)
}

func TestProcessSceneFullTimeDetection(t *testing.T) {
	ocr := evidence.FrameEvidence{
		"f1.jpg": frameText(evidence.RegionFullTimeScore, "FT LIVERPOOL 2 - 0 EVERTON"),
	}
	p := newTestProcessor(t, ocr)

	detection := p.ProcessScene(mustScene(t, 4, 100, 110, "f1.jpg"))
	if detection == nil {
		t.Fatal("expected a detection")
	}
	if detection.Home.Team != "Liverpool" || detection.Away.Team != "Everton" {
		t.Fatalf("teams = %q / %q", detection.Home.Team, detection.Away.Team)
	}
	if detection.FixtureID != "m1" {
		t.Fatalf("fixture = %q", detection.FixtureID)
	}
	if detection.Source != evidence.RegionFullTimeScore {
		t.Fatalf("source = %q", detection.Source)
	}
	if detection.Confidence <= 0 || detection.Confidence > 1 {
		t.Fatalf("confidence = %f", detection.Confidence)
	}
}

func TestProcessSceneHomeAwayReordering(t *testing.T) {
	// Away team recognized first; the detection must follow the fixture's
	// recorded home/away order.
	ocr := evidence.FrameEvidence{
		"f1.jpg": frameText(evidence.RegionScoreboard, "EVE 0 2 LIV"),
	}
	p := newTestProcessor(t, ocr)

	detection := p.ProcessScene(mustScene(t, 2, 50, 60, "f1.jpg"))
	if detection == nil {
		t.Fatal("expected a detection")
	}
	if detection.Home.Team != "Liverpool" || detection.Away.Team != "Everton" {
		t.Fatalf("order not corrected: %q / %q", detection.Home.Team, detection.Away.Team)
	}
}

func TestFullTimePassTakesPriority(t *testing.T) {
	// The scoreboard frame comes first, but the later full-time graphic must win.
	ocr := evidence.FrameEvidence{
		"f1.jpg": frameText(evidence.RegionScoreboard, "ARS 1 - 1 CHE"),
		"f2.jpg": frameText(evidence.RegionFullTimeScore, "FT LIVERPOOL 2 - 0 EVERTON"),
	}
	p := newTestProcessor(t, ocr)

	detection := p.ProcessScene(mustScene(t, 9, 200, 215, "f1.jpg", "f2.jpg"))
	if detection == nil {
		t.Fatal("expected a detection")
	}
	if detection.Source != evidence.RegionFullTimeScore || detection.FixtureID != "m1" {
		t.Fatalf("full-time pass did not take priority: %+v", detection)
	}
}

func TestOpponentInference(t *testing.T) {
	ocr := evidence.FrameEvidence{
		"f1.jpg": frameText(evidence.RegionFullTimeScore, "FT LIVERPOOL 2 - 0"),
	}
	p := newTestProcessor(t, ocr)

	detection := p.ProcessScene(mustScene(t, 5, 120, 130, "f1.jpg"))
	if detection == nil {
		t.Fatal("expected a detection via opponent inference")
	}
	if detection.Away.Team != "Everton" {
		t.Fatalf("inferred opponent = %q", detection.Away.Team)
	}
	if detection.Away.Provenance != match.ProvenanceInferred {
		t.Fatalf("provenance = %q", detection.Away.Provenance)
	}
	if detection.Away.Confidence != 0.75 {
		t.Fatalf("inferred confidence = %f, want 0.75", detection.Away.Confidence)
	}
	if detection.Home.Provenance != match.ProvenanceOCR {
		t.Fatalf("observed team provenance = %q", detection.Home.Provenance)
	}
}

func TestNoInferenceForScoreboardSource(t *testing.T) {
	// A single-team scoreboard frame must not trigger inference.
	ocr := evidence.FrameEvidence{
		"f1.jpg": frameText(evidence.RegionScoreboard, "LIV 2"),
	}
	p := newTestProcessor(t, ocr)
	if detection := p.ProcessScene(mustScene(t, 3, 70, 80, "f1.jpg")); detection != nil {
		t.Fatalf("unexpected detection: %+v", detection)
	}
}

func TestCombinatorialFixtureRecovery(t *testing.T) {
	p := newTestProcessor(t, evidence.FrameEvidence{})
	candidates := []match.TeamMatch{
		{Team: "West Ham United", Confidence: 1.0, Provenance: match.ProvenanceOCR},
		{Team: "Manchester United", Confidence: 1.0, Provenance: match.ProvenanceOCR},
		{Team: "Tottenham Hotspur", Confidence: 1.0, Provenance: match.ProvenanceOCR},
	}
	first, second, fixture := p.selectFixturePair(1, candidates)
	if fixture == nil {
		t.Fatal("expected recovery to find the scheduled pair")
	}
	if fixture.MatchID != "m3" {
		t.Fatalf("fixture = %q, want m3", fixture.MatchID)
	}
	got := map[string]bool{first.Team: true, second.Team: true}
	if !got["Manchester United"] || !got["Tottenham Hotspur"] {
		t.Fatalf("recovered pair = %q / %q", first.Team, second.Team)
	}
}

func TestNoFixturePairRejectsScene(t *testing.T) {
	// Both teams resolve but they do not play each other this episode.
	ocr := evidence.FrameEvidence{
		"f1.jpg": frameText(evidence.RegionScoreboard, "LIV 1 0 ARS"),
	}
	p := newTestProcessor(t, ocr)
	if detection := p.ProcessScene(mustScene(t, 6, 140, 150, "f1.jpg")); detection != nil {
		t.Fatalf("unscheduled pair accepted: %+v", detection)
	}
}

func TestPossessionGraphicRejected(t *testing.T) {
	ocr := evidence.FrameEvidence{
		"f1.jpg": frameText(evidence.RegionFullTimeScore, "54% LIVERPOOL 46% EVERTON"),
	}
	p := newTestProcessor(t, ocr)
	if detection := p.ProcessScene(mustScene(t, 7, 160, 170, "f1.jpg")); detection != nil {
		t.Fatalf("possession graphic accepted: %+v", detection)
	}
}

func TestSceneWithNoFramesYieldsNothing(t *testing.T) {
	p := newTestProcessor(t, evidence.FrameEvidence{})
	scene := mustScene(t, 8, 180, 190)
	if detection := p.ProcessScene(scene); detection != nil {
		t.Fatalf("frameless scene produced %+v", detection)
	}
}

func TestExtractionErrorIsLocal(t *testing.T) {
	extractor := failingExtractor{
		inner: evidence.FrameEvidence{
			"f1.jpg": frameText(evidence.RegionScoreboard, "ARS 1 - 1 CHE"),
		},
		failing: evidence.RegionFullTimeScore,
	}
	p := newTestProcessor(t, extractor)

	detection := p.ProcessScene(mustScene(t, 10, 220, 230, "f1.jpg"))
	if detection == nil {
		t.Fatal("extraction error in one region aborted the frame")
	}
	if detection.FixtureID != "m2" || detection.Source != evidence.RegionScoreboard {
		t.Fatalf("detection = %+v", detection)
	}
}

func TestNewProcessorUnknownEpisode(t *testing.T) {
	reg := testRegistry()
	cfg := config.Default().Matching
	teams := match.NewTeamMatcher(reg.Teams, cfg, logging.NewNop())
	fixtures := match.NewFixtureMatcher(reg, cfg.CleanValidationBoost, logging.NewNop())
	if _, err := NewProcessor(teams, fixtures, evidence.FrameEvidence{}, "missing", cfg, logging.NewNop()); !errors.Is(err, match.ErrUnknownEpisode) {
		t.Fatalf("expected ErrUnknownEpisode, got %v", err)
	}
}
