package detect

import (
	"rundown/internal/evidence"
	"rundown/internal/match"
)

// Detection is the validated result of processing one scene: a scheduled
// fixture observed in the footage, with both teams in the fixture's
// home/away order. At most one Detection is emitted per scene.
type Detection struct {
	SceneNumber int
	SceneStart  float64
	SceneEnd    float64
	// Source is the evidence region that produced the detection.
	Source evidence.Region
	Home   match.TeamMatch
	Away   match.TeamMatch
	// FixtureID identifies the scheduled fixture the pair validated against.
	FixtureID string
	// Confidence is the arithmetic mean of the two team confidences, scaled
	// by the expected-team validation boost and capped at 1.
	Confidence float64
}
