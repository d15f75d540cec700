package match

import (
	"testing"

	"rundown/internal/logging"
)

func newTestVenueMatcher() *VenueMatcher {
	return NewVenueMatcher(testRegistry().Venues, testMatchingConfig(), logging.NewNop())
}

func TestVenueMatchStripsLeadingArticles(t *testing.T) {
	m := newTestVenueMatcher()
	matches := m.Match("at Anfield")
	if len(matches) == 0 {
		t.Fatal("expected a match for Anfield")
	}
	if matches[0].Team != "Liverpool" || matches[0].Stadium != "Anfield" {
		t.Fatalf("best = %+v", matches[0])
	}
	if matches[0].Confidence != 1 {
		t.Fatalf("exact stadium confidence = %f", matches[0].Confidence)
	}
}

func TestVenueMatchEmbeddedInLongerText(t *testing.T) {
	m := newTestVenueMatcher()
	matches := m.Match("a rainy afternoon here as Old Trafford falls silent")
	if len(matches) == 0 || matches[0].Team != "Manchester United" {
		t.Fatalf("matches = %+v", matches)
	}
}

func TestVenueMatchShortTextRelaxedThreshold(t *testing.T) {
	m := newTestVenueMatcher()
	// One transposed pair in a short fragment: scores between the short and
	// standard thresholds, so it must still be accepted.
	matches := m.Match("Anfelid")
	if len(matches) == 0 || matches[0].Team != "Liverpool" {
		t.Fatalf("matches = %+v", matches)
	}
	if matches[0].Confidence >= m.cfg.VenueThreshold {
		t.Fatalf("test fragment scored %f, expected below standard threshold %f",
			matches[0].Confidence, m.cfg.VenueThreshold)
	}
}

func TestVenueMatchIgnoresAliases(t *testing.T) {
	m := newTestVenueMatcher()
	if matches := m.Match("the Kop"); len(matches) != 0 {
		t.Fatalf("alias matched: %+v", matches)
	}
	if matches := m.Match("Theatre of Dreams"); len(matches) != 0 {
		t.Fatalf("alias matched: %+v", matches)
	}
}

func TestVenueMatchEmptyText(t *testing.T) {
	m := newTestVenueMatcher()
	if matches := m.Match("  at the  "); len(matches) != 0 {
		t.Fatalf("article-only text matched: %+v", matches)
	}
}
