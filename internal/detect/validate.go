package detect

import "regexp"

// scorePattern recognizes two small integers separated by a dash-like
// character, a colon, or bare whitespace ("2-1", "2 - 1", "2–1", "2 0").
var scorePattern = regexp.MustCompile(`\b\d{1,2}\s*[-–—:]\s*\d{1,2}\b|\b\d{1,2}\s+\d{1,2}\b`)

// fullTimePattern recognizes the common spellings of the full-time
// indicator: FT, FULL TIME, FULL-TIME, FULLTIME.
var fullTimePattern = regexp.MustCompile(`(?i)(?:^|[^\p{L}])(?:ft|full[\s-]?time)(?:[^\p{L}]|$)`)

// validFullTimeGraphic reports whether text is structurally a full-time
// result graphic: a resolvable team name, a score-like pattern, and a
// full-time indicator must all be present. Structurally similar overlays
// (possession bars, head-to-head graphics) fail one of the three conditions.
func validFullTimeGraphic(text string, teamResolved bool) bool {
	if !teamResolved {
		return false
	}
	if !scorePattern.MatchString(text) {
		return false
	}
	return fullTimePattern.MatchString(text)
}
