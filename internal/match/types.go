package match

// Provenance records how a team match was produced.
type Provenance string

const (
	// ProvenanceOCR marks a team resolved directly from optical text.
	ProvenanceOCR Provenance = "ocr"
	// ProvenanceInferred marks an opponent derived from the fixture schedule
	// rather than observed. Inferred matches carry a fixed, lower confidence.
	ProvenanceInferred Provenance = "inferred_from_fixture"
)

// TeamMatch is one ranked resolution of free text to a canonical team.
type TeamMatch struct {
	Team        string
	Confidence  float64
	MatchedText string
	Provenance  Provenance
}

// VenueMatch is one resolution of transcript text to a stadium and its team.
type VenueMatch struct {
	Team        string
	Stadium     string
	Confidence  float64
	MatchedText string
}

// TeamValidation is the result of checking detected teams against an
// episode's expected universe.
type TeamValidation struct {
	Validated  []string
	Unexpected []string
	// ConfidenceBoost is a multiplier: above 1 only for a clean detection
	// (at least one validated team and no unexpected ones).
	ConfidenceBoost float64
}
