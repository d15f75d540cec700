package evidence

import (
	"fmt"
	"strings"
)

// OCRDetection is one raw text detection inside a frame region. Detections
// are ephemeral: produced per frame and consumed immediately by matching.
type OCRDetection struct {
	Text       string
	Confidence float64
	Region     Region
}

// NewOCRDetection validates field ranges at construction.
func NewOCRDetection(text string, confidence float64, region Region) (OCRDetection, error) {
	if confidence < 0 || confidence > 1 {
		return OCRDetection{}, fmt.Errorf("ocr detection: confidence %f outside [0, 1]", confidence)
	}
	if !region.Valid() {
		return OCRDetection{}, fmt.Errorf("ocr detection: invalid region %q", region)
	}
	return OCRDetection{Text: text, Confidence: confidence, Region: region}, nil
}

// Scene is one segment of the episode as produced by the external scene
// segmentation collaborator.
type Scene struct {
	Number int
	Start  float64
	End    float64
	Frames []string
}

// NewScene validates the scene time invariant (End strictly after Start)
// and the 1-indexed scene numbering at construction.
func NewScene(number int, start, end float64, frames []string) (Scene, error) {
	if number < 1 {
		return Scene{}, fmt.Errorf("scene: number %d must be >= 1", number)
	}
	if end <= start {
		return Scene{}, fmt.Errorf("scene %d: end %f must be greater than start %f", number, end, start)
	}
	cleaned := make([]string, 0, len(frames))
	for _, frame := range frames {
		if strings.TrimSpace(frame) != "" {
			cleaned = append(cleaned, frame)
		}
	}
	return Scene{Number: number, Start: start, End: end, Frames: cleaned}, nil
}

// Segment is one time-stamped transcript fragment from the external
// transcription collaborator.
type Segment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}
