package evidence

// Extractor retrieves the text detections for one region of one frame.
//
// An error from Extract means the extraction itself failed for that frame
// and region; callers skip the region and continue. An empty slice with a
// nil error means the region carried no recognizable text, which is the
// normal result for most frames.
type Extractor interface {
	Extract(frame string, region Region) ([]OCRDetection, error)
}

// FrameEvidence is a fully materialized evidence set keyed by frame path
// and region. It implements Extractor for batch runs where the OCR
// collaborator has already produced its output files.
type FrameEvidence map[string]map[Region][]OCRDetection

// Extract returns the stored detections for the frame and region.
func (f FrameEvidence) Extract(frame string, region Region) ([]OCRDetection, error) {
	regions, ok := f[frame]
	if !ok {
		return nil, nil
	}
	return regions[region], nil
}
