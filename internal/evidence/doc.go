// Package evidence models the raw inputs handed to the pipeline by the
// external collaborators: the scene list from video segmentation, per-frame
// OCR text detections, and time-stamped transcript segments.
//
// Types are validated at construction (confidence ranges, scene time
// ordering, closed region tags) so malformed evidence is rejected at the
// input boundary rather than deep inside matching code. The Extractor
// interface abstracts per-frame, per-region text retrieval; the file-backed
// implementation reads the JSON artifacts the collaborators produce.
package evidence
