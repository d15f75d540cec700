package evidence

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Evidence artifact file names inside an episode's evidence directory.
const (
	ScenesFile     = "scenes.json"
	OCRFile        = "ocr.json"
	TranscriptFile = "transcript.json"
)

type sceneRecord struct {
	SceneNumber  int      `json:"scene_number"`
	StartSeconds float64  `json:"start_seconds"`
	EndSeconds   float64  `json:"end_seconds"`
	FramePaths   []string `json:"frame_paths"`
}

type ocrRecord struct {
	Frame      string  `json:"frame"`
	Region     string  `json:"region"`
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
}

// LoadScenes reads and validates the scene list for an episode, returned in
// scene-number order.
func LoadScenes(dir string) ([]Scene, error) {
	var records []sceneRecord
	if err := loadJSON(filepath.Join(dir, ScenesFile), &records); err != nil {
		return nil, err
	}
	scenes := make([]Scene, 0, len(records))
	for _, record := range records {
		scene, err := NewScene(record.SceneNumber, record.StartSeconds, record.EndSeconds, record.FramePaths)
		if err != nil {
			return nil, err
		}
		scenes = append(scenes, scene)
	}
	sort.Slice(scenes, func(i, j int) bool { return scenes[i].Number < scenes[j].Number })
	return scenes, nil
}

// LoadOCR reads the per-frame OCR output for an episode into a FrameEvidence map.
func LoadOCR(dir string) (FrameEvidence, error) {
	var records []ocrRecord
	if err := loadJSON(filepath.Join(dir, OCRFile), &records); err != nil {
		return nil, err
	}
	out := make(FrameEvidence)
	for _, record := range records {
		region, err := ParseRegion(record.Region)
		if err != nil {
			return nil, fmt.Errorf("ocr record for frame %q: %w", record.Frame, err)
		}
		detection, err := NewOCRDetection(record.Text, record.Confidence, region)
		if err != nil {
			return nil, fmt.Errorf("ocr record for frame %q: %w", record.Frame, err)
		}
		regions, ok := out[record.Frame]
		if !ok {
			regions = make(map[Region][]OCRDetection)
			out[record.Frame] = regions
		}
		regions[region] = append(regions[region], detection)
	}
	return out, nil
}

// LoadTranscript reads the transcript segments for an episode in time order.
func LoadTranscript(dir string) ([]Segment, error) {
	var segments []Segment
	if err := loadJSON(filepath.Join(dir, TranscriptFile), &segments); err != nil {
		return nil, err
	}
	sort.Slice(segments, func(i, j int) bool { return segments[i].Start < segments[j].Start })
	return segments, nil
}

func loadJSON(path string, target any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read evidence file %q: %w", path, err)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("parse evidence file %q: %w", path, err)
	}
	return nil
}
