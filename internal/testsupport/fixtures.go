package testsupport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"rundown/internal/evidence"
	"rundown/internal/registry"
)

// WriteRegistry marshals the four registry files into dir.
func WriteRegistry(t testing.TB, dir string, reg *registry.Registry) {
	t.Helper()

	writeJSON(t, filepath.Join(dir, registry.TeamsFile), reg.Teams)
	writeJSON(t, filepath.Join(dir, registry.FixturesFile), reg.Fixtures)
	writeJSON(t, filepath.Join(dir, registry.EpisodesFile), reg.Episodes)
	writeJSON(t, filepath.Join(dir, registry.VenuesFile), reg.Venues)
}

// SceneRecord mirrors one scenes.json entry for evidence fixtures.
type SceneRecord struct {
	SceneNumber  int      `json:"scene_number"`
	StartSeconds float64  `json:"start_seconds"`
	EndSeconds   float64  `json:"end_seconds"`
	FramePaths   []string `json:"frame_paths"`
}

// OCRRecord mirrors one ocr.json entry for evidence fixtures.
type OCRRecord struct {
	Frame      string  `json:"frame"`
	Region     string  `json:"region"`
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
}

// WriteEvidence marshals scene, OCR, and transcript artifacts into dir.
func WriteEvidence(t testing.TB, dir string, scenes []SceneRecord, ocr []OCRRecord, transcript []evidence.Segment) {
	t.Helper()

	writeJSON(t, filepath.Join(dir, evidence.ScenesFile), scenes)
	writeJSON(t, filepath.Join(dir, evidence.OCRFile), ocr)
	writeJSON(t, filepath.Join(dir, evidence.TranscriptFile), transcript)
}

func writeJSON(t testing.TB, path string, value any) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	data, err := json.Marshal(value)
	if err != nil {
		t.Fatalf("marshal %s: %v", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
