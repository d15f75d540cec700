package evidence

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewSceneEnforcesTimeOrdering(t *testing.T) {
	if _, err := NewScene(1, 10, 5, nil); err == nil {
		t.Fatal("expected error for end <= start")
	}
	if _, err := NewScene(1, 10, 10, nil); err == nil {
		t.Fatal("expected error for zero-length scene")
	}
	if _, err := NewScene(0, 0, 5, nil); err == nil {
		t.Fatal("expected error for scene number 0")
	}
	scene, err := NewScene(3, 1.5, 9.25, []string{"a.jpg", " ", "b.jpg"})
	if err != nil {
		t.Fatalf("valid scene rejected: %v", err)
	}
	if len(scene.Frames) != 2 {
		t.Fatalf("blank frame not dropped: %v", scene.Frames)
	}
}

func TestNewOCRDetectionValidation(t *testing.T) {
	if _, err := NewOCRDetection("FT 2-1", 1.2, RegionFullTimeScore); err == nil {
		t.Fatal("expected error for confidence > 1")
	}
	if _, err := NewOCRDetection("FT 2-1", 0.9, Region("banner")); err == nil {
		t.Fatal("expected error for invalid region")
	}
	det, err := NewOCRDetection("FT 2-1", 0.9, RegionFullTimeScore)
	if err != nil {
		t.Fatalf("valid detection rejected: %v", err)
	}
	if det.Region != RegionFullTimeScore {
		t.Fatalf("region = %q", det.Region)
	}
}

func TestParseRegion(t *testing.T) {
	for _, raw := range []string{"ft_score", "scoreboard", "formation"} {
		if _, err := ParseRegion(raw); err != nil {
			t.Fatalf("ParseRegion(%q): %v", raw, err)
		}
	}
	if _, err := ParseRegion("possession"); err == nil {
		t.Fatal("expected error for unknown region")
	}
}

func TestFrameEvidenceExtract(t *testing.T) {
	fe := FrameEvidence{
		"f1.jpg": {
			RegionScoreboard: {{Text: "LIV 1-0 EVE", Confidence: 0.8, Region: RegionScoreboard}},
		},
	}
	got, err := fe.Extract("f1.jpg", RegionScoreboard)
	if err != nil || len(got) != 1 {
		t.Fatalf("Extract = %v, %v", got, err)
	}
	got, err = fe.Extract("f1.jpg", RegionFullTimeScore)
	if err != nil || len(got) != 0 {
		t.Fatalf("empty region Extract = %v, %v", got, err)
	}
	got, err = fe.Extract("missing.jpg", RegionScoreboard)
	if err != nil || len(got) != 0 {
		t.Fatalf("missing frame Extract = %v, %v", got, err)
	}
}

func TestLoaders(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	write(ScenesFile, `[
		{"scene_number": 2, "start_seconds": 30, "end_seconds": 45, "frame_paths": ["f2.jpg"]},
		{"scene_number": 1, "start_seconds": 0, "end_seconds": 12.5, "frame_paths": ["f1.jpg"]}
	]`)
	write(OCRFile, `[
		{"frame": "f1.jpg", "region": "ft_score", "text": "FT LIVERPOOL 2-0 EVERTON", "confidence": 0.92},
		{"frame": "f2.jpg", "region": "scoreboard", "text": "ARS 1-1 CHE", "confidence": 0.81}
	]`)
	write(TranscriptFile, `[
		{"start": 4.0, "end": 8.0, "text": "here at Anfield"},
		{"start": 0.0, "end": 4.0, "text": "welcome back"}
	]`)

	scenes, err := LoadScenes(dir)
	if err != nil {
		t.Fatalf("LoadScenes: %v", err)
	}
	if len(scenes) != 2 || scenes[0].Number != 1 || scenes[1].Number != 2 {
		t.Fatalf("scenes not sorted: %+v", scenes)
	}

	ocr, err := LoadOCR(dir)
	if err != nil {
		t.Fatalf("LoadOCR: %v", err)
	}
	dets, err := ocr.Extract("f1.jpg", RegionFullTimeScore)
	if err != nil || len(dets) != 1 || dets[0].Confidence != 0.92 {
		t.Fatalf("ocr extract = %v, %v", dets, err)
	}

	transcript, err := LoadTranscript(dir)
	if err != nil {
		t.Fatalf("LoadTranscript: %v", err)
	}
	if len(transcript) != 2 || transcript[0].Text != "welcome back" {
		t.Fatalf("transcript not sorted: %+v", transcript)
	}
}

func TestLoadOCRRejectsBadRegion(t *testing.T) {
	dir := t.TempDir()
	content := `[{"frame": "f1.jpg", "region": "possession", "text": "54%", "confidence": 0.9}]`
	if err := os.WriteFile(filepath.Join(dir, OCRFile), []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadOCR(dir); err == nil {
		t.Fatal("expected error for unknown region tag")
	}
}
