package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Matching.Threshold != 0.75 {
		t.Fatalf("default threshold = %f", cfg.Matching.Threshold)
	}
	if cfg.RunOrder.DedupWindowSeconds != 5 {
		t.Fatalf("default dedup window = %f", cfg.RunOrder.DedupWindowSeconds)
	}
}

func TestLoadAppliesOverridesAndDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[paths]
registry_dir = "` + filepath.Join(dir, "registry") + `"
evidence_dir = "` + filepath.Join(dir, "evidence") + `"
log_dir = "` + filepath.Join(dir, "logs") + `"
database_path = "` + filepath.Join(dir, "rundown.db") + `"

[matching]
threshold = 0.8

[logging]
format = "json"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("resolved = %q exists = %v", resolved, exists)
	}
	if cfg.Matching.Threshold != 0.8 {
		t.Fatalf("threshold override ignored: %f", cfg.Matching.Threshold)
	}
	if cfg.Matching.MaxCandidates != 5 {
		t.Fatalf("max_candidates default missing: %d", cfg.Matching.MaxCandidates)
	}
	if cfg.Logging.Format != "json" {
		t.Fatalf("logging format = %q", cfg.Logging.Format)
	}
}

func TestLoadRejectsBadThreshold(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("[matching]\nthreshold = 1.5\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := Load(path); err == nil {
		t.Fatal("expected validation error for threshold > 1")
	}
}

func TestValidateLoggingFormat(t *testing.T) {
	cfg := Default()
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown log format")
	}
}

func TestEpisodeEvidenceDir(t *testing.T) {
	cfg := Default()
	cfg.Paths.EvidenceDir = "/data/evidence"
	if got := cfg.EpisodeEvidenceDir("ep-2026-01"); got != filepath.Join("/data/evidence", "ep-2026-01") {
		t.Fatalf("EpisodeEvidenceDir = %q", got)
	}
}
