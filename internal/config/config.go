package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory and file locations for registries, evidence, and output.
type Paths struct {
	// RegistryDir holds teams.json, fixtures.json, episodes.json, venues.json.
	RegistryDir string `toml:"registry_dir"`
	// EvidenceDir holds one subdirectory per episode with scenes.json,
	// ocr.json, and transcript.json produced by the upstream collaborators.
	EvidenceDir  string `toml:"evidence_dir"`
	LogDir       string `toml:"log_dir"`
	DatabasePath string `toml:"database_path"`
}

// Matching contains the fuzzy matching thresholds and boosts.
type Matching struct {
	// Threshold is the minimum similarity for a team match. Default: 0.75
	Threshold float64 `toml:"threshold"`
	// CandidateBoost is added to matches already validated against the
	// episode's expected teams. Default: 0.05
	CandidateBoost float64 `toml:"candidate_boost"`
	// CleanValidationBoost multiplies detection confidence when every
	// detected team validates and none are unexpected. Default: 1.1
	CleanValidationBoost float64 `toml:"clean_validation_boost"`
	// InferredConfidence is the fixed confidence for an opponent recovered
	// from the fixture schedule rather than observed optically. Default: 0.75
	InferredConfidence float64 `toml:"inferred_confidence"`
	// MaxCandidates is how many ranked teams the scene processor requests,
	// wider than two to support combinatorial fixture recovery. Default: 5
	MaxCandidates int `toml:"max_candidates"`
	// VenueThreshold is the minimum similarity for a stadium match. Default: 0.8
	VenueThreshold float64 `toml:"venue_threshold"`
	// VenueShortTextThreshold relaxes VenueThreshold for inputs at or below
	// VenueShortTextLength runes. Default: 0.7
	VenueShortTextThreshold float64 `toml:"venue_short_text_threshold"`
	VenueShortTextLength    int     `toml:"venue_short_text_length"`
}

// RunOrder contains running-order reconstruction constants.
type RunOrder struct {
	// DedupWindowSeconds collapses consecutive full-time graphics for the
	// same fixture into one logical event. Default: 5
	DedupWindowSeconds float64 `toml:"dedup_window_seconds"`
	// DisagreementConfidence is the consensus confidence when the two
	// ordering strategies disagree. Default: 0.85
	DisagreementConfidence float64 `toml:"disagreement_confidence"`
	// MatchConfidence is the fixed per-position confidence. Default: 0.95
	MatchConfidence float64 `toml:"match_confidence"`
}

// Workers contains fan-out settings for per-scene processing.
type Workers struct {
	// SceneWorkers sizes the worker pool used to process scenes. Default: 4
	SceneWorkers int `toml:"scene_workers"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for rundown.
//
// Configuration sections by subsystem:
//   - Paths: registry, evidence, log, and database locations
//   - Matching: team/venue fuzzy thresholds and confidence boosts
//   - RunOrder: reconstruction dedup window and consensus constants
//   - Workers: scene processing fan-out
//   - Logging: log format and level
type Config struct {
	Paths    Paths    `toml:"paths"`
	Matching Matching `toml:"matching"`
	RunOrder RunOrder `toml:"run_order"`
	Workers  Workers  `toml:"workers"`
	Logging  Logging  `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/rundown/config.toml")
}

// SampleConfig returns the embedded annotated sample configuration.
func SampleConfig() string {
	return sampleConfig
}

// ExpandPath resolves a leading ~ against the current user's home directory.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("rundown.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the directories rundown writes to.
func (c *Config) EnsureDirectories() error {
	dirs := []string{c.Paths.LogDir, filepath.Dir(c.Paths.DatabasePath)}
	for _, dir := range dirs {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// EpisodeEvidenceDir returns the evidence directory for a single episode.
func (c *Config) EpisodeEvidenceDir(episodeID string) string {
	return filepath.Join(c.Paths.EvidenceDir, episodeID)
}

// RegistryFile returns the path of a named registry file.
func (c *Config) RegistryFile(name string) string {
	return filepath.Join(c.Paths.RegistryDir, name)
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}
