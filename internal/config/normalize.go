package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeMatching()
	c.normalizeRunOrder()
	c.normalizeWorkers()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.RegistryDir) == "" {
		c.Paths.RegistryDir = defaultRegistryDir
	}
	if c.Paths.RegistryDir, err = expandPath(c.Paths.RegistryDir); err != nil {
		return fmt.Errorf("paths.registry_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.EvidenceDir) == "" {
		c.Paths.EvidenceDir = defaultEvidenceDir
	}
	if c.Paths.EvidenceDir, err = expandPath(c.Paths.EvidenceDir); err != nil {
		return fmt.Errorf("paths.evidence_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.DatabasePath) == "" {
		c.Paths.DatabasePath = defaultDatabasePath
	}
	if c.Paths.DatabasePath, err = expandPath(c.Paths.DatabasePath); err != nil {
		return fmt.Errorf("paths.database_path: %w", err)
	}
	return nil
}

func (c *Config) normalizeMatching() {
	if c.Matching.Threshold == 0 {
		c.Matching.Threshold = defaultMatchThreshold
	}
	if c.Matching.CandidateBoost == 0 {
		c.Matching.CandidateBoost = defaultCandidateBoost
	}
	if c.Matching.CleanValidationBoost == 0 {
		c.Matching.CleanValidationBoost = defaultCleanValidationBoost
	}
	if c.Matching.InferredConfidence == 0 {
		c.Matching.InferredConfidence = defaultInferredConfidence
	}
	if c.Matching.MaxCandidates == 0 {
		c.Matching.MaxCandidates = defaultMaxCandidates
	}
	if c.Matching.VenueThreshold == 0 {
		c.Matching.VenueThreshold = defaultVenueThreshold
	}
	if c.Matching.VenueShortTextThreshold == 0 {
		c.Matching.VenueShortTextThreshold = defaultVenueShortTextThreshold
	}
	if c.Matching.VenueShortTextLength == 0 {
		c.Matching.VenueShortTextLength = defaultVenueShortTextLength
	}
}

func (c *Config) normalizeRunOrder() {
	if c.RunOrder.DedupWindowSeconds == 0 {
		c.RunOrder.DedupWindowSeconds = defaultDedupWindowSeconds
	}
	if c.RunOrder.DisagreementConfidence == 0 {
		c.RunOrder.DisagreementConfidence = defaultDisagreementConfidence
	}
	if c.RunOrder.MatchConfidence == 0 {
		c.RunOrder.MatchConfidence = defaultMatchConfidence
	}
}

func (c *Config) normalizeWorkers() {
	if c.Workers.SceneWorkers <= 0 {
		c.Workers.SceneWorkers = defaultSceneWorkers
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
