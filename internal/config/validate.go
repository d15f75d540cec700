package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateMatching(); err != nil {
		return err
	}
	if err := c.validateRunOrder(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if c.Paths.RegistryDir == "" {
		return errors.New("paths.registry_dir must be set")
	}
	if c.Paths.EvidenceDir == "" {
		return errors.New("paths.evidence_dir must be set")
	}
	if c.Paths.DatabasePath == "" {
		return errors.New("paths.database_path must be set")
	}
	return nil
}

func (c *Config) validateMatching() error {
	if c.Matching.Threshold < 0 || c.Matching.Threshold > 1 {
		return errors.New("matching.threshold must be between 0 and 1")
	}
	if c.Matching.CandidateBoost < 0 || c.Matching.CandidateBoost > 1 {
		return errors.New("matching.candidate_boost must be between 0 and 1")
	}
	if c.Matching.CleanValidationBoost < 1 {
		return errors.New("matching.clean_validation_boost must be at least 1")
	}
	if c.Matching.InferredConfidence < 0 || c.Matching.InferredConfidence > 1 {
		return errors.New("matching.inferred_confidence must be between 0 and 1")
	}
	if c.Matching.MaxCandidates < 2 {
		return errors.New("matching.max_candidates must be at least 2")
	}
	if c.Matching.VenueThreshold < 0 || c.Matching.VenueThreshold > 1 {
		return errors.New("matching.venue_threshold must be between 0 and 1")
	}
	if c.Matching.VenueShortTextThreshold > c.Matching.VenueThreshold {
		return errors.New("matching.venue_short_text_threshold must not exceed matching.venue_threshold")
	}
	return nil
}

func (c *Config) validateRunOrder() error {
	if c.RunOrder.DedupWindowSeconds <= 0 {
		return errors.New("run_order.dedup_window_seconds must be positive")
	}
	if c.RunOrder.DisagreementConfidence < 0 || c.RunOrder.DisagreementConfidence > 1 {
		return errors.New("run_order.disagreement_confidence must be between 0 and 1")
	}
	if c.RunOrder.MatchConfidence < 0 || c.RunOrder.MatchConfidence > 1 {
		return errors.New("run_order.match_confidence must be between 0 and 1")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	return nil
}
