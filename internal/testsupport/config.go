package testsupport

import (
	"path/filepath"
	"testing"

	"rundown/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.RegistryDir = filepath.Join(base, "registry")
	cfg.Paths.EvidenceDir = filepath.Join(base, "evidence")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Paths.DatabasePath = filepath.Join(base, "db", "rundown.db")

	for _, opt := range opts {
		opt(&cfg)
	}

	return &cfg
}

// WithSceneWorkers overrides the scene worker count on the test config.
func WithSceneWorkers(workers int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Workers.SceneWorkers = workers
	}
}

// WithThreshold overrides the team match threshold on the test config.
func WithThreshold(threshold float64) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Matching.Threshold = threshold
	}
}
