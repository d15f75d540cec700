package config

const (
	defaultRegistryDir  = "~/.local/share/rundown/registry"
	defaultEvidenceDir  = "~/.local/share/rundown/evidence"
	defaultLogDir       = "~/.local/share/rundown/logs"
	defaultDatabasePath = "~/.local/share/rundown/rundown.db"
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"

	defaultMatchThreshold          = 0.75
	defaultCandidateBoost          = 0.05
	defaultCleanValidationBoost    = 1.1
	defaultInferredConfidence      = 0.75
	defaultMaxCandidates           = 5
	defaultVenueThreshold          = 0.8
	defaultVenueShortTextThreshold = 0.7
	defaultVenueShortTextLength    = 12

	defaultDedupWindowSeconds     = 5
	defaultDisagreementConfidence = 0.85
	defaultMatchConfidence        = 0.95

	defaultSceneWorkers = 4
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			RegistryDir:  defaultRegistryDir,
			EvidenceDir:  defaultEvidenceDir,
			LogDir:       defaultLogDir,
			DatabasePath: defaultDatabasePath,
		},
		Matching: Matching{
			Threshold:               defaultMatchThreshold,
			CandidateBoost:          defaultCandidateBoost,
			CleanValidationBoost:    defaultCleanValidationBoost,
			InferredConfidence:      defaultInferredConfidence,
			MaxCandidates:           defaultMaxCandidates,
			VenueThreshold:          defaultVenueThreshold,
			VenueShortTextThreshold: defaultVenueShortTextThreshold,
			VenueShortTextLength:    defaultVenueShortTextLength,
		},
		RunOrder: RunOrder{
			DedupWindowSeconds:     defaultDedupWindowSeconds,
			DisagreementConfidence: defaultDisagreementConfidence,
			MatchConfidence:        defaultMatchConfidence,
		},
		Workers: Workers{
			SceneWorkers: defaultSceneWorkers,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
