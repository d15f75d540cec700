package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"

	"rundown/internal/config"
	"rundown/internal/detect"
	"rundown/internal/evidence"
	"rundown/internal/logging"
	"rundown/internal/match"
	"rundown/internal/registry"
	"rundown/internal/runorder"
	"rundown/internal/store"
)

// Pipeline runs episode reconstruction end to end.
type Pipeline struct {
	cfg       *config.Config
	logger    *slog.Logger
	store     *store.Store
	extractor evidence.Extractor
	lock      *flock.Flock
}

// Option customizes pipeline construction.
type Option func(*Pipeline)

// WithExtractor overrides the OCR source. When unset, the pipeline reads the
// pre-computed OCR artifact from the episode evidence directory.
func WithExtractor(extractor evidence.Extractor) Option {
	return func(p *Pipeline) {
		p.extractor = extractor
	}
}

// New builds a pipeline. The store may be nil, in which case results are
// returned but not persisted.
func New(cfg *config.Config, st *store.Store, logger *slog.Logger, opts ...Option) *Pipeline {
	if logger == nil {
		logger = logging.NewNop()
	}
	p := &Pipeline{
		cfg:    cfg,
		logger: logging.NewComponentLogger(logger, "pipeline"),
		store:  st,
		lock:   flock.New(cfg.Paths.DatabasePath + ".lock"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Process reconstructs the running order for one episode and persists the
// run when a store is attached.
func (p *Pipeline) Process(ctx context.Context, episodeID string) (*store.Run, error) {
	if err := p.cfg.EnsureDirectories(); err != nil {
		return nil, Wrap(ErrConfiguration, "pipeline", "directories", "", err)
	}
	ok, err := p.lock.TryLock()
	if err != nil {
		return nil, Wrap(ErrConfiguration, "pipeline", "lock", "acquire run lock", err)
	}
	if !ok {
		return nil, Wrap(ErrLocked, "pipeline", "lock", "another rundown process holds the run lock", nil)
	}
	defer func() { _ = p.lock.Unlock() }()

	reg, err := registry.Load(p.cfg.Paths.RegistryDir)
	if err != nil {
		return nil, Wrap(ErrConfiguration, "registry", "load", "", err)
	}
	if _, known := reg.EpisodeByID(episodeID); !known {
		return nil, Wrap(ErrNotFound, "registry", "episode", fmt.Sprintf("episode %q not in manifest", episodeID), nil)
	}

	evidenceDir := p.cfg.EpisodeEvidenceDir(episodeID)
	scenes, err := evidence.LoadScenes(evidenceDir)
	if err != nil {
		return nil, Wrap(ErrValidation, "evidence", "scenes", "", err)
	}
	transcript, err := evidence.LoadTranscript(evidenceDir)
	if err != nil {
		return nil, Wrap(ErrValidation, "evidence", "transcript", "", err)
	}

	extractor := p.extractor
	if extractor == nil {
		frames, err := evidence.LoadOCR(evidenceDir)
		if err != nil {
			return nil, Wrap(ErrValidation, "evidence", "ocr", "", err)
		}
		extractor = frames
	}

	teams := match.NewTeamMatcher(reg.Teams, p.cfg.Matching, p.logger)
	fixtures := match.NewFixtureMatcher(reg, p.cfg.Matching.CleanValidationBoost, p.logger)
	processor, err := detect.NewProcessor(teams, fixtures, extractor, episodeID, p.cfg.Matching, p.logger)
	if err != nil {
		if errors.Is(err, match.ErrUnknownEpisode) {
			return nil, Wrap(ErrNotFound, "detect", "processor", "", err)
		}
		return nil, Wrap(ErrConfiguration, "detect", "processor", "", err)
	}

	detections, err := p.processScenes(scenes, processor)
	if err != nil {
		return nil, err
	}
	p.logger.Info("scene processing complete",
		logging.String("episode", episodeID),
		logging.Int("scenes", len(scenes)),
		logging.Int("detections", len(detections)))

	p.corroborateVenues(reg, transcript, episodeID)

	result, err := runorder.Reconstruct(detections, runorder.Options{
		DedupWindowSeconds:     p.cfg.RunOrder.DedupWindowSeconds,
		DisagreementConfidence: p.cfg.RunOrder.DisagreementConfidence,
		MatchConfidence:        p.cfg.RunOrder.MatchConfidence,
	}, p.logger)
	if err != nil {
		return nil, Wrap(ErrValidation, "runorder", "reconstruct", "", err)
	}

	run := &store.Run{
		ID:        uuid.NewString(),
		EpisodeID: episodeID,
		CreatedAt: time.Now().UTC(),
		Result:    *result,
	}
	if p.store != nil {
		if err := p.store.SaveRun(ctx, run); err != nil {
			return nil, Wrap(ErrConfiguration, "store", "save", "", err)
		}
	}

	p.logger.Info("run complete",
		logging.String("run_id", run.ID),
		logging.String("episode", episodeID),
		logging.Int("matches", len(result.Matches)),
		logging.Float64("consensus", result.Consensus))
	return run, nil
}

// processScenes fans scene work out over a fixed-size pool and collects
// detections back in scene order.
func (p *Pipeline) processScenes(scenes []evidence.Scene, processor *detect.Processor) ([]detect.Detection, error) {
	pool, err := ants.NewPool(p.cfg.Workers.SceneWorkers)
	if err != nil {
		return nil, Wrap(ErrConfiguration, "pipeline", "workers", "create worker pool", err)
	}
	defer pool.Release()

	results := make([]*detect.Detection, len(scenes))
	var workers sync.WaitGroup
	for i, scene := range scenes {
		i, scene := i, scene
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			results[i] = processor.ProcessScene(scene)
		}); err != nil {
			workers.Done()
			return nil, Wrap(ErrConfiguration, "pipeline", "workers", "submit scene", err)
		}
	}
	workers.Wait()

	detections := make([]detect.Detection, 0, len(scenes))
	for _, detection := range results {
		if detection != nil {
			detections = append(detections, *detection)
		}
	}
	return detections, nil
}

// corroborateVenues scans transcript speech for stadium references. Venue
// hits never change scores or ordering; they are logged so a reviewer can
// cross-check a low-consensus run against what the commentators said.
func (p *Pipeline) corroborateVenues(reg *registry.Registry, transcript []evidence.Segment, episodeID string) {
	if len(reg.Venues) == 0 || len(transcript) == 0 {
		return
	}
	venues := match.NewVenueMatcher(reg.Venues, p.cfg.Matching, p.logger)
	logger := logging.NewComponentLogger(p.logger, "venues")
	for _, segment := range transcript {
		for _, hit := range venues.Match(segment.Text) {
			logger.Info("venue reference in commentary",
				logging.String("episode", episodeID),
				logging.String("stadium", hit.Stadium),
				logging.String("team", hit.Team),
				logging.Float64("confidence", hit.Confidence),
				logging.Float64("at", segment.Start))
		}
	}
}
