package store

import (
	"time"

	"rundown/internal/runorder"
)

// Run is a persisted reconstruction run for one episode.
type Run struct {
	ID        string          `json:"id"`
	EpisodeID string          `json:"episode_id"`
	CreatedAt time.Time       `json:"created_at"`
	Result    runorder.Result `json:"result"`
}

// RunSummary is the listing view of a run without the full result document.
type RunSummary struct {
	ID        string    `json:"id"`
	EpisodeID string    `json:"episode_id"`
	CreatedAt time.Time `json:"created_at"`
	Consensus float64   `json:"consensus_confidence"`
	Matches   int       `json:"matches"`
}
