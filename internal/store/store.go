package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"rundown/internal/config"
	"rundown/internal/runorder"
)

// Store manages run persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the run database and verifies the schema.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := cfg.Paths.DatabasePath
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// SaveRun persists a run together with its flattened boundary rows.
func (s *Store) SaveRun(ctx context.Context, run *Run) error {
	resultJSON, err := json.Marshal(run.Result)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(
		ctx,
		`INSERT INTO runs (id, episode_id, created_at, consensus_confidence, result_json)
         VALUES (?, ?, ?, ?, ?)`,
		run.ID,
		run.EpisodeID,
		run.CreatedAt.UTC().Format(time.RFC3339Nano),
		run.Result.Consensus,
		string(resultJSON),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	for _, boundary := range run.Result.Matches {
		sources := make([]string, 0, len(boundary.Sources))
		for _, source := range boundary.Sources {
			sources = append(sources, string(source))
		}
		_, err = tx.ExecContext(
			ctx,
			`INSERT INTO boundaries (
                run_id, position, home_team, away_team, fixture_id,
                intro_start, highlights_start, highlights_end, post_match_end,
                confidence, sources
            ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			run.ID,
			boundary.Position,
			boundary.HomeTeam,
			boundary.AwayTeam,
			nullableString(boundary.FixtureID),
			boundary.IntroStart,
			boundary.HighlightsStart,
			boundary.HighlightsEnd,
			boundary.PostMatchEnd,
			boundary.Confidence,
			strings.Join(sources, ","),
		)
		if err != nil {
			return fmt.Errorf("insert boundary %d: %w", boundary.Position, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}

// GetRun fetches a run by identifier. Returns nil when no run matches.
func (s *Store) GetRun(ctx context.Context, id string) (*Run, error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT id, episode_id, created_at, result_json FROM runs WHERE id = ?`,
		id,
	)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get run: %w", err)
	}
	return run, nil
}

// LatestRun returns the most recent run for an episode, or nil when none exists.
func (s *Store) LatestRun(ctx context.Context, episodeID string) (*Run, error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT id, episode_id, created_at, result_json FROM runs
         WHERE episode_id = ? ORDER BY created_at DESC LIMIT 1`,
		episodeID,
	)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("latest run: %w", err)
	}
	return run, nil
}

// ListRuns returns summaries for all runs, newest first. An empty episodeID
// lists every episode.
func (s *Store) ListRuns(ctx context.Context, episodeID string) ([]RunSummary, error) {
	query := `SELECT r.id, r.episode_id, r.created_at, r.consensus_confidence, COUNT(b.run_id)
        FROM runs r LEFT JOIN boundaries b ON b.run_id = r.id`
	args := []any{}
	if episodeID != "" {
		query += ` WHERE r.episode_id = ?`
		args = append(args, episodeID)
	}
	query += ` GROUP BY r.id ORDER BY r.created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var summaries []RunSummary
	for rows.Next() {
		var summary RunSummary
		var createdAt string
		if err := rows.Scan(&summary.ID, &summary.EpisodeID, &createdAt, &summary.Consensus, &summary.Matches); err != nil {
			return nil, fmt.Errorf("scan run summary: %w", err)
		}
		summary.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}
		summaries = append(summaries, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return summaries, nil
}

func scanRun(row *sql.Row) (*Run, error) {
	var run Run
	var createdAt string
	var resultJSON string
	if err := row.Scan(&run.ID, &run.EpisodeID, &createdAt, &resultJSON); err != nil {
		return nil, err
	}
	parsed, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	run.CreatedAt = parsed

	var result runorder.Result
	if err := json.Unmarshal([]byte(resultJSON), &result); err != nil {
		return nil, fmt.Errorf("unmarshal result: %w", err)
	}
	run.Result = result
	return &run, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
