package highscore

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"

	"github.com/plus3/blockfall/game"
)

var migrations = []struct {
	name string
	sql  string
}{
	{"001_results", `
CREATE TABLE IF NOT EXISTS results (
	id        TEXT PRIMARY KEY,
	score     INTEGER NOT NULL,
	level     INTEGER NOT NULL,
	lines     INTEGER NOT NULL,
	played_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS results_score ON results(score DESC, played_at);`},
	{"002_best", `
CREATE TABLE IF NOT EXISTS best (
	id         INTEGER PRIMARY KEY CHECK (id = 1),
	score      INTEGER NOT NULL,
	updated_at TIMESTAMP NOT NULL
);`},
}

// Entry is one recorded game.
type Entry struct {
	ID       uuid.UUID
	Score    int
	Level    int
	Lines    int
	PlayedAt time.Time
}

// SQLiteStore keeps the best score and the history of finished games in an
// SQLite database. It implements game.ScoreKeeper and game.ResultRecorder.
type SQLiteStore struct {
	db     *sql.DB
	logger zerolog.Logger

	// Now stamps recorded games; tests replace it.
	Now func() time.Time
}

// OpenSQLite opens (creating if needed) the database at path and applies
// any pending migrations.
func OpenSQLite(path string, logger zerolog.Logger) (*SQLiteStore, error) {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}

	s := &SQLiteStore{db: db, logger: logger, Now: time.Now}
	if err := s.migrate(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	for _, m := range migrations {
		var done int
		err := s.db.QueryRowContext(ctx, `SELECT 1 FROM _migrations WHERE name=?`, m.name).Scan(&done)
		if err == nil {
			continue
		}
		if err != sql.ErrNoRows {
			return fmt.Errorf("query _migrations: %w", err)
		}

		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, m.sql); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", m.name, err)
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO _migrations(name) VALUES (?)`, m.name); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", m.name, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", m.name, err)
		}
		s.logger.Debug().Str("migration", m.name).Msg("applied")
	}
	return nil
}

// LoadHighScore returns the larger of the saved best score and the best
// recorded game, or 0 if the database cannot be read.
func (s *SQLiteStore) LoadHighScore() int {
	best, err := s.Best(context.Background())
	if err != nil {
		s.logger.Warn().Err(err).Msg("cannot read high score")
		return 0
	}
	return best
}

// Best is LoadHighScore with the error exposed.
func (s *SQLiteStore) Best(ctx context.Context) (int, error) {
	var best int
	err := s.db.QueryRowContext(ctx, `
SELECT MAX(
	COALESCE((SELECT score FROM best WHERE id = 1), 0),
	COALESCE((SELECT MAX(score) FROM results), 0)
)`).Scan(&best)
	if err != nil {
		return 0, fmt.Errorf("best score: %w", err)
	}
	return best, nil
}

// SaveHighScore raises the saved best score. Lower scores are ignored.
func (s *SQLiteStore) SaveHighScore(score int) error {
	_, err := s.db.Exec(`
INSERT INTO best(id, score, updated_at) VALUES (1, ?, ?)
ON CONFLICT(id) DO UPDATE SET score = excluded.score, updated_at = excluded.updated_at
WHERE excluded.score > best.score`, score, s.Now().UTC())
	if err != nil {
		return fmt.Errorf("save high score: %w", err)
	}
	return nil
}

// RecordResult appends a finished game to the history.
func (s *SQLiteStore) RecordResult(result game.Result) error {
	_, err := s.Record(context.Background(), result)
	return err
}

// Record stores result under a fresh id and returns the entry.
func (s *SQLiteStore) Record(ctx context.Context, result game.Result) (Entry, error) {
	entry := Entry{
		ID:       uuid.New(),
		Score:    result.Score,
		Level:    result.Level,
		Lines:    result.Lines,
		PlayedAt: s.Now().UTC(),
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO results(id, score, level, lines, played_at) VALUES (?, ?, ?, ?, ?)`,
		entry.ID.String(), entry.Score, entry.Level, entry.Lines, entry.PlayedAt,
	)
	if err != nil {
		return Entry{}, fmt.Errorf("record result: %w", err)
	}
	return entry, nil
}

// Top returns up to n games, best first. Ties go to the earlier game.
func (s *SQLiteStore) Top(ctx context.Context, n int) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, score, level, lines, played_at FROM results ORDER BY score DESC, played_at ASC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("top scores: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var (
			e  Entry
			id string
		)
		if err := rows.Scan(&id, &e.Score, &e.Level, &e.Lines, &e.PlayedAt); err != nil {
			return nil, err
		}
		if e.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("result id %q: %w", id, err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Count returns the number of recorded games.
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM results`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
