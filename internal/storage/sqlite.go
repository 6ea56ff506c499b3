// Package storage provides SQLite-based persistence for round rankings.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// sqliteTime is the layout SQLite uses for CURRENT_TIMESTAMP.
const sqliteTime = "2006-01-02 15:04:05"

// DefaultUsername is recorded when a round has no player name.
const DefaultUsername = "Player"

// Store manages the SQLite database connection for ranking persistence.
type Store struct {
	db *sql.DB
}

// Ranking is one recorded round result.
type Ranking struct {
	ID        int64
	Level     string
	Username  string
	Score     int
	RoundID   string
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS rankings (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level TEXT NOT NULL,
			username TEXT NOT NULL,
			score INTEGER NOT NULL,
			round_id TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rankings_level ON rankings(level);
		CREATE INDEX IF NOT EXISTS idx_rankings_top ON rankings(level, score DESC);
		CREATE INDEX IF NOT EXISTS idx_rankings_user ON rankings(username);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveScore records a round result for the given level.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(level, username string, score int, roundID string) (int64, error) {
	if username == "" {
		username = DefaultUsername
	}
	result, err := s.db.Exec(
		"INSERT INTO rankings (level, username, score, round_id) VALUES (?, ?, ?, ?)",
		level, username, score, roundID,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the top N rankings for the given level.
// Results are ordered by score descending, earlier rounds first on ties.
func (s *Store) TopScores(level string, limit int) ([]Ranking, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, level, username, score, round_id, created_at
		 FROM rankings
		 WHERE level = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		level, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	return scanRankings(rows)
}

// AllScores retrieves every ranking for the given level (no limit).
func (s *Store) AllScores(level string) ([]Ranking, error) {
	rows, err := s.db.Query(
		`SELECT id, level, username, score, round_id, created_at
		 FROM rankings
		 WHERE level = ?
		 ORDER BY score DESC, id ASC`,
		level,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	return scanRankings(rows)
}

// BestByUser returns each player's best score on a level, highest first.
func (s *Store) BestByUser(level string, limit int) ([]Ranking, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT MIN(id), level, username, MAX(score), '', MAX(created_at)
		 FROM rankings
		 WHERE level = ?
		 GROUP BY username
		 ORDER BY MAX(score) DESC, username ASC
		 LIMIT ?`,
		level, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best scores: %w", err)
	}
	return scanRankings(rows)
}

// HighScore returns the highest score for the given level.
// Returns 0 if no scores exist.
func (s *Store) HighScore(level string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM rankings WHERE level = ?",
		level,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ByRound returns the ranking recorded for a round, or nil if none was.
func (s *Store) ByRound(roundID string) (*Ranking, error) {
	rows, err := s.db.Query(
		`SELECT id, level, username, score, round_id, created_at
		 FROM rankings
		 WHERE round_id = ?
		 LIMIT 1`,
		roundID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query round: %w", err)
	}
	entries, err := scanRankings(rows)
	if err != nil || len(entries) == 0 {
		return nil, err
	}
	return &entries[0], nil
}

// ClearScores deletes all rankings for the given level.
func (s *Store) ClearScores(level string) error {
	_, err := s.db.Exec("DELETE FROM rankings WHERE level = ?", level)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// LevelStats contains aggregated statistics for a level.
type LevelStats struct {
	Level      string
	Rounds     int
	Players    int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

// GetLevelStats retrieves aggregated statistics for a specific level.
func (s *Store) GetLevelStats(level string) (*LevelStats, error) {
	stats := &LevelStats{Level: level}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COUNT(DISTINCT username), COALESCE(MAX(score), 0),
		        COALESCE(AVG(score), 0), COALESCE(SUM(score), 0), MAX(created_at)
		 FROM rankings WHERE level = ?`,
		level,
	).Scan(&stats.Rounds, &stats.Players, &stats.HighScore, &stats.AvgScore, &stats.TotalScore, &lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get level stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// GetAllLevelStats retrieves statistics for every level that has been played.
func (s *Store) GetAllLevelStats() (map[string]*LevelStats, error) {
	rows, err := s.db.Query(
		`SELECT level, COUNT(*), COUNT(DISTINCT username), MAX(score), AVG(score), SUM(score), MAX(created_at)
		 FROM rankings
		 GROUP BY level`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all level stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*LevelStats)
	for rows.Next() {
		var ls LevelStats
		var lastPlayed any
		if err := rows.Scan(&ls.Level, &ls.Rounds, &ls.Players, &ls.HighScore, &ls.AvgScore, &ls.TotalScore, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		ls.LastPlayed = parseTime(lastPlayed)
		stats[ls.Level] = &ls
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// scanRankings reads ranking rows and closes them.
func scanRankings(rows *sql.Rows) ([]Ranking, error) {
	defer rows.Close()

	var entries []Ranking
	for rows.Next() {
		var e Ranking
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Level, &e.Username, &e.Score, &e.RoundID, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTime, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
