// internal/results/store.go
//
// Results log: one row per finished round, plus aggregate statistics.
// Only outcomes are kept; nothing here can resume a round.

package results

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/robalobadob/wordle-engine/internal/game"
)

// ErrUnfinished is returned when recording a round that is still in progress.
var ErrUnfinished = errors.New("results: round not finished")

// Entry is one finished round.
type Entry struct {
	RoundID     string    `json:"roundId"`
	Mode        string    `json:"mode"`
	Outcome     string    `json:"outcome"` // won | lost
	Attempts    int       `json:"attempts"`
	MaxAttempts int       `json:"maxAttempts"`
	FinishedAt  time.Time `json:"finishedAt"`
}

// FromRound builds an Entry for a finished round.
func FromRound(id, mode string, r *game.Round, at time.Time) (Entry, error) {
	over, out := r.IsOver()
	if !over {
		return Entry{}, ErrUnfinished
	}
	if mode == "" {
		mode = "normal"
	}
	return Entry{
		RoundID:     id,
		Mode:        mode,
		Outcome:     out.State.String(),
		Attempts:    r.Attempts(),
		MaxAttempts: r.MaxAttempts(),
		FinishedAt:  at.UTC(),
	}, nil
}

// Summary aggregates the log.
type Summary struct {
	Played        int         `json:"played"`
	Wins          int         `json:"wins"`
	WinRate       float64     `json:"winRate"` // 0..1
	CurrentStreak int         `json:"currentStreak"`
	BestStreak    int         `json:"bestStreak"`
	Distribution  map[int]int `json:"distribution"` // attempts used → wins
}

// Recorder accepts finished rounds.
type Recorder interface {
	Record(ctx context.Context, e Entry) error
}

// Store is the SQLite-backed results log.
type Store struct{ db *sql.DB }

// Open opens the database at dsn and applies migrations.
func Open(dsn string) (*Store, error) {
	db, err := openDB(dsn)
	if err != nil {
		return nil, fmt.Errorf("open results db: %w", err)
	}
	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate results db: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error { return s.db.Close() }

// Record inserts e. A round ID already present is ignored.
func (s *Store) Record(ctx context.Context, e Entry) error {
	if e.Outcome != game.Won.String() && e.Outcome != game.Lost.String() {
		return fmt.Errorf("%w: outcome %q", ErrUnfinished, e.Outcome)
	}
	if e.FinishedAt.IsZero() {
		e.FinishedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx, `
        INSERT OR IGNORE INTO rounds
            (round_id, mode, outcome, attempts, max_attempts, finished_at)
        VALUES (?, ?, ?, ?, ?, ?)`,
		e.RoundID, e.Mode, e.Outcome, e.Attempts, e.MaxAttempts, e.FinishedAt.Format(time.RFC3339Nano),
	)
	return err
}

// Recent returns the latest entries, newest first. Default limit is 20.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
        SELECT round_id, mode, outcome, attempts, max_attempts, finished_at
        FROM rounds
        ORDER BY id DESC
        LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Entry, 0, limit)
	for rows.Next() {
		var e Entry
		var at string
		if err := rows.Scan(&e.RoundID, &e.Mode, &e.Outcome, &e.Attempts, &e.MaxAttempts, &at); err != nil {
			return nil, err
		}
		e.FinishedAt, _ = time.Parse(time.RFC3339Nano, at)
		out = append(out, e)
	}
	return out, rows.Err()
}

// Summary computes totals, streaks and the guess distribution.
func (s *Store) Summary(ctx context.Context) (Summary, error) {
	sum := Summary{Distribution: map[int]int{}}

	rows, err := s.db.QueryContext(ctx, `SELECT outcome, attempts FROM rounds ORDER BY id ASC`)
	if err != nil {
		return sum, err
	}
	defer rows.Close()

	for rows.Next() {
		var outcome string
		var attempts int
		if err := rows.Scan(&outcome, &attempts); err != nil {
			return sum, err
		}
		sum.Played++
		if outcome == game.Won.String() {
			sum.Wins++
			sum.Distribution[attempts]++
			sum.CurrentStreak++
			if sum.CurrentStreak > sum.BestStreak {
				sum.BestStreak = sum.CurrentStreak
			}
		} else {
			sum.CurrentStreak = 0
		}
	}
	if err := rows.Err(); err != nil {
		return sum, err
	}
	if sum.Played > 0 {
		sum.WinRate = float64(sum.Wins) / float64(sum.Played)
	}
	return sum, nil
}

// Log is the read/write view of the results log used by the HTTP surface.
type Log interface {
	Recorder
	Summary(ctx context.Context) (Summary, error)
	Recent(ctx context.Context, limit int) ([]Entry, error)
}

var _ Log = (*Store)(nil)
