// Package history persists finished scheduler runs and serves them over HTTP.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a run id does not exist.
var ErrNotFound = errors.New("run not found")

// timeLayout is fixed-width so created_at sorts lexicographically.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// Run is one persisted simulation run.
type Run struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Source    string    `json:"source"` // program directory or bundle path

	Quantum   int    `json:"quantum"`
	IOWait    int    `json:"io_wait"`
	Promotion string `json:"promotion"`
	Averages  string `json:"averages"`

	Processes       int     `json:"processes"`
	Switches        int     `json:"switches"`
	Instructions    int     `json:"instructions"`
	AvgSwitches     float64 `json:"avg_switches"`
	AvgInstructions float64 `json:"avg_instructions"`

	Trace string `json:"trace,omitempty"` // rendered log text
}

// NewRunID returns a fresh run identifier.
func NewRunID() string {
	return "run_" + uuid.New().String()
}

// SQLiteStore stores runs in SQLite.
type SQLiteStore struct {
	db  *sql.DB
	log *logrus.Entry
}

// NewSQLiteStore opens (or creates) a SQLite database at dbPath.
// Use ":memory:" for an in-memory database (useful in tests).
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dbPath, err)
	}
	// A single connection keeps ":memory:" databases shared across calls.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma wal: %w", err)
	}
	return &SQLiteStore{
		db:  db,
		log: logrus.WithField("component", "history"),
	}, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Migrate creates all required tables and indexes.
func (s *SQLiteStore) Migrate(ctx context.Context) error {
	s.log.Debug("migrate")
	return migrate(ctx, s.db)
}

// SaveRun inserts a run. An empty ID is replaced with NewRunID and a zero
// CreatedAt with the current time; both are written back to r.
func (s *SQLiteStore) SaveRun(ctx context.Context, r *Run) error {
	if r.ID == "" {
		r.ID = NewRunID()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	s.log.WithField("id", r.ID).Debug("insert run")

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, created_at, source, quantum, io_wait, promotion, averages,
			processes, switches, instructions, avg_switches, avg_instructions, trace)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.CreatedAt.UTC().Format(timeLayout), r.Source, r.Quantum, r.IOWait, r.Promotion, r.Averages,
		r.Processes, r.Switches, r.Instructions, r.AvgSwitches, r.AvgInstructions, r.Trace,
	)
	if err != nil {
		return fmt.Errorf("insert run %s: %w", r.ID, err)
	}
	return nil
}

const runColumns = `id, created_at, source, quantum, io_wait, promotion, averages,
	processes, switches, instructions, avg_switches, avg_instructions`

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner, extra ...any) (*Run, error) {
	var r Run
	var createdAt string
	dest := []any{&r.ID, &createdAt, &r.Source, &r.Quantum, &r.IOWait, &r.Promotion, &r.Averages,
		&r.Processes, &r.Switches, &r.Instructions, &r.AvgSwitches, &r.AvgInstructions}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	r.CreatedAt, _ = time.Parse(timeLayout, createdAt)
	return &r, nil
}

// GetRun returns the run with the given id, trace included.
func (s *SQLiteStore) GetRun(ctx context.Context, id string) (*Run, error) {
	s.log.WithField("id", id).Debug("select run")

	var traceText string
	row := s.db.QueryRowContext(ctx, `SELECT `+runColumns+`, trace FROM runs WHERE id = ?`, id)
	r, err := scanRun(row, &traceText)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("select run %s: %w", id, err)
	}
	r.Trace = traceText
	return r, nil
}

// ListRuns returns the most recent runs first, without traces.
// A limit of 0 or less returns every run.
func (s *SQLiteStore) ListRuns(ctx context.Context, limit int) ([]*Run, error) {
	s.log.WithField("limit", limit).Debug("list runs")

	query := `SELECT ` + runColumns + ` FROM runs ORDER BY created_at DESC, id`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
