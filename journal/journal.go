package journal

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/lixenwraith/iaus/core"
)

// InMemory opens a private database that vanishes on Close
const InMemory = ":memory:"

const schemaVersion = 1

const schema = `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS runs (
	run_id     TEXT PRIMARY KEY,
	label      TEXT,
	seed       INTEGER NOT NULL,
	population INTEGER NOT NULL,
	config     TEXT,
	started_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS decisions (
	run_id     TEXT NOT NULL,
	tick       INTEGER NOT NULL,
	actor      INTEGER NOT NULL,
	decision   INTEGER NOT NULL,
	name       TEXT NOT NULL,
	score      REAL NOT NULL,
	lock_ticks INTEGER NOT NULL,
	PRIMARY KEY (run_id, tick, actor),
	FOREIGN KEY (run_id) REFERENCES runs(run_id)
);
`

// ErrUnknownRun is returned when a run id has no record
var ErrUnknownRun = errors.New("unknown run")

// Entry is one recorded evaluation
type Entry struct {
	Tick     uint32
	Actor    core.Entity
	Decision int
	Name     string
	Score    float64
	Lock     int
}

// Meta describes a run at creation
type Meta struct {
	Label      string
	Seed       uint64
	Population int
	Config     string // Serialized configuration the run was started with
}

// Run is a stored run with its entry count
type Run struct {
	ID        string
	Meta      Meta
	StartedAt time.Time
	Entries   int
}

// Journal is a sqlite-backed decision log
type Journal struct {
	db *sql.DB
}

// Open opens or creates the journal at path and applies the schema
func Open(path string) (*Journal, error) {
	if path != InMemory {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("create journal dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// In-memory databases are private to one connection
	db.SetMaxOpenConns(1)

	j := &Journal{db: db}
	if err := j.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return j, nil
}

func (j *Journal) migrate() error {
	if _, err := j.db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return fmt.Errorf("pragma wal: %w", err)
	}
	if _, err := j.db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := j.db.Exec(schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	var v int
	err := j.db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&v)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		if _, err := j.db.Exec("INSERT INTO schema_version(version) VALUES(?)", schemaVersion); err != nil {
			return fmt.Errorf("set schema version: %w", err)
		}
		return nil
	case err != nil:
		return fmt.Errorf("read schema version: %w", err)
	case v != schemaVersion:
		return fmt.Errorf("unsupported schema version %d", v)
	}
	return nil
}

// Close closes the database
func (j *Journal) Close() error {
	return j.db.Close()
}

// BeginRun registers a new run and returns its id
func (j *Journal) BeginRun(meta Meta) (string, error) {
	id := uuid.New().String()
	_, err := j.db.Exec(
		`INSERT INTO runs (run_id, label, seed, population, config, started_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		id, meta.Label, int64(meta.Seed), meta.Population, meta.Config,
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}
	return id, nil
}

// Record appends entries to a run in one transaction
func (j *Journal) Record(runID string, entries []Entry) error {
	if len(entries) == 0 {
		return nil
	}
	tx, err := j.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(
		`INSERT INTO decisions (run_id, tick, actor, decision, name, score, lock_ticks)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, e := range entries {
		if _, err := stmt.Exec(runID, e.Tick, uint32(e.Actor), e.Decision, e.Name, e.Score, e.Lock); err != nil {
			return fmt.Errorf("insert tick %d actor %d: %w", e.Tick, e.Actor, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Entries returns a run's entries ordered by tick then actor
func (j *Journal) Entries(runID string) ([]Entry, error) {
	rows, err := j.db.Query(
		`SELECT tick, actor, decision, name, score, lock_ticks FROM decisions
		 WHERE run_id = ? ORDER BY tick, actor`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var actor uint32
		if err := rows.Scan(&e.Tick, &actor, &e.Decision, &e.Name, &e.Score, &e.Lock); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		e.Actor = core.Entity(actor)
		out = append(out, e)
	}
	return out, rows.Err()
}

// Runs lists stored runs oldest first
func (j *Journal) Runs() ([]Run, error) {
	rows, err := j.db.Query(
		`SELECT r.run_id, r.label, r.seed, r.population, r.config, r.started_at, COUNT(d.tick)
		 FROM runs r LEFT JOIN decisions d ON d.run_id = r.run_id
		 GROUP BY r.run_id ORDER BY r.started_at, r.rowid`,
	)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var r Run
		var label, config sql.NullString
		var seed int64
		var started string
		if err := rows.Scan(&r.ID, &label, &seed, &r.Meta.Population, &config, &started, &r.Entries); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.Meta.Label = nullStr(label)
		r.Meta.Config = nullStr(config)
		r.Meta.Seed = uint64(seed)
		if r.StartedAt, err = time.Parse(time.RFC3339Nano, started); err != nil {
			return nil, fmt.Errorf("parse start of run %s: %w", r.ID, err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Run returns one stored run
func (j *Journal) Run(runID string) (Run, error) {
	runs, err := j.Runs()
	if err != nil {
		return Run{}, err
	}
	for _, r := range runs {
		if r.ID == runID {
			return r, nil
		}
	}
	return Run{}, fmt.Errorf("run %s: %w", runID, ErrUnknownRun)
}

// Writer binds a run id for callers that record tick by tick
func (j *Journal) Writer(runID string) *RunWriter {
	return &RunWriter{j: j, runID: runID}
}

// RunWriter appends to a single run
type RunWriter struct {
	j     *Journal
	runID string
}

// RunID returns the bound run
func (w *RunWriter) RunID() string {
	return w.runID
}

// Record appends one tick's entries
func (w *RunWriter) Record(entries []Entry) error {
	return w.j.Record(w.runID, entries)
}

func nullStr(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}
