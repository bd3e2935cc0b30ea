package snapshot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// ErrNoSnapshot is returned by Latest when the index is empty.
var ErrNoSnapshot = errors.New("no snapshot recorded")

// Entry is one indexed snapshot.
type Entry struct {
	Tick       uint64
	Path       string
	Seed       int64
	Actors     int
	Structures int
	WorldBoss  bool
}

// Index is a SQLite table of written snapshots.
type Index struct {
	db *sql.DB
}

// OpenIndex opens or creates the index at path.
func OpenIndex(path string) (*Index, error) {
	if path == "" {
		return nil, fmt.Errorf("empty index path")
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("creating index dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite index: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	for _, stmt := range []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
		`CREATE TABLE IF NOT EXISTS snapshots (
			tick INTEGER PRIMARY KEY,
			path TEXT NOT NULL,
			seed INTEGER NOT NULL,
			actors INTEGER NOT NULL,
			structures INTEGER NOT NULL,
			world_boss INTEGER NOT NULL
		);`,
	} {
		if _, err := db.Exec(stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("init sqlite index: %w", err)
		}
	}
	return &Index{db: db}, nil
}

// Record adds or replaces the entry for snap's tick.
func (x *Index) Record(ctx context.Context, path string, snap SnapshotV1) error {
	_, err := x.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO snapshots(tick, path, seed, actors, structures, world_boss) VALUES(?,?,?,?,?,?)`,
		int64(snap.Header.Tick), path, snap.Seed, len(snap.Actors), len(snap.Structures), snap.WorldBossEnabled)
	if err != nil {
		return fmt.Errorf("record snapshot tick %d: %w", snap.Header.Tick, err)
	}
	return nil
}

// Latest returns the entry with the highest tick.
func (x *Index) Latest(ctx context.Context) (Entry, error) {
	row := x.db.QueryRowContext(ctx,
		`SELECT tick, path, seed, actors, structures, world_boss FROM snapshots ORDER BY tick DESC LIMIT 1`)
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, ErrNoSnapshot
	}
	return e, err
}

// List returns all entries ordered by tick.
func (x *Index) List(ctx context.Context) ([]Entry, error) {
	rows, err := x.db.QueryContext(ctx,
		`SELECT tick, path, seed, actors, structures, world_boss FROM snapshots ORDER BY tick`)
	if err != nil {
		return nil, fmt.Errorf("query snapshots: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Close closes the database.
func (x *Index) Close() error {
	return x.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(s scanner) (Entry, error) {
	var (
		e    Entry
		tick int64
	)
	if err := s.Scan(&tick, &e.Path, &e.Seed, &e.Actors, &e.Structures, &e.WorldBoss); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Entry{}, err
		}
		return Entry{}, fmt.Errorf("scan snapshot row: %w", err)
	}
	e.Tick = uint64(tick)
	return e, nil
}
