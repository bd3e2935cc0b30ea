// Package snapshot writes and reads compressed world snapshots and indexes them in SQLite.
package snapshot

import (
	"bufio"
	"encoding/gob"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"

	"github.com/udisondev/herobrine/internal/model"
)

// Version is the current snapshot format version.
const Version = 1

// Header is written as a plain JSON line before the gob payload.
type Header struct {
	Version int    `json:"version"`
	Tick    uint64 `json:"tick"`
}

// SnapshotV1 is the full snapshot payload.
type SnapshotV1 struct {
	Header Header `json:"header"`

	Seed             int64  `json:"seed"`
	Difficulty       string `json:"difficulty"`
	Weather          string `json:"weather"`
	WorldBossEnabled bool   `json:"world_boss_enabled"`

	Actors     []model.ActorRecord        `json:"actors"`
	Structures []model.StructurePlacement `json:"structures,omitempty"`
}

// FileName returns the snapshot file name for tick.
func FileName(tick uint64) string {
	return fmt.Sprintf("%012d.snap.zst", tick)
}

// WriteSnapshot writes snap to path, creating parent directories.
func WriteSnapshot(path string, snap SnapshotV1) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating snapshot dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("opening snapshot %s: %w", path, err)
	}
	defer f.Close()

	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return fmt.Errorf("zstd writer: %w", err)
	}

	bw := bufio.NewWriterSize(enc, 64*1024)
	hb, err := json.Marshal(snap.Header)
	if err != nil {
		_ = enc.Close()
		return fmt.Errorf("marshal header: %w", err)
	}
	if _, err := bw.Write(append(hb, '\n')); err != nil {
		_ = enc.Close()
		return fmt.Errorf("write header: %w", err)
	}
	if err := gob.NewEncoder(bw).Encode(&snap); err != nil {
		_ = enc.Close()
		return fmt.Errorf("gob encode: %w", err)
	}
	if err := bw.Flush(); err != nil {
		_ = enc.Close()
		return fmt.Errorf("flush snapshot: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("close zstd writer: %w", err)
	}
	return f.Sync()
}

// ReadHeader reads only the header line of a snapshot.
func ReadHeader(path string) (Header, error) {
	var h Header
	err := withReader(path, func(br *bufio.Reader) error {
		line, err := br.ReadBytes('\n')
		if err != nil {
			return fmt.Errorf("read header: %w", err)
		}
		if err := json.Unmarshal(line, &h); err != nil {
			return fmt.Errorf("decode header: %w", err)
		}
		return nil
	})
	return h, err
}

// ReadSnapshot reads a snapshot written by WriteSnapshot.
func ReadSnapshot(path string) (SnapshotV1, error) {
	var snap SnapshotV1
	err := withReader(path, func(br *bufio.Reader) error {
		// the gob payload carries the header too
		if _, err := br.ReadBytes('\n'); err != nil {
			return fmt.Errorf("read header: %w", err)
		}
		if err := gob.NewDecoder(br).Decode(&snap); err != nil {
			return fmt.Errorf("gob decode: %w", err)
		}
		return nil
	})
	if err != nil {
		return snap, err
	}
	if snap.Header.Version != Version {
		return snap, fmt.Errorf("snapshot %s: unsupported version %d", path, snap.Header.Version)
	}
	return snap, nil
}

func withReader(path string, fn func(*bufio.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening snapshot %s: %w", path, err)
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return fmt.Errorf("zstd reader: %w", err)
	}
	defer dec.Close()

	return fn(bufio.NewReaderSize(dec, 64*1024))
}
