package snapshot

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
)

// CaptureFunc returns the current world state as a snapshot payload.
type CaptureFunc func() SnapshotV1

// Writer periodically writes snapshots and records them in an Index.
type Writer struct {
	dir     string
	every   uint64
	index   *Index
	capture CaptureFunc
}

// NewWriter creates a writer that snapshots every `every` ticks. every == 0 disables it.
// index may be nil.
func NewWriter(dir string, every int, index *Index, capture CaptureFunc) *Writer {
	if every < 0 {
		every = 0
	}
	return &Writer{dir: dir, every: uint64(every), index: index, capture: capture}
}

// OnTick writes a snapshot when tick is a multiple of the period.
// Errors are logged; the tick loop keeps running.
func (w *Writer) OnTick(tick uint64) {
	if w.every == 0 || tick == 0 || tick%w.every != 0 {
		return
	}
	if _, err := w.Save(context.Background(), tick); err != nil {
		slog.Error("snapshot failed", "tick", tick, "error", err)
	}
}

// Save captures and writes a snapshot for tick and returns its path.
func (w *Writer) Save(ctx context.Context, tick uint64) (string, error) {
	snap := w.capture()
	snap.Header = Header{Version: Version, Tick: tick}

	path := filepath.Join(w.dir, FileName(tick))
	if err := WriteSnapshot(path, snap); err != nil {
		return "", fmt.Errorf("writing snapshot: %w", err)
	}
	if w.index != nil {
		if err := w.index.Record(ctx, path, snap); err != nil {
			return path, err
		}
	}

	slog.Info("snapshot written",
		"tick", tick,
		"path", path,
		"actors", len(snap.Actors),
		"structures", len(snap.Structures))
	return path, nil
}
