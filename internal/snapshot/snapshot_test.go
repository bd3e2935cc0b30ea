package snapshot

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/herobrine/internal/model"
)

func sampleSnapshot(tick uint64) SnapshotV1 {
	return SnapshotV1{
		Header:           Header{Version: Version, Tick: tick},
		Seed:             42,
		Difficulty:       "hard",
		Weather:          "thunder",
		WorldBossEnabled: true,
		Actors: []model.ActorRecord{
			{ObjectID: 0x20000001, Kind: "herobrine_mage", Pos: model.NewCoordinate(1, 64, 2), Health: 40,
				IllusionCastingInterval: 12, WeakenCastingInterval: 250, WarpCastingInterval: 3},
			{ObjectID: 0x20000002, Kind: "infected_mooshroom", Pos: model.NewCoordinate(3, 64, 4), Health: 10, Variant: "brown"},
		},
		Structures: []model.StructurePlacement{
			{Template: "herobrine_statue", Origin: model.NewCoordinate(8, 70, 8), Rotation: model.RotationClockwise90},
		},
	}
}

func TestWriteReadSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName(120))
	snap := sampleSnapshot(120)

	require.NoError(t, WriteSnapshot(path, snap))

	got, err := ReadSnapshot(path)
	require.NoError(t, err)
	assert.Equal(t, snap, got)

	h, err := ReadHeader(path)
	require.NoError(t, err)
	assert.Equal(t, Header{Version: Version, Tick: 120}, h)
}

func TestReadSnapshot_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := ReadSnapshot(filepath.Join(dir, "missing.snap.zst"))
	assert.Error(t, err)

	garbage := filepath.Join(dir, "garbage.snap.zst")
	require.NoError(t, os.WriteFile(garbage, []byte("not zstd"), 0o644))
	_, err = ReadSnapshot(garbage)
	assert.Error(t, err)

	future := filepath.Join(dir, "future.snap.zst")
	snap := sampleSnapshot(1)
	snap.Header.Version = Version + 1
	require.NoError(t, WriteSnapshot(future, snap))
	_, err = ReadSnapshot(future)
	assert.ErrorContains(t, err, "unsupported version")
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "000000006000.snap.zst", FileName(6000))
}

func TestIndex(t *testing.T) {
	ctx := context.Background()
	idx, err := OpenIndex(filepath.Join(t.TempDir(), "index.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = idx.Close() })

	_, err = idx.Latest(ctx)
	assert.ErrorIs(t, err, ErrNoSnapshot)

	require.NoError(t, idx.Record(ctx, "a", sampleSnapshot(200)))
	require.NoError(t, idx.Record(ctx, "b", sampleSnapshot(100)))
	require.NoError(t, idx.Record(ctx, "c", sampleSnapshot(200)))

	latest, err := idx.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, Entry{Tick: 200, Path: "c", Seed: 42, Actors: 2, Structures: 1, WorldBoss: true}, latest)

	all, err := idx.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, uint64(100), all[0].Tick)
	assert.Equal(t, "b", all[0].Path)
}

func TestOpenIndex_EmptyPath(t *testing.T) {
	_, err := OpenIndex("")
	assert.Error(t, err)
}

func TestWriter_OnTick(t *testing.T) {
	dir := t.TempDir()
	idx, err := OpenIndex(filepath.Join(dir, "index.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = idx.Close() })

	captures := 0
	w := NewWriter(dir, 10, idx, func() SnapshotV1 {
		captures++
		return sampleSnapshot(0)
	})

	for tick := uint64(0); tick <= 25; tick++ {
		w.OnTick(tick)
	}
	assert.Equal(t, 2, captures, "ticks 10 and 20")

	entries, err := idx.List(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, filepath.Join(dir, FileName(20)), entries[1].Path)

	snap, err := ReadSnapshot(entries[1].Path)
	require.NoError(t, err)
	assert.Equal(t, uint64(20), snap.Header.Tick)
}

func TestWriter_Disabled(t *testing.T) {
	called := false
	w := NewWriter(t.TempDir(), 0, nil, func() SnapshotV1 {
		called = true
		return SnapshotV1{}
	})
	w.OnTick(6000)
	assert.False(t, called)
}
