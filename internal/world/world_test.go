package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/herobrine/internal/model"
)

// flatWorld returns a world with one loaded chunk at (0,0): stone up to y=63.
func flatWorld(t *testing.T, opts ...Option) *World {
	t.Helper()
	w := New(opts...)
	ch := NewChunk(ChunkPos{})
	for lz := int32(0); lz < ChunkSize; lz++ {
		for lx := int32(0); lx < ChunkSize; lx++ {
			for y := int32(0); y <= 63; y++ {
				ch.SetBlock(lx, y, lz, model.BlockStone)
			}
		}
	}
	w.LoadChunk(ch)
	return w
}

func TestWorld_UnloadedQueries(t *testing.T) {
	w := flatWorld(t)
	far := model.NewCoordinate(1000, 64, 1000)

	_, err := w.Block(far)
	assert.ErrorIs(t, err, ErrUnloaded)
	_, err = w.SkyLight(far)
	assert.ErrorIs(t, err, ErrUnloaded)
	_, err = w.Biome(far)
	assert.ErrorIs(t, err, ErrUnloaded)
	_, err = w.CanSeeSky(far)
	assert.ErrorIs(t, err, ErrUnloaded)

	_, err = w.Block(model.NewCoordinate(0, 256, 0))
	assert.ErrorIs(t, err, ErrOutOfBounds)
	_, err = w.Block(model.NewCoordinate(0, -1, 0))
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestWorld_SkyLight(t *testing.T) {
	w := flatWorld(t)
	open := model.NewCoordinate(4, 64, 4)

	sky, err := w.SkyLight(open)
	require.NoError(t, err)
	assert.Equal(t, int32(MaxLight), sky)

	// roof over the cell
	require.NoError(t, w.SetBlock(open.Up(3), model.BlockStone))
	sky, err = w.SkyLight(open)
	require.NoError(t, err)
	assert.Equal(t, int32(0), sky)

	seen, err := w.CanSeeSky(open)
	require.NoError(t, err)
	assert.False(t, seen)

	// glass does not block the sky
	require.NoError(t, w.SetBlock(open.Up(3), model.BlockGlass))
	seen, err = w.CanSeeSky(open)
	require.NoError(t, err)
	assert.True(t, seen)
}

func TestWorld_BlockLight(t *testing.T) {
	w := flatWorld(t)
	torch := model.NewCoordinate(8, 64, 8)
	require.NoError(t, w.SetBlock(torch, model.BlockTorch))

	l, err := w.BlockLight(torch)
	require.NoError(t, err)
	assert.Equal(t, int32(14), l)

	l, err = w.BlockLight(torch.Offset(3, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, int32(11), l)

	// removing the torch removes the light
	require.NoError(t, w.SetBlock(torch, model.BlockAir))
	l, err = w.BlockLight(torch.Offset(3, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, int32(0), l)
}

func TestWorld_StormLight(t *testing.T) {
	w := flatWorld(t)
	c := model.NewCoordinate(2, 64, 2)

	l, err := w.StormLight(c, 10)
	require.NoError(t, err)
	assert.Equal(t, int32(5), l, "open sky 15 minus 10")

	// a slab reads light from its neighbours
	slab := model.NewCoordinate(2, 63, 2)
	require.NoError(t, w.SetBlock(slab, model.BlockSlab))
	l, err = w.StormLight(slab, 10)
	require.NoError(t, err)
	assert.Equal(t, int32(5), l)
}

func TestWorld_Biome(t *testing.T) {
	w := flatWorld(t)
	c := model.NewCoordinate(5, 64, 5)

	require.NoError(t, w.SetBiome(c, model.BiomeMountains))
	tags, err := w.Biome(c)
	require.NoError(t, err)
	assert.True(t, tags.Has(model.TagMountain))
	assert.False(t, tags.Has(model.TagHills))
}

func TestWorld_Actors(t *testing.T) {
	w := flatWorld(t)

	a := model.NewActor(0, model.KindHerobrineMage, model.NewLocation(1, 64, 1, 0))
	id, err := w.AddActor(a)
	require.NoError(t, err)
	assert.NotZero(t, id)
	assert.Equal(t, 1, w.ActorCount())

	got, ok := w.Actor(id)
	require.True(t, ok)
	assert.Same(t, a, got)

	require.NoError(t, w.MoveActor(id, model.NewCoordinate(3, 70, 3)))
	assert.Equal(t, model.NewCoordinate(3, 70, 3), a.Pos())

	w.RemoveActor(id)
	assert.Equal(t, 0, w.ActorCount())
	assert.True(t, a.IsRemoved())
	assert.ErrorIs(t, w.MoveActor(id, model.NewCoordinate(0, 0, 0)), ErrActorNotFound)

	// removing twice is a no-op
	w.RemoveActor(id)
	assert.Equal(t, 0, w.ActorCount())
}

func TestWorld_AddActorUnloaded(t *testing.T) {
	w := flatWorld(t)
	a := model.NewActor(0, model.KindHerobrineMage, model.NewLocation(500, 64, 500, 0))

	_, err := w.AddActor(a)
	assert.ErrorIs(t, err, ErrUnloaded)
}

func TestWorld_DropItems(t *testing.T) {
	w := flatWorld(t)
	w.DropItems(model.ItemRedMushroom, 5, model.NewCoordinate(1, 65, 1))

	items := w.Items()
	require.Len(t, items, 5)
	for _, it := range items {
		assert.Equal(t, model.ItemRedMushroom, it.Item)
		assert.Equal(t, int32(1), it.Count)
	}
}

func TestWorld_EmitWithoutSink(t *testing.T) {
	w := flatWorld(t)
	assert.NotPanics(t, func() { w.Emit(model.Cue{Kind: model.CueExplosion}) })

	var got []model.Cue
	w.SetCueSink(model.CueSinkFunc(func(c model.Cue) { got = append(got, c) }))
	w.Emit(model.Cue{Kind: model.CueExplosion})
	assert.Len(t, got, 1)
}

func TestGenerator_Deterministic(t *testing.T) {
	g1 := NewGenerator(42)
	g2 := NewGenerator(42)
	pos := ChunkPos{X: 3, Z: -2}

	a, b := g1.Generate(pos), g2.Generate(pos)
	for lz := int32(0); lz < ChunkSize; lz++ {
		for lx := int32(0); lx < ChunkSize; lx++ {
			require.Equal(t, a.TopSolid(lx, lz), b.TopSolid(lx, lz))
			require.Equal(t, a.Biome(lx, lz), b.Biome(lx, lz))
		}
	}
	assert.Equal(t, model.BlockBedrock, a.Block(0, 0, 0))
}

func TestChunkPosOf_Negative(t *testing.T) {
	assert.Equal(t, ChunkPos{X: -1, Z: 0}, ChunkPosOf(model.NewCoordinate(-1, 0, 15)))
	assert.Equal(t, ChunkPos{X: 0, Z: -1}, ChunkPosOf(model.NewCoordinate(0, 0, -16)))
	assert.Equal(t, ChunkPos{X: -2, Z: 1}, ChunkPosOf(model.NewCoordinate(-17, 0, 16)))
}

func TestWorld_SurfaceYAndChunks(t *testing.T) {
	w := flatWorld(t)
	w.LoadChunk(NewChunk(ChunkPos{X: -1, Z: 2}))

	y, err := w.SurfaceY(4, 4)
	require.NoError(t, err)
	assert.Equal(t, int32(63), y)

	_, err = w.SurfaceY(-5, 40)
	assert.ErrorIs(t, err, ErrOutOfBounds, "empty column")

	_, err = w.SurfaceY(500, 500)
	assert.ErrorIs(t, err, ErrUnloaded)

	assert.Equal(t, []ChunkPos{{X: -1, Z: 2}, {X: 0, Z: 0}}, w.Chunks())
}

func TestWorld_TickEffects(t *testing.T) {
	w := flatWorld(t)
	a := model.NewActor(0, model.KindPlayer, model.NewLocation(1, 64, 1, 0))
	_, err := w.AddPlayer(a)
	require.NoError(t, err)
	a.Effects().Add(model.StatusEffect{Type: model.EffectSlowness, RemainingTicks: 2})

	w.TickEffects()
	assert.Equal(t, 1, a.Effects().Len())
	w.TickEffects()
	assert.Zero(t, a.Effects().Len())
}
