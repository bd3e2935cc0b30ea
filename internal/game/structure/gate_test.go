package structure

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/herobrine/internal/config"
	"github.com/udisondev/herobrine/internal/model"
	"github.com/udisondev/herobrine/internal/testutil"
	"github.com/udisondev/herobrine/internal/world"
)

type stampRecorder struct {
	placed []model.StructurePlacement
}

func (r *stampRecorder) Stamp(p model.StructurePlacement) {
	r.placed = append(r.placed, p)
}

// mountainSurface has a single ground block at (x, y, z) with mountain tags.
func mountainSurface(ground model.Coordinate, b model.Block, tags model.BiomeTags) *testutil.StubSurface {
	return &testutil.StubSurface{
		Blocks: map[model.Coordinate]model.Block{ground: b},
		Tags:   tags,
	}
}

func TestGate_WeightZeroNeverPlaces(t *testing.T) {
	g := &Gate{Template: StatueTemplate, Weight: 0, Attempts: 1}
	rng := rand.New(rand.NewPCG(1, 2))
	surface := &testutil.StubSurface{Default: model.BlockStone, Tags: model.Tags(model.TagMountain)}
	stamps := &stampRecorder{}

	for i := range 10_000 {
		res := g.Generate(rng, int32(i), int32(-i), surface, stamps)
		require.False(t, res.Rolled)
		require.Zero(t, res.Tries)
	}
	assert.Empty(t, stamps.placed)
	assert.Zero(t, surface.BlockCalls)
}

func TestGate_MaxWeightAlwaysAttempts(t *testing.T) {
	g := &Gate{Template: StatueTemplate, Weight: MaxWeight, Attempts: 1}
	rng := rand.New(rand.NewPCG(3, 4))
	// plains everywhere: every attempt is made and skipped by the biome check
	surface := &testutil.StubSurface{Default: model.BlockStone, Tags: model.Tags(model.TagPlains)}
	stamps := &stampRecorder{}

	for i := range 10_000 {
		res := g.Generate(rng, int32(i), 0, surface, stamps)
		require.True(t, res.Rolled)
		require.Equal(t, 1, res.Tries)
	}
	assert.Empty(t, stamps.placed)
}

func TestGate_DrawBoundary(t *testing.T) {
	g := &Gate{Template: StatueTemplate, Weight: 10_000, Attempts: 1}
	surface := &testutil.StubSurface{}

	assert.True(t, g.Generate(testutil.NewScriptedRand(9_999, 0, 0), 0, 0, surface, &stampRecorder{}).Rolled)
	assert.False(t, g.Generate(testutil.NewScriptedRand(10_000), 0, 0, surface, &stampRecorder{}).Rolled)
}

func TestGate_Placement(t *testing.T) {
	tests := []struct {
		name   string
		block  model.Block
		tags   model.BiomeTags
		remote bool
		want   bool
	}{
		{"stone mountain", model.BlockStone, model.Tags(model.TagMountain), false, true},
		{"gravel hills", model.BlockGravel, model.Tags(model.TagHills, model.TagForest), false, true},
		{"dirt mountain", model.BlockDirt, model.Tags(model.TagMountain), false, false},
		{"grass hills", model.BlockGrass, model.Tags(model.TagHills), false, false},
		{"stone plains", model.BlockStone, model.Tags(model.TagPlains), false, false},
		{"stone cold", model.BlockStone, model.Tags(model.TagCold), false, false},
		{"observer view", model.BlockStone, model.Tags(model.TagMountain), true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// chunk (1, -1): origin (16, 0, -16); x = 16+3, z = -16+4
			ground := model.NewCoordinate(19, 90, -12)
			surface := mountainSurface(ground, tt.block, tt.tags)
			surface.Remote = tt.remote
			stamps := &stampRecorder{}
			g := NewGate(config.Rules{StatueSpawnWeight: 500, StatueAttempts: 1})

			res := g.Generate(testutil.NewScriptedRand(0, 3, 4, 2, 1), 1, -1, surface, stamps)

			assert.True(t, res.Rolled)
			assert.Equal(t, 1, res.Tries)
			if !tt.want {
				assert.Empty(t, stamps.placed)
				assert.Empty(t, res.Placed)
				return
			}
			want := model.StructurePlacement{
				Template: StatueTemplate,
				Origin:   model.NewCoordinate(19, 91, -12),
				Rotation: model.RotationClockwise180,
				Mirror:   model.MirrorLeftRight,
			}
			assert.Equal(t, []model.StructurePlacement{want}, stamps.placed)
			assert.Equal(t, stamps.placed, res.Placed)
		})
	}
}

func TestGate_ScanSkipsNonBlocking(t *testing.T) {
	ground := model.NewCoordinate(0, 70, 0)
	surface := mountainSurface(ground, model.BlockStone, model.Tags(model.TagMountain))
	surface.Blocks[ground.Up(1)] = model.BlockWater
	surface.Blocks[ground.Up(2)] = model.BlockTorch
	stamps := &stampRecorder{}

	g := &Gate{Template: StatueTemplate, Weight: MaxWeight, Attempts: 1}
	g.Generate(testutil.NewScriptedRand(0, 0, 0, 0, 0), 0, 0, surface, stamps)

	require.Len(t, stamps.placed, 1)
	assert.Equal(t, ground.Up(1), stamps.placed[0].Origin)
}

func TestGate_EmptyColumnAndUnloaded(t *testing.T) {
	g := &Gate{Template: StatueTemplate, Weight: MaxWeight, Attempts: 2}
	stamps := &stampRecorder{}

	res := g.Generate(testutil.NewScriptedRand(), 0, 0, &testutil.StubSurface{Tags: model.Tags(model.TagMountain)}, stamps)
	assert.Equal(t, 2, res.Tries)

	res = g.Generate(testutil.NewScriptedRand(), 0, 0, &testutil.StubSurface{Err: world.ErrUnloaded}, stamps)
	assert.Equal(t, 2, res.Tries)
	assert.Empty(t, stamps.placed)
}

func TestGate_FailedTryNotRetried(t *testing.T) {
	good := model.NewCoordinate(1, 80, 1)
	surface := mountainSurface(good, model.BlockStone, model.Tags(model.TagMountain))
	stamps := &stampRecorder{}
	g := &Gate{Template: StatueTemplate, Weight: MaxWeight, Attempts: 2}

	// first try lands on an empty column (0, 0), second on (1, 1)
	res := g.Generate(testutil.NewScriptedRand(0, 0, 0, 1, 1, 0, 0), 0, 0, surface, stamps)

	assert.Equal(t, 2, res.Tries)
	require.Len(t, stamps.placed, 1)
	assert.Equal(t, good.Up(1), stamps.placed[0].Origin)
}

func TestGate_GeneratedTerrain(t *testing.T) {
	w := world.New()
	gen := world.NewGenerator(7)
	for x := int32(-1); x <= 1; x++ {
		for z := int32(-1); z <= 1; z++ {
			w.LoadChunk(gen.Generate(world.ChunkPos{X: x, Z: z}))
		}
	}

	g := &Gate{Template: StatueTemplate, Weight: MaxWeight, Attempts: 1}
	rng := rand.New(rand.NewPCG(7, 7))
	for range 200 {
		g.Generate(rng, 0, 0, w, w)
	}

	for _, p := range w.Structures() {
		ground := p.Origin.Down(1)
		b, err := w.Block(ground)
		require.NoError(t, err)
		assert.Contains(t, []model.Block{model.BlockStone, model.BlockGravel}, b)
		tags, err := w.Biome(ground)
		require.NoError(t, err)
		assert.True(t, tags.HasAny(model.TagMountain, model.TagHills))
	}
}

// stoneMountainChunk is a chunk of stone up to y=63 under a mountain biome.
func stoneMountainChunk(pos world.ChunkPos) *world.Chunk {
	ch := world.NewChunk(pos)
	for lz := int32(0); lz < world.ChunkSize; lz++ {
		for lx := int32(0); lx < world.ChunkSize; lx++ {
			ch.SetBiome(lx, lz, model.BiomeMountains)
			for y := int32(0); y <= 63; y++ {
				ch.SetBlock(lx, y, lz, model.BlockStone)
			}
		}
	}
	return ch
}

func TestGate_TriesStayInsideLoneChunk(t *testing.T) {
	w := world.New()
	pos := world.ChunkPos{X: 2, Z: -3}
	w.LoadChunk(stoneMountainChunk(pos))

	g := &Gate{Template: StatueTemplate, Weight: MaxWeight, Attempts: 1}
	rng := rand.New(rand.NewPCG(11, 12))
	for range 1000 {
		res := g.Generate(rng, pos.X, pos.Z, w, w)
		require.Len(t, res.Placed, 1, "neighbours are not loaded; every try must stay in the chunk")
	}

	for _, p := range w.Structures() {
		assert.Equal(t, pos, world.ChunkPosOf(p.Origin))
		assert.Equal(t, int32(64), p.Origin.Y)
	}
}
