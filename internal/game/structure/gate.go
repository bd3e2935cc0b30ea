package structure

import (
	"log/slog"

	"github.com/udisondev/herobrine/internal/config"
	"github.com/udisondev/herobrine/internal/model"
	"github.com/udisondev/herobrine/internal/world"
)

const (
	// StatueTemplate is the template id of the herobrine statue.
	StatueTemplate = "herobrine_statue"

	// MaxWeight is the upper bound of the per-chunk draw.
	MaxWeight = 1_000_000
)

// Stamper places a template. *world.World implements it.
type Stamper interface {
	Stamp(p model.StructurePlacement)
}

// Result describes one Generate call.
type Result struct {
	// Rolled is true when the weight draw passed.
	Rolled bool
	// Tries is the number of placement tries made.
	Tries int
	// Placed are the stamped placements.
	Placed []model.StructurePlacement
}

// Gate decides, once per generated chunk, whether and where to stamp the statue.
type Gate struct {
	Template string
	Weight   int
	Attempts int
}

// NewGate creates the statue gate from rules.
func NewGate(rules config.Rules) *Gate {
	return &Gate{
		Template: StatueTemplate,
		Weight:   rules.StatueSpawnWeight,
		Attempts: rules.StatueAttempts,
	}
}

// Generate runs the gate for chunk (chunkX, chunkZ).
// Draw IntN(1_000_000)+1 and proceed only if it does not exceed Weight. Each try
// picks a column inside the chunk, so only the chunk itself must be loaded, scans down from the ceiling to the first movement-blocking
// block and requires stone or gravel ground under a mountain or hills biome.
// Failed tries are not retried. Observer views never stamp.
func (g *Gate) Generate(rng model.Rand, chunkX, chunkZ int32, surface world.Surface, stamper Stamper) Result {
	var res Result
	if rng.IntN(MaxWeight)+1 > g.Weight {
		return res
	}
	res.Rolled = true

	origin := world.ChunkPos{X: chunkX, Z: chunkZ}.Origin()
	for range g.Attempts {
		res.Tries++

		x := origin.X + int32(rng.IntN(world.ChunkSize))
		z := origin.Z + int32(rng.IntN(world.ChunkSize))

		ground, ok := findGround(surface, x, z)
		if !ok || !suitable(surface, ground) {
			continue
		}
		if surface.IsRemote() {
			return res
		}

		p := model.StructurePlacement{
			Template: g.Template,
			Origin:   ground.Up(1),
			Rotation: model.Rotation(rng.IntN(3)),
			Mirror:   model.Mirror(rng.IntN(2)),
		}
		stamper.Stamp(p)
		res.Placed = append(res.Placed, p)

		slog.Debug("statue stamped",
			"chunkX", chunkX,
			"chunkZ", chunkZ,
			"origin", p.Origin)
	}
	return res
}

// findGround returns the first non-air movement-blocking cell scanning down from MaxY.
func findGround(surface world.Surface, x, z int32) (model.Coordinate, bool) {
	for y := int32(world.MaxY); y > 0; y-- {
		c := model.NewCoordinate(x, y, z)
		b, err := surface.Block(c)
		if err != nil {
			return model.Coordinate{}, false
		}
		if !b.IsAir() && b.BlocksMovement() {
			return c, true
		}
	}
	return model.Coordinate{}, false
}

func suitable(surface world.Surface, ground model.Coordinate) bool {
	b, err := surface.Block(ground)
	if err != nil || (b != model.BlockStone && b != model.BlockGravel) {
		return false
	}
	tags, err := surface.Biome(ground)
	if err != nil {
		return false
	}
	return tags.HasAny(model.TagMountain, model.TagHills)
}
