package world

import (
	"errors"

	"github.com/udisondev/herobrine/internal/model"
)

var (
	// ErrUnloaded is returned for queries against a chunk that is not loaded.
	ErrUnloaded = errors.New("chunk not loaded")
	// ErrOutOfBounds is returned for coordinates outside the vertical world range.
	ErrOutOfBounds = errors.New("coordinate out of world bounds")
	// ErrActorNotFound is returned when an actor id is unknown.
	ErrActorNotFound = errors.New("actor not found")
)

// Surface is the read-only world query capability consumed by the rule gates
// and state machines. Every coordinate query may fail for unloaded terrain;
// callers treat a failure as "predicate false".
type Surface interface {
	// SkyLight returns the raw sky light (0-15) at c.
	SkyLight(c model.Coordinate) (int32, error)
	// BlockLight returns the raw block light (0-15) at c.
	BlockLight(c model.Coordinate) (int32, error)
	// StormLight returns the neighbour-aware combined light at c with the
	// sky component reduced by subtract.
	StormLight(c model.Coordinate, subtract int32) (int32, error)
	// Block returns the material at c.
	Block(c model.Coordinate) (model.Block, error)
	// Biome returns the biome classification at c.
	Biome(c model.Coordinate) (model.BiomeTags, error)
	// CanSeeSky reports whether c has an unobstructed view of the sky.
	CanSeeSky(c model.Coordinate) (bool, error)

	Difficulty() model.Difficulty
	Weather() model.Weather

	// IsRemote reports whether this is an observer-local view. Observer views
	// never mutate the world; they only render cues.
	IsRemote() bool
}

// LightAt samples both light channels at c.
func LightAt(s Surface, c model.Coordinate) (model.LightSample, error) {
	sky, err := s.SkyLight(c)
	if err != nil {
		return model.LightSample{}, err
	}
	blk, err := s.BlockLight(c)
	if err != nil {
		return model.LightSample{}, err
	}
	return model.LightSample{Sky: sky, Block: blk}, nil
}
