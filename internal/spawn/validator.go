package spawn

import (
	"log/slog"

	"github.com/udisondev/herobrine/internal/config"
	"github.com/udisondev/herobrine/internal/model"
	"github.com/udisondev/herobrine/internal/world"
)

// Reason describes why the host is asking for a spawn.
type Reason uint8

const (
	ReasonNatural Reason = iota
	ReasonChunkGeneration
	ReasonSpawner
	ReasonCommand
)

func (r Reason) String() string {
	switch r {
	case ReasonNatural:
		return "natural"
	case ReasonChunkGeneration:
		return "chunk_generation"
	case ReasonSpawner:
		return "spawner"
	case ReasonCommand:
		return "command"
	default:
		return "unknown"
	}
}

// stormAttenuation is the sky-light reduction used for the neighbour-aware
// light sample while a storm is active.
const stormAttenuation = 10

// Flags is the snapshot of the two permission flags taken per spawn attempt.
type Flags struct {
	// WorldBossEnabled is the persisted world-boss flag.
	WorldBossEnabled bool
	// AlwaysSpawn is the HerobrineAlwaysSpawns configuration override.
	AlwaysSpawn bool
}

// Context is constructed fresh for every spawn attempt.
type Context struct {
	Kind       model.ActorKind
	Reason     Reason
	Pos        model.Coordinate
	Rand       model.Rand
	Difficulty model.Difficulty
	Flags      Flags
}

// GroundFunc is the host's "can stand here" predicate.
type GroundFunc func(surface world.Surface, pos model.Coordinate) bool

// SolidGround accepts a position whose block below blocks movement and whose
// own cell and the cell above are open.
func SolidGround(surface world.Surface, pos model.Coordinate) bool {
	below, err := surface.Block(pos.Down(1))
	if err != nil || !below.BlocksMovement() {
		return false
	}
	for _, c := range []model.Coordinate{pos, pos.Up(1)} {
		b, err := surface.Block(c)
		if err != nil || b.BlocksMovement() {
			return false
		}
	}
	return true
}

// CanSpawn decides whether ctx.Kind may be created at ctx.Pos right now.
// The result is (A∧B∧C∧D)∧(E∨F); predicates short-circuit in order so random
// draws only happen once difficulty allows hostiles. Surface errors count as a rejection.
func CanSpawn(ctx Context, surface world.Surface, ground GroundFunc) bool {
	if ground == nil {
		ground = SolidGround
	}

	// A: hostile difficulty
	if ctx.Difficulty == model.DifficultyPeaceful {
		return false
	}
	// B: darkness
	if !lightGate(surface, ctx.Pos, ctx.Rand) {
		return false
	}
	// C: open sky for mooshroom kinds
	if ctx.Kind.Flags().Has(model.FlagNeedsSky) {
		visible, err := surface.CanSeeSky(ctx.Pos)
		if err != nil || !visible {
			return false
		}
	}
	// D: ground
	if !ground(surface, ctx.Pos) {
		return false
	}
	// E|F: permission
	return ctx.Flags.WorldBossEnabled || ctx.Flags.AlwaysSpawn
}

// lightGate draws from [0,32) against sky light, then from [0,8) against the
// effective light: storm-attenuated while thundering, raw block light otherwise.
func lightGate(surface world.Surface, pos model.Coordinate, rng model.Rand) bool {
	sky, err := surface.SkyLight(pos)
	if err != nil {
		return false
	}
	if sky > int32(rng.IntN(32)) {
		return false
	}

	var effective int32
	if surface.Weather().IsStorm() {
		effective, err = surface.StormLight(pos, stormAttenuation)
	} else {
		effective, err = surface.BlockLight(pos)
	}
	if err != nil {
		return false
	}
	return effective <= int32(rng.IntN(8))
}

// Validator binds CanSpawn to a rules snapshot and the world-boss flag source.
type Validator struct {
	rules  config.Rules
	boss   func() bool
	ground GroundFunc
}

// NewValidator creates a validator. boss reports the persisted world-boss flag.
func NewValidator(rules config.Rules, boss func() bool) *Validator {
	return &Validator{rules: rules, boss: boss, ground: SolidGround}
}

// WithGround replaces the ground predicate.
func (v *Validator) WithGround(ground GroundFunc) *Validator {
	v.ground = ground
	return v
}

// CanSpawn validates a spawn of kind at pos.
func (v *Validator) CanSpawn(kind model.ActorKind, surface world.Surface, reason Reason, pos model.Coordinate, rng model.Rand) bool {
	bossEnabled := false
	if v.boss != nil {
		bossEnabled = v.boss()
	}

	ok := CanSpawn(Context{
		Kind:       kind,
		Reason:     reason,
		Pos:        pos,
		Rand:       rng,
		Difficulty: surface.Difficulty(),
		Flags: Flags{
			WorldBossEnabled: bossEnabled,
			AlwaysSpawn:      v.rules.HerobrineAlwaysSpawns,
		},
	}, surface, v.ground)

	slog.Debug("spawn validated",
		"kind", kind,
		"reason", reason,
		"pos", pos,
		"allowed", ok)
	return ok
}
