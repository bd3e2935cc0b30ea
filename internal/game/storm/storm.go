// Package storm drives weather changes and lightning strikes.
package storm

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/udisondev/herobrine/internal/game/combat"
	"github.com/udisondev/herobrine/internal/model"
	"github.com/udisondev/herobrine/internal/world"
)

const (
	// WeatherEveryTicks is the weather roll cadence (half a day).
	WeatherEveryTicks = 12000
	// StrikeChance is the per-tick 1-in-N chance of a strike during thunder.
	StrikeChance = 100
	// strikeDamage is dealt to every living actor in the strike radius except
	// convertible ones, which only change variant.
	strikeDamage = 5
	strikeRadius = 3
)

// Converter receives lightning strikes. *conversion.Registry satisfies it.
type Converter interface {
	Lightning(pos model.Coordinate, token uuid.UUID) int
}

// Driver rolls weather and, during thunder, strikes random loaded columns.
// Every strike carries a fresh uuid token.
type Driver struct {
	world     *world.World
	converter Converter
	combat    *combat.CombatManager
	rng       model.Rand

	newToken func() uuid.UUID
}

// NewDriver creates a storm driver. combat may be nil.
func NewDriver(w *world.World, converter Converter, cm *combat.CombatManager, rng model.Rand) *Driver {
	return &Driver{
		world:     w,
		converter: converter,
		combat:    cm,
		rng:       rng,
		newToken:  uuid.New,
	}
}

// OnTick is the ai.TickHook entry point.
func (d *Driver) OnTick(tick uint64) {
	if tick > 0 && tick%WeatherEveryTicks == 0 {
		d.rollWeather()
	}
	if !d.world.Weather().IsStorm() || d.rng.IntN(StrikeChance) != 0 {
		return
	}
	if pos, ok := d.pickColumn(); ok {
		d.Strike(pos)
	}
}

// Strike hits pos: converts nearby mooshrooms and damages the other nearby actors.
// Returns the number of conversions.
func (d *Driver) Strike(pos model.Coordinate) int {
	token := d.newToken()
	flips := d.converter.Lightning(pos, token)

	hits := 0
	if d.combat != nil {
		for _, a := range d.world.Actors() {
			p := a.Pos()
			flags := a.Flags()
			if !flags.Has(model.FlagLiving) || flags.Has(model.FlagConvertible) || !within(p, pos) {
				continue
			}
			d.combat.ApplyDamage(a.ID(), combat.DamageEvent{Kind: combat.DamageLightning, Amount: strikeDamage})
			hits++
		}
	}

	slog.Debug("lightning strike",
		"pos", pos,
		"token", token,
		"conversions", flips,
		"hits", hits)
	return flips
}

func (d *Driver) rollWeather() {
	weather := model.Weather(d.rng.IntN(3))
	d.world.SetWeather(weather)
	slog.Info("weather changed", "weather", weather)
}

func (d *Driver) pickColumn() (model.Coordinate, bool) {
	chunks := d.world.Chunks()
	if len(chunks) == 0 {
		return model.Coordinate{}, false
	}
	ch := chunks[d.rng.IntN(len(chunks))]
	x := ch.X*world.ChunkSize + int32(d.rng.IntN(world.ChunkSize))
	z := ch.Z*world.ChunkSize + int32(d.rng.IntN(world.ChunkSize))
	y, err := d.world.SurfaceY(x, z)
	if err != nil {
		return model.Coordinate{}, false
	}
	return model.NewCoordinate(x, y+1, z), true
}

func within(p, c model.Coordinate) bool {
	return abs(p.X-c.X) <= strikeRadius && abs(p.Z-c.Z) <= strikeRadius && abs(p.Y-c.Y) <= strikeRadius*2
}

func abs(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
