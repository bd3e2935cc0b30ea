package spawn

import (
	"errors"
	"log/slog"

	"github.com/udisondev/herobrine/internal/model"
	"github.com/udisondev/herobrine/internal/world"
)

// maxNaturalHostiles caps herobrine-family and infected actors created by natural spawning.
const maxNaturalHostiles = 32

// naturalKinds are the kinds natural spawning picks from.
var naturalKinds = []model.ActorKind{
	model.KindHerobrineMage,
	model.KindHerobrineWarrior,
	model.KindInfectedMooshroom,
	model.KindInfectedCow,
}

// NaturalSpawner periodically tries to spawn hostiles on random loaded columns.
// Runs as a TickManager hook so all attempts happen on the tick goroutine.
type NaturalSpawner struct {
	manager  *Manager
	rng      model.Rand
	every    uint64
	attempts int
}

// NewNaturalSpawner creates a spawner making attempts tries every `every` ticks.
func NewNaturalSpawner(manager *Manager, rng model.Rand, every, attempts int) *NaturalSpawner {
	if every <= 0 {
		every = 1
	}
	return &NaturalSpawner{
		manager:  manager,
		rng:      rng,
		every:    uint64(every),
		attempts: attempts,
	}
}

// OnTick is the ai.TickHook entry point.
func (s *NaturalSpawner) OnTick(tick uint64) {
	if tick%s.every != 0 {
		return
	}
	s.Cycle()
}

// Cycle makes one round of attempts and returns the number of actors spawned.
func (s *NaturalSpawner) Cycle() int {
	chunks := s.manager.world.Chunks()
	if len(chunks) == 0 {
		return 0
	}

	spawned := 0
	for range s.attempts {
		if s.hostileCount() >= maxNaturalHostiles {
			break
		}

		kind := naturalKinds[s.rng.IntN(len(naturalKinds))]
		origin := chunks[s.rng.IntN(len(chunks))].Origin()
		x := origin.X + int32(s.rng.IntN(world.ChunkSize))
		z := origin.Z + int32(s.rng.IntN(world.ChunkSize))

		y, err := s.manager.world.SurfaceY(x, z)
		if err != nil {
			continue
		}
		loc := model.Location{
			Pos: model.NewCoordinate(x, y+1, z),
			Yaw: s.rng.Float32() * 360,
		}

		if _, err := s.manager.Spawn(kind, loc, ReasonNatural, s.rng); err != nil {
			if !errors.Is(err, ErrRejected) {
				slog.Warn("natural spawn failed", "kind", kind, "pos", loc.Pos, "error", err)
			}
			continue
		}
		spawned++
	}
	return spawned
}

func (s *NaturalSpawner) hostileCount() int {
	n := 0
	for _, a := range s.manager.world.Actors() {
		if a.Flags().Has(model.FlagHostile) {
			n++
		}
	}
	return n
}
