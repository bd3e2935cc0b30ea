package ai

import (
	"github.com/udisondev/herobrine/internal/model"
	"github.com/udisondev/herobrine/internal/world"
)

// Host is the world capability used by herobrine controllers.
// *world.World implements it.
type Host interface {
	world.Surface

	AddActor(a *model.Actor) (uint32, error)
	RemoveActor(id uint32)
	Actor(id uint32) (*model.Actor, bool)
	ActorsOfKind(kind model.ActorKind) []*model.Actor
	MoveActor(id uint32, pos model.Coordinate) error
	Emit(cue model.Cue)

	// WorldBossEnabled reports the persisted world-boss flag.
	WorldBossEnabled() bool
}

var _ Host = (*world.World)(nil)

// SpawnedFunc is a callback invoked for every actor a controller creates.
// Injected by spawn.Manager to register AI for decoys.
type SpawnedFunc func(a *model.Actor)
