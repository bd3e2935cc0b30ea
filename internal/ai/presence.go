package ai

import (
	"log/slog"
	"sync/atomic"

	"github.com/udisondev/herobrine/internal/model"
)

// PresenceAI keeps a herobrine-family actor in the world only while herobrine is
// allowed there. Each tick: if the world-boss flag and the always-spawn override are
// both off on the authoritative view, the actor is removed; otherwise its status
// effects are cleared.
type PresenceAI struct {
	actor       *model.Actor
	host        Host
	alwaysSpawn bool

	isRunning atomic.Bool
	finished  atomic.Bool
}

// NewPresenceAI creates presence controller for actor.
func NewPresenceAI(actor *model.Actor, host Host, alwaysSpawn bool) *PresenceAI {
	return &PresenceAI{
		actor:       actor,
		host:        host,
		alwaysSpawn: alwaysSpawn,
	}
}

// Start starts AI controller
func (ai *PresenceAI) Start() {
	ai.isRunning.Store(true)
	if ai.actor.Intention() == model.IntentionIdle {
		ai.SetIntention(model.IntentionActive)
	}
}

// Stop stops AI controller
func (ai *PresenceAI) Stop() {
	ai.isRunning.Store(false)
}

// SetIntention sets AI intention
func (ai *PresenceAI) SetIntention(intention model.Intention) {
	setIntention(ai.actor, intention)
}

// CurrentIntention returns current AI intention
func (ai *PresenceAI) CurrentIntention() model.Intention {
	return ai.actor.Intention()
}

// Finished reports whether the actor left the world.
func (ai *PresenceAI) Finished() bool {
	return ai.finished.Load()
}

// Tick performs the presence check.
func (ai *PresenceAI) Tick() {
	if !ai.isRunning.Load() {
		return
	}
	ai.check()
}

// check returns false once the actor is gone.
func (ai *PresenceAI) check() bool {
	if ai.actor.IsRemoved() {
		ai.finished.Store(true)
		return false
	}

	if !ai.host.WorldBossEnabled() && !ai.alwaysSpawn && !ai.host.IsRemote() {
		ai.host.RemoveActor(ai.actor.ID())
		ai.actor.MarkRemoved()
		ai.finished.Store(true)

		slog.Info("herobrine removed, world boss disabled",
			"objectID", ai.actor.ID(),
			"kind", ai.actor.Kind())
		return false
	}

	if n := ai.actor.Effects().Clear(); n > 0 && IsDebugEnabled() {
		slog.Debug("herobrine effects cleared",
			"objectID", ai.actor.ID(),
			"count", n)
	}
	return true
}

func setIntention(a *model.Actor, intention model.Intention) {
	old := a.Intention()
	a.SetIntention(intention)

	if old != intention && IsDebugEnabled() {
		slog.Debug("AI intention changed",
			"objectID", a.ID(),
			"kind", a.Kind(),
			"from", old,
			"to", intention)
	}
}
