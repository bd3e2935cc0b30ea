package ai

import (
	"log/slog"
	"sync/atomic"

	"github.com/udisondev/herobrine/internal/model"
)

// Ability parameters.
const (
	decoyCount = 4

	debuffDuration       int32 = 400
	slownessAmplifier    int32 = 1
	weaknessAmplifier    int32 = 0
	teleportClearanceLow int32 = 3
	teleportHeight       int32 = 4

	// followRange is the distance within which a caster picks up a player target.
	followRange   = 32
	followRangeSq = int64(followRange) * int64(followRange)
)

// CasterAI drives a herobrine mage: presence check, target pickup and the three
// cast timers. Timers belong to this controller only and are mutated from Tick.
type CasterAI struct {
	caster   *model.Actor
	host     Host
	rng      model.Rand
	presence *PresenceAI
	timers   CastTimers

	isRunning atomic.Bool

	spawnedFunc SpawnedFunc
}

// NewCasterAI creates a caster controller with fresh timers.
func NewCasterAI(caster *model.Actor, host Host, rng model.Rand, alwaysSpawn bool) *CasterAI {
	return &CasterAI{
		caster:   caster,
		host:     host,
		rng:      rng,
		presence: NewPresenceAI(caster, host, alwaysSpawn),
		timers:   NewCastTimers(),
	}
}

// SetSpawnedFunc sets the callback for decoys created by the illusion ability.
func (ai *CasterAI) SetSpawnedFunc(fn SpawnedFunc) {
	ai.spawnedFunc = fn
}

// Timers returns a copy of the current timers.
func (ai *CasterAI) Timers() CastTimers {
	return ai.timers
}

// RestoreTimers replaces timers with persisted values. Out-of-range values heal on the next tick.
func (ai *CasterAI) RestoreTimers(t CastTimers) {
	ai.timers = t
}

// Caster returns the controlled actor.
func (ai *CasterAI) Caster() *model.Actor {
	return ai.caster
}

// Start starts AI controller
func (ai *CasterAI) Start() {
	ai.isRunning.Store(true)
	ai.presence.Start()

	if IsDebugEnabled() {
		slog.Debug("caster AI started",
			"objectID", ai.caster.ID(),
			"timers", ai.timers)
	}
}

// Stop stops AI controller
func (ai *CasterAI) Stop() {
	ai.isRunning.Store(false)
	ai.presence.Stop()
	ai.caster.ClearTarget()
}

// SetIntention sets AI intention
func (ai *CasterAI) SetIntention(intention model.Intention) {
	setIntention(ai.caster, intention)
}

// CurrentIntention returns current AI intention
func (ai *CasterAI) CurrentIntention() model.Intention {
	return ai.caster.Intention()
}

// Finished reports whether the caster left the world.
func (ai *CasterAI) Finished() bool {
	return ai.presence.Finished()
}

// Tick performs one simulation tick.
func (ai *CasterAI) Tick() {
	if !ai.isRunning.Load() {
		return
	}
	if !ai.presence.check() {
		return
	}
	if !ai.caster.IsAlive() {
		return
	}

	ai.updateTarget()

	fired := ai.timers.Advance()
	if fired == 0 || !ai.caster.IsAggressive() {
		return
	}

	if IsDebugEnabled() {
		slog.Debug("caster abilities fired",
			"objectID", ai.caster.ID(),
			"abilities", fired)
	}

	if fired.Has(AbilityIllusion) {
		ai.castIllusion()
	}
	if fired.Has(AbilityDebuff) {
		ai.castDebuff()
	}
	if fired.Has(AbilityTeleport) {
		ai.castTeleport()
	}
}

// updateTarget drops a dead target and picks up the nearest player in range.
// Intention is only raised here; losing a target drops back to ACTIVE.
func (ai *CasterAI) updateTarget() {
	if id := ai.caster.Target(); id != 0 {
		if t, ok := ai.host.Actor(id); ok && t.IsAlive() {
			return
		}
		ai.caster.ClearTarget()
		ai.SetIntention(model.IntentionActive)
	}

	pos := ai.caster.Pos()
	var (
		best   *model.Actor
		bestSq int64
	)
	for _, p := range ai.host.ActorsOfKind(model.KindPlayer) {
		if !p.IsAlive() {
			continue
		}
		d := pos.DistanceSquared(p.Pos())
		if d > followRangeSq {
			continue
		}
		if best == nil || d < bestSq {
			best, bestSq = p, d
		}
	}
	if best == nil {
		return
	}

	ai.caster.SetTarget(best.ID())
	ai.SetIntention(model.IntentionAttack)
}

func (ai *CasterAI) target() (*model.Actor, bool) {
	id := ai.caster.Target()
	if id == 0 {
		return nil, false
	}
	t, ok := ai.host.Actor(id)
	if !ok || !t.IsAlive() {
		return nil, false
	}
	return t, true
}

// castIllusion creates four decoys at the caster's cell. Observer views only
// render the cast.
func (ai *CasterAI) castIllusion() {
	pos := ai.caster.Pos()
	ai.host.Emit(model.Cue{Kind: model.CueCastSpell, ActorID: ai.caster.ID(), Pos: pos, Volume: 1, Pitch: 1})

	if ai.host.IsRemote() {
		ai.host.Emit(model.Cue{Kind: model.CueSpellParticle, ActorID: ai.caster.ID(), Pos: pos, Count: decoyCount})
		return
	}

	for range decoyCount {
		decoy := model.NewActor(0, model.KindFakeHerobrineMage, model.Location{
			Pos: pos,
			Yaw: ai.rng.Float32() * 360,
		})
		if _, err := ai.host.AddActor(decoy); err != nil {
			slog.Warn("failed to add decoy",
				"casterID", ai.caster.ID(),
				"pos", pos,
				"error", err)
			continue
		}
		if ai.spawnedFunc != nil {
			ai.spawnedFunc(decoy)
		}
	}
}

// castDebuff slows and weakens the current target.
func (ai *CasterAI) castDebuff() {
	t, ok := ai.target()
	if !ok {
		return
	}
	t.Effects().Add(model.StatusEffect{Type: model.EffectSlowness, Amplifier: slownessAmplifier, RemainingTicks: debuffDuration})
	t.Effects().Add(model.StatusEffect{Type: model.EffectWeakness, Amplifier: weaknessAmplifier, RemainingTicks: debuffDuration})
}

// castTeleport lifts the target four cells when both cells at +3 and +4 are open.
func (ai *CasterAI) castTeleport() {
	t, ok := ai.target()
	if !ok {
		return
	}
	pos := t.Pos()
	if !ai.isOpen(pos.Up(teleportClearanceLow)) || !ai.isOpen(pos.Up(teleportHeight)) {
		return
	}
	if err := ai.host.MoveActor(t.ID(), pos.Up(teleportHeight)); err != nil {
		slog.Warn("teleport failed",
			"casterID", ai.caster.ID(),
			"targetID", t.ID(),
			"error", err)
	}
}

func (ai *CasterAI) isOpen(c model.Coordinate) bool {
	b, err := ai.host.Block(c)
	return err == nil && b.IsOpen()
}
