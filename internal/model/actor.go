package model

import (
	"sync"
	"sync/atomic"
)

// Actor is a simulated entity with position, health and behaviour, owned by the world.
// Per-actor behaviour state (cast timers, conversion state) lives in the actor's
// controller; the actor only carries the persisted variant tag.
type Actor struct {
	id   uint32
	kind ActorKind

	mu           sync.RWMutex
	loc          Location
	health       float32
	maxHealth    float32
	customName   string
	nameVisible  bool
	aiDisabled   bool
	persistent   bool
	invulnerable bool
	silent       bool
	growingAge   int32
	variant      string

	removed   atomic.Bool
	intention atomic.Int32
	target    atomic.Uint32 // objectID of the current target, 0 = none

	effects *StatusEffects
}

// NewActor creates an actor of kind at loc with full health.
// The id is assigned by the world when the actor is added.
func NewActor(id uint32, kind ActorKind, loc Location) *Actor {
	hp := kind.MaxHealth()
	return &Actor{
		id:        id,
		kind:      kind,
		loc:       loc,
		health:    hp,
		maxHealth: hp,
		effects:   NewStatusEffects(),
	}
}

// ID returns the unique object id.
func (a *Actor) ID() uint32 {
	return a.id
}

// SetID is called by the world exactly once when the actor enters it.
func (a *Actor) SetID(id uint32) {
	a.id = id
}

// Kind returns the actor kind.
func (a *Actor) Kind() ActorKind {
	return a.kind
}

// Flags returns kind-level behaviour flags.
func (a *Actor) Flags() ActorFlags {
	return a.kind.Flags()
}

// Location returns a copy of the actor's location.
func (a *Actor) Location() Location {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.loc
}

// Pos returns the actor's grid coordinate.
func (a *Actor) Pos() Coordinate {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.loc.Pos
}

// SetLocation moves the actor.
func (a *Actor) SetLocation(loc Location) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.loc = loc
}

// Health returns current health.
func (a *Actor) Health() float32 {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.health
}

// MaxHealth returns max health.
func (a *Actor) MaxHealth() float32 {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.maxHealth
}

// SetHealth sets current health clamped to [0, maxHealth].
func (a *Actor) SetHealth(hp float32) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if hp < 0 {
		hp = 0
	}
	if hp > a.maxHealth {
		hp = a.maxHealth
	}
	a.health = hp
}

// ReduceHealth subtracts amount and returns the resulting health.
func (a *Actor) ReduceHealth(amount float32) float32 {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.health -= amount
	if a.health < 0 {
		a.health = 0
	}
	return a.health
}

// CustomName returns the custom name ("" if none).
func (a *Actor) CustomName() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.customName
}

// HasCustomName reports whether a custom name is set.
func (a *Actor) HasCustomName() bool {
	return a.CustomName() != ""
}

// SetCustomName sets the custom name.
func (a *Actor) SetCustomName(name string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.customName = name
}

// IsCustomNameVisible reports whether the name tag is always rendered.
func (a *Actor) IsCustomNameVisible() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.nameVisible
}

// SetCustomNameVisible sets name tag visibility.
func (a *Actor) SetCustomNameVisible(v bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.nameVisible = v
}

// IsAIDisabled reports whether the actor has no AI.
func (a *Actor) IsAIDisabled() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.aiDisabled
}

// SetAIDisabled sets the no-AI flag.
func (a *Actor) SetAIDisabled(v bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.aiDisabled = v
}

// IsPersistent reports whether the actor is exempt from despawning.
func (a *Actor) IsPersistent() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.persistent
}

// EnablePersistence marks the actor as never despawning.
func (a *Actor) EnablePersistence() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.persistent = true
}

// IsInvulnerable reports whether the actor ignores damage.
func (a *Actor) IsInvulnerable() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.invulnerable
}

// SetInvulnerable sets the invulnerable flag.
func (a *Actor) SetInvulnerable(v bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.invulnerable = v
}

// IsSilent reports whether the actor emits no sound cues.
func (a *Actor) IsSilent() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.silent
}

// SetSilent sets the silent flag.
func (a *Actor) SetSilent(v bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.silent = v
}

// GrowingAge returns the breeding age (negative = baby).
func (a *Actor) GrowingAge() int32 {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.growingAge
}

// SetGrowingAge sets the breeding age.
func (a *Actor) SetGrowingAge(age int32) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.growingAge = age
}

// VariantTag returns the persisted appearance variant ("" if none).
func (a *Actor) VariantTag() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.variant
}

// SetVariantTag sets the persisted appearance variant.
func (a *Actor) SetVariantTag(tag string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.variant = tag
}

// IsRemoved reports whether the actor has left the world.
func (a *Actor) IsRemoved() bool {
	return a.removed.Load()
}

// MarkRemoved flags the actor as removed. Returns false if it already was.
func (a *Actor) MarkRemoved() bool {
	return a.removed.CompareAndSwap(false, true)
}

// IsAlive reports whether the actor is in the world and has health left.
// Non-living kinds (projectiles, items) are alive until removed.
func (a *Actor) IsAlive() bool {
	if a.IsRemoved() {
		return false
	}
	if !a.Flags().Has(FlagLiving) {
		return true
	}
	return a.Health() > 0
}

// Intention returns the current AI intention.
func (a *Actor) Intention() Intention {
	return Intention(a.intention.Load())
}

// SetIntention sets the AI intention.
func (a *Actor) SetIntention(i Intention) {
	a.intention.Store(int32(i))
}

// IsAggressive reports whether the actor is engaged in combat.
func (a *Actor) IsAggressive() bool {
	return a.Intention() == IntentionAttack
}

// Target returns current target objectID (0 if no target).
func (a *Actor) Target() uint32 {
	return a.target.Load()
}

// SetTarget sets current target objectID.
func (a *Actor) SetTarget(objectID uint32) {
	a.target.Store(objectID)
}

// ClearTarget clears current target.
func (a *Actor) ClearTarget() {
	a.target.Store(0)
}

// Effects returns the actor's timed status effects.
func (a *Actor) Effects() *StatusEffects {
	return a.effects
}
