package combat

import (
	"log/slog"

	"github.com/udisondev/herobrine/internal/game/conversion"
	"github.com/udisondev/herobrine/internal/model"
	"github.com/udisondev/herobrine/internal/world"
)

// Host is the world capability used to resolve damage. *world.World implements it.
type Host interface {
	Actor(id uint32) (*model.Actor, bool)
	RemoveActor(id uint32)
	DropItems(item model.Item, count int, pos model.Coordinate)
}

var _ Host = (*world.World)(nil)

// HitResult содержит результат одного удара для наблюдения в тестах.
type HitResult struct {
	TargetID   uint32
	Kind       DamageKind
	Damage     float32
	Suppressed bool
	Converted  bool
	Killed     bool
}

// CombatManager resolves damage events against actors: conversion routing,
// the suppression filter, health reduction and death.
type CombatManager struct {
	host        Host
	rng         model.Rand
	conversions *conversion.Registry

	// deathFunc is called after a death instead of a plain world removal.
	// Injected by main to unregister AI along with the actor.
	deathFunc func(a *model.Actor)

	// hitObserver: callback для наблюдения за результатами ударов (nil в production).
	hitObserver func(HitResult)
}

// NewCombatManager creates new CombatManager.
func NewCombatManager(host Host, rng model.Rand) *CombatManager {
	return &CombatManager{
		host: host,
		rng:  rng,
	}
}

// SetConversionRegistry enables holy water conversions.
func (m *CombatManager) SetConversionRegistry(r *conversion.Registry) {
	m.conversions = r
}

// SetDeathFunc sets the callback for actor death handling (despawn).
func (m *CombatManager) SetDeathFunc(fn func(a *model.Actor)) {
	m.deathFunc = fn
}

// SetHitObserver sets callback for observing hit results (for tests).
func (m *CombatManager) SetHitObserver(fn func(HitResult)) {
	m.hitObserver = fn
}

// ApplyDamage resolves ev against the actor targetID.
//
// Workflow:
//  1. Holy water on a convertible actor converts it, no damage
//  2. ShouldSuppress nullifies the event
//  3. Invulnerable actors ignore everything but falling out of the world
//  4. Health is reduced; at zero the actor dies and drops its special loot
func (m *CombatManager) ApplyDamage(targetID uint32, ev DamageEvent) HitResult {
	res := HitResult{TargetID: targetID, Kind: ev.Kind}

	target, ok := m.host.Actor(targetID)
	if !ok || !target.IsAlive() {
		return m.observe(res)
	}
	flags := target.Flags()

	if ev.Source != nil && ev.Source.Proximate == model.KindHolyWater &&
		flags.Has(model.FlagConvertible) && m.conversions != nil {
		_, res.Converted = m.conversions.HolyWater(targetID)
		return m.observe(res)
	}

	if ShouldSuppress(ev, flags) {
		res.Suppressed = true
		slog.Debug("damage suppressed",
			"objectID", targetID,
			"kind", target.Kind(),
			"damage", ev.Kind)
		return m.observe(res)
	}

	if target.IsInvulnerable() && ev.Kind != DamageOutOfWorld {
		res.Suppressed = true
		return m.observe(res)
	}

	if !flags.Has(model.FlagLiving) || ev.Amount <= 0 {
		return m.observe(res)
	}

	res.Damage = ev.Amount
	if hp := target.ReduceHealth(ev.Amount); hp > 0 {
		return m.observe(res)
	}

	res.Killed = m.die(target, ev)
	return m.observe(res)
}

// die removes a dead actor. Returns false if another caller got there first.
func (m *CombatManager) die(target *model.Actor, ev DamageEvent) bool {
	if !target.MarkRemoved() {
		return false
	}

	var looting int32
	if ev.Source != nil {
		looting = ev.Source.Looting
	}
	pos := target.Pos()
	for _, d := range CalculateDrops(target.Kind(), looting, m.rng) {
		m.host.DropItems(d.Item, d.Count, pos)
	}

	if m.deathFunc != nil {
		m.deathFunc(target)
	} else {
		m.host.RemoveActor(target.ID())
	}

	slog.Info("actor died",
		"objectID", target.ID(),
		"kind", target.Kind(),
		"cause", ev.Kind)
	return true
}

func (m *CombatManager) observe(res HitResult) HitResult {
	if m.hitObserver != nil {
		m.hitObserver(res)
	}
	return res
}
