package model

import (
	"log/slog"
	"sync"
)

// EffectType identifies a timed status effect.
type EffectType uint8

const (
	EffectSlowness EffectType = iota + 1
	EffectWeakness
	EffectPoison
	EffectRegeneration
)

// String returns the effect id.
func (t EffectType) String() string {
	switch t {
	case EffectSlowness:
		return "slowness"
	case EffectWeakness:
		return "weakness"
	case EffectPoison:
		return "poison"
	case EffectRegeneration:
		return "regeneration"
	default:
		return "unknown"
	}
}

// StatusEffect is one active timed effect on an actor.
type StatusEffect struct {
	Type           EffectType
	Amplifier      int32
	RemainingTicks int32
}

// StatusEffects tracks active timed effects of one actor.
//
// Thread-safe: all methods are protected by sync.RWMutex.
type StatusEffects struct {
	mu     sync.RWMutex
	active []StatusEffect
}

// NewStatusEffects creates an empty effect list.
func NewStatusEffects() *StatusEffects {
	return &StatusEffects{
		active: make([]StatusEffect, 0, 4),
	}
}

// Add applies an effect with stacking check.
// Returns true if the effect was added/replaced/refreshed, false if rejected.
//
// Stacking rules (same Type):
//   - Higher Amplifier → replaces existing
//   - Same Amplifier → duration becomes the longer of the two
//   - Lower Amplifier → rejected
func (m *StatusEffects) Add(e StatusEffect) bool {
	if e.RemainingTicks <= 0 {
		return false
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for i, existing := range m.active {
		if existing.Type != e.Type {
			continue
		}
		if e.Amplifier > existing.Amplifier {
			m.active[i] = e
			return true
		}
		if e.Amplifier == existing.Amplifier {
			if e.RemainingTicks > existing.RemainingTicks {
				m.active[i].RemainingTicks = e.RemainingTicks
			}
			return true
		}
		return false
	}

	m.active = append(m.active, e)
	return true
}

// Tick advances all effects by one tick and drops expired ones.
func (m *StatusEffects) Tick() {
	m.mu.Lock()
	defer m.mu.Unlock()

	kept := m.active[:0]
	for _, e := range m.active {
		e.RemainingTicks--
		if e.RemainingTicks > 0 {
			kept = append(kept, e)
			continue
		}
		slog.Debug("status effect expired", "effect", e.Type)
	}
	m.active = kept
}

// Get returns the active effect of type t.
func (m *StatusEffects) Get(t EffectType) (StatusEffect, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, e := range m.active {
		if e.Type == t {
			return e, true
		}
	}
	return StatusEffect{}, false
}

// All returns a copy of the active effects.
func (m *StatusEffects) All() []StatusEffect {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]StatusEffect, len(m.active))
	copy(out, m.active)
	return out
}

// Len returns number of active effects.
func (m *StatusEffects) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.active)
}

// Clear removes every active effect and returns how many were removed.
func (m *StatusEffects) Clear() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := len(m.active)
	m.active = m.active[:0]
	return n
}
