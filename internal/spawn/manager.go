package spawn

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync/atomic"

	"github.com/udisondev/herobrine/internal/ai"
	"github.com/udisondev/herobrine/internal/config"
	"github.com/udisondev/herobrine/internal/game/conversion"
	"github.com/udisondev/herobrine/internal/model"
	"github.com/udisondev/herobrine/internal/world"
)

// ErrRejected is returned when the validator does not allow a spawn.
var ErrRejected = errors.New("spawn rejected")

// Manager creates actors in the world and attaches their AI controllers.
type Manager struct {
	world     *world.World
	aiManager *ai.TickManager
	validator *Validator
	rules     config.Rules
	seed      uint64

	// conversions tracks convertible actors; nil disables tracking.
	conversions *conversion.Registry

	spawnCount atomic.Int32 // actors placed through this manager
}

// NewManager creates new spawn manager
func NewManager(w *world.World, aiManager *ai.TickManager, rules config.Rules, seed uint64) *Manager {
	return &Manager{
		world:     w,
		aiManager: aiManager,
		validator: NewValidator(rules, w.WorldBossEnabled),
		rules:     rules,
		seed:      seed,
	}
}

// SetConversionRegistry sets the registry that receives convertible actors.
func (m *Manager) SetConversionRegistry(r *conversion.Registry) {
	m.conversions = r
}

// Validator returns the spawn validator used by Spawn.
func (m *Manager) Validator() *Validator {
	return m.validator
}

// Spawn validates and creates an actor of kind at loc.
// Returns ErrRejected if the validator refuses.
func (m *Manager) Spawn(kind model.ActorKind, loc model.Location, reason Reason, rng model.Rand) (*model.Actor, error) {
	if kind.Flags().Has(model.FlagHostile) && !m.validator.CanSpawn(kind, m.world, reason, loc.Pos, rng) {
		return nil, ErrRejected
	}

	a := model.NewActor(0, kind, loc)
	if err := m.Place(a); err != nil {
		return nil, err
	}

	slog.Info("actor spawned",
		"objectID", a.ID(),
		"kind", kind,
		"reason", reason,
		"pos", loc.Pos)
	return a, nil
}

// Place adds an actor to the world without validation and registers its AI.
// Used for restored and converted actors.
func (m *Manager) Place(a *model.Actor) error {
	if _, err := m.world.AddActor(a); err != nil {
		return fmt.Errorf("adding %s to world: %w", a.Kind(), err)
	}
	m.spawnCount.Add(1)
	m.attach(a)
	return nil
}

// Restore places a persisted caster and reinstates its cast timers.
func (m *Manager) Restore(a *model.Actor, timers ai.CastTimers) error {
	if err := m.Place(a); err != nil {
		return err
	}
	if c, ok := m.Caster(a.ID()); ok {
		c.RestoreTimers(timers)
	}
	return nil
}

// attach registers controllers by kind flags: casters get the full caster AI,
// the rest of the herobrine family only the presence check. Convertible kinds
// get a conversion machine.
func (m *Manager) attach(a *model.Actor) {
	flags := a.Flags()
	if flags.Has(model.FlagConvertible) && m.conversions != nil {
		if _, err := m.conversions.Track(a); err != nil {
			slog.Error("failed to track convertible actor", "objectID", a.ID(), "error", err)
		}
	}

	switch {
	case flags.Has(model.FlagCaster):
		rng := rand.New(rand.NewPCG(m.seed, uint64(a.ID())))
		caster := ai.NewCasterAI(a, m.world, rng, m.rules.HerobrineAlwaysSpawns)
		caster.SetSpawnedFunc(m.attach)
		m.aiManager.Register(a.ID(), caster)

	case flags.Has(model.FlagHerobrine):
		m.aiManager.Register(a.ID(), ai.NewPresenceAI(a, m.world, m.rules.HerobrineAlwaysSpawns))
	}
}

// Despawn removes an actor and its controller.
func (m *Manager) Despawn(objectID uint32) {
	m.aiManager.Unregister(objectID)
	m.world.RemoveActor(objectID)

	slog.Debug("actor despawned", "objectID", objectID)
}

// Caster returns the caster controller of objectID, if any.
func (m *Manager) Caster(objectID uint32) (*ai.CasterAI, bool) {
	ctrl, err := m.aiManager.GetController(objectID)
	if err != nil {
		return nil, false
	}
	c, ok := ctrl.(*ai.CasterAI)
	return c, ok
}

// SpawnCount returns number of actors placed (O(1) cached count).
func (m *Manager) SpawnCount() int {
	return int(m.spawnCount.Load())
}
