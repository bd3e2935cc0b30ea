package conversion

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/udisondev/herobrine/internal/model"
	"github.com/udisondev/herobrine/internal/world"
)

// ErrNotConvertible is returned when tracking an actor whose kind has no conversion.
var ErrNotConvertible = errors.New("actor is not convertible")

// shearYield is the number of mushrooms dropped by one shearing.
const shearYield = 5

// Host is the world capability needed by conversions. *world.World implements it.
type Host interface {
	AddActor(a *model.Actor) (uint32, error)
	RemoveActor(id uint32)
	DropItems(item model.Item, count int, pos model.Coordinate)
	Emit(cue model.Cue)
	IsRemote() bool
}

var _ Host = (*world.World)(nil)

// Mooshroom drives the conversions of one infected mooshroom.
// The state is owned here and mirrored to the actor's variant tag for persistence.
type Mooshroom struct {
	actor *model.Actor
	host  Host
	state State
}

// NewMooshroom binds a conversion state to actor, restoring the variant from its tag.
func NewMooshroom(actor *model.Actor, host Host) (*Mooshroom, error) {
	if !actor.Flags().Has(model.FlagConvertible) {
		return nil, fmt.Errorf("%s %d: %w", actor.Kind(), actor.ID(), ErrNotConvertible)
	}
	m := &Mooshroom{
		actor: actor,
		host:  host,
		state: NewState(ParseVariant(actor.VariantTag())),
	}
	actor.SetVariantTag(m.state.Variant.Tag())
	return m, nil
}

// Actor returns the controlled actor.
func (m *Mooshroom) Actor() *model.Actor {
	return m.actor
}

// Variant returns the current variant.
func (m *Mooshroom) Variant() Variant {
	return m.state.Variant
}

// Strike handles a lightning strike carrying token. A strike observed more than
// once flips the variant only the first time.
func (m *Mooshroom) Strike(token uuid.UUID) bool {
	if m.actor.IsRemoved() || !m.state.Strike(token) {
		return false
	}
	m.actor.SetVariantTag(m.state.Variant.Tag())
	m.host.Emit(model.Cue{Kind: model.CueConvert, ActorID: m.actor.ID(), Pos: m.actor.Pos(), Volume: 2, Pitch: 1})

	slog.Debug("mooshroom variant flipped",
		"objectID", m.actor.ID(),
		"variant", m.state.Variant,
		"token", token)
	return true
}

// Shear turns the mooshroom into an infected cow and drops five mushrooms of
// its variant one cell up. Only shears work, and only on the authoritative view.
func (m *Mooshroom) Shear(tool model.Item) (*model.Actor, bool) {
	if tool != model.ItemShears || m.actor.IsRemoved() {
		return nil, false
	}

	loc := m.actor.Location()
	m.host.Emit(model.Cue{Kind: model.CueExplosion, ActorID: m.actor.ID(), Pos: loc.Pos, Count: 1})
	m.host.Emit(model.Cue{Kind: model.CueShear, ActorID: m.actor.ID(), Pos: loc.Pos, Volume: 1, Pitch: 1})
	if m.host.IsRemote() {
		return nil, false
	}

	m.host.RemoveActor(m.actor.ID())
	m.actor.MarkRemoved()

	cow := model.NewActor(0, model.KindInfectedCow, loc)
	cow.SetHealth(m.actor.Health())
	if m.actor.HasCustomName() {
		cow.SetCustomName(m.actor.CustomName())
		cow.SetCustomNameVisible(m.actor.IsCustomNameVisible())
	}
	if m.actor.IsPersistent() {
		cow.EnablePersistence()
	}
	cow.SetInvulnerable(m.actor.IsInvulnerable())

	if _, err := m.host.AddActor(cow); err != nil {
		slog.Error("failed to add sheared cow",
			"objectID", m.actor.ID(),
			"pos", loc.Pos,
			"error", err)
		return nil, false
	}
	m.host.DropItems(m.state.Variant.Byproduct(), shearYield, loc.Pos.Up(1))

	slog.Info("mooshroom sheared",
		"objectID", m.actor.ID(),
		"cowID", cow.ID(),
		"variant", m.state.Variant)
	return cow, true
}

// HolyWater cures the mooshroom into a vanilla mooshroom of the same variant.
func (m *Mooshroom) HolyWater() (*model.Actor, bool) {
	if m.actor.IsRemoved() || m.host.IsRemote() {
		return nil, false
	}

	m.host.RemoveActor(m.actor.ID())
	m.actor.MarkRemoved()

	cured := model.NewActor(0, model.KindMooshroom, m.actor.Location())
	cured.SetAIDisabled(m.actor.IsAIDisabled())
	if m.actor.HasCustomName() {
		cured.SetCustomName(m.actor.CustomName())
		cured.SetCustomNameVisible(m.actor.IsCustomNameVisible())
	}
	cured.EnablePersistence()
	cured.SetGrowingAge(0)
	cured.SetVariantTag(m.state.Variant.Tag())

	if _, err := m.host.AddActor(cured); err != nil {
		slog.Error("failed to add cured mooshroom",
			"objectID", m.actor.ID(),
			"error", err)
		return nil, false
	}
	m.host.Emit(model.Cue{Kind: model.CueCured, ActorID: cured.ID(), Pos: cured.Pos()})

	slog.Info("mooshroom cured",
		"objectID", m.actor.ID(),
		"curedID", cured.ID(),
		"variant", m.state.Variant)
	return cured, true
}
