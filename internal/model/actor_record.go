package model

import "fmt"

// ActorRecord is the persisted form of an actor. Cast timers are only set for casters;
// Variant only for kinds with an appearance variant.
type ActorRecord struct {
	ObjectID     uint32     `json:"object_id"`
	Kind         string     `json:"kind"`
	Pos          Coordinate `json:"pos"`
	Yaw          float32    `json:"yaw"`
	Health       float32    `json:"health"`
	CustomName   string     `json:"custom_name,omitempty"`
	NameVisible  bool       `json:"name_visible,omitempty"`
	AIDisabled   bool       `json:"ai_disabled,omitempty"`
	Persistent   bool       `json:"persistent,omitempty"`
	Invulnerable bool       `json:"invulnerable,omitempty"`
	GrowingAge   int32      `json:"growing_age,omitempty"`
	Variant      string     `json:"variant,omitempty"`

	IllusionCastingInterval int32 `json:"IllusionCastingInterval,omitempty"`
	WeakenCastingInterval   int32 `json:"WeakenCastingInterval,omitempty"`
	WarpCastingInterval     int32 `json:"WarpCastingInterval,omitempty"`
}

// RecordOf captures the persisted fields of a.
func RecordOf(a *Actor) ActorRecord {
	loc := a.Location()
	return ActorRecord{
		ObjectID:     a.ID(),
		Kind:         a.Kind().String(),
		Pos:          loc.Pos,
		Yaw:          loc.Yaw,
		Health:       a.Health(),
		CustomName:   a.CustomName(),
		NameVisible:  a.IsCustomNameVisible(),
		AIDisabled:   a.IsAIDisabled(),
		Persistent:   a.IsPersistent(),
		Invulnerable: a.IsInvulnerable(),
		GrowingAge:   a.GrowingAge(),
		Variant:      a.VariantTag(),
	}
}

// NewActorFromRecord rebuilds an actor. Unknown kinds are an error.
func NewActorFromRecord(r ActorRecord) (*Actor, error) {
	kind, ok := ParseActorKind(r.Kind)
	if !ok || kind == KindUnknown {
		return nil, fmt.Errorf("actor %d: unknown kind %q", r.ObjectID, r.Kind)
	}

	a := NewActor(r.ObjectID, kind, Location{Pos: r.Pos, Yaw: r.Yaw})
	a.SetHealth(r.Health)
	a.SetCustomName(r.CustomName)
	a.SetCustomNameVisible(r.NameVisible)
	a.SetAIDisabled(r.AIDisabled)
	if r.Persistent {
		a.EnablePersistence()
	}
	a.SetInvulnerable(r.Invulnerable)
	a.SetGrowingAge(r.GrowingAge)
	a.SetVariantTag(r.Variant)
	return a, nil
}
