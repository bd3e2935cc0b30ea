package model

// ActorKind identifies the type of an actor.
type ActorKind uint16

const (
	KindUnknown ActorKind = iota
	KindPlayer
	KindHerobrineMage
	KindFakeHerobrineMage
	KindHerobrineWarrior
	KindInfectedMooshroom
	KindInfectedCow
	KindMooshroom
	KindSurvivor
	KindIronGolem
	KindAreaEffectCloud
	KindThrownPotion
	KindUnholyWater
	KindHolyWater
	KindLightningBolt
	KindArrow
	KindItem
)

// ActorFlags are kind-level behaviour flags.
type ActorFlags uint32

const (
	// FlagHerobrine marks the herobrine family: full damage filter, presence check.
	FlagHerobrine ActorFlags = 1 << iota
	// FlagInfected marks infected animals: unholy water is harmless to them.
	FlagInfected
	// FlagHostile marks kinds gated by the spawn validator.
	FlagHostile
	// FlagNeedsSky marks kinds that must see the sky to spawn.
	FlagNeedsSky
	// FlagDecoy marks illusion decoys: no caster AI, no special drops.
	FlagDecoy
	// FlagCaster marks kinds driven by the cast-timer AI.
	FlagCaster
	// FlagConvertible marks kinds driven by the conversion state machine.
	FlagConvertible
	// FlagProjectile marks non-living proximate damage sources.
	FlagProjectile
	// FlagLiving marks kinds with health.
	FlagLiving
)

// Has reports whether all bits of f are set.
func (a ActorFlags) Has(f ActorFlags) bool {
	return a&f == f
}

var kindInfo = map[ActorKind]struct {
	name      string
	flags     ActorFlags
	maxHealth float32
}{
	KindUnknown:           {"unknown", 0, 0},
	KindPlayer:            {"player", FlagLiving, 20},
	KindHerobrineMage:     {"herobrine_mage", FlagHerobrine | FlagHostile | FlagCaster | FlagLiving, 40},
	KindFakeHerobrineMage: {"fake_herobrine_mage", FlagHerobrine | FlagDecoy | FlagLiving, 1},
	KindHerobrineWarrior:  {"herobrine_warrior", FlagHerobrine | FlagHostile | FlagLiving, 40},
	KindInfectedMooshroom: {"infected_mooshroom", FlagInfected | FlagHostile | FlagNeedsSky | FlagConvertible | FlagLiving, 10},
	KindInfectedCow:       {"infected_cow", FlagInfected | FlagHostile | FlagLiving, 10},
	KindMooshroom:         {"mooshroom", FlagLiving, 10},
	KindSurvivor:          {"survivor", FlagLiving, 20},
	KindIronGolem:         {"iron_golem", FlagLiving, 100},
	KindAreaEffectCloud:   {"area_effect_cloud", FlagProjectile, 0},
	KindThrownPotion:      {"potion", FlagProjectile, 0},
	KindUnholyWater:       {"unholy_water", FlagProjectile, 0},
	KindHolyWater:         {"holy_water", FlagProjectile, 0},
	KindLightningBolt:     {"lightning_bolt", 0, 0},
	KindArrow:             {"arrow", FlagProjectile, 0},
	KindItem:              {"item", 0, 0},
}

// String returns the registry name of the kind.
func (k ActorKind) String() string {
	if info, ok := kindInfo[k]; ok {
		return info.name
	}
	return "unknown"
}

// Flags returns the behaviour flags of the kind.
func (k ActorKind) Flags() ActorFlags {
	return kindInfo[k].flags
}

// MaxHealth returns the base max health of the kind.
func (k ActorKind) MaxHealth() float32 {
	return kindInfo[k].maxHealth
}

// ParseActorKind looks up a kind by registry name.
func ParseActorKind(name string) (ActorKind, bool) {
	for k, info := range kindInfo {
		if info.name == name {
			return k, true
		}
	}
	return KindUnknown, false
}
