package combat

import "github.com/udisondev/herobrine/internal/model"

// DamageKind is the cause tag of a damage event.
type DamageKind uint8

const (
	DamageGeneric DamageKind = iota

	// Environmental and incidental causes.
	DamageFall
	DamageCactus
	DamageDrown
	DamageLightning
	DamageInFire
	DamageOnFire
	DamageAnvil
	DamageCramming
	DamageDragonBreath
	DamageDryOut
	DamageFallingBlock
	DamageFireworks
	DamageFlyIntoWall
	DamageHotFloor
	DamageLava
	DamageInWall
	DamageMagic
	DamageStarve
	DamageSweetBerryBush
	DamageWither

	// Attacks and the rest.
	DamageMobAttack
	DamagePlayerAttack
	DamageArrow
	DamageThrown
	DamageExplosion
	DamageThorns
	DamageOutOfWorld

	damageKindCount
)

var damageKindNames = [damageKindCount]string{
	DamageGeneric:        "generic",
	DamageFall:           "fall",
	DamageCactus:         "cactus",
	DamageDrown:          "drown",
	DamageLightning:      "lightningBolt",
	DamageInFire:         "inFire",
	DamageOnFire:         "onFire",
	DamageAnvil:          "anvil",
	DamageCramming:       "cramming",
	DamageDragonBreath:   "dragonBreath",
	DamageDryOut:         "dryout",
	DamageFallingBlock:   "fallingBlock",
	DamageFireworks:      "fireworks",
	DamageFlyIntoWall:    "flyIntoWall",
	DamageHotFloor:       "hotFloor",
	DamageLava:           "lava",
	DamageInWall:         "inWall",
	DamageMagic:          "magic",
	DamageStarve:         "starve",
	DamageSweetBerryBush: "sweetBerryBush",
	DamageWither:         "wither",
	DamageMobAttack:      "mob",
	DamagePlayerAttack:   "player",
	DamageArrow:          "arrow",
	DamageThrown:         "thrown",
	DamageExplosion:      "explosion",
	DamageThorns:         "thorns",
	DamageOutOfWorld:     "outOfWorld",
}

func (k DamageKind) String() string {
	if k < damageKindCount {
		return damageKindNames[k]
	}
	return "unknown"
}

// AllDamageKinds returns every defined kind.
func AllDamageKinds() []DamageKind {
	out := make([]DamageKind, 0, damageKindCount)
	for k := range damageKindCount {
		out = append(out, k)
	}
	return out
}

// Source identifies who dealt the damage.
type Source struct {
	// Proximate is the kind of the actor that made contact (the potion, the arrow, the cloud).
	Proximate   model.ActorKind
	ProximateID uint32
	// AttackerID is the actor ultimately responsible (the thrower), 0 if none.
	AttackerID uint32
	// Looting is the attacker's looting level.
	Looting int32
}

// DamageEvent is one harm occurrence. Source is nil for causeless damage.
type DamageEvent struct {
	Kind   DamageKind
	Source *Source
	Amount float32
}
