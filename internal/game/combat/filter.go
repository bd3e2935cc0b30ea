package combat

import "github.com/udisondev/herobrine/internal/model"

// immuneKinds are the environmental causes herobrine ignores.
var immuneKinds = map[DamageKind]struct{}{
	DamageFall:           {},
	DamageCactus:         {},
	DamageDrown:          {},
	DamageLightning:      {},
	DamageInFire:         {},
	DamageOnFire:         {},
	DamageAnvil:          {},
	DamageCramming:       {},
	DamageDragonBreath:   {},
	DamageDryOut:         {},
	DamageFallingBlock:   {},
	DamageFireworks:      {},
	DamageFlyIntoWall:    {},
	DamageHotFloor:       {},
	DamageLava:           {},
	DamageInWall:         {},
	DamageMagic:          {},
	DamageStarve:         {},
	DamageSweetBerryBush: {},
	DamageWither:         {},
}

// ShouldSuppress reports whether ev is nullified before normal resolution.
//
// Herobrine family: the proximate source check runs first, then the kind set.
// The two are separate rules: one looks at what touched the actor, the other
// at the cause tag only. Infected animals ignore unholy water only.
func ShouldSuppress(ev DamageEvent, flags model.ActorFlags) bool {
	switch {
	case flags.Has(model.FlagHerobrine):
		if immuneSource(ev.Source) {
			return true
		}
		_, immune := immuneKinds[ev.Kind]
		return immune

	case flags.Has(model.FlagInfected):
		return ev.Source != nil && ev.Source.Proximate == model.KindUnholyWater
	}
	return false
}

func immuneSource(src *Source) bool {
	if src == nil {
		return false
	}
	switch src.Proximate {
	case model.KindAreaEffectCloud, model.KindThrownPotion, model.KindUnholyWater:
		return true
	}
	return false
}
