package combat

import "github.com/udisondev/herobrine/internal/model"

// DropResult represents a single item stack dropped on death.
type DropResult struct {
	Item  model.Item
	Count int
}

// cursedDustChancePerLevel is the percent chance per (looting+1) of a cursed dust drop.
const cursedDustChancePerLevel = 20

// CalculateDrops rolls the special drops of kind killed with the given looting level.
// Herobrine drops one cursed dust when IntN(100) <= 20*(looting+1); decoys drop nothing.
func CalculateDrops(kind model.ActorKind, looting int32, rng model.Rand) []DropResult {
	flags := kind.Flags()
	if !flags.Has(model.FlagHerobrine) || flags.Has(model.FlagDecoy) {
		return nil
	}
	if looting < 0 {
		looting = 0
	}
	if int32(rng.IntN(100)) > cursedDustChancePerLevel*(looting+1) {
		return nil
	}
	return []DropResult{{Item: model.ItemCursedDust, Count: 1}}
}
