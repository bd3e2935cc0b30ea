package world

import "sync/atomic"

// ObjectIDGenerator generates unique object IDs for all world entities.
//
// ID ranges (convention):
//
//	0x00000000 - 0x0FFFFFFF: Reserved (0 = no object / no target)
//	0x10000000 - 0x1FFFFFFF: Players
//	0x20000000 - 0x2FFFFFFF: Actors (mobs, projectiles, decoys)
//	0x30000000 - 0x3FFFFFFF: Items on ground
type ObjectIDGenerator struct {
	nextPlayerID atomic.Uint32
	nextActorID  atomic.Uint32
	nextItemID   atomic.Uint32
}

// NewObjectIDGenerator creates a new ID generator.
func NewObjectIDGenerator() *ObjectIDGenerator {
	gen := &ObjectIDGenerator{}
	gen.nextPlayerID.Store(0x10000000)
	gen.nextActorID.Store(0x20000000)
	gen.nextItemID.Store(0x30000000)
	return gen
}

// NextPlayerID generates next unique player object ID.
func (g *ObjectIDGenerator) NextPlayerID() uint32 {
	return g.nextPlayerID.Add(1)
}

// NextActorID generates next unique actor object ID.
func (g *ObjectIDGenerator) NextActorID() uint32 {
	return g.nextActorID.Add(1)
}

// NextItemID generates next unique item object ID.
func (g *ObjectIDGenerator) NextItemID() uint32 {
	return g.nextItemID.Add(1)
}

// Restore moves the actor counter past id so restored actors keep their ids.
func (g *ObjectIDGenerator) Restore(id uint32) {
	for {
		cur := g.nextActorID.Load()
		if id <= cur || g.nextActorID.CompareAndSwap(cur, id) {
			return
		}
	}
}

// IsPlayerID reports whether id is in the player range.
func IsPlayerID(id uint32) bool {
	return id >= 0x10000000 && id < 0x20000000
}
