package conversion

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/udisondev/herobrine/internal/model"
)

// lightningRadius is the horizontal reach of a lightning strike, in cells.
const lightningRadius = 3

// Registry tracks the conversion machines of live infected mooshrooms.
type Registry struct {
	host  Host
	herd  sync.Map // objectID → *Mooshroom
	count atomic.Int32
}

// NewRegistry creates an empty registry.
func NewRegistry(host Host) *Registry {
	return &Registry{host: host}
}

// Track creates the machine for actor. Non-convertible kinds return ErrNotConvertible.
func (r *Registry) Track(actor *model.Actor) (*Mooshroom, error) {
	m, err := NewMooshroom(actor, r.host)
	if err != nil {
		return nil, err
	}
	if _, loaded := r.herd.Swap(actor.ID(), m); !loaded {
		r.count.Add(1)
	}
	return m, nil
}

// Get returns the machine of a live tracked actor.
func (r *Registry) Get(objectID uint32) (*Mooshroom, bool) {
	value, ok := r.herd.Load(objectID)
	if !ok {
		return nil, false
	}
	m := value.(*Mooshroom)
	if m.actor.IsRemoved() {
		r.forget(objectID)
		return nil, false
	}
	return m, true
}

// Len returns number of tracked mooshrooms (O(1) cached count).
func (r *Registry) Len() int {
	return int(r.count.Load())
}

// Strike delivers a strike token to one mooshroom.
func (r *Registry) Strike(objectID uint32, token uuid.UUID) bool {
	m, ok := r.Get(objectID)
	if !ok {
		return false
	}
	return m.Strike(token)
}

// Lightning strikes every tracked mooshroom within lightningRadius of pos.
// Returns the number of flips.
func (r *Registry) Lightning(pos model.Coordinate, token uuid.UUID) int {
	flips := 0
	r.herd.Range(func(key, value any) bool {
		m := value.(*Mooshroom)
		p := m.actor.Pos()
		if abs(p.X-pos.X) > lightningRadius || abs(p.Z-pos.Z) > lightningRadius || abs(p.Y-pos.Y) > lightningRadius*2 {
			return true
		}
		if m.Strike(token) {
			flips++
		}
		return true
	})
	return flips
}

// Shear applies a tool to one mooshroom. The machine is dropped on success.
func (r *Registry) Shear(objectID uint32, tool model.Item) (*model.Actor, bool) {
	m, ok := r.Get(objectID)
	if !ok {
		return nil, false
	}
	cow, ok := m.Shear(tool)
	if ok {
		r.forget(objectID)
	}
	return cow, ok
}

// HolyWater cures one mooshroom. The machine is dropped on success.
func (r *Registry) HolyWater(objectID uint32) (*model.Actor, bool) {
	m, ok := r.Get(objectID)
	if !ok {
		return nil, false
	}
	cured, ok := m.HolyWater()
	if ok {
		r.forget(objectID)
	}
	return cured, ok
}

// Sweep drops machines of actors removed by other means (death, despawn).
func (r *Registry) Sweep() int {
	n := 0
	r.herd.Range(func(key, value any) bool {
		if value.(*Mooshroom).actor.IsRemoved() {
			r.forget(key.(uint32))
			n++
		}
		return true
	})
	return n
}

func (r *Registry) forget(objectID uint32) {
	if _, ok := r.herd.LoadAndDelete(objectID); ok {
		r.count.Add(-1)
	}
}

func abs(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
