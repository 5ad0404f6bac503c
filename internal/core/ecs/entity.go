package ecs

import "fmt"

// EntityID packs a slot index (low 32 bits) and the slot's generation
// (high 32 bits). A destroyed slot bumps its generation so stale ids stop
// resolving.
type EntityID uint64

func NewEntityID(index uint32, generation uint32) EntityID {
	return EntityID(uint64(generation)<<32 | uint64(index))
}

func (id EntityID) Index() uint32      { return uint32(id) }
func (id EntityID) Generation() uint32 { return uint32(id >> 32) }
func (id EntityID) IsZero() bool       { return id == 0 }

func (id EntityID) String() string {
	return fmt.Sprintf("%d:%d", id.Index(), id.Generation())
}

type slot struct {
	generation uint32
	alive      bool
}

// EntityPool hands out ids and recycles destroyed slots. Slot 0 is reserved
// so the zero EntityID never names a live entity.
type EntityPool struct {
	slots []slot
	free  []uint32
	live  int
}

func NewEntityPool() *EntityPool {
	return &EntityPool{
		slots: make([]slot, 1, 256),
		free:  make([]uint32, 0, 64),
	}
}

func (p *EntityPool) Create() EntityID {
	var idx uint32
	if n := len(p.free); n > 0 {
		idx = p.free[n-1]
		p.free = p.free[:n-1]
	} else {
		idx = uint32(len(p.slots))
		p.slots = append(p.slots, slot{})
	}
	p.slots[idx].alive = true
	p.live++
	return NewEntityID(idx, p.slots[idx].generation)
}

func (p *EntityPool) Alive(id EntityID) bool {
	idx := id.Index()
	if idx == 0 || int(idx) >= len(p.slots) {
		return false
	}
	s := p.slots[idx]
	return s.alive && s.generation == id.Generation()
}

// Destroy frees the slot. Stale or unknown ids are ignored.
func (p *EntityPool) Destroy(id EntityID) bool {
	if !p.Alive(id) {
		return false
	}
	idx := id.Index()
	p.slots[idx].alive = false
	p.slots[idx].generation++
	p.free = append(p.free, idx)
	p.live--
	return true
}

// Live returns the number of live entities.
func (p *EntityPool) Live() int { return p.live }
