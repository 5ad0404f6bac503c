package ecs

// World owns the entity pool, the component stores, and the deferred destroy
// queue flushed by the cleanup system at the end of each tick.
type World struct {
	pool      *EntityPool
	stores    []Removable
	queue     []EntityID
	queued    map[EntityID]struct{}
	onDestroy []func(EntityID)
}

func NewWorld() *World {
	return &World{
		pool:   NewEntityPool(),
		queue:  make([]EntityID, 0, 64),
		queued: make(map[EntityID]struct{}, 64),
	}
}

// Register adds a store that loses entities on destroy.
func (w *World) Register(store Removable) {
	w.stores = append(w.stores, store)
}

// OnDestroy registers a hook run for every entity flushed.
func (w *World) OnDestroy(fn func(EntityID)) {
	w.onDestroy = append(w.onDestroy, fn)
}

func (w *World) CreateEntity() EntityID { return w.pool.Create() }
func (w *World) Alive(id EntityID) bool { return w.pool.Alive(id) }
func (w *World) LiveEntities() int      { return w.pool.Live() }
func (w *World) PendingDestroys() int   { return len(w.queue) }

// MarkForDestruction queues an entity for end-of-tick cleanup. Marking the
// same entity twice in a tick is harmless.
func (w *World) MarkForDestruction(id EntityID) {
	if !w.pool.Alive(id) {
		return
	}
	if _, dup := w.queued[id]; dup {
		return
	}
	w.queued[id] = struct{}{}
	w.queue = append(w.queue, id)
}

// FlushDestroyQueue destroys queued entities in the order they were marked
// and returns how many were destroyed.
func (w *World) FlushDestroyQueue() int {
	n := 0
	for _, id := range w.queue {
		for _, fn := range w.onDestroy {
			fn(id)
		}
		for _, s := range w.stores {
			s.Remove(id)
		}
		if w.pool.Destroy(id) {
			n++
		}
		delete(w.queued, id)
	}
	w.queue = w.queue[:0]
	return n
}
