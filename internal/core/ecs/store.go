package ecs

// Removable lets the World strip a destroyed entity from every store.
type Removable interface {
	Remove(id EntityID)
}

// Store keeps components in insertion order so systems iterate entities
// deterministically, which keeps simulation runs reproducible.
type Store[T any] struct {
	index map[EntityID]int
	ids   []EntityID
	items []*T
	holes int
	depth int // active Each calls; compaction waits until zero
}

func NewStore[T any]() *Store[T] {
	return &Store[T]{index: make(map[EntityID]int, 64)}
}

// Set inserts or replaces the component. Replacement keeps the original slot.
func (s *Store[T]) Set(id EntityID, c *T) {
	if i, ok := s.index[id]; ok {
		s.items[i] = c
		return
	}
	s.index[id] = len(s.ids)
	s.ids = append(s.ids, id)
	s.items = append(s.items, c)
}

func (s *Store[T]) Get(id EntityID) (*T, bool) {
	i, ok := s.index[id]
	if !ok {
		return nil, false
	}
	return s.items[i], true
}

func (s *Store[T]) Has(id EntityID) bool {
	_, ok := s.index[id]
	return ok
}

func (s *Store[T]) Remove(id EntityID) {
	i, ok := s.index[id]
	if !ok {
		return
	}
	delete(s.index, id)
	s.ids[i] = 0
	s.items[i] = nil
	s.holes++
	if s.depth == 0 && s.holes > 32 && s.holes*2 > len(s.ids) {
		s.compact()
	}
}

func (s *Store[T]) Len() int { return len(s.index) }

// Each visits components in insertion order. Returning false stops early.
// fn may remove the entity it is visiting.
func (s *Store[T]) Each(fn func(EntityID, *T) bool) {
	s.depth++
	defer func() { s.depth-- }()
	for i := 0; i < len(s.ids); i++ {
		if s.items[i] == nil {
			continue
		}
		if !fn(s.ids[i], s.items[i]) {
			return
		}
	}
}

func (s *Store[T]) compact() {
	n := 0
	for i, id := range s.ids {
		if s.items[i] == nil {
			continue
		}
		s.ids[n] = id
		s.items[n] = s.items[i]
		s.index[id] = n
		n++
	}
	for i := n; i < len(s.ids); i++ {
		s.items[i] = nil
	}
	s.ids = s.ids[:n]
	s.items = s.items[:n]
	s.holes = 0
}
