package ecs

import "testing"

func TestPoolRecyclesWithNewGeneration(t *testing.T) {
	p := NewEntityPool()
	a := p.Create()
	if a.IsZero() {
		t.Fatal("first entity must not be the zero id")
	}
	if !p.Destroy(a) {
		t.Fatal("destroy failed")
	}
	if p.Destroy(a) {
		t.Fatal("double destroy should be ignored")
	}
	b := p.Create()
	if b.Index() != a.Index() || b.Generation() == a.Generation() {
		t.Fatalf("recycled id %v from %v", b, a)
	}
	if p.Alive(a) || !p.Alive(b) {
		t.Fatal("stale id still alive")
	}
	if p.Live() != 1 {
		t.Fatalf("live = %d", p.Live())
	}
}

func TestStoreIteratesInInsertionOrder(t *testing.T) {
	w := NewWorld()
	s := NewStore[int]()
	w.Register(s)

	var ids []EntityID
	for i := 0; i < 100; i++ {
		id := w.CreateEntity()
		v := i
		s.Set(id, &v)
		ids = append(ids, id)
	}
	for i := 0; i < 100; i += 2 {
		s.Remove(ids[i])
	}
	want := 1
	s.Each(func(_ EntityID, v *int) bool {
		if *v != want {
			t.Fatalf("got %d, want %d", *v, want)
		}
		want += 2
		return true
	})
	if s.Len() != 50 {
		t.Fatalf("len = %d", s.Len())
	}
}

func TestStoreRemoveDuringEach(t *testing.T) {
	s := NewStore[int]()
	var ids []EntityID
	for i := 0; i < 80; i++ {
		id := NewEntityID(uint32(i+1), 0)
		v := i
		s.Set(id, &v)
		ids = append(ids, id)
	}
	seen := 0
	s.Each(func(id EntityID, _ *int) bool {
		s.Remove(id)
		seen++
		return true
	})
	if seen != 80 || s.Len() != 0 {
		t.Fatalf("seen=%d len=%d", seen, s.Len())
	}
}

func TestWorldFlushRunsHooksOnce(t *testing.T) {
	w := NewWorld()
	s := NewStore[string]()
	w.Register(s)

	id := w.CreateEntity()
	v := "round"
	s.Set(id, &v)

	var destroyed []EntityID
	w.OnDestroy(func(id EntityID) { destroyed = append(destroyed, id) })

	w.MarkForDestruction(id)
	w.MarkForDestruction(id)
	if w.PendingDestroys() != 1 {
		t.Fatalf("pending = %d", w.PendingDestroys())
	}
	if n := w.FlushDestroyQueue(); n != 1 {
		t.Fatalf("flushed %d", n)
	}
	if len(destroyed) != 1 || s.Has(id) || w.Alive(id) {
		t.Fatal("entity not fully destroyed")
	}
	w.MarkForDestruction(id)
	if w.PendingDestroys() != 0 {
		t.Fatal("dead entity should not be queued")
	}
}
