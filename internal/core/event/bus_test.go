package event

import "testing"

type ping struct{ N int }
type pong struct{ S string }

func TestEventsDeliveredNextTick(t *testing.T) {
	b := NewBus()
	var got []int
	Subscribe(b, func(p ping) { got = append(got, p.N) })

	Emit(b, ping{1})
	Emit(b, ping{2})
	if n := b.DispatchAll(); n != 0 || len(got) != 0 {
		t.Fatal("events must not be visible before the swap")
	}
	b.SwapBuffers()
	if n := b.DispatchAll(); n != 2 {
		t.Fatalf("dispatched %d", n)
	}
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("got %v", got)
	}
	b.SwapBuffers()
	b.DispatchAll()
	if len(got) != 2 {
		t.Fatal("events delivered twice")
	}
}

func TestDispatchOrderFollowsFirstEmit(t *testing.T) {
	b := NewBus()
	var trace []string
	Subscribe(b, func(pong) { trace = append(trace, "pong") })
	Subscribe(b, func(ping) { trace = append(trace, "ping") })

	for i := 0; i < 20; i++ {
		Emit(b, pong{})
		Emit(b, ping{})
		b.SwapBuffers()
		trace = trace[:0]
		b.DispatchAll()
		if trace[0] != "pong" || trace[1] != "ping" {
			t.Fatalf("iteration %d order %v", i, trace)
		}
	}
}

func TestEmitNilBus(t *testing.T) {
	Emit[ping](nil, ping{1})
}
