// Package input carries named controller actions from the device layer into
// the simulation tick.
package input

import "github.com/skyshot/armory/internal/feedback"

// Action names.
const (
	Trigger = "Trigger" // continuous value in [0,1]
	Eject   = "Eject"   // discrete press
	Wing    = "Wing"    // continuous value in [0,1]
)

// Action is one input sample.
type Action struct {
	Hand    feedback.Hand
	Name    string
	Value   float64
	Pressed bool
}

// Handler consumes actions.
type Handler interface {
	HandleAction(a Action)
}

// Queue buffers actions between device polls and the next tick.
type Queue struct {
	pending []Action
}

func NewQueue() *Queue {
	return &Queue{pending: make([]Action, 0, 32)}
}

func (q *Queue) Push(a Action) {
	q.pending = append(q.pending, a)
}

// Drain hands every pending action to fn in arrival order and empties the queue.
func (q *Queue) Drain(fn func(Action)) {
	for _, a := range q.pending {
		fn(a)
	}
	q.pending = q.pending[:0]
}

func (q *Queue) Len() int { return len(q.pending) }
