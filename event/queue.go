package event

import (
	"sync/atomic"

	"github.com/lixenwraith/arena-fighter/parameter"
)

type slot struct {
	ev    GameEvent
	ready atomic.Bool
}

// EventQueue is a fixed-size ring shared by many producers and one consumer
// Producers claim a sequence number with CAS and publish the slot with a ready flag
// The consumer stops at the first unpublished slot, so a half-written event is never read
// When the ring is full the oldest unread event is overwritten and counted in Dropped
type EventQueue struct {
	slots   [parameter.EventQueueSize]slot
	read    atomic.Uint64
	write   atomic.Uint64
	dropped atomic.Uint64
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends ev, overwriting the oldest unread event on overflow
func (q *EventQueue) Push(ev GameEvent) {
	seq := q.write.Add(1) - 1
	s := &q.slots[seq&parameter.EventBufferMask]
	s.ev = ev
	s.ready.Store(true)

	next := seq + 1
	for {
		r := q.read.Load()
		if next-r <= parameter.EventQueueSize {
			return
		}
		if q.read.CompareAndSwap(r, next-parameter.EventQueueSize) {
			q.dropped.Add(next - parameter.EventQueueSize - r)
			return
		}
	}
}

// Emit stamps the frame and pushes the event
func (q *EventQueue) Emit(t EventType, payload any, frame int64) {
	q.Push(GameEvent{Type: t, Payload: payload, Frame: frame})
}

// DrainInto appends every published event to buf[:0] in FIFO order and returns it
// Only the simulation goroutine may call it
func (q *EventQueue) DrainInto(buf []GameEvent) []GameEvent {
	for {
		start := q.read.Load()
		w := q.write.Load()
		r := start
		if w-r > parameter.EventQueueSize {
			r = w - parameter.EventQueueSize
		}

		buf = buf[:0]
		seq := r
		for ; seq < w; seq++ {
			s := &q.slots[seq&parameter.EventBufferMask]
			if !s.ready.Load() {
				break
			}
			buf = append(buf, s.ev)
		}

		if q.read.CompareAndSwap(start, seq) {
			for i := r; i < seq; i++ {
				q.slots[i&parameter.EventBufferMask].ready.Store(false)
			}
			return buf
		}
	}
}

// Len reports the approximate number of unread events
func (q *EventQueue) Len() int {
	r, w := q.read.Load(), q.write.Load()
	if w <= r {
		return 0
	}
	return int(min(w-r, parameter.EventQueueSize))
}

// Dropped returns the number of unread events lost to overflow
func (q *EventQueue) Dropped() uint64 {
	return q.dropped.Load()
}
