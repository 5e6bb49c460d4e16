package engine

// Owner gates a deferred callback on its liveness
// Satisfied by every entity through entity.Lifecycle
type Owner interface {
	Disposed() bool
}

type deferred struct {
	remaining float64
	owner     Owner
	fn        func()
}

// Scheduler runs one-shot callbacks after a delay in simulation time
// Callbacks never block; a disposed owner cancels its callback
type Scheduler struct {
	timers []deferred
	fired  uint64
}

// NewScheduler creates an empty scheduler
func NewScheduler() *Scheduler {
	return &Scheduler{timers: make([]deferred, 0, 16)}
}

// After schedules fn to run once delay seconds from now
// A nil owner is always live
func (s *Scheduler) After(delay float64, owner Owner, fn func()) {
	s.timers = append(s.timers, deferred{remaining: delay, owner: owner, fn: fn})
}

// Advance counts timers down by dt and runs the elapsed ones in schedule order
// Callbacks scheduled from inside a callback wait for the next Advance
// Returns the number of callbacks run
func (s *Scheduler) Advance(dt float64) int {
	if len(s.timers) == 0 {
		return 0
	}

	var due []deferred
	kept := s.timers[:0]
	for _, t := range s.timers {
		t.remaining -= dt
		if t.remaining <= 0 {
			due = append(due, t)
		} else {
			kept = append(kept, t)
		}
	}
	s.timers = kept

	ran := 0
	for _, t := range due {
		if t.owner != nil && t.owner.Disposed() {
			continue
		}
		t.fn()
		ran++
	}
	s.fired += uint64(ran)
	return ran
}

// Pending returns the number of scheduled callbacks
func (s *Scheduler) Pending() int {
	return len(s.timers)
}

// Fired returns the total number of callbacks run
func (s *Scheduler) Fired() uint64 {
	return s.fired
}

// Clear drops every scheduled callback
func (s *Scheduler) Clear() {
	s.timers = s.timers[:0]
}
