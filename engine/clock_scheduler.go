package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/arena-fighter/core"
)

// IntentSource yields the accumulated input for one tick
type IntentSource interface {
	Drain() core.Intent
}

// ClockScheduler drives World.Tick on a fixed wall-clock interval
// The measured delta between ticks is passed to the world, which clamps it
type ClockScheduler struct {
	world *World
	clock *PausableClock
	input IntentSource

	tickInterval     time.Duration
	lastTickTime     time.Time
	nextTickDeadline time.Time

	tickCount atomic.Uint64
	mu        sync.Mutex

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool

	// Signalled after every tick; renderers wait on it
	updateDone chan struct{}

	statTicks *atomic.Int64
}

// NewClockScheduler creates a scheduler and returns its tick notification channel
func NewClockScheduler(world *World, clock *PausableClock, input IntentSource, tickInterval time.Duration) (*ClockScheduler, <-chan struct{}) {
	updateDone := make(chan struct{}, 1)
	cs := &ClockScheduler{
		world:        world,
		clock:        clock,
		input:        input,
		tickInterval: tickInterval,
		stopChan:     make(chan struct{}),
		updateDone:   updateDone,
		statTicks:    world.Status.Ints.Get("engine.ticks"),
	}
	return cs, updateDone
}

// Start begins the scheduler loop
func (cs *ClockScheduler) Start() {
	if cs.running.CompareAndSwap(false, true) {
		cs.wg.Add(1)
		// Use core.Go for safe execution with centralized crash handling
		core.Go(cs.schedulerLoop)
	}
}

// Stop halts the scheduler loop and waits for the running tick
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		if cs.running.CompareAndSwap(true, false) {
			close(cs.stopChan)
			cs.wg.Wait()
		}
	})
}

// TickCount returns the number of ticks run
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

// schedulerLoop runs ticks against deadlines without busy-waiting
func (cs *ClockScheduler) schedulerLoop() {
	defer cs.wg.Done()

	cs.mu.Lock()
	cs.lastTickTime = cs.clock.Now()
	cs.nextTickDeadline = cs.lastTickTime.Add(cs.tickInterval)
	cs.mu.Unlock()

	timer := time.NewTimer(cs.tickInterval)
	defer timer.Stop()

	for {
		select {
		case <-cs.stopChan:
			return
		case <-timer.C:
		}

		var sleepDuration time.Duration
		if cs.clock.IsPaused() {
			// Increase sleep interval while paused to save CPU
			sleepDuration = cs.tickInterval * 2
		} else {
			now := cs.clock.Now()

			cs.mu.Lock()
			deadline := cs.nextTickDeadline
			if !now.Before(deadline) {
				cs.processTick(now)

				cs.nextTickDeadline = cs.nextTickDeadline.Add(cs.tickInterval)
				maxBehind := cs.tickInterval * 2
				if now.Sub(cs.nextTickDeadline) > maxBehind {
					cs.nextTickDeadline = now.Add(cs.tickInterval)
				}
				deadline = cs.nextTickDeadline
			}
			cs.mu.Unlock()

			sleepDuration = deadline.Sub(cs.clock.Now())
		}

		if sleepDuration < 0 {
			sleepDuration = 0
		}
		timer.Reset(sleepDuration)
	}
}

// processTick runs one world tick with the game-time delta since the last one
func (cs *ClockScheduler) processTick(now time.Time) {
	measured := now.Sub(cs.lastTickTime).Seconds()
	cs.lastTickTime = now

	var in core.Intent
	if cs.input != nil {
		in = cs.input.Drain()
	}
	cs.world.Tick(measured, in)

	ticks := cs.tickCount.Add(1)
	cs.statTicks.Store(int64(ticks))

	select {
	case cs.updateDone <- struct{}{}:
	default:
	}
}
