package parameter

import "time"

const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 1024

	// EventBufferMask is the bitmask for fast modulo operations (1024 - 1)
	EventBufferMask = 1023

	// TickInterval is the wall-clock period of the frame loop
	TickInterval = time.Second / 60

	// FixedTimeStep is the nominal physics step in seconds
	FixedTimeStep = 1.0 / 60.0

	// MaxFrameDelta clamps the measured frame delta in seconds
	MaxFrameDelta = 1.0 / 30.0

	// MaxSubSteps bounds physics catch-up steps per frame
	MaxSubSteps = 3

	// DefaultSeed seeds the simulation RNG when none is configured
	DefaultSeed = 0x5EED
)
