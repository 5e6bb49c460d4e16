package engine

// TimeResource wraps time data for systems
// Updated by the World at the start of a tick
type TimeResource struct {
	// DeltaTime is the clamped frame delta in seconds, the gameplay dt
	DeltaTime float64

	// Measured is the raw frame delta before clamping
	Measured float64

	// Elapsed is the sum of DeltaTime since the last reset
	Elapsed float64

	// FrameNumber is the current tick count
	FrameNumber int64

	// Substeps is the number of physics steps taken this tick
	Substeps int
}

// Update modifies TimeResource fields in-place
// Must be called on the simulation goroutine
func (tr *TimeResource) Update(measured, maxDelta float64) {
	dt := measured
	if dt < 0 {
		dt = 0
	}
	if maxDelta > 0 && dt > maxDelta {
		dt = maxDelta
	}
	tr.Measured = measured
	tr.DeltaTime = dt
	tr.Elapsed += dt
	tr.FrameNumber++
}

// Reset zeroes elapsed time, keeping the frame counter monotonic
func (tr *TimeResource) Reset() {
	tr.Elapsed = 0
}
