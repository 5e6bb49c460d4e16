package component

// Cooldown counts down in seconds and reports the tick it elapses
type Cooldown struct {
	Duration  float64
	Remaining float64
}

// Start arms the cooldown for d seconds
func (c *Cooldown) Start(d float64) {
	c.Duration = d
	c.Remaining = d
}

// Active reports whether time remains
func (c *Cooldown) Active() bool {
	return c.Remaining > 0
}

// Tick decrements by dt and returns true exactly once, on the tick Remaining reaches zero
func (c *Cooldown) Tick(dt float64) bool {
	if c.Remaining <= 0 {
		return false
	}
	c.Remaining -= dt
	if c.Remaining <= 0 {
		c.Remaining = 0
		return true
	}
	return false
}

// Progress returns elapsed fraction in [0, 1]; 1 when idle
func (c *Cooldown) Progress() float64 {
	if c.Duration <= 0 || c.Remaining <= 0 {
		return 1
	}
	p := 1 - c.Remaining/c.Duration
	if p < 0 {
		return 0
	}
	return p
}

// Reset clears remaining time
func (c *Cooldown) Reset() {
	c.Remaining = 0
}
