// Package input turns keyboard, mouse and remote input into per-tick intents
package input

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/arena-fighter/core"
	"github.com/lixenwraith/arena-fighter/vmath"
)

// CursorStep is the world distance one cursor key moves the aim point
const CursorStep = 1.0

// Collector accumulates input between ticks
// Producers run on the terminal or network goroutines; Drain runs on the tick goroutine
type Collector struct {
	mu    sync.Mutex
	table *KeyTable
	hold  time.Duration
	now   func() time.Time

	// Terminals report no key-up; a direction stays held until its deadline
	heldUntil [4]time.Time

	// Absolute axes from remote clients, also expiring after the hold window
	axisX, axisZ float64
	axisUntil    time.Time

	cursor mgl64.Vec3
	anchor mgl64.Vec3

	fire        bool
	toggleMode  bool
	placeTurret bool
}

// NewCollector creates a collector with the given key table and hold window
// A nil table uses DefaultKeyTable
func NewCollector(table *KeyTable, hold time.Duration) *Collector {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Collector{
		table: table,
		hold:  hold,
		now:   time.Now,
	}
}

// SetClock replaces the wall clock, used by tests
func (c *Collector) SetClock(now func() time.Time) {
	c.mu.Lock()
	c.now = now
	c.mu.Unlock()
}

// HandleKey applies a key event and returns its action
// System actions are not applied; the caller acts on them
func (c *Collector) HandleKey(ev *tcell.EventKey) Action {
	action := c.table.Lookup(ev)
	if action.Behavior() != BehaviorSystem {
		c.Apply(action)
	}
	return action
}

// Apply records a non-system action
func (c *Collector) Apply(a Action) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch a.Behavior() {
	case BehaviorMotion:
		c.heldUntil[a-ActionMoveUp] = c.now().Add(c.hold)
	case BehaviorCursor:
		switch a {
		case ActionCursorUp:
			c.cursor[2] -= CursorStep
		case ActionCursorDown:
			c.cursor[2] += CursorStep
		case ActionCursorLeft:
			c.cursor[0] -= CursorStep
		case ActionCursorRight:
			c.cursor[0] += CursorStep
		case ActionCursorToPlayer:
			c.cursor = c.anchor
		}
	case BehaviorTrigger:
		switch a {
		case ActionFire:
			c.fire = true
		case ActionToggleMode:
			c.toggleMode = true
		case ActionPlaceTurret:
			c.placeTurret = true
		}
	}
}

// SetMove sets absolute movement axes, clamped to [-1, 1]
// The axes expire after the hold window unless refreshed
func (c *Collector) SetMove(x, z float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.axisX = mgl64.Clamp(x, -1, 1)
	c.axisZ = mgl64.Clamp(z, -1, 1)
	c.axisUntil = c.now().Add(c.hold)
}

// SetCursor places the aim point in world space
func (c *Collector) SetCursor(p mgl64.Vec3) {
	c.mu.Lock()
	c.cursor = vmath.Flatten(p)
	c.mu.Unlock()
}

// SetAnchor records the position the cursor recenters on, usually the player
func (c *Collector) SetAnchor(p mgl64.Vec3) {
	c.mu.Lock()
	c.anchor = vmath.Flatten(p)
	c.mu.Unlock()
}

// Cursor returns the current aim point
func (c *Collector) Cursor() mgl64.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cursor
}

// Drain returns the intent for one tick and clears the edge flags
func (c *Collector) Drain() core.Intent {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	held := func(a Action) float64 {
		if now.Before(c.heldUntil[a-ActionMoveUp]) {
			return 1
		}
		return 0
	}

	x := held(ActionMoveRight) - held(ActionMoveLeft)
	z := held(ActionMoveDown) - held(ActionMoveUp)
	if now.Before(c.axisUntil) {
		x += c.axisX
		z += c.axisZ
	}

	in := core.Intent{
		MoveX:       mgl64.Clamp(x, -1, 1),
		MoveZ:       mgl64.Clamp(z, -1, 1),
		Cursor:      c.cursor,
		Fire:        c.fire,
		ToggleMode:  c.toggleMode,
		PlaceTurret: c.placeTurret,
	}
	c.fire, c.toggleMode, c.placeTurret = false, false, false
	return in
}
