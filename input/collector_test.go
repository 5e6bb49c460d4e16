package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
)

type fakeClock struct{ t time.Time }

func (f *fakeClock) now() time.Time          { return f.t }
func (f *fakeClock) advance(d time.Duration) { f.t = f.t.Add(d) }

func newTestCollector() (*Collector, *fakeClock) {
	clk := &fakeClock{t: time.Unix(1000, 0)}
	c := NewCollector(nil, 150*time.Millisecond)
	c.SetClock(clk.now)
	return c, clk
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestMovementHoldWindow(t *testing.T) {
	c, clk := newTestCollector()

	c.HandleKey(runeKey('d'))
	if in := c.Drain(); in.MoveX != 1 || in.MoveZ != 0 {
		t.Fatalf("expected MoveX=1, got %+v", in)
	}

	clk.advance(100 * time.Millisecond)
	if in := c.Drain(); in.MoveX != 1 {
		t.Errorf("key should still be held inside the window, got %v", in.MoveX)
	}

	clk.advance(100 * time.Millisecond)
	if in := c.Drain(); in.MoveX != 0 {
		t.Errorf("key should release after the window, got %v", in.MoveX)
	}
}

func TestOpposingKeysCancel(t *testing.T) {
	c, _ := newTestCollector()
	c.HandleKey(runeKey('w'))
	c.HandleKey(runeKey('s'))
	c.HandleKey(runeKey('a'))

	in := c.Drain()
	if in.MoveZ != 0 {
		t.Errorf("up and down should cancel, got %v", in.MoveZ)
	}
	if in.MoveX != -1 {
		t.Errorf("expected MoveX=-1, got %v", in.MoveX)
	}
}

func TestEdgeFlagsClearOnDrain(t *testing.T) {
	c, _ := newTestCollector()
	c.HandleKey(runeKey(' '))
	c.HandleKey(runeKey('e'))
	c.HandleKey(runeKey('t'))

	in := c.Drain()
	if !in.Fire || !in.ToggleMode || !in.PlaceTurret {
		t.Fatalf("expected all edge flags, got %+v", in)
	}
	in = c.Drain()
	if in.Fire || in.ToggleMode || in.PlaceTurret {
		t.Errorf("edge flags must fire once, got %+v", in)
	}
}

func TestSystemActionsReturnedNotApplied(t *testing.T) {
	c, _ := newTestCollector()

	tests := []struct {
		ev   *tcell.EventKey
		want Action
	}{
		{runeKey('q'), ActionQuit},
		{tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), ActionQuit},
		{runeKey('p'), ActionPause},
		{runeKey('r'), ActionReset},
		{runeKey('m'), ActionToggleMute},
		{runeKey('1'), ActionUpgradeRadius},
		{runeKey('2'), ActionUpgradeCooldown},
		{runeKey('z'), ActionNone},
	}
	for _, tt := range tests {
		if got := c.HandleKey(tt.ev); got != tt.want {
			t.Errorf("key %s: got %v, want %v", tt.ev.Name(), got, tt.want)
		}
	}
	if in := c.Drain(); in.HasMovement() || in.Fire || in.ToggleMode || in.PlaceTurret {
		t.Errorf("system actions must not change the intent, got %+v", in)
	}
}

func TestCursorKeys(t *testing.T) {
	c, _ := newTestCollector()
	c.SetAnchor(mgl64.Vec3{4, 2, -3})

	c.HandleKey(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	c.HandleKey(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	c.HandleKey(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	if got := c.Drain().Cursor; got != (mgl64.Vec3{2, 0, -1}) {
		t.Errorf("cursor after nudges = %v", got)
	}

	c.HandleKey(runeKey('c'))
	if got := c.Drain().Cursor; got != (mgl64.Vec3{4, 0, -3}) {
		t.Errorf("cursor should recenter on the flattened anchor, got %v", got)
	}
}

func TestSetMoveClampsAndExpires(t *testing.T) {
	c, clk := newTestCollector()
	c.SetMove(3, -0.5)

	in := c.Drain()
	if in.MoveX != 1 || in.MoveZ != -0.5 {
		t.Errorf("expected clamped axes (1, -0.5), got (%v, %v)", in.MoveX, in.MoveZ)
	}

	clk.advance(200 * time.Millisecond)
	if in := c.Drain(); in.HasMovement() {
		t.Errorf("remote axes should expire, got %+v", in)
	}
}

func TestApplyBindings(t *testing.T) {
	kt := DefaultKeyTable()
	err := ApplyBindings(kt, map[string]string{
		"x":     "fire",
		"space": "none",
		"f1":    "reset",
	})
	if err != nil {
		t.Fatalf("ApplyBindings: %v", err)
	}
	if kt.Runes['x'] != ActionFire {
		t.Errorf("x should fire")
	}
	if _, ok := kt.Runes[' ']; ok {
		t.Errorf("space should be unbound")
	}
	if kt.SpecialKeys[tcell.KeyF1] != ActionReset {
		t.Errorf("F1 should reset")
	}

	if err := ApplyBindings(kt, map[string]string{"y": "teleport"}); err == nil {
		t.Errorf("unknown action should fail")
	}
	if err := ApplyBindings(kt, map[string]string{"hyper-z": "fire"}); err == nil {
		t.Errorf("unknown key name should fail")
	}
}

func TestActionNamesRoundTrip(t *testing.T) {
	for name, a := range actionRegistry {
		if got := a.String(); got != name {
			t.Errorf("%q resolves to %v which names itself %q", name, a, got)
		}
	}
}
