package component

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

type fixedPose struct {
	pos mgl64.Vec3
	rot mgl64.Quat
}

func (p fixedPose) Position() mgl64.Vec3    { return p.pos }
func (p fixedPose) Orientation() mgl64.Quat { return p.rot }

func TestSyncCopiesPose(t *testing.T) {
	v := NewVisual(ColorNormal)
	p := fixedPose{
		pos: mgl64.Vec3{1, 2, 3},
		rot: mgl64.QuatRotate(0.4, mgl64.Vec3{0, 1, 0}),
	}

	Sync(p, v)

	if v.Position != p.pos {
		t.Errorf("Position = %v, want %v", v.Position, p.pos)
	}
	if v.Orientation != p.rot {
		t.Errorf("Orientation = %v, want %v", v.Orientation, p.rot)
	}
}

func TestSyncNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Sync(nil) did not panic")
		}
	}()
	Sync(nil, NewVisual(ColorNormal))
}

func TestCooldownElapsesExactlyOnce(t *testing.T) {
	var c Cooldown
	c.Start(0.1)

	const dt = 1.0 / 60.0
	prev := c.Remaining
	fired := 0
	for i := 0; i < 20; i++ {
		wasActive := c.Active()
		if c.Tick(dt) {
			fired++
		}
		if wasActive && c.Remaining >= prev && c.Remaining > 0 {
			t.Fatalf("tick %d: remaining %v did not decrease from %v", i, c.Remaining, prev)
		}
		if c.Remaining < 0 {
			t.Fatalf("tick %d: remaining %v below zero", i, c.Remaining)
		}
		prev = c.Remaining
	}

	if fired != 1 {
		t.Errorf("Tick fired %d times, want 1", fired)
	}
	if c.Progress() != 1 {
		t.Errorf("Progress() = %v, want 1", c.Progress())
	}
}

func TestCooldownProgress(t *testing.T) {
	var c Cooldown
	c.Start(2)
	c.Tick(0.5)
	if got := c.Progress(); got != 0.25 {
		t.Errorf("Progress() = %v, want 0.25", got)
	}
}

func TestAnimatorOneShot(t *testing.T) {
	a := NewAnimator(ClipLibrary{"Exit": 1.0, "Drive": 0.5})

	if a.Play("Missing", false) {
		t.Error("Play(missing) = true, want false")
	}
	if !a.Play("Exit", false) {
		t.Fatal("Play(Exit) = false")
	}

	a.Update(0.6)
	if a.TakeFinished("Exit") {
		t.Error("finished before duration")
	}
	a.Update(0.5)
	if !a.TakeFinished("Exit") {
		t.Error("not finished after duration")
	}
	if a.TakeFinished("Exit") {
		t.Error("TakeFinished returned true twice")
	}
}

func TestAnimatorSignalCompletesEarly(t *testing.T) {
	a := NewAnimator(ClipLibrary{"Exit": 10})
	a.Play("Exit", false)
	a.Signal("Other")
	if a.TakeFinished("Exit") {
		t.Error("unrelated signal completed clip")
	}
	a.Signal("Exit")
	if !a.TakeFinished("Exit") {
		t.Error("signal did not complete clip")
	}
}

func TestAnimatorLoopNeverFinishes(t *testing.T) {
	a := NewAnimator(ClipLibrary{"Drive": 0.5})
	a.Play("Drive", true)
	for i := 0; i < 10; i++ {
		a.Update(0.3)
	}
	if !a.IsPlaying("Drive") {
		t.Error("looping clip stopped")
	}
	if a.TakeFinished("Drive") {
		t.Error("looping clip reported finished")
	}
}
