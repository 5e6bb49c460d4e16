package engine

import (
	"testing"
	"time"
)

func TestWallClockAdvances(t *testing.T) {
	var c WallClock
	t1 := c.Now()
	time.Sleep(10 * time.Millisecond)
	if d := c.Now().Sub(t1); d < 10*time.Millisecond {
		t.Errorf("elapsed = %v, want >= 10ms", d)
	}
}

func TestManualClock(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewManualClock(start)
	if !c.Now().Equal(start) {
		t.Fatalf("Now() = %v, want %v", c.Now(), start)
	}

	c.Advance(30 * time.Minute)
	if got := c.Advance(15 * time.Minute); !got.Equal(start.Add(45 * time.Minute)) {
		t.Errorf("Advance() = %v, want +45m", got)
	}
	if !c.Now().Equal(start.Add(45 * time.Minute)) {
		t.Errorf("Now() = %v after advances", c.Now())
	}
}

func TestPausableClockFreezesWhilePaused(t *testing.T) {
	startTime := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewManualClock(startTime)
	clock := NewPausableClock(mock)

	mock.Advance(time.Second)
	if got := clock.Now().Sub(startTime); got != time.Second {
		t.Fatalf("elapsed = %v, want 1s", got)
	}

	clock.Pause()
	mock.Advance(5 * time.Second)
	if got := clock.Now().Sub(startTime); got != time.Second {
		t.Errorf("elapsed while paused = %v, want 1s", got)
	}
	if got := clock.TotalPauseDuration(); got != 5*time.Second {
		t.Errorf("TotalPauseDuration() = %v, want 5s", got)
	}

	if paused := clock.Toggle(); paused {
		t.Fatal("Toggle() from paused = true, want false")
	}
	mock.Advance(2 * time.Second)
	if got := clock.Now().Sub(startTime); got != 3*time.Second {
		t.Errorf("elapsed after resume = %v, want 3s", got)
	}
}
