package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/arena-fighter/audio"
	"github.com/lixenwraith/arena-fighter/config"
	"github.com/lixenwraith/arena-fighter/core"
	"github.com/lixenwraith/arena-fighter/engine"
	"github.com/lixenwraith/arena-fighter/event"
	"github.com/lixenwraith/arena-fighter/input"
	"github.com/lixenwraith/arena-fighter/network"
	"github.com/lixenwraith/arena-fighter/render"
)

const (
	// Redraw rate while the scheduler is paused and sends no updates
	idleRedrawInterval     = 250 * time.Millisecond
	headlessReportInterval = 5 * time.Second
)

// app holds the wired process pieces shared by the terminal and headless loops
type app struct {
	cfg       *config.Config
	log       zerolog.Logger
	world     *engine.World
	clock     *engine.PausableClock
	collector *input.Collector
	sound     *audio.SoundManager
	server    *network.Server
	updates   <-chan struct{}

	message      string
	messageUntil time.Time
}

// runTerminal drives the tcell view on the calling goroutine until quit or ctx ends
func (a *app) runTerminal(ctx context.Context) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing terminal screen: %w", err)
	}
	core.RegisterCrashFinalizer(screen)
	defer func() {
		screen.Fini()
		core.RegisterCrashFinalizer(nil)
	}()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	renderer := render.NewTerminalRenderer(screen, a.cfg.Engine.Player.ShotRange)

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)
	// ChannelEvents closes events once quit closes
	core.Go(func() { screen.ChannelEvents(events, quit) })

	idle := time.NewTicker(idleRedrawInterval)
	defer idle.Stop()

	var lastButtons tcell.ButtonMask

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !a.handleAction(a.collector.HandleKey(ev)) {
					return nil
				}
			case *tcell.EventMouse:
				lastButtons = a.handleMouse(ev, renderer.Viewport(), lastButtons)
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-a.updates:
			a.draw(renderer)

		case <-idle.C:
			if a.clock.IsPaused() {
				a.draw(renderer)
			}
		}
	}
}

func (a *app) draw(renderer *render.TerminalRenderer) {
	snap := a.world.Snapshot()
	if snap != nil {
		if pv, ok := snap.Find(snap.Player); ok {
			a.collector.SetAnchor(pv.Position)
		}
	}

	st := render.Status{Paused: a.clock.IsPaused()}
	if a.sound != nil {
		st.Muted = a.sound.Muted()
	}
	if a.server != nil {
		st.Peers = a.server.PeerCount()
	}
	if time.Now().Before(a.messageUntil) {
		st.Message = a.message
	}
	renderer.RenderFrame(snap, st)
}

// handleAction acts on process-level actions; returns false to quit
func (a *app) handleAction(action input.Action) bool {
	switch action {
	case input.ActionQuit:
		return false
	case input.ActionPause:
		if a.clock.Toggle() {
			a.flash("paused")
		}
	case input.ActionReset:
		a.world.RequestReset()
		a.flash("arena reset")
	case input.ActionToggleMute:
		if a.sound == nil {
			a.flash("audio unavailable")
		} else if a.sound.ToggleMute() {
			a.flash("muted")
		}
	case input.ActionUpgradeRadius:
		a.world.Submit(event.EventUpgradeRequest, &event.UpgradeRequestPayload{Kind: event.UpgradeRadius})
	case input.ActionUpgradeCooldown:
		a.world.Submit(event.EventUpgradeRequest, &event.UpgradeRequestPayload{Kind: event.UpgradeCooldown})
	}
	return true
}

// handleMouse aims at the pointer; a primary press fires, a secondary press places a turret
func (a *app) handleMouse(ev *tcell.EventMouse, vp render.Viewport, last tcell.ButtonMask) tcell.ButtonMask {
	col, row := ev.Position()
	if !vp.Contains(col, row) {
		return ev.Buttons()
	}
	a.collector.SetCursor(vp.ScreenToWorld(col, row))

	pressed := ev.Buttons() &^ last
	if pressed&tcell.ButtonPrimary != 0 {
		a.collector.Apply(input.ActionFire)
	}
	if pressed&tcell.ButtonSecondary != 0 {
		a.collector.Apply(input.ActionPlaceTurret)
	}
	return ev.Buttons()
}

func (a *app) flash(msg string) {
	a.message = msg
	a.messageUntil = time.Now().Add(2 * time.Second)
}

// runHeadless ticks without a view and reports progress to the log
func (a *app) runHeadless(ctx context.Context) {
	report := time.NewTicker(headlessReportInterval)
	defer report.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-a.updates:
		case <-report.C:
			snap := a.world.Snapshot()
			if snap == nil {
				continue
			}
			a.log.Info().
				Int64("frame", snap.Frame).
				Int("score", snap.Score).
				Str("mode", snap.Mode).
				Int("enemies", snap.Count(core.KindEnemy)).
				Int("spawners", snap.Count(core.KindSpawner)).
				Int("turrets", snap.Count(core.KindTurret)).
				Msg("status")
		}
	}
}
