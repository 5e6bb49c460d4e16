// Package network streams world snapshots to websocket clients and feeds their input back
package network

import (
	"context"
	"fmt"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/arena-fighter/core"
	"github.com/lixenwraith/arena-fighter/engine"
	"github.com/lixenwraith/arena-fighter/event"
	"github.com/lixenwraith/arena-fighter/input"
	"github.com/lixenwraith/arena-fighter/status"
)

// World is the simulation surface the server reads and submits to
type World interface {
	Snapshot() *engine.Snapshot
	Submit(eventType event.EventType, payload any)
}

// IntentSink receives remote player input
type IntentSink interface {
	SetMove(x, z float64)
	SetCursor(p mgl64.Vec3)
	Apply(a input.Action)
}

// Server bridges the world to browser clients
type Server struct {
	config    *Config
	transport *Transport
	world     World
	input     IntentSink
	log       zerolog.Logger

	arenaHalfExtent float64
	tickRate        int

	lastFrame int64

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	statPeers    *atomic.Int64
	statFrames   *atomic.Int64
	statRejected *atomic.Int64
}

// NewServer creates a server; Start begins listening and broadcasting
func NewServer(cfg *Config, world World, sink IntentSink, reg *status.Registry, log zerolog.Logger) *Server {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	s := &Server{
		config:       cfg,
		transport:    NewTransport(cfg, log),
		world:        world,
		input:        sink,
		log:          log,
		lastFrame:    -1,
		stopCh:       make(chan struct{}),
		statPeers:    reg.Ints.Get("network.peers"),
		statFrames:   reg.Ints.Get("network.frames"),
		statRejected: reg.Ints.Get("network.rejected"),
	}
	s.transport.SetHandlers(s.onConnect, s.onDisconnect, s.onMessage)
	return s
}

// SetArena publishes arena dimensions in the welcome message
func (s *Server) SetArena(halfExtent float64, tickRate int) {
	s.arenaHalfExtent = halfExtent
	s.tickRate = tickRate
}

// Start binds the listener and starts the broadcast loop
func (s *Server) Start() error {
	if err := s.transport.Start(); err != nil {
		return fmt.Errorf("starting websocket server: %w", err)
	}
	s.log.Info().Str("addr", s.transport.Addr().String()).Str("path", Path).Msg("websocket server listening")

	s.wg.Add(1)
	core.Go(s.broadcastLoop)
	return nil
}

// Stop halts broadcasting and disconnects all clients
func (s *Server) Stop(ctx context.Context) error {
	var err error
	s.stopOnce.Do(func() {
		close(s.stopCh)
		s.wg.Wait()
		err = s.transport.Stop(ctx)
	})
	return err
}

// Addr returns the bound address
func (s *Server) Addr() net.Addr {
	return s.transport.Addr()
}

// PeerCount returns connected client count
func (s *Server) PeerCount() int {
	return s.transport.PeerCount()
}

// broadcastLoop pushes the latest snapshot at the broadcast interval
// Snapshots already sent are skipped
func (s *Server) broadcastLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.config.BroadcastInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			return
		case <-ticker.C:
			s.broadcast()
		}
	}
}

// broadcast sends the current snapshot if it is newer than the last one sent
func (s *Server) broadcast() {
	if s.transport.PeerCount() == 0 {
		return
	}
	snap := s.world.Snapshot()
	if snap == nil || snap.Frame == s.lastFrame {
		return
	}

	frame, err := Encode(MsgSnapshot, snap)
	if err != nil {
		s.log.Error().Err(err).Int64("frame", snap.Frame).Msg("snapshot encode failed")
		return
	}
	s.lastFrame = snap.Frame
	s.transport.Broadcast(frame)
	s.statFrames.Add(1)
}

func (s *Server) onConnect(p *Peer) {
	s.statPeers.Add(1)
	s.log.Info().Uint32("peer", uint32(p.ID)).Str("remote", p.Addr).Msg("client connected")

	welcome, err := Encode(MsgWelcome, WelcomeData{
		Peer:            p.ID,
		ArenaHalfExtent: s.arenaHalfExtent,
		TickRate:        s.tickRate,
	})
	if err == nil {
		p.Send(welcome)
	}
	if snap := s.world.Snapshot(); snap != nil {
		if frame, err := Encode(MsgSnapshot, snap); err == nil {
			p.Send(frame)
		}
	}
}

func (s *Server) onDisconnect(p *Peer) {
	s.statPeers.Add(-1)
	s.log.Info().Uint32("peer", uint32(p.ID)).Uint64("dropped", p.Dropped.Load()).Msg("client disconnected")
}

// onMessage runs on the peer's read goroutine
func (s *Server) onMessage(p *Peer, data []byte) {
	if err := s.dispatch(data); err != nil {
		s.statRejected.Add(1)
		s.log.Debug().Err(err).Uint32("peer", uint32(p.ID)).Msg("client message rejected")
		if frame, encErr := Encode(MsgError, ErrorData{Message: err.Error()}); encErr == nil {
			p.Send(frame)
		}
	}
}

// dispatch routes one decoded client message
func (s *Server) dispatch(data []byte) error {
	msg, err := Decode(data)
	if err != nil {
		return err
	}

	switch msg.Type {
	case MsgIntent:
		var in IntentData
		if err := decodeData(msg, &in); err != nil {
			return err
		}
		s.input.SetMove(in.MoveX, in.MoveZ)
		if in.Cursor != nil {
			s.input.SetCursor(*in.Cursor)
		}
		if in.Fire {
			s.input.Apply(input.ActionFire)
		}
		if in.ToggleMode {
			s.input.Apply(input.ActionToggleMode)
		}
		if in.PlaceTurret {
			s.input.Apply(input.ActionPlaceTurret)
		}

	case MsgUpgrade:
		var up event.UpgradeRequestPayload
		if err := decodeData(msg, &up); err != nil {
			return err
		}
		if !validUpgrade(up.Kind) {
			return fmt.Errorf("upgrade: unknown kind %q", up.Kind)
		}
		s.world.Submit(event.EventUpgradeRequest, &up)

	case MsgReset:
		s.world.Submit(event.EventGameReset, nil)

	case MsgSystem:
		var cmd event.MetaSystemCommandPayload
		if err := decodeData(msg, &cmd); err != nil {
			return err
		}
		if cmd.SystemName == "" {
			return fmt.Errorf("system: missing name")
		}
		s.world.Submit(event.EventMetaSystemCommandRequest, &cmd)

	case MsgClip:
		var clip event.ClipFinishedPayload
		if err := decodeData(msg, &clip); err != nil {
			return err
		}
		if clip.Clip == "" {
			return fmt.Errorf("clip: missing name")
		}
		s.world.Submit(event.EventClipFinished, &clip)

	default:
		return fmt.Errorf("unknown message type %q", msg.Type)
	}
	return nil
}
