package network

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/arena-fighter/core"
)

// Path is the websocket endpoint
const Path = "/ws"

// Transport accepts websocket clients over HTTP
type Transport struct {
	config   *Config
	log      zerolog.Logger
	upgrader websocket.Upgrader
	peers    *PeerManager

	listener net.Listener
	server   *http.Server

	running atomic.Bool
	wg      sync.WaitGroup
}

// NewTransport creates a transport with the given configuration
func NewTransport(cfg *Config, log zerolog.Logger) *Transport {
	return &Transport{
		config: cfg,
		log:    log,
		upgrader: websocket.Upgrader{
			// Local tool; browsers served from any origin may connect
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		peers: NewPeerManager(cfg),
	}
}

// SetHandlers configures message and connection callbacks
func (t *Transport) SetHandlers(
	onConnect func(*Peer),
	onDisconnect func(*Peer),
	onMessage func(*Peer, []byte),
) {
	t.peers.SetHandlers(onConnect, onDisconnect, onMessage)
}

// Handler returns the HTTP handler serving the websocket endpoint
func (t *Transport) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(Path, t.handleWS)
	return mux
}

// handleWS upgrades the request and registers the peer
func (t *Transport) handleWS(w http.ResponseWriter, r *http.Request) {
	if t.peers.PeerCount() >= t.config.MaxPeers {
		http.Error(w, ErrMaxPeers.Error(), http.StatusServiceUnavailable)
		return
	}

	conn, err := t.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error
		t.log.Debug().Err(err).Str("remote", r.RemoteAddr).Msg("websocket upgrade failed")
		return
	}

	if _, err := t.peers.AddConnection(conn); err != nil {
		t.log.Warn().Err(err).Str("remote", r.RemoteAddr).Msg("connection refused")
	}
}

// Start binds the listener and serves in the background
func (t *Transport) Start() error {
	if !t.running.CompareAndSwap(false, true) {
		return nil
	}

	ln, err := net.Listen("tcp", t.config.Addr)
	if err != nil {
		t.running.Store(false)
		return fmt.Errorf("listening on %s: %w", t.config.Addr, err)
	}
	t.listener = ln
	t.server = &http.Server{Handler: t.Handler()}

	t.wg.Add(1)
	core.Go(func() {
		defer t.wg.Done()
		if err := t.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			t.log.Error().Err(err).Msg("http server stopped")
		}
	})
	return nil
}

// Addr returns the bound address, useful when listening on port 0
func (t *Transport) Addr() net.Addr {
	if t.listener == nil {
		return nil
	}
	return t.listener.Addr()
}

// Stop closes the listener and disconnects every peer
func (t *Transport) Stop(ctx context.Context) error {
	if !t.running.CompareAndSwap(true, false) {
		return nil
	}

	// Hijacked websocket connections are not tracked by Shutdown
	err := t.server.Shutdown(ctx)
	t.peers.Close()
	t.wg.Wait()

	if err != nil {
		return fmt.Errorf("shutting down http server: %w", err)
	}
	return nil
}

// Broadcast sends to all peers
func (t *Transport) Broadcast(frame []byte) int {
	return t.peers.Broadcast(frame)
}

// PeerCount returns connected peer count
func (t *Transport) PeerCount() int {
	return t.peers.PeerCount()
}

// IsRunning returns transport state
func (t *Transport) IsRunning() bool {
	return t.running.Load()
}
