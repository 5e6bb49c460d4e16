package network

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lixenwraith/arena-fighter/core"
)

// PeerID uniquely identifies a connected peer
type PeerID uint32

// ConnState represents connection lifecycle state
type ConnState uint8

const (
	StateDisconnected ConnState = iota
	StateConnected
)

// Peer represents one websocket client
// Only writeLoop writes to the connection; only readLoop reads from it
type Peer struct {
	ID       PeerID
	Addr     string
	State    atomic.Uint32 // ConnState
	LastSeen atomic.Int64  // UnixNano

	// Dropped counts frames discarded because the send queue was full
	Dropped atomic.Uint64

	conn   *websocket.Conn
	sendCh chan []byte

	closeCh   chan struct{}
	closeOnce sync.Once
}

// newPeer creates a peer from an upgraded connection
func newPeer(id PeerID, conn *websocket.Conn, sendQueueSize int) *Peer {
	p := &Peer{
		ID:      id,
		Addr:    conn.RemoteAddr().String(),
		conn:    conn,
		sendCh:  make(chan []byte, sendQueueSize),
		closeCh: make(chan struct{}),
	}
	p.State.Store(uint32(StateConnected))
	p.LastSeen.Store(time.Now().UnixNano())
	return p
}

// Send queues a frame without blocking
// Returns false if the queue is full or the peer is closed
func (p *Peer) Send(frame []byte) bool {
	select {
	case <-p.closeCh:
		return false
	default:
	}

	select {
	case p.sendCh <- frame:
		return true
	default:
		p.Dropped.Add(1)
		return false
	}
}

// Close terminates the connection
func (p *Peer) Close() {
	p.closeOnce.Do(func() {
		p.State.Store(uint32(StateDisconnected))
		close(p.closeCh)
		p.conn.Close()
	})
}

// Done is closed when the peer disconnects
func (p *Peer) Done() <-chan struct{} {
	return p.closeCh
}

// readLoop processes incoming frames until the connection fails
func (p *Peer) readLoop(cfg *Config, handler func(*Peer, []byte)) {
	defer p.Close()

	p.conn.SetReadLimit(cfg.ReadLimit)
	p.conn.SetReadDeadline(time.Now().Add(cfg.PongTimeout))
	p.conn.SetPongHandler(func(string) error {
		p.LastSeen.Store(time.Now().UnixNano())
		return p.conn.SetReadDeadline(time.Now().Add(cfg.PongTimeout))
	})

	for {
		kind, data, err := p.conn.ReadMessage()
		if err != nil {
			return
		}
		p.LastSeen.Store(time.Now().UnixNano())
		p.conn.SetReadDeadline(time.Now().Add(cfg.PongTimeout))
		if kind != websocket.TextMessage {
			continue
		}
		handler(p, data)
	}
}

// writeLoop sends queued frames and keepalive pings
func (p *Peer) writeLoop(cfg *Config) {
	defer p.Close()

	ping := time.NewTicker(cfg.PingInterval)
	defer ping.Stop()

	for {
		select {
		case <-p.closeCh:
			return
		case frame := <-p.sendCh:
			p.conn.SetWriteDeadline(time.Now().Add(cfg.WriteTimeout))
			if err := p.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				return
			}
		case <-ping.C:
			deadline := time.Now().Add(cfg.WriteTimeout)
			if err := p.conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
				return
			}
		}
	}
}

// ErrMaxPeers is returned when the peer limit is reached
var ErrMaxPeers = errors.New("max peers reached")

// PeerManager handles multiple peer connections
type PeerManager struct {
	mu       sync.RWMutex
	peers    map[PeerID]*Peer
	nextID   atomic.Uint32
	maxPeers int
	config   *Config

	// Callbacks
	onConnect    func(*Peer)
	onDisconnect func(*Peer)
	onMessage    func(*Peer, []byte)
}

// NewPeerManager creates a peer manager
func NewPeerManager(cfg *Config) *PeerManager {
	return &PeerManager{
		peers:    make(map[PeerID]*Peer),
		maxPeers: cfg.MaxPeers,
		config:   cfg,
	}
}

// SetHandlers configures event callbacks
func (pm *PeerManager) SetHandlers(
	onConnect func(*Peer),
	onDisconnect func(*Peer),
	onMessage func(*Peer, []byte),
) {
	pm.onConnect = onConnect
	pm.onDisconnect = onDisconnect
	pm.onMessage = onMessage
}

// AddConnection registers a peer for an upgraded connection and starts its I/O loops
func (pm *PeerManager) AddConnection(conn *websocket.Conn) (*Peer, error) {
	pm.mu.Lock()
	if len(pm.peers) >= pm.maxPeers {
		pm.mu.Unlock()
		conn.Close()
		return nil, ErrMaxPeers
	}
	id := PeerID(pm.nextID.Add(1))
	peer := newPeer(id, conn, pm.config.SendQueueSize)
	pm.peers[id] = peer
	pm.mu.Unlock()

	if pm.onConnect != nil {
		pm.onConnect(peer)
	}

	core.Go(func() { peer.readLoop(pm.config, pm.handleMessage) })
	core.Go(func() { peer.writeLoop(pm.config) })
	core.Go(func() { pm.monitorPeer(peer) })

	return peer, nil
}

// handleMessage routes received frames
func (pm *PeerManager) handleMessage(peer *Peer, data []byte) {
	if pm.onMessage != nil {
		pm.onMessage(peer, data)
	}
}

// monitorPeer watches for disconnection
func (pm *PeerManager) monitorPeer(peer *Peer) {
	<-peer.closeCh

	pm.mu.Lock()
	delete(pm.peers, peer.ID)
	pm.mu.Unlock()

	if pm.onDisconnect != nil {
		pm.onDisconnect(peer)
	}
}

// Broadcast queues a frame for every connected peer
// Returns the number of peers that accepted it
func (pm *PeerManager) Broadcast(frame []byte) int {
	pm.mu.RLock()
	defer pm.mu.RUnlock()

	n := 0
	for _, peer := range pm.peers {
		if peer.Send(frame) {
			n++
		}
	}
	return n
}

// GetPeer retrieves a peer by ID
func (pm *PeerManager) GetPeer(id PeerID) (*Peer, bool) {
	pm.mu.RLock()
	defer pm.mu.RUnlock()
	p, ok := pm.peers[id]
	return p, ok
}

// PeerCount returns current connected peer count
func (pm *PeerManager) PeerCount() int {
	pm.mu.RLock()
	defer pm.mu.RUnlock()
	return len(pm.peers)
}

// Close disconnects all peers
func (pm *PeerManager) Close() {
	pm.mu.RLock()
	peers := make([]*Peer, 0, len(pm.peers))
	for _, p := range pm.peers {
		peers = append(peers, p)
	}
	pm.mu.RUnlock()

	for _, p := range peers {
		p.Close()
	}
}
