package network

import (
	"time"

	"github.com/lixenwraith/arena-fighter/parameter"
)

// Config holds websocket bridge settings
type Config struct {
	// Addr to listen on, e.g. ":7777"
	Addr string

	// Connection limits
	MaxPeers      int
	SendQueueSize int
	ReadLimit     int64

	// Timing
	BroadcastInterval time.Duration
	WriteTimeout      time.Duration
	PingInterval      time.Duration
	PongTimeout       time.Duration
}

// DefaultConfig returns the compiled-in defaults
func DefaultConfig() *Config {
	return &Config{
		Addr:              ":7777",
		MaxPeers:          16,
		SendQueueSize:     16,
		ReadLimit:         parameter.NetworkReadLimit,
		BroadcastInterval: parameter.NetworkBroadcastInterval,
		WriteTimeout:      parameter.NetworkWriteTimeout,
		PingInterval:      parameter.NetworkPingInterval,
		PongTimeout:       parameter.NetworkPongTimeout,
	}
}
