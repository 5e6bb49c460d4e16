package parameter

import "time"

const (
	// NetworkBroadcastInterval is the snapshot push period
	NetworkBroadcastInterval = 50 * time.Millisecond

	NetworkWriteTimeout = 2 * time.Second
	NetworkPingInterval = 2 * time.Second
	NetworkPongTimeout  = 6 * time.Second

	// NetworkReadLimit caps inbound message size in bytes
	NetworkReadLimit = 4096

	// InputHoldWindow keeps a terminal movement key active without key-up events
	InputHoldWindow = 150 * time.Millisecond
)
