package network

import (
	"encoding/json"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/arena-fighter/event"
)

// MessageType discriminates envelopes on the wire
type MessageType string

const (
	// Server to client
	MsgWelcome  MessageType = "welcome"
	MsgSnapshot MessageType = "snapshot"
	MsgError    MessageType = "error"

	// Client to server
	MsgIntent  MessageType = "intent"
	MsgUpgrade MessageType = "upgrade"
	MsgReset   MessageType = "reset"
	MsgSystem  MessageType = "system"
	MsgClip    MessageType = "clip"
)

// Message is the JSON envelope for every frame
type Message struct {
	Type MessageType     `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// WelcomeData is sent once after the upgrade
type WelcomeData struct {
	Peer            PeerID  `json:"peer"`
	ArenaHalfExtent float64 `json:"arena_half_extent"`
	TickRate        int     `json:"tick_rate"`
}

// ErrorData reports a rejected client message
type ErrorData struct {
	Message string `json:"message"`
}

// IntentData carries held axes and edge-triggered actions from a browser client
// Clients resend the axes while keys are held
type IntentData struct {
	MoveX       float64     `json:"move_x"`
	MoveZ       float64     `json:"move_z"`
	Cursor      *mgl64.Vec3 `json:"cursor,omitempty"`
	Fire        bool        `json:"fire,omitempty"`
	ToggleMode  bool        `json:"toggle_mode,omitempty"`
	PlaceTurret bool        `json:"place_turret,omitempty"`
}

// Encode wraps data in an envelope of type t
func Encode(t MessageType, data any) ([]byte, error) {
	msg := Message{Type: t}
	if data != nil {
		raw, err := json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("encoding %s payload: %w", t, err)
		}
		msg.Data = raw
	}
	return json.Marshal(msg)
}

// Decode parses an envelope
func Decode(b []byte) (Message, error) {
	var msg Message
	if err := json.Unmarshal(b, &msg); err != nil {
		return Message{}, fmt.Errorf("decoding message: %w", err)
	}
	if msg.Type == "" {
		return Message{}, fmt.Errorf("decoding message: missing type")
	}
	return msg, nil
}

// decodeData unmarshals the payload of msg into v
func decodeData(msg Message, v any) error {
	if len(msg.Data) == 0 {
		return fmt.Errorf("%s: missing data", msg.Type)
	}
	if err := json.Unmarshal(msg.Data, v); err != nil {
		return fmt.Errorf("%s: %w", msg.Type, err)
	}
	return nil
}

// validUpgrade reports whether k names an upgrade track
func validUpgrade(k event.UpgradeKind) bool {
	return k == event.UpgradeRadius || k == event.UpgradeCooldown
}
