package core

import "fmt"

// Entity is a unique identifier for a simulated object
// Zero is never assigned
type Entity uint64

// Kind classifies an entity for renderers and telemetry
type Kind uint8

const (
	KindPlayer Kind = iota
	KindEnemy
	KindSpawner
	KindTurret
	KindProjectile
	KindAreaShot
	KindObstacle
)

var kindNames = [...]string{
	KindPlayer:     "player",
	KindEnemy:      "enemy",
	KindSpawner:    "spawner",
	KindTurret:     "turret",
	KindProjectile: "projectile",
	KindAreaShot:   "shot",
	KindObstacle:   "obstacle",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// MarshalText encodes the kind by name
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind name, unknown names are an error
func (k *Kind) UnmarshalText(b []byte) error {
	for i, name := range kindNames {
		if name == string(b) {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown entity kind %q", b)
}
