package engine

import "github.com/rs/zerolog"

// SystemBase provides common dependency for all system
// Embed in system struct to eliminate boilerplate
type SystemBase struct {
	World *World
	Log   zerolog.Logger
}

// NewSystemBase initializes base dependency from world
// Call once in system constructor
func NewSystemBase(w *World, name string) SystemBase {
	return SystemBase{
		World: w,
		Log:   w.Logger(name),
	}
}
