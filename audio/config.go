package audio

import (
	"time"

	"github.com/lixenwraith/arena-fighter/parameter"
)

// Config holds mixer and cue volume settings
type Config struct {
	Enabled      bool
	MasterVolume float64
	SampleRate   int
	BufferLength time.Duration

	// MaxVoices drops new cues while the mixer is this busy
	MaxVoices int

	Volumes map[Cue]float64
}

// DefaultConfig returns the compiled-in audio settings
func DefaultConfig() Config {
	return Config{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   parameter.AudioSampleRate,
		BufferLength: parameter.AudioBufferLength,
		MaxVoices:    parameter.AudioMaxVoices,
		Volumes: map[Cue]float64{
			CueFire:             0.6,
			CueExplosion:        0.9,
			CueHit:              0.5,
			CueSpawnerDestroyed: 1.0,
			CueTurretShot:       0.35,
			CueReject:           0.4,
			CuePlace:            0.5,
			CueModeChange:       0.4,
		},
	}
}

// volume returns the effective gain of a cue
// Cues missing from the table play at master volume
func (c Config) volume(cue Cue) float64 {
	v, ok := c.Volumes[cue]
	if !ok {
		v = 1
	}
	return v * c.MasterVolume
}
