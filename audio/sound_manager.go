// Package audio synthesizes gameplay cues and mixes them to the speaker
package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// SoundManager owns the speaker and the cue mixer
// Safe for concurrent use; an uninitialized or muted manager drops cues
type SoundManager struct {
	mu          sync.Mutex
	cfg         Config
	mixer       *beep.Mixer
	initialized bool
	muted       bool

	played  uint64
	dropped uint64
}

// NewSoundManager creates a sound manager; Initialize opens the device
func NewSoundManager(cfg Config) *SoundManager {
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		muted: !cfg.Enabled,
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(sm.cfg.BufferLength)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences the mixer and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// Play mixes a new instance of cue
// Returns false when the cue was dropped
func (sm *SoundManager) Play(cue Cue) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		sm.dropped++
		return false
	}

	s := CueStreamer(cue, sm.cfg)
	if s == nil {
		sm.dropped++
		return false
	}

	speaker.Lock()
	busy := sm.cfg.MaxVoices > 0 && sm.mixer.Len() >= sm.cfg.MaxVoices
	if !busy {
		sm.mixer.Add(s)
	}
	speaker.Unlock()

	if busy {
		sm.dropped++
		return false
	}
	sm.played++
	return true
}

// SetMuted silences or restores cue playback
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// ToggleMute flips the mute state and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	return sm.muted
}

// Muted reports whether cues are silenced
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Stats returns the number of played and dropped cues
func (sm *SoundManager) Stats() (played, dropped uint64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played, sm.dropped
}
