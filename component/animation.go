package component

// ClipLibrary maps animation clip names to durations in seconds
// A clip absent from the library is treated as missing
type ClipLibrary map[string]float64

// Animator tracks a single playing clip
// Completion is "duration elapsed OR external completion signal", whichever first
type Animator struct {
	clips ClipLibrary

	current  string
	elapsed  float64
	loop     bool
	playing  bool
	finished string // One-shot clip that completed and was not yet consumed
}

// NewAnimator creates an animator over a clip library, nil means no clips
func NewAnimator(clips ClipLibrary) *Animator {
	if clips == nil {
		clips = ClipLibrary{}
	}
	return &Animator{clips: clips}
}

// Has reports whether a clip exists
func (a *Animator) Has(name string) bool {
	_, ok := a.clips[name]
	return ok
}

// Play starts a clip from the beginning; returns false if the clip is missing
func (a *Animator) Play(name string, loop bool) bool {
	if !a.Has(name) {
		return false
	}
	a.current = name
	a.elapsed = 0
	a.loop = loop
	a.playing = true
	a.finished = ""
	return true
}

// Stop halts the current clip without signaling completion
func (a *Animator) Stop() {
	a.playing = false
	a.current = ""
	a.elapsed = 0
}

// Current returns the playing clip name, empty when idle
func (a *Animator) Current() string {
	if !a.playing {
		return ""
	}
	return a.current
}

// IsPlaying reports whether the named clip is playing
func (a *Animator) IsPlaying(name string) bool {
	return a.playing && a.current == name
}

// Update advances the clip clock
func (a *Animator) Update(dt float64) {
	if !a.playing {
		return
	}
	a.elapsed += dt
	d := a.clips[a.current]
	if a.elapsed < d {
		return
	}
	if a.loop {
		if d > 0 {
			for a.elapsed >= d {
				a.elapsed -= d
			}
		}
		return
	}
	a.complete()
}

// Signal marks the named clip complete, as an external completion event
// Ignored if that clip is not the one playing
func (a *Animator) Signal(name string) {
	if a.playing && a.current == name && !a.loop {
		a.complete()
	}
}

// TakeFinished returns true once if the named one-shot clip has completed
func (a *Animator) TakeFinished(name string) bool {
	if a.finished != name || name == "" {
		return false
	}
	a.finished = ""
	return true
}

func (a *Animator) complete() {
	a.finished = a.current
	a.playing = false
	a.elapsed = 0
}
