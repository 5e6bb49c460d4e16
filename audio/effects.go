package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	sweep    float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    *rand.Rand
}

// NewOscillator creates a constant-pitch oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding linearly from one pitch to another
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	samples := rate.N(duration)
	o := &oscillator{
		freq:     from,
		duration: samples,
		wave:     wave,
		rate:     rate,
		noise:    rand.New(rand.NewPCG(uint64(from*1000), uint64(samples))),
	}
	if samples > 0 {
		o.sweep = (to - from) / float64(samples)
	}
	return o
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq + o.sweep*float64(o.position)
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack and release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope creates a linear attack/release envelope over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if remaining := e.totalSamples - e.position; e.releaseSamples > 0 && remaining < e.releaseSamples {
			vol = math.Min(vol, float64(remaining)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain
// math.Log2(0) is -Inf, so zero gain is mapped to silence
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func shaped(freq, to float64, d, attack, release time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewSweep(freq, to, d, wave, rate), d, attack, release, rate)
}

// fireSound is a falling square chirp for the area weapon launch
func fireSound(rate beep.SampleRate) beep.Streamer {
	return shaped(660, 220, 180*time.Millisecond, 5*time.Millisecond, 80*time.Millisecond, WaveSquare, rate)
}

// explosionSound is a noise burst over a low rumble
func explosionSound(rate beep.SampleRate) beep.Streamer {
	d := 450 * time.Millisecond
	return beep.Mix(
		newVolume(shaped(0, 0, d, 2*time.Millisecond, 350*time.Millisecond, WaveNoise, rate), 0.6),
		newVolume(shaped(90, 40, d, 5*time.Millisecond, 300*time.Millisecond, WaveSine, rate), 0.8),
	)
}

// hitSound is a short saw blip
func hitSound(rate beep.SampleRate) beep.Streamer {
	return shaped(320, 180, 90*time.Millisecond, 2*time.Millisecond, 50*time.Millisecond, WaveSaw, rate)
}

// spawnerSound is a descending two-tone crash
func spawnerSound(rate beep.SampleRate) beep.Streamer {
	return beep.Seq(
		shaped(440, 330, 150*time.Millisecond, 5*time.Millisecond, 40*time.Millisecond, WaveSquare, rate),
		beep.Mix(
			newVolume(shaped(220, 60, 500*time.Millisecond, 5*time.Millisecond, 400*time.Millisecond, WaveSaw, rate), 0.7),
			newVolume(shaped(0, 0, 500*time.Millisecond, 5*time.Millisecond, 450*time.Millisecond, WaveNoise, rate), 0.4),
		),
	)
}

// turretSound is a quiet high tick
func turretSound(rate beep.SampleRate) beep.Streamer {
	return shaped(1200, 900, 50*time.Millisecond, time.Millisecond, 30*time.Millisecond, WaveSquare, rate)
}

// rejectSound is a low saw buzz
func rejectSound(rate beep.SampleRate) beep.Streamer {
	return shaped(100, 100, 120*time.Millisecond, 5*time.Millisecond, 40*time.Millisecond, WaveSaw, rate)
}

// placeSound is a rising two-note chime
func placeSound(rate beep.SampleRate) beep.Streamer {
	return beep.Seq(
		shaped(987.77, 987.77, 80*time.Millisecond, 2*time.Millisecond, 30*time.Millisecond, WaveSquare, rate),
		shaped(1318.51, 1318.51, 160*time.Millisecond, 2*time.Millisecond, 120*time.Millisecond, WaveSquare, rate),
	)
}

// modeSound is a servo whine
func modeSound(rate beep.SampleRate) beep.Streamer {
	return shaped(180, 360, 250*time.Millisecond, 20*time.Millisecond, 60*time.Millisecond, WaveSaw, rate)
}

// CueStreamer builds a fresh finite streamer for cue at the configured gain
// Returns nil for unknown cues
func CueStreamer(cue Cue, cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	var s beep.Streamer
	switch cue {
	case CueFire:
		s = fireSound(rate)
	case CueExplosion:
		s = explosionSound(rate)
	case CueHit:
		s = hitSound(rate)
	case CueSpawnerDestroyed:
		s = spawnerSound(rate)
	case CueTurretShot:
		s = turretSound(rate)
	case CueReject:
		s = rejectSound(rate)
	case CuePlace:
		s = placeSound(rate)
	case CueModeChange:
		s = modeSound(rate)
	default:
		return nil
	}
	return newVolume(s, cfg.volume(cue))
}
