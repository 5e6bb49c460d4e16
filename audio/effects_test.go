package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to exhaustion and returns the sample count and peak
func drain(t *testing.T, s beep.Streamer, limit int) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for total < limit {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatalf("stream did not end within %d samples", limit)
	return total, peak
}

func TestOscillatorWaves(t *testing.T) {
	rate := beep.SampleRate(44100)
	tests := []struct {
		name string
		wave WaveType
	}{
		{"sine", WaveSine},
		{"square", WaveSquare},
		{"saw", WaveSaw},
		{"noise", WaveNoise},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			osc := NewOscillator(440, 100*time.Millisecond, tt.wave, rate)
			samples := make([][2]float64, 100)
			n, ok := osc.Stream(samples)
			if !ok || n != 100 {
				t.Fatalf("Stream() = %d, %v, want 100, true", n, ok)
			}
			for i := 0; i < n; i++ {
				if samples[i][0] < -1 || samples[i][0] > 1 {
					t.Errorf("sample %d = %f, out of [-1, 1]", i, samples[i][0])
				}
				if samples[i][0] != samples[i][1] {
					t.Errorf("sample %d channels differ", i)
				}
			}
		})
	}
}

func TestSquareWaveLevels(t *testing.T) {
	osc := NewOscillator(220, 50*time.Millisecond, WaveSquare, beep.SampleRate(44100))
	samples := make([][2]float64, 50)
	n, _ := osc.Stream(samples)
	for i := 0; i < n; i++ {
		if v := samples[i][0]; v != -1 && v != 1 {
			t.Errorf("sample %d = %f, want +-1", i, v)
		}
	}
}

func TestOscillatorEndsAtDuration(t *testing.T) {
	rate := beep.SampleRate(48000)
	want := rate.N(20 * time.Millisecond)
	n, _ := drain(t, NewOscillator(440, 20*time.Millisecond, WaveSine, rate), want*2)
	if n != want {
		t.Errorf("streamed %d samples, want %d", n, want)
	}
}

func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	env := NewEnvelope(NewOscillator(0, time.Second, WaveSquare, rate),
		100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, rate)

	samples := make([][2]float64, 200)
	n, _ := env.Stream(samples)
	if n != 100 {
		t.Fatalf("Stream() = %d samples, want 100", n)
	}
	if samples[0][0] != 0 {
		t.Errorf("first sample = %f, want 0 at attack start", samples[0][0])
	}
	if samples[50][0] != 1 {
		t.Errorf("sustain sample = %f, want 1", samples[50][0])
	}
	if last := samples[99][0]; last <= 0 || last > 0.2 {
		t.Errorf("last sample = %f, want a small positive release tail", last)
	}
}

func TestEveryCueIsFinite(t *testing.T) {
	cfg := DefaultConfig()
	limit := beep.SampleRate(cfg.SampleRate).N(2 * time.Second)
	for _, cue := range Cues() {
		t.Run(cue.String(), func(t *testing.T) {
			s := CueStreamer(cue, cfg)
			if s == nil {
				t.Fatal("CueStreamer() = nil")
			}
			n, peak := drain(t, s, limit)
			if n == 0 {
				t.Error("cue produced no samples")
			}
			if peak == 0 {
				t.Error("cue is silent")
			}
		})
	}
}

func TestZeroVolumeIsSilent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MasterVolume = 0
	_, peak := drain(t, CueStreamer(CueFire, cfg), 48000)
	if peak != 0 {
		t.Errorf("peak = %f, want 0", peak)
	}
}

func TestUnknownCue(t *testing.T) {
	if s := CueStreamer(cueCount, DefaultConfig()); s != nil {
		t.Error("CueStreamer(unknown) != nil")
	}
	if cueCount.String() != "unknown" {
		t.Errorf("String() = %q", cueCount.String())
	}
}
