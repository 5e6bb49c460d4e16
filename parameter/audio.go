package parameter

import "time"

const (
	AudioSampleRate   = 48000
	AudioBufferLength = 100 * time.Millisecond

	// AudioMaxVoices caps simultaneously mixed cues
	AudioMaxVoices = 16
)
