package audio

// Cue identifies a gameplay sound
type Cue uint8

const (
	CueFire Cue = iota
	CueExplosion
	CueHit
	CueSpawnerDestroyed
	CueTurretShot
	CueReject
	CuePlace
	CueModeChange

	cueCount
)

var cueNames = [cueCount]string{
	CueFire:             "fire",
	CueExplosion:        "explosion",
	CueHit:              "hit",
	CueSpawnerDestroyed: "spawner_destroyed",
	CueTurretShot:       "turret_shot",
	CueReject:           "reject",
	CuePlace:            "place",
	CueModeChange:       "mode_change",
}

func (c Cue) String() string {
	if c < cueCount {
		return cueNames[c]
	}
	return "unknown"
}

// Cues returns every playable cue
func Cues() []Cue {
	out := make([]Cue, 0, cueCount)
	for c := Cue(0); c < cueCount; c++ {
		out = append(out, c)
	}
	return out
}
