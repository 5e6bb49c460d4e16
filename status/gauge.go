package status

import (
	"math"
	"sync/atomic"
)

// Gauge is a float64 stored as its IEEE bits
type Gauge struct {
	bits atomic.Uint64
}

func (g *Gauge) Store(v float64) { g.bits.Store(math.Float64bits(v)) }

func (g *Gauge) Load() float64 { return math.Float64frombits(g.bits.Load()) }

// Add applies delta with a CAS loop and returns the result
func (g *Gauge) Add(delta float64) float64 {
	for {
		old := g.bits.Load()
		sum := math.Float64frombits(old) + delta
		if g.bits.CompareAndSwap(old, math.Float64bits(sum)) {
			return sum
		}
	}
}

// LabelLimit caps the byte length of a stored label
const LabelLimit = 24

// Label is a short text value such as the current player mode
type Label struct {
	v atomic.Value
}

func (l *Label) Store(s string) {
	if len(s) > LabelLimit {
		s = s[:LabelLimit]
	}
	l.v.Store(s)
}

func (l *Label) Load() string {
	s, _ := l.v.Load().(string)
	return s
}
