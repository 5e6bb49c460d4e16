// Package status holds lock-free telemetry counters shared across goroutines
package status

import "sync/atomic"

// Registry groups metric families by value kind
// Systems resolve their cells once at construction and write them every tick
type Registry struct {
	Bools   *Family[atomic.Bool]
	Ints    *Family[atomic.Int64]
	Floats  *Family[Gauge]
	Strings *Family[Label]
}

func NewRegistry() *Registry {
	return &Registry{
		Bools:   newFamily[atomic.Bool](),
		Ints:    newFamily[atomic.Int64](),
		Floats:  newFamily[Gauge](),
		Strings: newFamily[Label](),
	}
}

// TotalCount returns the number of cells across all families
func (r *Registry) TotalCount() int {
	return r.Bools.Len() + r.Ints.Len() + r.Floats.Len() + r.Strings.Len()
}

// Values flattens every numeric cell into a float map
// Bools report 0 or 1 and labels are skipped
func (r *Registry) Values() map[string]float64 {
	out := make(map[string]float64, r.Bools.Len()+r.Ints.Len()+r.Floats.Len())
	for k, b := range r.Bools.All() {
		out[k] = 0
		if b.Load() {
			out[k] = 1
		}
	}
	for k, n := range r.Ints.All() {
		out[k] = float64(n.Load())
	}
	for k, g := range r.Floats.All() {
		out[k] = g.Load()
	}
	return out
}
