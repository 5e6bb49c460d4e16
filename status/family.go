package status

import (
	"iter"
	"maps"
	"slices"
	"sync"
)

// Family is a named set of metric cells of one kind
// Cells are allocated once per name and never move, so callers cache the pointer
type Family[T any] struct {
	mu    sync.RWMutex
	cells map[string]*T
}

func newFamily[T any]() *Family[T] {
	return &Family[T]{cells: make(map[string]*T)}
}

// Get returns the cell for name, allocating it on first use
func (f *Family[T]) Get(name string) *T {
	f.mu.RLock()
	c := f.cells[name]
	f.mu.RUnlock()
	if c != nil {
		return c
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if c = f.cells[name]; c == nil {
		c = new(T)
		f.cells[name] = c
	}
	return c
}

// Len reports how many names are registered
func (f *Family[T]) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.cells)
}

// All yields cells in name order
// Names registered while iterating are not visited
func (f *Family[T]) All() iter.Seq2[string, *T] {
	f.mu.RLock()
	names := slices.Sorted(maps.Keys(f.cells))
	cells := make([]*T, len(names))
	for i, n := range names {
		cells[i] = f.cells[n]
	}
	f.mu.RUnlock()

	return func(yield func(string, *T) bool) {
		for i, n := range names {
			if !yield(n, cells[i]) {
				return
			}
		}
	}
}
