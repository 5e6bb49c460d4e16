package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"
)

// Finalizer restores an output device to a sane state
// Satisfied by tcell.Screen
type Finalizer interface {
	Fini()
}

var (
	crashMu        sync.Mutex
	crashFinalizer Finalizer
)

// RegisterCrashFinalizer sets the device restored before a crash report is printed
// Passing nil clears the registration
func RegisterCrashFinalizer(f Finalizer) {
	crashMu.Lock()
	defer crashMu.Unlock()
	crashFinalizer = f
}

// HandleCrash is the unified panic handler that restores the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	f := crashFinalizer
	crashMu.Unlock()

	if f != nil {
		f.Fini()
	}

	fmt.Fprintf(os.Stderr, "\n\x1b[31mCRASH DETECTED: %v\x1b[0m\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())

	os.Exit(1)
}

// Go runs a function in a new goroutine with panic recovery
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
