package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"

	"github.com/lixenwraith/umbrella/terminal"
)

// Finalizer is the part of the terminal the crash handler needs
type Finalizer interface {
	Fini()
}

var (
	crashMu       sync.Mutex
	crashTerminal Finalizer
)

// SetCrashTerminal registers the terminal to finalize on crash
// Pass nil to fall back to the raw emergency reset
func SetCrashTerminal(t Finalizer) {
	crashMu.Lock()
	crashTerminal = t
	crashMu.Unlock()
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	t := crashTerminal
	crashMu.Unlock()

	if t != nil {
		t.Fini()
	} else {
		terminal.EmergencyReset(os.Stdout)
	}

	os.Stdout.Sync()
	os.Stderr.Sync()

	// \r\n in case raw mode survived the reset
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mUMBRELLA CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}
