// internal/sink/sink.go

// Package sink owns the process-wide destination for crash output.
// Everything here must stay callable from the crash path: no locks,
// no buffered writers, and a hard ceiling on re-entry so a fault
// inside the reporting path cannot recurse forever.
package sink

import (
	"os"
	"sync/atomic"
)

// MaxCycles is how many emission attempts are tolerated before the
// process is assumed to be crashing while reporting a crash.
const MaxCycles = 10

var (
	// stream is the active destination. nil means os.Stderr, resolved at
	// write time so tests can capture output by swapping os.Stderr.
	stream atomic.Pointer[os.File]

	// outputPath is set once at install time and never changed after.
	outputPath atomic.Pointer[string]

	// cycles counts backtrace-emission attempts over the process lifetime.
	cycles atomic.Int32

	// switched is true once stream has moved off the default stderr.
	switched atomic.Bool
)

// abort terminates the process when the cycle ceiling is exceeded.
// A variable so tests can observe the condition without dying.
var abort = abortProcess

// SetPath records the file crash output should be written to. Only the
// first non-empty path takes effect. The file is opened lazily by
// EnsureReady, so a process that never crashes never touches it.
func SetPath(path string) {
	if path == "" {
		return
	}
	outputPath.CompareAndSwap(nil, &path)
}

// EnsureReady must be called once per backtrace emission, before any
// Write. It bumps the cycle counter, terminates the process if crash
// reporting is itself crashing in a loop, and performs the one-time
// switch from stderr to the configured file. A path that cannot be
// opened is ignored: a broken diagnostic destination must not make the
// crash worse, so output stays on stderr.
func EnsureReady() {
	if cycles.Add(1) > MaxCycles {
		abort()
		return
	}
	if switched.Load() {
		return
	}
	path := outputPath.Load()
	if path == nil {
		return
	}
	f, err := os.OpenFile(*path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return
	}
	stream.Store(f)
	switched.Store(true)
}

// Write sends raw text to the current destination. os.File writes are
// plain unbuffered write(2) calls, safe for the crash path.
func Write(text string) {
	_, _ = current().Write([]byte(text))
}

// Flush forces buffered output to disk so the backtrace survives the
// termination that follows immediately after. Sync on a terminal
// stderr fails with EINVAL; the error is ignored either way.
func Flush() {
	_ = current().Sync()
}

// Cycles returns the number of emission attempts so far.
func Cycles() int {
	return int(cycles.Load())
}

func current() *os.File {
	if f := stream.Load(); f != nil {
		return f
	}
	return os.Stderr
}

// Reset restores the sink to its start-of-process state. It exists for
// tests; production code never unwinds sink state.
func Reset() {
	stream.Store(nil)
	outputPath.Store(nil)
	cycles.Store(0)
	switched.Store(false)
}
