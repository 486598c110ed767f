// internal/unwind/unwind.go

// Package unwind defines the boundary to the stack-walking engine. The
// crash handler only ever sees the Engine interface: a synchronous walk
// reporting one frame at a time, innermost first. The default engine is
// backed by the Go runtime; tests substitute scripted engines.
package unwind

import "runtime"

// DefaultDepth bounds how many program counters the runtime engine
// captures when no explicit depth is configured.
const DefaultDepth = 64

// Frame is one resolved call frame. Function, File and Line are
// best-effort: a zero value means the engine could not resolve them.
type Frame struct {
	PC       uintptr
	Function string
	File     string
	Line     int
}

// Engine walks a captured stack. Backtrace invokes frame once per
// frame, innermost first, and stops early when frame returns false.
// fail reports an engine-level error with an errno-style code; the
// walk does not return an error to the caller.
type Engine interface {
	Backtrace(skip int, frame func(Frame) bool, fail func(msg string, errno int))
}

// RuntimeEngine resolves frames through the Go runtime's symbol tables.
// It cannot fail, so the fail callback is never invoked.
type RuntimeEngine struct {
	// Depth overrides DefaultDepth when positive.
	Depth int
}

// Backtrace captures the calling goroutine's stack. skip counts frames
// above the Backtrace caller to omit; 0 starts at the caller itself.
func (e *RuntimeEngine) Backtrace(skip int, frame func(Frame) bool, _ func(string, int)) {
	depth := e.Depth
	if depth <= 0 {
		depth = DefaultDepth
	}
	// Fixed-size capture: no grow-and-retry loop in the crash path.
	pcs := make([]uintptr, depth)

	// +2 skips runtime.Callers itself and this method.
	n := runtime.Callers(skip+2, pcs)
	if n == 0 {
		return
	}

	frames := runtime.CallersFrames(pcs[:n])
	for {
		fr, more := frames.Next()
		if !frame(Frame{PC: fr.PC, Function: fr.Function, File: fr.File, Line: fr.Line}) {
			return
		}
		if !more {
			return
		}
	}
}
