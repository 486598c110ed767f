// internal/crash/crash.go

// Package crash intercepts fatal signals and emits a readable stack
// backtrace before the process dies. The emission path runs in crash
// context: straight-line writes through the sink, no locks, no error
// returns. Nothing here reports failure back to application code; by
// the time it runs, the application is already fatally crashing.
package crash

import (
	"strconv"
	"sync/atomic"
	"syscall"

	"github.com/ColonelBlimp/crashtrace/internal/demangle"
	"github.com/ColonelBlimp/crashtrace/internal/sink"
	"github.com/ColonelBlimp/crashtrace/internal/unwind"
)

// engineBox wraps the interface so atomic.Value sees one concrete type.
type engineBox struct{ e unwind.Engine }

var engine atomic.Value

func init() {
	engine.Store(engineBox{&unwind.RuntimeEngine{}})
}

// SetEngine replaces the stack-walking engine. Passing nil restores the
// runtime-backed default. Stored atomically so an install-time call
// cannot race a concurrently crashing thread.
func SetEngine(e unwind.Engine) {
	if e == nil {
		e = &unwind.RuntimeEngine{}
	}
	engine.Store(engineBox{e})
}

func currentEngine() unwind.Engine {
	return engine.Load().(engineBox).e
}

// DefaultSignals returns the signal set Install registers: the
// synchronous fault signals whose default action kills the process.
func DefaultSignals() []syscall.Signal {
	return []syscall.Signal{
		syscall.SIGILL,
		syscall.SIGSEGV,
		syscall.SIGBUS,
		syscall.SIGFPE,
	}
}

// formatFrame renders one backtrace line:
//
//	0x<hex pc>, <function> at <file>:<line>
//
// Absent fields drop out of the line entirely rather than printing
// placeholders. Mangled function names are demangled when a demangler
// is installed.
func formatFrame(f unwind.Frame) string {
	line := "0x" + strconv.FormatUint(uint64(f.PC), 16)
	if f.Function != "" {
		line += ", " + demangle.Apply(f.Function)
	}
	if f.File != "" {
		line += " at " + f.File + ":" + strconv.Itoa(f.Line)
	}
	return line + "\n"
}

// writeHeader identifies which signal was received.
func writeHeader(sig int) {
	sink.Write("Received signal " + strconv.Itoa(sig) + ". Backtrace:\n")
}

// writeFrames walks the active engine and writes one line per frame.
// Engine errors become diagnostic lines instead of halting the walk;
// an empty message writes nothing.
func writeFrames(skip int) {
	currentEngine().Backtrace(skip, func(f unwind.Frame) bool {
		sink.Write(formatFrame(f))
		return true
	}, func(msg string, errno int) {
		if msg == "" {
			return
		}
		sink.Write("crashtrace ERROR: " + msg + " (errno: " + strconv.Itoa(errno) + ")\n")
	})
}
