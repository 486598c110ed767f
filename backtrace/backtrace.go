// Package backtrace installs process-wide handlers for fatal signals
// (SIGILL, SIGSEGV, SIGBUS, SIGFPE) and prints a human-readable stack
// backtrace before re-raising the signal, so the process still dies
// with the default OS disposition: same exit status, core dump where
// the platform produces one.
//
// Typical usage is one call at program startup:
//
//	func main() {
//		backtrace.Install("")
//		// ... rest of program
//	}
//
// Output goes to stderr, or to the file named at install time. The
// file is opened lazily on the first crash; if it cannot be opened,
// output falls back to stderr. Nothing in this package reports errors
// to the caller; the crash path is strictly best-effort.
//
// On non-unix platforms every function type-checks and links but does
// nothing.
package backtrace

import (
	"syscall"

	"github.com/ColonelBlimp/crashtrace/internal/crash"
	"github.com/ColonelBlimp/crashtrace/internal/demangle"
	"github.com/ColonelBlimp/crashtrace/internal/unwind"
)

// Frame is one resolved call frame, as produced by the stack-walking
// engine. Function, File and Line are best-effort; zero values mean
// the engine could not resolve them.
type Frame = unwind.Frame

// Engine walks a captured stack, reporting frames innermost first. See
// the documentation on the unwind boundary for the callback contract.
type Engine = unwind.Engine

// Demangler converts a mangled symbol name to its human-readable form.
type Demangler = demangle.Demangler

// DefaultSignals returns the signal set Install registers.
func DefaultSignals() []syscall.Signal {
	return crash.DefaultSignals()
}

// Install registers the crash handler for the default fault signals.
// path, when non-empty, names the file backtraces are written to;
// an empty path means stderr. Calling Install again re-registers the
// same signals; there is no uninstall.
func Install(path string) {
	crash.Install(path)
}

// InstallSignals is Install for an explicit signal set, allowing
// coverage to be narrowed or widened.
func InstallSignals(sigs []syscall.Signal, path string) {
	crash.InstallSignals(sigs, path)
}

// RegisterSignalHandler binds fn as the process handler for sig.
// Registering a signal that already has a handler replaces it. This is
// the low-level primitive underneath Install; most callers want
// Install instead.
func RegisterSignalHandler(sig syscall.Signal, fn func(syscall.Signal)) {
	crash.RegisterSignalHandler(sig, fn)
}

// SetEngine replaces the stack-walking engine used for backtraces.
// Passing nil restores the runtime-backed default. Call before
// Install; the engine is read atomically by the crash path.
func SetEngine(e Engine) {
	crash.SetEngine(e)
}

// SetDemangler installs the demangler applied to $s/$S-prefixed symbol
// names in backtrace output. Without one, mangled names are printed
// as-is.
func SetDemangler(fn Demangler) {
	demangle.SetDemangler(fn)
}

// Print emits a backtrace of the calling goroutine to the crash output
// immediately, without signal context.
//
// Deprecated: Print exists for manual diagnostics only. Use Install and
// let the signal path drive emission.
func Print() {
	crash.Print()
}
