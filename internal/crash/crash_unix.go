//go:build unix

// internal/crash/crash_unix.go
package crash

import (
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/ColonelBlimp/crashtrace/internal/sink"
)

var (
	regMu      sync.Mutex
	registered = make(map[syscall.Signal]chan os.Signal)
)

// Install registers the crash handler for the default fault signals.
// path, when non-empty, is where backtraces are written; otherwise they
// go to stderr. Install cannot fail observably: an unusable path
// silently degrades to stderr at crash time.
func Install(path string) {
	InstallSignals(DefaultSignals(), path)
}

// InstallSignals is Install for an explicit signal set. Re-installing
// overwrites any prior registration for the same signals.
func InstallSignals(sigs []syscall.Signal, path string) {
	sink.SetPath(path)
	for _, sig := range sigs {
		RegisterSignalHandler(sig, handleFatalSignal)
	}
}

// RegisterSignalHandler binds fn as the handler for sig. Registering a
// signal that already has a handler replaces it; handlers never chain.
// The handler runs on a dedicated goroutine fed by a buffered channel,
// which is as close as the runtime allows to a raw sigaction binding.
// One-shot semantics live in the handler itself: the crash handler
// resets the disposition to the platform default before doing anything
// else, so a recurrence terminates the process instead of looping.
func RegisterSignalHandler(sig syscall.Signal, fn func(syscall.Signal)) {
	regMu.Lock()
	defer regMu.Unlock()

	if old, ok := registered[sig]; ok {
		signal.Stop(old)
		close(old)
	}

	ch := make(chan os.Signal, 1)
	registered[sig] = ch
	signal.Notify(ch, sig)

	go func() {
		for s := range ch {
			fn(s.(syscall.Signal))
		}
	}()
}

// unregister removes a registration entirely. Used by tests to keep
// benign signals from leaking between cases.
func unregister(sig syscall.Signal) {
	regMu.Lock()
	defer regMu.Unlock()
	if ch, ok := registered[sig]; ok {
		signal.Stop(ch)
		close(ch)
		delete(registered, sig)
	}
}

// handleFatalSignal is the crash handler proper. It restores the
// default disposition first, emits the backtrace, then re-delivers the
// same signal so the process dies with the stock exit status and core
// dump. The interrupted thread may hold arbitrary locks, so the whole
// path is lock-free; concurrent crashes on multiple threads may
// interleave output, which is an accepted limitation.
func handleFatalSignal(sig syscall.Signal) {
	signal.Reset(sig)

	sink.EnsureReady()
	writeHeader(int(sig))
	writeFrames(0)
	sink.Flush()

	_ = syscall.Kill(syscall.Getpid(), sig)
}

// Print emits a backtrace of the calling goroutine to the crash output
// without any signal context.
//
// Deprecated: Print exists for manual diagnostics only. Use Install and
// let the signal path drive emission.
func Print() {
	sink.EnsureReady()
	writeFrames(1)
	sink.Flush()
}
