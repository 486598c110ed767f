//go:build !unix

// internal/crash/crash_stub.go
package crash

import "syscall"

// Fatal-signal interception is only wired up on unix-like targets. The
// stubs keep the surface identical elsewhere, so callers observe silent
// absence of functionality rather than an error.

// Install is a no-op on this platform.
func Install(path string) {}

// InstallSignals is a no-op on this platform.
func InstallSignals(sigs []syscall.Signal, path string) {}

// RegisterSignalHandler is a no-op on this platform.
func RegisterSignalHandler(sig syscall.Signal, fn func(syscall.Signal)) {}

// Print is a no-op on this platform.
//
// Deprecated: Print exists for manual diagnostics only.
func Print() {}
