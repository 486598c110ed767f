// internal/signames/signames.go

// Package signames maps between symbolic signal names and numbers, for
// config files and CLI arguments. Names are accepted with or without
// the SIG prefix, case-insensitively.
package signames

import (
	"errors"
	"fmt"
	"strings"
	"syscall"
)

// ErrUnknownSignal indicates a name with no signal on this platform.
var ErrUnknownSignal = errors.New("unknown signal name")

// signals holds the names available everywhere; platform init functions
// extend it.
var signals = map[string]syscall.Signal{
	"HUP":  syscall.SIGHUP,
	"INT":  syscall.SIGINT,
	"QUIT": syscall.SIGQUIT,
	"ILL":  syscall.SIGILL,
	"TRAP": syscall.SIGTRAP,
	"ABRT": syscall.SIGABRT,
	"BUS":  syscall.SIGBUS,
	"FPE":  syscall.SIGFPE,
	"KILL": syscall.SIGKILL,
	"SEGV": syscall.SIGSEGV,
	"PIPE": syscall.SIGPIPE,
	"ALRM": syscall.SIGALRM,
	"TERM": syscall.SIGTERM,
}

// Lookup resolves a symbolic name like "SEGV" or "sigsegv" to its
// signal number.
func Lookup(name string) (syscall.Signal, error) {
	key := strings.ToUpper(strings.TrimSpace(name))
	key = strings.TrimPrefix(key, "SIG")
	if sig, ok := signals[key]; ok {
		return sig, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSignal, name)
}

// Name returns the symbolic name for sig, or its decimal number when
// the signal has no name on this platform.
func Name(sig syscall.Signal) string {
	for name, s := range signals {
		if s == sig {
			return name
		}
	}
	return fmt.Sprintf("%d", int(sig))
}
