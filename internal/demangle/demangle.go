// internal/demangle/demangle.go

// Package demangle decides when a symbol name needs demangling and
// delegates the conversion itself to an externally supplied demangler.
package demangle

import (
	"strings"
	"sync/atomic"
)

// Demangler converts a mangled symbol name to its human-readable form.
type Demangler func(string) string

// holder wraps the function so atomic.Value sees one concrete type.
type holder struct{ fn Demangler }

var current atomic.Value

// SetDemangler installs the demangler applied to mangled names. Passing
// nil removes it, leaving mangled names untouched. Stored atomically so
// an install-time call cannot race a crashing thread.
func SetDemangler(fn Demangler) {
	current.Store(holder{fn})
}

// IsMangled reports whether name carries the $s or $S prefix that Swift
// toolchains put on mangled symbols. Frames from cgo code linking Swift
// libraries are the usual source.
func IsMangled(name string) bool {
	return strings.HasPrefix(name, "$s") || strings.HasPrefix(name, "$S")
}

// Apply returns the demangled form of name when it is mangled and a
// demangler is installed, otherwise name unchanged.
func Apply(name string) string {
	if !IsMangled(name) {
		return name
	}
	h, _ := current.Load().(holder)
	if h.fn == nil {
		return name
	}
	return h.fn(name)
}
