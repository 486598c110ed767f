//go:build !unix

// internal/sink/abort_stub.go
package sink

import "os"

// abortProcess terminates the process immediately. Platforms without
// raiseable signals fall back to a bare exit.
func abortProcess() {
	os.Exit(2)
}
