// internal/recovery/recovery.go
package recovery

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/ColonelBlimp/crashtrace/internal/sink"
)

// HandlePanic should be deferred at the top of main() or goroutines.
// It reports the panic through the crash output sink, so it lands in
// the same destination as signal backtraces, and exits with code 1.
func HandlePanic() {
	if r := recover(); r != nil {
		report(r)
		os.Exit(1)
	}
}

// HandlePanicFunc reports panic details and calls the provided cleanup function.
func HandlePanicFunc(cleanup func()) {
	if r := recover(); r != nil {
		report(r)
		if cleanup != nil {
			cleanup()
		}
		os.Exit(1)
	}
}

func report(r any) {
	sink.EnsureReady()
	sink.Write(fmt.Sprintf("FATAL: %v\n\nStack trace:\n%s\n", r, debug.Stack()))
	sink.Flush()
}

// Usage in goroutines (with cleanup):
//go func() {
//	defer recovery.HandlePanicFunc(func() {
//		close(d.doneCh)
//	})
//	d.processLoop(ctx)
//}()
