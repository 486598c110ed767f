// cmd/crash.go
package cmd

import (
	"fmt"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ColonelBlimp/crashtrace/backtrace"
	"github.com/ColonelBlimp/crashtrace/internal/config"
	"github.com/ColonelBlimp/crashtrace/internal/signames"
	"github.com/ColonelBlimp/crashtrace/internal/unwind"
)

var crashCmd = &cobra.Command{
	Use:   "crash [signal]",
	Short: "Install the crash handler, then raise a fatal signal",
	Long: `Installs the crash handler per the active configuration, then sends the
named signal (default SEGV) to this process. Used to exercise the crash
path end to end; expect the process to die with that signal.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCrash,
}

func init() {
	rootCmd.AddCommand(crashCmd)
}

func runCrash(cmd *cobra.Command, args []string) error {
	settings, err := config.Get()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	name := "SEGV"
	if len(args) == 1 {
		name = args[0]
	}
	sig, err := signames.Lookup(name)
	if err != nil {
		return err
	}

	sigs, err := resolveSignals(settings.Signals)
	if err != nil {
		return err
	}

	backtrace.SetEngine(&unwind.RuntimeEngine{Depth: settings.MaxFrames})
	if !settings.Demangle {
		backtrace.SetDemangler(nil)
	}
	backtrace.InstallSignals(sigs, settings.OutputPath)

	if settings.Debug {
		fmt.Fprintf(cmd.ErrOrStderr(), "installed handler for %d signals, raising SIG%s\n",
			len(sigs), signames.Name(sig))
	}

	if err := raise(sig); err != nil {
		return fmt.Errorf("raise SIG%s: %w", signames.Name(sig), err)
	}

	// The handler runs on another goroutine and re-raises to kill the
	// process; give it time before declaring the delivery lost.
	time.Sleep(10 * time.Second)
	return fmt.Errorf("SIG%s was not delivered", signames.Name(sig))
}

func resolveSignals(names []string) ([]syscall.Signal, error) {
	sigs := make([]syscall.Signal, 0, len(names))
	for _, name := range names {
		sig, err := signames.Lookup(name)
		if err != nil {
			return nil, err
		}
		sigs = append(sigs, sig)
	}
	return sigs, nil
}
