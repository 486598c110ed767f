// cmd/print.go
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ColonelBlimp/crashtrace/backtrace"
	"github.com/ColonelBlimp/crashtrace/internal/config"
	"github.com/ColonelBlimp/crashtrace/internal/unwind"
)

var printCmd = &cobra.Command{
	Use:   "print",
	Short: "Print a backtrace of the current call stack",
	Long: `Emits a backtrace immediately to the configured crash output, without
any signal context. Useful for checking symbolization and output routing
before relying on the crash path.`,
	Args: cobra.NoArgs,
	RunE: runPrint,
}

func init() {
	rootCmd.AddCommand(printCmd)
}

func runPrint(cmd *cobra.Command, args []string) error {
	settings, err := config.Get()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	backtrace.SetEngine(&unwind.RuntimeEngine{Depth: settings.MaxFrames})
	if !settings.Demangle {
		backtrace.SetDemangler(nil)
	}

	// Records the output path without registering any handlers.
	backtrace.InstallSignals(nil, settings.OutputPath)
	backtrace.Print()
	return nil
}
