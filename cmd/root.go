// cmd/root.go
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ColonelBlimp/crashtrace/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "crashtrace",
	Short: "Fatal-signal backtrace reporter",
	Long: `A crash reporting tool that intercepts fatal signals (SIGILL, SIGSEGV,
SIGBUS, SIGFPE) and prints a readable stack backtrace before the process
dies with the default OS disposition.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags (override config file)
	rootCmd.PersistentFlags().StringP("output", "o", "", "file for crash backtraces (default stderr)")
	rootCmd.PersistentFlags().StringSliceP("signal", "s", []string{"ILL", "SEGV", "BUS", "FPE"}, "signals to intercept")
	rootCmd.PersistentFlags().IntP("max-frames", "m", 64, "maximum backtrace depth")
	rootCmd.PersistentFlags().BoolP("debug", "D", false, "enable debug output")

	// Bind flags to viper
	viper.BindPFlag("output_path", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("signals", rootCmd.PersistentFlags().Lookup("signal"))
	viper.BindPFlag("max_frames", rootCmd.PersistentFlags().Lookup("max-frames"))
	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
}

func initConfig() {
	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}
}
