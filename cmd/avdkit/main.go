// Package main provides the entry point for the avdkit CLI.
//
// avdkit lists locally configured Android Virtual Devices, lets the user
// pick a subset, and launches each one in its own terminal window using
// a parallel, delayed, or sequential strategy.
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/avdkit/avdkit/internal/ui"
)

// Version information set at build time via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "avdkit",
	Short: "Launch Android emulators in their own terminal windows",
	Long: `avdkit lists your configured Android Virtual Devices, lets you pick
which ones to start, and opens each in a new terminal window.

With more than one device selected you choose how they launch:

  parallel     all at once
  delayed      one at a time with a 3 second pause between launches
  sequential   one at a time, confirming each launch

Requires the Android SDK 'emulator' binary on your PATH.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		debug, _ := cmd.Flags().GetBool("debug")
		if debug {
			log.SetLevel(log.DebugLevel)
			log.Debug("Debug logging enabled")
		}

		quiet, _ := cmd.Flags().GetBool("quiet")
		ui.SetQuietMode(quiet)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if list, _ := cmd.Flags().GetBool("list"); list {
			return runList(cmd)
		}
		return runPipeline(cmd)
	},
}

// Execute runs the root command. Errors that reach this point were not
// recoverable anywhere in the pipeline.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error("avdkit exited with an error", "error", err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress non-essential output")

	// Pipeline flags
	rootCmd.Flags().BoolP("list", "l", false, "List configured AVDs and exit")
	rootCmd.Flags().Bool("plain", false, "Use the plain selection UI instead of the interactive forms")
	rootCmd.Flags().Int("delay", 0, "Seconds between delayed launches (default 3)")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(listCmd)
}

// versionCmd shows version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		ui.PrintBanner(version)
		ui.PrintInfo("Version: %s", version)
		ui.PrintInfo("Commit: %s", commit)
		ui.PrintInfo("Built: %s", date)
	},
}

func main() {
	Execute()
}
