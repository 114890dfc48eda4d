package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avdkit/avdkit/internal/avd"
	"github.com/avdkit/avdkit/internal/config"
	"github.com/avdkit/avdkit/internal/ui"
)

// listCmd prints the configured AVDs. `avdkit --list` and `avdkit -l`
// run the same path.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured AVDs",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList(cmd)
	},
}

// runList fetches and prints the inventory as a numbered list plus a
// count. A discovery failure propagates and exits with status 1.
func runList(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		ui.PrintWarning("Ignoring config file: %v", err)
		cfg = &config.Config{}
	}

	devices, err := avd.NewLister(cfg.Emulator).List(cmd.Context())
	if err != nil {
		return err
	}

	for i, device := range devices {
		fmt.Printf("  %s %s\n",
			ui.AccentStyle.Render(fmt.Sprintf("[%d]", i+1)),
			ui.InfoStyle.Render(device))
	}
	ui.PrintDim("%d AVD(s) configured", len(devices))
	return nil
}
