package main

import (
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/avdkit/avdkit/internal/avd"
	"github.com/avdkit/avdkit/internal/config"
	"github.com/avdkit/avdkit/internal/launcher"
	"github.com/avdkit/avdkit/internal/scheduler"
	"github.com/avdkit/avdkit/internal/selector"
	"github.com/avdkit/avdkit/internal/ui"
)

// runPipeline drives the interactive launch flow: list, select,
// strategy, confirm, launch, and optionally loop around again.
func runPipeline(cmd *cobra.Command) error {
	// An interrupt at any suspension point ends the run immediately.
	// Already-spawned terminals are OS-detached and keep running.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		<-sigCh
		ui.Println()
		ui.PrintDim("Interrupted, bye!")
		os.Exit(0)
	}()

	cfg, err := config.Load()
	if err != nil {
		ui.PrintWarning("Ignoring config file: %v", err)
		cfg = &config.Config{}
	}

	delay := cfg.Delay()
	if secs, _ := cmd.Flags().GetInt("delay"); secs > 0 {
		delay = time.Duration(secs) * time.Second
	}

	preferred := scheduler.Parallel
	if cfg.DefaultStrategy != "" {
		strat, err := scheduler.ParseStrategy(cfg.DefaultStrategy)
		if err != nil {
			ui.PrintWarning("Ignoring default_strategy: %v", err)
		} else {
			preferred = strat
		}
	}

	plain, _ := cmd.Flags().GetBool("plain")
	u := selector.New(plain)

	lister := avd.NewLister(cfg.Emulator)
	spawner := &launcher.TerminalSpawner{
		Emulator: cfg.Emulator,
		Terminal: cfg.Terminal,
	}

	ui.PrintBanner(version)

	ctx := cmd.Context()
	for {
		runID := uuid.NewString()
		log.Debug("starting launch run", "run_id", runID, "delay", delay)

		devices, err := lister.List(ctx)
		if err != nil {
			return err
		}
		log.Debug("discovered devices", "run_id", runID, "count", len(devices))

		selection, err := u.SelectDevices(devices)
		if err != nil {
			return finish(err)
		}

		strat, err := selector.ChooseStrategy(u, selection, preferred)
		if err != nil {
			return finish(err)
		}
		log.Debug("strategy chosen", "run_id", runID, "strategy", strat, "devices", len(selection))

		ok, err := u.ConfirmLaunch(selection)
		if err != nil {
			return finish(err)
		}
		if ok {
			sched := &scheduler.Scheduler{
				Spawner: spawner,
				Delay:   delay,
				Ack:     u.AckLaunch,
				Report:  reportOutcome,
			}
			outcomes := sched.Execute(ctx, selection, strat)
			printSummary(outcomes)
		} else {
			ui.PrintDim("Launch cancelled.")
		}

		again, err := u.ConfirmRelaunch()
		if err != nil {
			return finish(err)
		}
		if !again {
			ui.PrintDim("Bye!")
			return nil
		}
	}
}

// finish maps a user abort to a clean exit; anything else is a real
// pipeline error.
func finish(err error) error {
	if errors.Is(err, selector.ErrAborted) {
		ui.PrintDim("Bye!")
		return nil
	}
	return err
}

// reportOutcome prints live per-device feedback as each spawn settles.
func reportOutcome(out scheduler.Outcome) {
	if out.Success() {
		ui.PrintSuccess("%s launched", out.Device)
	} else {
		ui.PrintError("%v", out.Err)
	}
}

// printSummary prints the aggregate result of one launch run.
func printSummary(outcomes []scheduler.Outcome) {
	launched, failed := tallyOutcomes(outcomes)
	ui.Println()
	switch {
	case failed == 0:
		ui.PrintSuccess("All %d emulator(s) launched", launched)
	case launched == 0:
		ui.PrintError("All %d launch(es) failed", failed)
	default:
		ui.PrintWarning("%d launched, %d failed", launched, failed)
	}
}

// tallyOutcomes counts successful and failed launches.
func tallyOutcomes(outcomes []scheduler.Outcome) (launched, failed int) {
	for _, out := range outcomes {
		if out.Success() {
			launched++
		} else {
			failed++
		}
	}
	return launched, failed
}
