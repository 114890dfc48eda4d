// Package scheduler drives the launch of selected devices according to a
// strategy.
//
// The scheduler calls the spawner exactly once per device and aggregates
// per-device outcomes. A failed spawn becomes a failed outcome and never
// aborts the rest of the batch. No spawn is retried and no per-spawn
// timeout is imposed: each spawn's own settle ends its wait.
package scheduler

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/avdkit/avdkit/internal/launcher"
)

// DefaultDelay is the pause between launches under the Delayed strategy.
const DefaultDelay = 3 * time.Second

// Outcome is the result of one device's launch attempt.
type Outcome struct {
	// Device is the AVD this outcome belongs to.
	Device string

	// Err is nil on success.
	Err error
}

// Success reports whether the launch settled without error.
func (o Outcome) Success() bool { return o.Err == nil }

// Scheduler executes launches for a selection of devices.
type Scheduler struct {
	// Spawner performs the per-device terminal spawn.
	Spawner launcher.Spawner

	// Delay is the inter-launch pause for the Delayed strategy.
	// Zero means DefaultDelay.
	Delay time.Duration

	// Ack blocks until the user acknowledges the next launch under the
	// Sequential strategy. Nil means no gate.
	Ack func(device string) error

	// Report, when set, is invoked once per settled launch for live
	// feedback. Under Parallel it may be called from multiple
	// goroutines; implementations print a single line per call.
	Report func(Outcome)
}

// Execute launches every device in the selection according to the
// strategy and returns exactly one outcome per device, in selection
// order.
func (s *Scheduler) Execute(ctx context.Context, devices []string, strat Strategy) []Outcome {
	switch strat {
	case Delayed:
		return s.executeDelayed(ctx, devices)
	case Sequential:
		return s.executeSequential(ctx, devices)
	default:
		return s.executeParallel(ctx, devices)
	}
}

// executeParallel issues all spawns concurrently and waits for every one
// of them to settle before returning.
func (s *Scheduler) executeParallel(ctx context.Context, devices []string) []Outcome {
	outcomes := make([]Outcome, len(devices))

	// Plain group, no WithContext: one device failing must not cancel
	// its siblings.
	var g errgroup.Group
	for i, device := range devices {
		g.Go(func() error {
			outcomes[i] = s.spawn(ctx, device)
			return nil
		})
	}
	_ = g.Wait()
	return outcomes
}

// executeDelayed issues spawns one at a time in selection order, pausing
// between settles. There is no pause after the final device. Remaining
// devices are marked failed if the context is cancelled mid-pause.
func (s *Scheduler) executeDelayed(ctx context.Context, devices []string) []Outcome {
	delay := s.Delay
	if delay == 0 {
		delay = DefaultDelay
	}

	outcomes := make([]Outcome, 0, len(devices))
	for i, device := range devices {
		outcomes = append(outcomes, s.spawn(ctx, device))

		if i == len(devices)-1 {
			break
		}
		timer := time.NewTimer(delay)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return s.abandonRest(outcomes, devices, ctx.Err())
		}
	}
	return outcomes
}

// executeSequential blocks on an explicit acknowledgment before each
// spawn and waits for the spawn to settle before prompting again. An
// acknowledgment failure (for example a closed stdin) abandons the
// remaining devices.
func (s *Scheduler) executeSequential(ctx context.Context, devices []string) []Outcome {
	outcomes := make([]Outcome, 0, len(devices))
	for _, device := range devices {
		if s.Ack != nil {
			if err := s.Ack(device); err != nil {
				return s.abandonRest(outcomes, devices, err)
			}
		}
		outcomes = append(outcomes, s.spawn(ctx, device))
	}
	return outcomes
}

// spawn performs one launch attempt and reports its settle.
func (s *Scheduler) spawn(ctx context.Context, device string) Outcome {
	out := Outcome{Device: device, Err: s.Spawner.SpawnTerminal(ctx, device)}
	if s.Report != nil {
		s.Report(out)
	}
	return out
}

// abandonRest fills in failed outcomes for devices that were never
// attempted, preserving the one-outcome-per-device contract.
func (s *Scheduler) abandonRest(outcomes []Outcome, devices []string, err error) []Outcome {
	for _, device := range devices[len(outcomes):] {
		out := Outcome{Device: device, Err: err}
		if s.Report != nil {
			s.Report(out)
		}
		outcomes = append(outcomes, out)
	}
	return outcomes
}
