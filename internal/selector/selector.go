// Package selector provides the interactive surfaces of the launch
// pipeline: device selection, strategy choice, and confirmation gates.
//
// Two interchangeable implementations satisfy the same contract: a rich
// variant built on huh forms, and a raw-keyboard fallback for terminals
// where the rich variant is unavailable. The rest of the pipeline never
// branches on which variant is active.
package selector

import (
	"errors"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/avdkit/avdkit/internal/scheduler"
)

// ErrAborted is returned when the user quits out of a prompt. The
// command layer turns it into a graceful exit.
var ErrAborted = errors.New("aborted by user")

// UI is the contract both selector variants implement.
//
// SelectDevices never returns an empty selection: variants re-prompt or
// validate until at least one device is chosen, or fail with an error.
// Every method leaves the terminal accepting line-based input.
type UI interface {
	// SelectDevices presents the inventory and returns a non-empty
	// subset.
	SelectDevices(inventory []string) ([]string, error)

	// PromptStrategy asks the user to choose a launch strategy,
	// preselecting preferred.
	PromptStrategy(preferred scheduler.Strategy) (scheduler.Strategy, error)

	// ConfirmLaunch is the yes/no gate before launching. The default
	// suggestion is affirmative.
	ConfirmLaunch(selection []string) (bool, error)

	// AckLaunch blocks until the user acknowledges the next sequential
	// launch.
	AckLaunch(device string) error

	// ConfirmRelaunch asks whether to run the whole pipeline again.
	ConfirmRelaunch() (bool, error)
}

// New picks the selector variant: huh forms when stdin and stdout are
// terminals and plain mode is off, otherwise the fallback UI.
func New(plain bool) UI {
	if !plain && isatty.IsTerminal(os.Stdout.Fd()) && isatty.IsTerminal(os.Stdin.Fd()) {
		return &HuhUI{}
	}
	return &FallbackUI{In: os.Stdin, Out: os.Stdout}
}

// ChooseStrategy resolves the launch strategy for a selection. A single
// device has no meaningful strategy distinction, so it short-circuits to
// Parallel without prompting.
func ChooseStrategy(u UI, selection []string, preferred scheduler.Strategy) (scheduler.Strategy, error) {
	if len(selection) == 1 {
		return scheduler.Parallel, nil
	}
	return u.PromptStrategy(preferred)
}
