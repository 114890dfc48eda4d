package selector

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/avdkit/avdkit/internal/scheduler"
)

// HuhUI is the rich selector variant built on huh forms. huh restores
// the terminal itself on every exit path, so line-based prompts keep
// working after each form.
type HuhUI struct{}

// SelectDevices renders a multi-select over the inventory. The form's
// validation rejects an empty selection, so the caller always receives
// at least one device.
func (u *HuhUI) SelectDevices(inventory []string) ([]string, error) {
	var selected []string
	form := huh.NewForm(huh.NewGroup(
		huh.NewMultiSelect[string]().
			Title("Select AVDs to launch").
			Description("space to toggle, enter to confirm").
			Options(huh.NewOptions(inventory...)...).
			Validate(func(sel []string) error {
				if len(sel) == 0 {
					return errors.New("select at least one device")
				}
				return nil
			}).
			Value(&selected),
	))
	if err := form.Run(); err != nil {
		return nil, mapAborted(err)
	}
	return selected, nil
}

// PromptStrategy renders a single-select over the three launch
// strategies with preferred preselected.
func (u *HuhUI) PromptStrategy(preferred scheduler.Strategy) (scheduler.Strategy, error) {
	strat := preferred
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[scheduler.Strategy]().
			Title("How should they launch?").
			Options(
				huh.NewOption("Parallel (all at once)", scheduler.Parallel),
				huh.NewOption("Delayed (3s between launches)", scheduler.Delayed),
				huh.NewOption("Sequential (confirm each launch)", scheduler.Sequential),
			).
			Value(&strat),
	))
	if err := form.Run(); err != nil {
		return scheduler.Parallel, mapAborted(err)
	}
	return strat, nil
}

// ConfirmLaunch is the pre-launch gate. The affirmative answer is the
// default suggestion but still requires the user to submit the form.
func (u *HuhUI) ConfirmLaunch(selection []string) (bool, error) {
	ok := true
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(fmt.Sprintf("Launch %d emulator(s)?", len(selection))).
			Affirmative("Launch").
			Negative("Cancel").
			Value(&ok),
	))
	if err := form.Run(); err != nil {
		return false, mapAborted(err)
	}
	return ok, nil
}

// AckLaunch waits for Enter before the next sequential launch.
func (u *HuhUI) AckLaunch(device string) error {
	form := huh.NewForm(huh.NewGroup(
		huh.NewNote().
			Title(fmt.Sprintf("Next up: %s", device)).
			Description("press enter to launch").
			Next(true).
			NextLabel("Launch"),
	))
	if err := form.Run(); err != nil {
		return mapAborted(err)
	}
	return nil
}

// ConfirmRelaunch asks whether to run the pipeline again.
func (u *HuhUI) ConfirmRelaunch() (bool, error) {
	again := false
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title("Launch more emulators?").
			Value(&again),
	))
	if err := form.Run(); err != nil {
		return false, mapAborted(err)
	}
	return again, nil
}

// mapAborted folds huh's ctrl-c error into the package sentinel.
func mapAborted(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrAborted
	}
	return err
}
