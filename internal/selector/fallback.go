package selector

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/avdkit/avdkit/internal/scheduler"
	"github.com/avdkit/avdkit/internal/ui"
)

// FallbackUI is the minimal selector variant: a raw-keyboard checkbox
// menu when stdin is a terminal, line-based numbered prompts otherwise.
type FallbackUI struct {
	// In is the input stream, normally os.Stdin.
	In io.Reader

	// Out is where menus are drawn, normally os.Stdout.
	Out io.Writer

	reader *bufio.Reader
}

// lineReader returns the persistent buffered reader over In.
func (f *FallbackUI) lineReader() *bufio.Reader {
	if f.reader == nil {
		f.reader = bufio.NewReader(f.In)
	}
	return f.reader
}

// SelectDevices returns a non-empty subset of the inventory. It uses the
// raw-keyboard checkbox menu when possible and re-prompts until at least
// one device is checked.
func (f *FallbackUI) SelectDevices(inventory []string) ([]string, error) {
	if file, ok := f.In.(*os.File); ok && isatty.IsTerminal(file.Fd()) {
		sel, err := f.selectRaw(file, inventory)
		if err == nil || errors.Is(err, ErrAborted) {
			return sel, err
		}
		// Raw mode unavailable; fall through to line prompts.
	}
	return f.selectByNumbers(inventory)
}

// selectRaw runs the checkbox menu in raw terminal mode. The previous
// terminal state is restored on every exit path so later prompts can
// read whole lines again.
func (f *FallbackUI) selectRaw(file *os.File, inventory []string) ([]string, error) {
	fd := int(file.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("failed to enter raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
		fmt.Fprint(f.Out, "\r\n")
	}()

	menu := newCheckboxMenu(inventory)
	warn := false
	drawn := 0
	buf := make([]byte, 8)
	for {
		if drawn > 0 {
			// Rewind over the previous frame and redraw in place.
			fmt.Fprintf(f.Out, "\x1b[%dA\r\x1b[J", drawn)
		}
		drawn = menu.render(f.Out, warn)

		n, err := file.Read(buf)
		if err != nil {
			return nil, err
		}

		switch menu.handleKey(buf[:n]) {
		case actQuit:
			return nil, ErrAborted
		case actConfirm:
			sel := menu.selection()
			if len(sel) == 0 {
				warn = true
				continue
			}
			return sel, nil
		}
		warn = false
	}
}

// selectByNumbers is the line-based selection used when raw mode is not
// available: a numbered list and a comma-separated answer, re-prompted
// until it names at least one device.
func (f *FallbackUI) selectByNumbers(inventory []string) ([]string, error) {
	fmt.Fprintln(f.Out, ui.TitleStyle.Render("Available AVDs:"))
	for i, name := range inventory {
		fmt.Fprintf(f.Out, "  %s %s\n", ui.AccentStyle.Render(fmt.Sprintf("[%d]", i+1)), ui.InfoStyle.Render(name))
	}

	for {
		input, err := ui.PromptFrom(f.lineReader(), "Select devices (comma-separated numbers):")
		if err != nil {
			return nil, err
		}
		sel, err := parseSelection(input, inventory)
		if err != nil {
			ui.PrintWarning("%v", err)
			continue
		}
		return sel, nil
	}
}

// parseSelection resolves a comma-separated list of 1-based indices into
// device names, deduplicated, in inventory order of first mention.
func parseSelection(input string, inventory []string) ([]string, error) {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("select at least one device")
	}

	seen := make(map[int]bool)
	var sel []string
	for _, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil || n < 1 || n > len(inventory) {
			return nil, fmt.Errorf("invalid choice %q: enter numbers between 1 and %d", field, len(inventory))
		}
		if seen[n] {
			continue
		}
		seen[n] = true
		sel = append(sel, inventory[n-1])
	}
	return sel, nil
}

// PromptStrategy shows a numbered strategy prompt. An unrecognized entry
// warns and defaults to Parallel rather than failing or re-prompting.
func (f *FallbackUI) PromptStrategy(preferred scheduler.Strategy) (scheduler.Strategy, error) {
	fmt.Fprintln(f.Out, ui.TitleStyle.Render("How should they launch?"))
	options := []struct {
		strat scheduler.Strategy
		desc  string
	}{
		{scheduler.Parallel, "all at once"},
		{scheduler.Delayed, "3s between launches"},
		{scheduler.Sequential, "confirm each launch"},
	}
	for i, opt := range options {
		marker := " "
		if opt.strat == preferred {
			marker = ui.AccentStyle.Render("*")
		}
		fmt.Fprintf(f.Out, " %s%s %s (%s)\n", marker,
			ui.AccentStyle.Render(fmt.Sprintf("[%d]", i+1)),
			ui.InfoStyle.Render(opt.strat.String()), ui.DimStyle.Render(opt.desc))
	}

	input, err := ui.PromptFrom(f.lineReader(), "Select strategy:")
	if err != nil {
		return scheduler.Parallel, err
	}
	strat, ok := parseStrategyChoice(input, preferred)
	if !ok {
		ui.PrintWarning("Unrecognized choice %q, launching in parallel", input)
	}
	return strat, nil
}

// parseStrategyChoice maps a manual strategy entry to a Strategy. Empty
// input takes the preferred default. The second return is false when the
// entry was unrecognized and the parallel fallback applies.
func parseStrategyChoice(input string, preferred scheduler.Strategy) (scheduler.Strategy, bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "":
		return preferred, true
	case "1", "parallel":
		return scheduler.Parallel, true
	case "2", "delayed":
		return scheduler.Delayed, true
	case "3", "sequential":
		return scheduler.Sequential, true
	default:
		return scheduler.Parallel, false
	}
}

// ConfirmLaunch is the yes/no gate before launching. Empty input takes
// the affirmative default; anything not recognized as yes declines.
func (f *FallbackUI) ConfirmLaunch(selection []string) (bool, error) {
	return ui.PromptConfirm(f.lineReader(), fmt.Sprintf("Launch %d emulator(s)?", len(selection)), true)
}

// AckLaunch waits for Enter before the next sequential launch.
func (f *FallbackUI) AckLaunch(device string) error {
	_, err := ui.PromptFrom(f.lineReader(), fmt.Sprintf("Press Enter to launch %s...", device))
	return err
}

// ConfirmRelaunch asks whether to run the pipeline again.
func (f *FallbackUI) ConfirmRelaunch() (bool, error) {
	return ui.PromptConfirm(f.lineReader(), "Launch more emulators?", false)
}
