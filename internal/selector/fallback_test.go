// Package selector provides tests for the fallback UI and the shared
// selection helpers.
package selector

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/avdkit/avdkit/internal/scheduler"
)

// TestCheckboxMenuNavigation tests cursor movement with wrap-around.
func TestCheckboxMenuNavigation(t *testing.T) {
	m := newCheckboxMenu([]string{"a", "b", "c"})

	if m.cursor != 0 {
		t.Fatalf("initial cursor = %d, want 0", m.cursor)
	}
	m.up()
	if m.cursor != 2 {
		t.Errorf("up from top should wrap to bottom, cursor = %d", m.cursor)
	}
	m.down()
	if m.cursor != 0 {
		t.Errorf("down from bottom should wrap to top, cursor = %d", m.cursor)
	}
	m.down()
	m.down()
	if m.cursor != 2 {
		t.Errorf("cursor = %d, want 2", m.cursor)
	}
}

// TestCheckboxMenuToggleAndSelection tests checking items and selection
// order.
func TestCheckboxMenuToggleAndSelection(t *testing.T) {
	m := newCheckboxMenu([]string{"a", "b", "c"})

	if sel := m.selection(); sel != nil {
		t.Fatalf("initial selection = %v, want empty", sel)
	}

	// Check c first, then a: selection stays in inventory order.
	m.cursor = 2
	m.toggle()
	m.cursor = 0
	m.toggle()
	sel := m.selection()
	if len(sel) != 2 || sel[0] != "a" || sel[1] != "c" {
		t.Errorf("selection = %v, want [a c] in inventory order", sel)
	}

	m.toggle() // uncheck a
	sel = m.selection()
	if len(sel) != 1 || sel[0] != "c" {
		t.Errorf("selection after uncheck = %v, want [c]", sel)
	}
}

// TestCheckboxMenuHandleKey tests the raw keypress mapping.
func TestCheckboxMenuHandleKey(t *testing.T) {
	tests := []struct {
		name       string
		key        []byte
		wantAction keyAction
		wantCursor int
	}{
		{name: "j moves down", key: []byte("j"), wantAction: actNone, wantCursor: 1},
		{name: "k wraps up", key: []byte("k"), wantAction: actNone, wantCursor: 2},
		{name: "arrow down", key: []byte{0x1b, '[', 'B'}, wantAction: actNone, wantCursor: 1},
		{name: "arrow up wraps", key: []byte{0x1b, '[', 'A'}, wantAction: actNone, wantCursor: 2},
		{name: "enter confirms", key: []byte{'\r'}, wantAction: actConfirm, wantCursor: 0},
		{name: "q quits", key: []byte("q"), wantAction: actQuit, wantCursor: 0},
		{name: "ctrl-c quits", key: []byte{0x03}, wantAction: actQuit, wantCursor: 0},
		{name: "unknown key ignored", key: []byte("z"), wantAction: actNone, wantCursor: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newCheckboxMenu([]string{"a", "b", "c"})
			if got := m.handleKey(tt.key); got != tt.wantAction {
				t.Errorf("action = %d, want %d", got, tt.wantAction)
			}
			if m.cursor != tt.wantCursor {
				t.Errorf("cursor = %d, want %d", m.cursor, tt.wantCursor)
			}
		})
	}

	t.Run("space toggles", func(t *testing.T) {
		m := newCheckboxMenu([]string{"a", "b"})
		m.handleKey([]byte(" "))
		if !m.checked[0] {
			t.Error("space should check the item under the cursor")
		}
		m.handleKey([]byte(" "))
		if m.checked[0] {
			t.Error("space should toggle off again")
		}
	})
}

// TestParseSelection tests comma-separated index parsing.
func TestParseSelection(t *testing.T) {
	inventory := []string{"Pixel_5", "Pixel_7", "Nexus_6"}

	tests := []struct {
		name      string
		input     string
		want      []string
		wantError bool
	}{
		{name: "single", input: "2", want: []string{"Pixel_7"}},
		{name: "multiple", input: "1,3", want: []string{"Pixel_5", "Nexus_6"}},
		{name: "spaces as separators", input: "1 3", want: []string{"Pixel_5", "Nexus_6"}},
		{name: "duplicates collapsed", input: "2,2,2", want: []string{"Pixel_7"}},
		{name: "empty", input: "", wantError: true},
		{name: "zero index", input: "0", wantError: true},
		{name: "out of range", input: "4", wantError: true},
		{name: "not a number", input: "Pixel_5", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSelection(tt.input, inventory)
			if (err != nil) != tt.wantError {
				t.Fatalf("parseSelection(%q) error = %v, wantError %v", tt.input, err, tt.wantError)
			}
			if err != nil {
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("parseSelection(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("parseSelection(%q)[%d] = %q, want %q", tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}

// TestParseStrategyChoice tests the manual strategy entry policy: empty
// takes the default, unrecognized input falls back to parallel.
func TestParseStrategyChoice(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		preferred  scheduler.Strategy
		want       scheduler.Strategy
		recognized bool
	}{
		{name: "empty takes preferred", input: "", preferred: scheduler.Delayed, want: scheduler.Delayed, recognized: true},
		{name: "number", input: "3", preferred: scheduler.Parallel, want: scheduler.Sequential, recognized: true},
		{name: "name", input: "delayed", preferred: scheduler.Parallel, want: scheduler.Delayed, recognized: true},
		{name: "case-insensitive", input: "PARALLEL", preferred: scheduler.Delayed, want: scheduler.Parallel, recognized: true},
		{name: "whitespace trimmed", input: "  2  ", preferred: scheduler.Parallel, want: scheduler.Delayed, recognized: true},
		{name: "garbage defaults to parallel", input: "fast please", preferred: scheduler.Sequential, want: scheduler.Parallel, recognized: false},
		{name: "out-of-range number defaults", input: "7", preferred: scheduler.Delayed, want: scheduler.Parallel, recognized: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseStrategyChoice(tt.input, tt.preferred)
			if got != tt.want {
				t.Errorf("strategy = %v, want %v", got, tt.want)
			}
			if ok != tt.recognized {
				t.Errorf("recognized = %v, want %v", ok, tt.recognized)
			}
		})
	}
}

// TestSelectByNumbersRepromptsOnEmpty tests that the line-based selector
// never returns an empty selection.
func TestSelectByNumbersRepromptsOnEmpty(t *testing.T) {
	var out bytes.Buffer
	f := &FallbackUI{
		In:  strings.NewReader("\nbogus\n1,2\n"),
		Out: &out,
	}

	sel, err := f.SelectDevices([]string{"Pixel_5", "Pixel_7"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sel) != 2 || sel[0] != "Pixel_5" || sel[1] != "Pixel_7" {
		t.Errorf("selection = %v, want [Pixel_5 Pixel_7]", sel)
	}
}

// TestFallbackConfirmLaunch tests the decline-by-default parsing of the
// confirmation gate.
func TestFallbackConfirmLaunch(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "empty takes affirmative default", input: "\n", want: true},
		{name: "yes", input: "yes\n", want: true},
		{name: "y", input: "y\n", want: true},
		{name: "n declines", input: "n\n", want: false},
		{name: "anything else declines", input: "sure\n", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &FallbackUI{In: strings.NewReader(tt.input), Out: &bytes.Buffer{}}
			got, err := f.ConfirmLaunch([]string{"Pixel_5"})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ConfirmLaunch(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestFallbackPromptSequence tests that consecutive prompts consume
// input line by line from the same reader.
func TestFallbackPromptSequence(t *testing.T) {
	f := &FallbackUI{
		In:  strings.NewReader("2\ny\nn\n"),
		Out: &bytes.Buffer{},
	}

	strat, err := f.PromptStrategy(scheduler.Parallel)
	if err != nil {
		t.Fatalf("PromptStrategy error: %v", err)
	}
	if strat != scheduler.Delayed {
		t.Errorf("strategy = %v, want delayed", strat)
	}

	ok, err := f.ConfirmLaunch([]string{"a", "b"})
	if err != nil || !ok {
		t.Fatalf("ConfirmLaunch = %v, %v; want true, nil", ok, err)
	}

	again, err := f.ConfirmRelaunch()
	if err != nil || again {
		t.Fatalf("ConfirmRelaunch = %v, %v; want false, nil", again, err)
	}
}

// TestFallbackAckLaunchClosedInput tests that a closed input stream
// surfaces as an error instead of hanging or acknowledging.
func TestFallbackAckLaunchClosedInput(t *testing.T) {
	f := &FallbackUI{In: strings.NewReader(""), Out: &bytes.Buffer{}}
	if err := f.AckLaunch("Pixel_5"); err == nil {
		t.Fatal("expected error from closed input")
	}
}

// fakeUI fails the test if any prompt is reached.
type fakeUI struct {
	t *testing.T
}

func (f *fakeUI) SelectDevices(inventory []string) ([]string, error) {
	f.t.Fatal("SelectDevices should not be called")
	return nil, nil
}

func (f *fakeUI) PromptStrategy(preferred scheduler.Strategy) (scheduler.Strategy, error) {
	f.t.Fatal("PromptStrategy should not be called for a single device")
	return scheduler.Parallel, nil
}

func (f *fakeUI) ConfirmLaunch(selection []string) (bool, error) { return true, nil }
func (f *fakeUI) AckLaunch(device string) error                  { return nil }
func (f *fakeUI) ConfirmRelaunch() (bool, error)                 { return false, nil }

// TestChooseStrategySingleDevice tests the no-prompt shortcut for a
// selection of one.
func TestChooseStrategySingleDevice(t *testing.T) {
	strat, err := ChooseStrategy(&fakeUI{t: t}, []string{"Pixel_5"}, scheduler.Sequential)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strat != scheduler.Parallel {
		t.Errorf("strategy = %v, want parallel for single device", strat)
	}
}

// TestErrAbortedIdentity tests that variants surface aborts as the
// package sentinel.
func TestErrAbortedIdentity(t *testing.T) {
	if !errors.Is(mapAborted(ErrAborted), ErrAborted) {
		t.Error("mapAborted should preserve ErrAborted")
	}
}
