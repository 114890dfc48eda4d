package selector

import (
	"fmt"
	"io"
	"strings"

	"github.com/avdkit/avdkit/internal/ui"
)

// keyAction is the driver-visible result of one keypress.
type keyAction int

const (
	actNone keyAction = iota
	actConfirm
	actQuit
)

// checkboxMenu is the state of the raw-keyboard selection UI: a cursor
// and a checked flag per inventory item. All mutation happens through
// key handling; the driver only redraws and reads.
type checkboxMenu struct {
	items   []string
	cursor  int
	checked []bool
}

func newCheckboxMenu(items []string) *checkboxMenu {
	return &checkboxMenu{
		items:   items,
		checked: make([]bool, len(items)),
	}
}

// up moves the cursor one row up, wrapping to the bottom.
func (m *checkboxMenu) up() {
	m.cursor--
	if m.cursor < 0 {
		m.cursor = len(m.items) - 1
	}
}

// down moves the cursor one row down, wrapping to the top.
func (m *checkboxMenu) down() {
	m.cursor++
	if m.cursor >= len(m.items) {
		m.cursor = 0
	}
}

// toggle flips the checked state of the item under the cursor.
func (m *checkboxMenu) toggle() {
	m.checked[m.cursor] = !m.checked[m.cursor]
}

// selection returns the checked items in inventory order.
func (m *checkboxMenu) selection() []string {
	var sel []string
	for i, item := range m.items {
		if m.checked[i] {
			sel = append(sel, item)
		}
	}
	return sel
}

// handleKey applies one raw keypress to the menu state.
//
// Keys: up/k and down/j navigate (with wrap-around), space toggles,
// enter confirms, q or ctrl-c quits.
func (m *checkboxMenu) handleKey(b []byte) keyAction {
	if len(b) == 0 {
		return actNone
	}
	switch {
	case b[0] == 'q' || b[0] == 0x03: // ctrl-c
		return actQuit
	case b[0] == '\r' || b[0] == '\n':
		return actConfirm
	case b[0] == ' ':
		m.toggle()
	case b[0] == 'k':
		m.up()
	case b[0] == 'j':
		m.down()
	case len(b) >= 3 && b[0] == 0x1b && b[1] == '[':
		switch b[2] {
		case 'A':
			m.up()
		case 'B':
			m.down()
		}
	}
	return actNone
}

// render draws the full menu. Raw mode needs explicit carriage returns,
// so every line ends in \r\n. Returns the number of lines drawn so the
// driver can rewind the cursor before the next redraw.
func (m *checkboxMenu) render(w io.Writer, warn bool) int {
	lines := 0
	write := func(s string) {
		fmt.Fprint(w, s+"\r\n")
		lines++
	}

	write(ui.TitleStyle.Render("Select AVDs to launch"))
	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = ui.CursorStyle.Render("▸ ")
		}
		box := "[ ]"
		if m.checked[i] {
			box = ui.AccentStyle.Render("[x]")
		}
		label := ui.InfoStyle.Render(item)
		if i == m.cursor {
			label = ui.CursorStyle.Render(item)
		}
		write(fmt.Sprintf("%s%s %s", cursor, box, label))
	}

	hints := []string{"↑/k ↓/j move", "space toggle", "enter launch", "q quit"}
	write(ui.DimStyle.Render("  " + strings.Join(hints, "  ")))
	if warn {
		write(ui.WarningStyle.Render("⚠ Select at least one device"))
	}
	return lines
}
