// Package ui provides the ASCII banner for the avdkit CLI.
package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// banner is the ASCII art logo for avdkit.
const banner = `
   ▄▄▄· ▌ ▐·▄▄▄▄  ▄ •▄ ▪  ▄▄▄▄▄
  ▐█ ▀█ ▪█·█▌██▪ █▌█▌▪██ •██
  ▄█▀▀█ ▐█▐█•▐█· ▐█▐▐▌▐█· ▐█.▪
  ▐█▪▐▌ ███ ▐█▌▐▌██▐█▌▐█▌ ▐█▌·
   ▀ ▀ . ▀  ▀▀▀ •▀▀ █▪▀▀▀ ▀▀▀`

// tagline is the one-line description under the banner.
const tagline = "Launch Android emulators in their own terminal windows"

// PrintBanner prints the avdkit banner with version info.
//
// Parameters:
//   - version: The CLI version string to display
func PrintBanner(version string) {
	if quietMode {
		return
	}

	styledBanner := lipgloss.NewStyle().
		Foreground(Green).
		Bold(true).
		Render(banner)

	fmt.Println(styledBanner)
	fmt.Println()

	taglineStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")).
		Italic(true).
		PaddingLeft(2)
	fmt.Println(taglineStyle.Render(tagline))

	infoStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")).
		PaddingLeft(2)
	fmt.Println(infoStyle.Render(fmt.Sprintf("Version: %s", version)))
	fmt.Println()
}
