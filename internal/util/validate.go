// Package util provides shared utility functions for the CLI.
package util

import (
	"fmt"
	"regexp"
)

// avdNamePattern matches the character set avdmanager accepts for AVD
// names. Anything outside it is rejected before a name is handed to the
// terminal spawner, which on macOS embeds the launch command in an
// osascript string.
var avdNamePattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// ValidateDeviceName checks that an AVD name is safe to pass to the
// launch command.
//
// Example: "Pixel_5" is valid, "Pixel 5; rm -rf" is not.
func ValidateDeviceName(name string) error {
	if name == "" {
		return fmt.Errorf("device name is empty")
	}
	if !avdNamePattern.MatchString(name) {
		return fmt.Errorf("device name %q contains unsupported characters (allowed: letters, digits, '.', '_', '-')", name)
	}
	return nil
}
