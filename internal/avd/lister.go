// Package avd discovers locally configured Android Virtual Devices.
//
// Discovery shells out to the Android `emulator` binary, which prints one
// AVD name per line. The lister never caches: every call reflects the
// current state of the SDK.
package avd

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// DefaultEmulator is the discovery/launch binary expected on PATH.
const DefaultEmulator = "emulator"

// DiscoveryError indicates that the AVD inventory could not be fetched,
// either because the discovery command failed or because it reported no
// devices.
type DiscoveryError struct {
	// Err is the underlying command error, nil when discovery succeeded
	// but returned an empty inventory.
	Err error
}

// Error returns a human-readable description of the discovery failure.
func (e *DiscoveryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to list AVDs: %v", e.Err)
	}
	return "no AVDs found: create one with Android Studio's Device Manager or `avdmanager create avd` first"
}

// Unwrap exposes the underlying command error for errors.Is/As.
func (e *DiscoveryError) Unwrap() error { return e.Err }

// Lister fetches the AVD inventory from the emulator binary.
type Lister struct {
	// Emulator is the discovery binary. Empty means DefaultEmulator.
	Emulator string

	// RunOutput executes the discovery command and returns its stdout.
	// Nil means exec.CommandContext().Output(). Injectable for tests.
	RunOutput func(ctx context.Context, name string, args ...string) ([]byte, error)
}

// NewLister creates a Lister for the given emulator binary.
// An empty binary falls back to DefaultEmulator.
func NewLister(emulator string) *Lister {
	return &Lister{Emulator: emulator}
}

// List returns the configured AVD names in the order the emulator
// reports them. Duplicates are passed through untouched.
//
// Returns a *DiscoveryError when the command fails or when it succeeds
// but reports no devices.
func (l *Lister) List(ctx context.Context) ([]string, error) {
	bin := l.Emulator
	if bin == "" {
		bin = DefaultEmulator
	}

	run := l.RunOutput
	if run == nil {
		run = func(ctx context.Context, name string, args ...string) ([]byte, error) {
			return exec.CommandContext(ctx, name, args...).Output()
		}
	}

	out, err := run(ctx, bin, "-list-avds")
	if err != nil {
		return nil, &DiscoveryError{Err: err}
	}

	devices := ParseList(string(out))
	if len(devices) == 0 {
		return nil, &DiscoveryError{}
	}
	return devices, nil
}

// ParseList splits discovery output into AVD names: one per line,
// trimmed, blank lines dropped, order preserved.
func ParseList(out string) []string {
	var devices []string
	for _, line := range strings.Split(out, "\n") {
		name := strings.TrimSpace(line)
		if name == "" {
			continue
		}
		devices = append(devices, name)
	}
	return devices
}
