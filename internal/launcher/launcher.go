// Package launcher spawns emulator instances in new terminal windows.
//
// Each spawn builds a platform-appropriate command as an argument list
// (never a concatenated shell line) that opens a fresh terminal window
// running `emulator -avd <name>`. A spawn settles when the window-opening
// command has been started; the emulator's boot is never observed and the
// window outlives this process.
package launcher

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"

	"github.com/avdkit/avdkit/internal/avd"
	"github.com/avdkit/avdkit/internal/util"
)

// SpawnError indicates that a single device failed to launch. It never
// aborts sibling launches; the scheduler records it as a failed outcome.
type SpawnError struct {
	// Device is the AVD that failed to launch.
	Device string

	// Err is the underlying failure.
	Err error
}

// Error returns a human-readable description of the spawn failure.
func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to launch %s: %v", e.Device, e.Err)
}

// Unwrap exposes the underlying error for errors.Is/As.
func (e *SpawnError) Unwrap() error { return e.Err }

// Spawner opens a terminal window running the launch command for one
// device. Implementations settle when the spawn itself completes, not
// when the device finishes booting.
type Spawner interface {
	SpawnTerminal(ctx context.Context, device string) error
}

// linuxTerminals are tried in order when no override is configured.
var linuxTerminals = []string{
	"x-terminal-emulator",
	"gnome-terminal",
	"konsole",
	"xfce4-terminal",
	"xterm",
}

// TerminalSpawner is the production Spawner. It shells out to the
// platform's terminal program with structured arguments.
type TerminalSpawner struct {
	// Emulator is the launch binary. Empty means avd.DefaultEmulator.
	Emulator string

	// Terminal overrides the terminal program on Linux. Empty means
	// $TERMINAL, then the first of linuxTerminals found on PATH.
	Terminal string

	// GOOS overrides runtime.GOOS. Used by tests.
	GOOS string

	// LookPath resolves a binary on PATH. Nil means exec.LookPath.
	LookPath func(file string) (string, error)

	// StartCommand starts the constructed command without waiting for
	// it. Nil means (*exec.Cmd).Start. Injectable for tests.
	StartCommand func(cmd *exec.Cmd) error
}

// SpawnTerminal opens a new terminal window running the emulator for the
// given device. It returns a *SpawnError if the device name is unsafe,
// no terminal program could be found, or the spawn itself fails.
func (s *TerminalSpawner) SpawnTerminal(ctx context.Context, device string) error {
	if err := ctx.Err(); err != nil {
		return &SpawnError{Device: device, Err: err}
	}
	if err := util.ValidateDeviceName(device); err != nil {
		return &SpawnError{Device: device, Err: err}
	}

	name, args, err := s.terminalCommand(device)
	if err != nil {
		return &SpawnError{Device: device, Err: err}
	}
	log.Debug("spawning terminal", "device", device, "command", name, "args", args)

	// Deliberately not bound to ctx: once started, the window is
	// OS-detached and must survive this process.
	cmd := exec.Command(name, args...)
	start := s.StartCommand
	if start == nil {
		start = (*exec.Cmd).Start
	}
	if err := start(cmd); err != nil {
		return &SpawnError{Device: device, Err: err}
	}
	return nil
}

// terminalCommand builds the platform-specific argument list that opens
// a terminal window running the launch command for device.
func (s *TerminalSpawner) terminalCommand(device string) (string, []string, error) {
	emulator := s.Emulator
	if emulator == "" {
		emulator = avd.DefaultEmulator
	}

	goos := s.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}

	switch goos {
	case "darwin":
		// Device names are validated before reaching this string; the
		// osascript body never sees unvetted input.
		script := fmt.Sprintf(`tell application "Terminal"
	activate
	do script "%s -avd %s"
end tell`, emulator, device)
		return "osascript", []string{"-e", script}, nil

	case "windows":
		return "cmd", []string{"/c", "start", "avdkit", emulator, "-avd", device}, nil

	default:
		terminal, err := s.resolveLinuxTerminal()
		if err != nil {
			return "", nil, err
		}
		return terminal, append(terminalExecArgs(terminal), emulator, "-avd", device), nil
	}
}

// resolveLinuxTerminal picks the terminal program: configured override,
// then $TERMINAL, then the first known terminal found on PATH.
func (s *TerminalSpawner) resolveLinuxTerminal() (string, error) {
	lookPath := s.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}

	if s.Terminal != "" {
		return s.Terminal, nil
	}
	if t := os.Getenv("TERMINAL"); t != "" {
		return t, nil
	}
	for _, candidate := range linuxTerminals {
		if _, err := lookPath(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("no terminal emulator found (tried %v); set the terminal in the config file or $TERMINAL", linuxTerminals)
}

// terminalExecArgs returns the flag that makes a Linux terminal run the
// remaining arguments as a command.
func terminalExecArgs(terminal string) []string {
	switch filepath.Base(terminal) {
	case "gnome-terminal":
		return []string{"--"}
	case "xfce4-terminal":
		return []string{"-x"}
	default:
		return []string{"-e"}
	}
}
