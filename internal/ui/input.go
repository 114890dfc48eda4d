// Package ui provides interactive input components.
package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Prompt displays a prompt and reads a line of user input.
//
// Parameters:
//   - message: The prompt message to display
//
// Returns:
//   - string: The user's input, trimmed
//   - error: Any error that occurred
func Prompt(message string) (string, error) {
	return PromptFrom(os.Stdin, message)
}

// PromptFrom reads a trimmed line from r after displaying the prompt.
// Split out from Prompt so callers and tests can feed scripted input.
//
// Parameters:
//   - r: The reader to consume input from
//   - message: The prompt message to display
//
// Returns:
//   - string: The user's input, trimmed
//   - error: Any error that occurred
func PromptFrom(r io.Reader, message string) (string, error) {
	fmt.Printf("%s ", InfoStyle.Render(message))

	// Reuse the caller's buffered reader so consecutive prompts don't
	// swallow each other's input.
	reader, ok := r.(*bufio.Reader)
	if !ok {
		reader = bufio.NewReader(r)
	}
	input, err := reader.ReadString('\n')
	if err != nil && input == "" {
		return "", err
	}

	return strings.TrimSpace(input), nil
}

// PromptConfirm displays a yes/no confirmation prompt. Anything not
// recognized as an affirmative answer counts as a decline, except empty
// input which takes the default.
//
// Parameters:
//   - r: The reader to consume input from
//   - message: The prompt message to display
//   - defaultYes: Whether the default is yes (true) or no (false)
//
// Returns:
//   - bool: True if the user confirmed
//   - error: Any error that occurred
func PromptConfirm(r io.Reader, message string, defaultYes bool) (bool, error) {
	suffix := "[y/N]"
	if defaultYes {
		suffix = "[Y/n]"
	}

	input, err := PromptFrom(r, fmt.Sprintf("%s %s", message, suffix))
	if err != nil {
		return false, err
	}

	input = strings.ToLower(input)
	if input == "" {
		return defaultYes, nil
	}
	return input == "y" || input == "yes", nil
}
