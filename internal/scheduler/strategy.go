package scheduler

import "fmt"

// Strategy is the timing/ordering policy for issuing multiple launches
// in one run.
type Strategy int

const (
	// Parallel issues all spawns concurrently and waits for all of them
	// to settle.
	Parallel Strategy = iota

	// Delayed issues spawns one at a time in selection order with a
	// fixed pause between settles.
	Delayed

	// Sequential blocks on an explicit user acknowledgment before each
	// spawn.
	Sequential
)

// String returns the canonical lowercase name of the strategy.
func (s Strategy) String() string {
	switch s {
	case Parallel:
		return "parallel"
	case Delayed:
		return "delayed"
	case Sequential:
		return "sequential"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// ParseStrategy converts a config or flag value into a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "parallel":
		return Parallel, nil
	case "delayed":
		return Delayed, nil
	case "sequential":
		return Sequential, nil
	default:
		return Parallel, fmt.Errorf("unknown strategy %q (expected parallel, delayed, or sequential)", name)
	}
}
