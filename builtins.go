package dsh

import (
	"errors"
	"fmt"
)

// ErrExit is returned by the exit builtin to end the session.
var ErrExit = errors.New("exit")

func runExit(_ *Shell) error {
	return ErrExit
}

// runHistory prints the most recent commands, newest first, with their
// display numbers. The history line itself is recorded only after the
// listing, so it never shows up in its own output.
func runHistory(s *Shell) error {
	if s.history.Len() == 0 {
		fmt.Fprintln(s.Stdout, "No commands in history!")
		return nil
	}
	fmt.Fprintln(s.Stdout, "Command history:")
	for _, e := range s.history.Recent(maxRecent) {
		fmt.Fprintf(s.Stdout, "%d %s\n", e.Num, e.Text)
	}
	return nil
}
