package dsh

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
)

// Prompt is written before each line is read.
const Prompt = "dsh>"

// Shell reads command lines, answers the builtin ones itself and hands the
// rest to its Executor. It owns the history; nothing else touches it.
type Shell struct {
	history *History
	exec    Executor
	prompt  string
	size    int

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func New(options ...ShellOption) (*Shell, error) {
	s := Shell{
		prompt: Prompt,
		size:   maxHistory,
		Stdin:  os.Stdin,
		Stdout: NopCloser(os.Stdout),
		Stderr: NopCloser(os.Stderr),
	}
	for _, opt := range options {
		if err := opt(&s); err != nil {
			return nil, err
		}
	}
	s.history = NewHistory(s.size)
	if s.exec == nil {
		s.exec = System(s.Stdin, s.Stdout, s.Stderr)
	}
	return &s, nil
}

// Run reads lines from Stdin until end of input or the exit builtin,
// dispatching each one. End of input ends the session the same way exit
// does.
func (s *Shell) Run(ctx context.Context) error {
	scan := bufio.NewScanner(s.Stdin)
	for {
		fmt.Fprint(s.Stdout, s.prompt)
		if !scan.Scan() {
			return scan.Err()
		}
		err := s.Execute(ctx, scan.Text())
		if errors.Is(err, ErrExit) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// Execute dispatches a single command line.
//
// A raw exit line ends the session before anything else is considered, so a
// line recalled from history is never treated as exit. Recall expressions
// are resolved exactly once, then the resolved line goes through the same
// path a typed line would: the history builtin, recording into the history,
// execution.
func (s *Shell) Execute(ctx context.Context, line string) error {
	if line == "" {
		return nil
	}
	if line == "exit" {
		return runExit(s)
	}
	spawn := true
	if IsRecall(line) {
		resolved, err := Recall(s.history, line)
		switch {
		case err == nil:
			line = resolved
			fmt.Fprintf(s.Stdout, "%s\n", line)
		case errors.Is(err, ErrNoHistory):
			fmt.Fprintln(s.Stdout, "No commands in history!")
			return nil
		default:
			var bad InvalidIndexError
			if errors.As(err, &bad) {
				fmt.Fprintf(s.Stdout, "There is no command numbered %d in the history.\n", bad.Num)
			}
			// the line is still recorded below, verbatim
			spawn = false
		}
	}
	var (
		args []string
		wait bool
	)
	if spawn && line == "history" {
		runHistory(s)
		spawn = false
	} else if spawn {
		args, wait = Split(line)
	}
	s.history.Append(line)
	if !spawn || len(args) == 0 {
		return nil
	}
	err := s.exec.Run(ctx, args, wait)
	switch {
	case errors.Is(err, ErrExec):
		fmt.Fprintln(s.Stdout, "Error executing command!")
	case errors.Is(err, ErrSpawn):
		fmt.Fprintf(s.Stdout, "Fork failed!\n\n")
		return err
	}
	return nil
}

// History gives read access to the recorded command lines.
func (s *Shell) History() *History {
	return s.history
}
