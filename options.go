package dsh

import (
	"io"
)

type ShellOption func(*Shell) error

func WithStdin(r io.Reader) ShellOption {
	return func(s *Shell) error {
		s.Stdin = r
		return nil
	}
}

func WithStdout(w io.Writer) ShellOption {
	return func(s *Shell) error {
		s.Stdout = w
		return nil
	}
}

func WithStderr(w io.Writer) ShellOption {
	return func(s *Shell) error {
		s.Stderr = w
		return nil
	}
}

func WithPrompt(str string) ShellOption {
	return func(s *Shell) error {
		s.prompt = str
		return nil
	}
}

func WithExecutor(e Executor) ShellOption {
	return func(s *Shell) error {
		s.exec = e
		return nil
	}
}

func WithHistorySize(n int) ShellOption {
	return func(s *Shell) error {
		s.size = n
		return nil
	}
}
