package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"golang.org/x/term"

	"github.com/midbel/dsh"
)

func main() {
	size := flag.Int("n", 0, "history capacity (0 for the default)")
	flag.Parse()

	sh, err := dsh.New(dsh.WithHistorySize(*size))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if term.IsTerminal(int(os.Stdin.Fd())) {
		err = interact(sh)
	} else {
		err = sh.Run(context.Background())
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// interact runs the dispatch loop behind a line editor instead of the plain
// reader loop. The editor owns the prompt; the shell only sees full lines.
func interact(sh *dsh.Shell) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:       dsh.Prompt,
		HistoryLimit: -1,
	})
	if err != nil {
		return err
	}
	defer rl.Close()
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if len(line) == 0 {
				return nil
			}
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		err = sh.Execute(context.Background(), line)
		if errors.Is(err, dsh.ErrExit) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
