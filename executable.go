package dsh

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"

	"github.com/midbel/rw"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrExec reports a command that could not be executed: not found in
	// the search path, not a regular file, no execute permission. The
	// shell recovers from it.
	ErrExec = errors.New("exec")
	// ErrSpawn reports that the operating system refused to create the
	// child process. The shell treats it as fatal.
	ErrSpawn = errors.New("spawn")
)

// Executor runs an external command. When wait is true it returns only once
// that command has terminated; otherwise it returns as soon as the command
// has started. A nonzero exit status is not an error.
type Executor interface {
	Run(ctx context.Context, argv []string, wait bool) error
}

type system struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	pending errgroup.Group
}

// System returns an Executor backed by the host process API. Commands read
// and write the given streams. Commands started without waiting are reaped
// in the background so that their status is always collected.
func System(in io.Reader, out, err io.Writer) Executor {
	return &system{
		stdin:  in,
		stdout: out,
		stderr: err,
	}
}

func (s *system) Run(ctx context.Context, argv []string, wait bool) error {
	if len(argv) == 0 {
		return nil
	}
	var cmd *exec.Cmd
	if wait {
		cmd = exec.CommandContext(ctx, argv[0], argv[1:]...)
	} else {
		cmd = exec.Command(argv[0], argv[1:]...)
	}
	cmd.Stdin = unwrapReader(s.stdin)
	cmd.Stdout = unwrapWriter(s.stdout)
	cmd.Stderr = unwrapWriter(s.stderr)

	if err := cmd.Start(); err != nil {
		return startError(err)
	}
	if !wait {
		s.pending.Go(func() error {
			cmd.Wait()
			return nil
		})
		return nil
	}
	err := cmd.Wait()
	var exit *exec.ExitError
	if errors.As(err, &exit) {
		err = nil
	}
	return err
}

// Drain blocks until every command started without waiting has terminated.
func (s *system) Drain() error {
	return s.pending.Wait()
}

// startError splits start failures into the recoverable kind, where the
// command itself is at fault, and the fatal kind, where the system could
// not create the process at all.
func startError(err error) error {
	var xe *exec.Error
	if errors.As(err, &xe) {
		return fmt.Errorf("%w: %s", ErrExec, err)
	}
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
		return fmt.Errorf("%w: %s", ErrExec, err)
	}
	return fmt.Errorf("%w: %s", ErrSpawn, err)
}

func unwrapReader(r io.Reader) io.Reader {
	if u, ok := r.(rw.UnwrapReader); ok {
		if f, ok := u.Unwrap().(*os.File); ok {
			return f
		}
	}
	return r
}

func unwrapWriter(w io.Writer) io.Writer {
	if u, ok := w.(rw.UnwrapWriter); ok {
		if f, ok := u.Unwrap().(*os.File); ok {
			return f
		}
	}
	return w
}
