package dsh

import (
	"strings"

	"github.com/midbel/shlex"
)

const backgroundMarker = "&"

// Split breaks line into an argument vector and reports whether the shell
// should wait for the command to finish. A trailing & is consumed by the
// shell and never reaches the command.
//
// Splitting never fails: when the lexer rejects the line, plain whitespace
// fields are used instead.
func Split(line string) ([]string, bool) {
	args, err := shlex.Split(strings.NewReader(line))
	if err != nil {
		args = strings.Fields(line)
	}
	wait := true
	if n := len(args) - 1; n >= 0 && args[n] == backgroundMarker {
		args = args[:n]
		wait = false
	}
	return args, wait
}
