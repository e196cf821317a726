package dsh

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoHistory is reported when !! is used before any command has been
// recorded.
var ErrNoHistory = errors.New("no commands in history")

// InvalidIndexError is reported when !n names a display number absent from
// the current history cycle. Num is the number the user asked for.
type InvalidIndexError struct {
	Num int
}

func (e InvalidIndexError) Error() string {
	return fmt.Sprintf("there is no command numbered %d in the history", e.Num)
}

// IsRecall reports whether line is a recall expression. Only lines starting
// with a bang are candidates; anything else passes through the dispatcher
// untouched.
func IsRecall(line string) bool {
	return strings.HasPrefix(line, "!")
}

// Recall resolves a recall expression against h and returns the historical
// line it names.
//
// !! resolves to the most recent entry. !n resolves to entry number n; a
// bare ! counts as !1. Resolution is a single step: the resolved line is
// never itself resolved again.
func Recall(h *History, line string) (string, error) {
	if line == "!!" {
		e, ok := h.Last()
		if !ok {
			return "", ErrNoHistory
		}
		return e.Text, nil
	}
	n := 1
	if rest := line[1:]; rest != "" {
		n = leadingInt(rest)
	}
	e, ok := h.Get(n)
	if !ok {
		return "", InvalidIndexError{Num: n}
	}
	return e.Text, nil
}

// leadingInt parses a leading decimal integer the way atoi does: optional
// sign, digits, anything after the digits ignored, 0 when there are none.
func leadingInt(str string) int {
	str = strings.TrimLeft(str, " \t")
	var (
		n    int
		neg  bool
		seen bool
	)
	if len(str) > 0 && (str[0] == '+' || str[0] == '-') {
		neg = str[0] == '-'
		str = str[1:]
	}
	for _, c := range []byte(str) {
		if c < '0' || c > '9' {
			break
		}
		n = n*10 + int(c-'0')
		seen = true
	}
	if !seen {
		return 0
	}
	if neg {
		n = -n
	}
	return n
}
