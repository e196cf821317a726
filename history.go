package dsh

import (
	"github.com/midbel/dsh/internal/ring"
)

const (
	maxHistory = 100
	maxRecent  = 10
)

// Entry is a command line recorded in the history together with its 1-based
// display number. The number is assigned when the line is recorded and stays
// valid until the history wraps.
type Entry struct {
	Num  int
	Text string
}

// History keeps the raw command lines submitted to the shell. It holds at
// most its capacity worth of entries; recording one more line empties the
// history and numbering restarts from 1. That matches the observable
// behaviour of the reset-on-full counter, not a sliding window.
type History struct {
	list ring.Ring[string]
}

func NewHistory(size int) *History {
	if size <= 0 {
		size = maxHistory
	}
	return &History{
		list: ring.New[string](size),
	}
}

// Append records line and returns its display number.
func (h *History) Append(line string) int {
	return h.list.Push(line) + 1
}

func (h *History) Len() int {
	return h.list.Len()
}

// Last returns the most recently recorded entry.
func (h *History) Last() (Entry, bool) {
	return h.Get(h.list.Len())
}

// Get returns the entry with display number n. Numbers outside the current
// cycle are not found, even if an older cycle once used them.
func (h *History) Get(n int) (Entry, bool) {
	if n < 1 || n > h.list.Len() {
		return Entry{}, false
	}
	e := Entry{
		Num:  n,
		Text: h.list.At(n - 1),
	}
	return e, true
}

// Recent returns at most k entries, most recent first.
func (h *History) Recent(k int) []Entry {
	var list []Entry
	for n := h.list.Len(); n >= 1 && len(list) < k; n-- {
		e, _ := h.Get(n)
		list = append(list, e)
	}
	return list
}
