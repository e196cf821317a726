package dsh

import (
	"fmt"
	"testing"
)

func TestHistoryAppend(t *testing.T) {
	h := NewHistory(0)
	for i := 1; i <= 12; i++ {
		line := fmt.Sprintf("echo %d", i)
		if got := h.Append(line); got != i {
			t.Errorf("append %s: want number %d, got %d", line, i, got)
		}
	}
	last, ok := h.Last()
	if !ok || last.Num != 12 || last.Text != "echo 12" {
		t.Errorf("unexpected last entry: %+v", last)
	}
	e, ok := h.Get(3)
	if !ok || e.Text != "echo 3" {
		t.Errorf("unexpected entry 3: %+v", e)
	}
	if _, ok := h.Get(13); ok {
		t.Errorf("entry 13 should not exist")
	}
	if _, ok := h.Get(0); ok {
		t.Errorf("entry 0 should not exist")
	}
}

func TestHistoryRecent(t *testing.T) {
	h := NewHistory(0)
	for i := 1; i <= 12; i++ {
		h.Append(fmt.Sprintf("echo %d", i))
	}
	list := h.Recent(10)
	if len(list) != 10 {
		t.Fatalf("want 10 entries, got %d", len(list))
	}
	for i, e := range list {
		want := 12 - i
		if e.Num != want {
			t.Errorf("entry %d: want number %d, got %d", i, want, e.Num)
		}
		if text := fmt.Sprintf("echo %d", want); e.Text != text {
			t.Errorf("entry %d: want %q, got %q", i, text, e.Text)
		}
	}
}

func TestHistoryRecentShort(t *testing.T) {
	h := NewHistory(0)
	h.Append("echo one")
	h.Append("echo two")
	list := h.Recent(10)
	if len(list) != 2 {
		t.Fatalf("want 2 entries, got %d", len(list))
	}
	if list[0].Num != 2 || list[1].Num != 1 {
		t.Errorf("entries out of order: %+v", list)
	}
}

func TestHistoryReset(t *testing.T) {
	h := NewHistory(4)
	for i := 1; i <= 4; i++ {
		h.Append(fmt.Sprintf("echo %d", i))
	}
	if got := h.Append("echo 5"); got != 1 {
		t.Fatalf("append on full history: want number 1, got %d", got)
	}
	if h.Len() != 1 {
		t.Errorf("want len 1 after reset, got %d", h.Len())
	}
	if _, ok := h.Get(4); ok {
		t.Errorf("entry 4 should be gone after reset")
	}
	last, ok := h.Last()
	if !ok || last.Num != 1 || last.Text != "echo 5" {
		t.Errorf("unexpected last entry after reset: %+v", last)
	}
}

func TestHistoryEmpty(t *testing.T) {
	h := NewHistory(0)
	if _, ok := h.Last(); ok {
		t.Errorf("last on empty history should not be found")
	}
	if list := h.Recent(10); len(list) != 0 {
		t.Errorf("recent on empty history should be empty, got %+v", list)
	}
}
