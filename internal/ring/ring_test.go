package ring

import (
	"testing"
)

func TestPush(t *testing.T) {
	rg := New[string](3)
	for i, str := range []string{"foo", "bar", "baz"} {
		if got := rg.Push(str); got != i {
			t.Errorf("push %s: want slot %d, got %d", str, i, got)
		}
	}
	if rg.Len() != 3 {
		t.Errorf("want len 3, got %d", rg.Len())
	}
	if got := rg.Curr(); got != "baz" {
		t.Errorf("want curr baz, got %s", got)
	}
	if got := rg.At(1); got != "bar" {
		t.Errorf("want bar at 1, got %s", got)
	}
}

func TestPushFull(t *testing.T) {
	rg := New[int](2)
	rg.Push(1)
	rg.Push(2)
	if got := rg.Push(3); got != 0 {
		t.Errorf("push on full ring: want slot 0, got %d", got)
	}
	if rg.Len() != 1 {
		t.Errorf("want len 1 after reset, got %d", rg.Len())
	}
	if got := rg.Curr(); got != 3 {
		t.Errorf("want curr 3, got %d", got)
	}
}

func TestAtOutOfRange(t *testing.T) {
	rg := New[string](2)
	rg.Push("foo")
	if got := rg.At(1); got != "" {
		t.Errorf("want zero value, got %s", got)
	}
	if got := rg.At(-1); got != "" {
		t.Errorf("want zero value, got %s", got)
	}
}
