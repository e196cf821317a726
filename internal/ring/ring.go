package ring

// Ring is a fixed capacity buffer of values. Once the buffer is full, the
// next Push empties it and starts filling again from the first slot.
type Ring[T any] struct {
	list []T
	size int
}

func New[T any](size int) Ring[T] {
	var rg Ring[T]
	rg.size = size
	return rg
}

func (r *Ring[T]) Len() int {
	return len(r.list)
}

func (r *Ring[T]) Cap() int {
	return r.size
}

// Push appends item and returns its slot. When the ring has reached its
// capacity, previous items are discarded and item lands on slot 0 again.
func (r *Ring[T]) Push(item T) int {
	if r.size > 0 && len(r.list) >= r.size {
		r.list = r.list[:0]
	}
	r.list = append(r.list, item)
	return len(r.list) - 1
}

func (r *Ring[T]) At(n int) T {
	var ret T
	if n < 0 || n >= r.Len() {
		return ret
	}
	return r.list[n]
}

func (r *Ring[T]) Curr() T {
	var ret T
	if r.Len() > 0 {
		ret = r.list[r.Len()-1]
	}
	return ret
}
