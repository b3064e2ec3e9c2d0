package monitor

// ring is a fixed-capacity circular buffer. It is not safe for concurrent
// use; Monitor guards it with its own mutex.
type ring[T any] struct {
	items []T
	next  int
	count int
}

func newRing[T any](capacity int) *ring[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &ring[T]{items: make([]T, capacity)}
}

// push appends item, overwriting the oldest entry once full.
func (r *ring[T]) push(item T) {
	r.items[r.next] = item
	r.next = (r.next + 1) % len(r.items)
	if r.count < len(r.items) {
		r.count++
	}
}

// all returns the buffered items oldest first.
func (r *ring[T]) all() []T {
	out := make([]T, r.count)
	start := 0
	if r.count == len(r.items) {
		start = r.next
	}
	for i := range out {
		out[i] = r.items[(start+i)%len(r.items)]
	}
	return out
}

func (r *ring[T]) reset() {
	clear(r.items)
	r.next = 0
	r.count = 0
}
