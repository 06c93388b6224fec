package histutil

// ring is a fixed-capacity circular buffer. Pushing onto a full ring evicts
// the oldest element.
type ring[T any] struct {
	buf   []T
	start int // index of the oldest element
	n     int
}

func newRing[T any](capacity int) *ring[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &ring[T]{buf: make([]T, capacity)}
}

// push adds v as the newest element. If an element had to be evicted, it is
// returned along with true.
func (r *ring[T]) push(v T) (evicted T, ok bool) {
	if r.n < len(r.buf) {
		r.buf[(r.start+r.n)%len(r.buf)] = v
		r.n++
		return evicted, false
	}
	evicted = r.buf[r.start]
	r.buf[r.start] = v
	r.start = (r.start + 1) % len(r.buf)
	return evicted, true
}

// at returns the i-th newest element; at(0) is the newest.
func (r *ring[T]) at(i int) T {
	if i < 0 || i >= r.n {
		panic("histutil: ring index out of range")
	}
	return r.buf[(r.start+r.n-1-i)%len(r.buf)]
}

func (r *ring[T]) len() int { return r.n }
