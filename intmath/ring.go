package intmath

// Ring is a fixed-capacity circular buffer. Push overwrites the oldest
// element and returns it, which is exactly the access pattern the
// finite-difference speed estimator needs.
type Ring[T any] struct {
	buf []T
	idx int
}

// NewRing returns a ring of n elements, all set to the given fill value.
func NewRing[T any](n int, fill T) *Ring[T] {
	r := &Ring[T]{buf: make([]T, n)}
	for i := range r.buf {
		r.buf[i] = fill
	}
	return r
}

// Push stores v in place of the oldest element and returns the element
// it evicted.
func (r *Ring[T]) Push(v T) T {
	old := r.buf[r.idx]
	r.buf[r.idx] = v
	r.idx = (r.idx + 1) % len(r.buf)
	return old
}

// Len returns the ring capacity.
func (r *Ring[T]) Len() int { return len(r.buf) }
