package buffer

// Vec is an owned growable buffer. Views are windows over its current
// backing array; acquisition never fails. Resizing while a view is live is
// a caller error, same as appending to a Go slice someone else is reading.
type Vec[T any] struct {
	data []T
}

// NewVec returns a Vec owning the given elements.
func NewVec[T any](data []T) *Vec[T] {
	return &Vec[T]{data: data}
}

// MakeVec returns a Vec of n zero-valued elements.
func MakeVec[T any](n int) *Vec[T] {
	return &Vec[T]{data: make([]T, n)}
}

// Len returns the current element count.
func (v *Vec[T]) Len() int { return len(v.data) }

// Append grows the buffer.
func (v *Vec[T]) Append(items ...T) {
	v.data = append(v.data, items...)
}

// Resize sets the element count, preserving a prefix and zero-filling any
// growth.
func (v *Vec[T]) Resize(n int) {
	if n <= len(v.data) {
		v.data = v.data[:n]
		return
	}
	grown := make([]T, n)
	copy(grown, v.data)
	v.data = grown
}

// Acquire returns a read view over the current contents.
func (v *Vec[T]) Acquire() (View[T], error) {
	return View[T]{data: v.data}, nil
}

// AcquireMut returns a read-write view over the current contents.
func (v *Vec[T]) AcquireMut() (MutView[T], error) {
	return MutView[T]{data: v.data}, nil
}

var _ MutBuf[int] = (*Vec[int])(nil)
