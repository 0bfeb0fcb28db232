package buffer

// Cell is a single-thread shared mutable buffer with dynamic borrow
// checking: any number of concurrent read views, or exactly one mutable
// view, never both. A conflicting acquisition is a programming error and
// panics; it is deliberately not part of the recoverable error taxonomy.
// Cell is not safe for use from multiple goroutines; use Lock for that.
type Cell[T any] struct {
	data []T
	// borrows counts live read views; -1 marks a live mutable view.
	borrows int
}

// NewCell returns a Cell sharing the given elements.
func NewCell[T any](data []T) *Cell[T] {
	return &Cell[T]{data: data}
}

// Acquire returns a read view. Panics if a mutable view is live.
func (c *Cell[T]) Acquire() (View[T], error) {
	if c.borrows < 0 {
		panic("buffer: cell already mutably borrowed")
	}
	c.borrows++
	return View[T]{data: c.data, release: func() { c.borrows-- }}, nil
}

// AcquireMut returns a read-write view. Panics if any view is live.
func (c *Cell[T]) AcquireMut() (MutView[T], error) {
	if c.borrows != 0 {
		panic("buffer: cell already borrowed")
	}
	c.borrows = -1
	return MutView[T]{data: c.data, release: func() { c.borrows = 0 }}, nil
}

var _ MutBuf[int] = (*Cell[int])(nil)
