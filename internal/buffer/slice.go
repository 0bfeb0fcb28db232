package buffer

// Slice adapts a borrowed slice to the buffer capabilities. Views are the
// slice itself; acquisition never fails and Release is a no-op. The caller
// remains responsible for the slice's lifetime and for not sharing it
// across goroutines while a MutView is live.
type Slice[T any] []T

// Acquire returns a read view over the slice.
func (s Slice[T]) Acquire() (View[T], error) {
	return View[T]{data: s}, nil
}

// AcquireMut returns a read-write view over the slice.
func (s Slice[T]) AcquireMut() (MutView[T], error) {
	return MutView[T]{data: s}, nil
}

var (
	_ Buf[int]    = Slice[int](nil)
	_ MutBuf[int] = Slice[int](nil)
)
