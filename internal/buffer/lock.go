package buffer

import (
	"sync"

	"ozz-skel-runtime/internal/ozzerr"
)

// Lock is a cross-thread shared buffer protected by a reader-writer lock.
// Any number of read views may be live at once; a mutable view is
// exclusive. Acquisition blocks until the lock is available and fails with
// ErrLockPoison once the buffer has been poisoned.
//
// Go locks do not poison themselves, so poisoning is explicit: WithMut
// poisons the buffer when its callback panics, and Poison is available to
// integrators with their own recover points. Poisoning is one-way.
type Lock[T any] struct {
	mu       sync.RWMutex
	poisoned bool
	data     []T
}

// NewLock returns a Lock sharing the given elements.
func NewLock[T any](data []T) *Lock[T] {
	return &Lock[T]{data: data}
}

// Acquire blocks for the reader lock and returns a read view. Fails with
// ErrLockPoison if the buffer was poisoned.
func (l *Lock[T]) Acquire() (View[T], error) {
	l.mu.RLock()
	if l.poisoned {
		l.mu.RUnlock()
		return View[T]{}, ozzerr.ErrLockPoison
	}
	return View[T]{data: l.data, release: l.mu.RUnlock}, nil
}

// AcquireMut blocks for the writer lock and returns a read-write view.
// Fails with ErrLockPoison if the buffer was poisoned.
func (l *Lock[T]) AcquireMut() (MutView[T], error) {
	l.mu.Lock()
	if l.poisoned {
		l.mu.Unlock()
		return MutView[T]{}, ozzerr.ErrLockPoison
	}
	return MutView[T]{data: l.data, release: l.mu.Unlock}, nil
}

// WithMut runs f under the writer lock. If f panics, the buffer is
// poisoned before the panic propagates, so other holders observe
// ErrLockPoison instead of reading state f left half-written.
func (l *Lock[T]) WithMut(f func([]T) error) error {
	l.mu.Lock()
	if l.poisoned {
		l.mu.Unlock()
		return ozzerr.ErrLockPoison
	}
	defer func() {
		if r := recover(); r != nil {
			l.poisoned = true
			l.mu.Unlock()
			panic(r)
		}
		l.mu.Unlock()
	}()
	return f(l.data)
}

// Poison marks the buffer's state as inconsistent. Must not be called
// while holding a view; it takes the writer lock.
func (l *Lock[T]) Poison() {
	l.mu.Lock()
	l.poisoned = true
	l.mu.Unlock()
}

var _ MutBuf[int] = (*Lock[int])(nil)
