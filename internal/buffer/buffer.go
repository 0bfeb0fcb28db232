// Package buffer provides a uniform, zero-copy access abstraction over
// pose buffers, independent of how the buffer is owned. Numeric algorithms
// are written once against the Buf and MutBuf capability interfaces; the
// integrator picks the ownership strategy (borrowed slice, owned vector,
// single-thread shared cell, or cross-thread lock) without touching
// algorithm code.
package buffer

// View is a scoped read-only window over a contiguous buffer. Release must
// be called when access ends; for unguarded strategies it is a no-op.
// Callers must not write through Data or retain it past Release.
type View[T any] struct {
	data    []T
	release func()
}

// Data returns the viewed elements without copying.
func (v View[T]) Data() []T { return v.data }

// Release ends the access, unlocking or un-borrowing the underlying
// strategy when it has a guard.
func (v View[T]) Release() {
	if v.release != nil {
		v.release()
	}
}

// MutView is a scoped read-write window over a contiguous buffer. Same
// lifetime rules as View.
type MutView[T any] struct {
	data    []T
	release func()
}

// Data returns the viewed elements without copying; writes land in the
// underlying buffer.
func (v MutView[T]) Data() []T { return v.data }

// Release ends the access.
func (v MutView[T]) Release() {
	if v.release != nil {
		v.release()
	}
}

// Buf is the read capability: anything that can yield a temporary
// read-only view of a buffer of T. Acquire fails only for lock-based
// strategies whose lock was poisoned.
type Buf[T any] interface {
	Acquire() (View[T], error)
}

// MutBuf is the write capability, extending Buf with exclusive read-write
// views. Same failure condition as Acquire.
type MutBuf[T any] interface {
	Buf[T]
	AcquireMut() (MutView[T], error)
}
