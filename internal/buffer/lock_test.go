package buffer

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ozz-skel-runtime/internal/ozzerr"
)

func TestLockConcurrentReadersDoNotBlockEachOther(t *testing.T) {
	l := NewLock([]float32{1, 2, 3})

	first, err := l.Acquire()
	require.NoError(t, err)

	// A second reader must get through while the first is still held.
	done := make(chan struct{})
	go func() {
		second, err := l.Acquire()
		assert.NoError(t, err)
		second.Release()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("second reader blocked behind first reader")
	}
	first.Release()
}

func TestLockWriterWaitsForReaders(t *testing.T) {
	l := NewLock([]float32{1, 2, 3})

	reader, err := l.Acquire()
	require.NoError(t, err)

	acquired := make(chan struct{})
	go func() {
		view, err := l.AcquireMut()
		assert.NoError(t, err)
		view.Data()[0] = 9
		view.Release()
		close(acquired)
	}()

	select {
	case <-acquired:
		t.Fatal("writer acquired while a reader was live")
	case <-time.After(50 * time.Millisecond):
	}

	reader.Release()
	select {
	case <-acquired:
	case <-time.After(2 * time.Second):
		t.Fatal("writer never acquired after reader released")
	}

	view, err := l.Acquire()
	require.NoError(t, err)
	assert.Equal(t, float32(9), view.Data()[0])
	view.Release()
}

func TestLockManyReadersOneWriter(t *testing.T) {
	l := NewLock(make([]int64, 64))

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				err := l.WithMut(func(data []int64) error {
					for j := range data {
						data[j]++
					}
					return nil
				})
				assert.NoError(t, err)
			}
		}()
	}
	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				view, err := l.Acquire()
				assert.NoError(t, err)
				data := view.Data()
				// A write is never observable halfway across the buffer.
				first := data[0]
				for _, v := range data {
					assert.Equal(t, first, v)
				}
				view.Release()
			}
		}()
	}
	wg.Wait()

	view, err := l.Acquire()
	require.NoError(t, err)
	assert.Equal(t, int64(400), view.Data()[0])
	view.Release()
}

func TestLockPoisonOnPanic(t *testing.T) {
	l := NewLock([]float32{1, 2, 3})

	require.Panics(t, func() {
		_ = l.WithMut(func(data []float32) error {
			data[0] = 0.5 // half-written state the poison flag protects
			panic("writer failed")
		})
	})

	_, err := l.Acquire()
	require.True(t, ozzerr.IsLockPoison(err), "%v", err)
	_, err = l.AcquireMut()
	require.True(t, ozzerr.IsLockPoison(err), "%v", err)
	err = l.WithMut(func([]float32) error { return nil })
	require.True(t, ozzerr.IsLockPoison(err), "%v", err)
}

func TestLockExplicitPoison(t *testing.T) {
	l := NewLock([]float32{1})
	l.Poison()
	_, err := l.Acquire()
	require.ErrorIs(t, err, ozzerr.ErrLockPoison)
}
