package future

import (
	"context"
	"errors"
	"sync/atomic"
)

// ErrCanceled is the error a Future settles with when completed by Cancel.
var ErrCanceled = errors.New("future: canceled")

// Func is the computation shape FromFunc runs.
type Func[T any] func() (T, error)

// Future holds the eventual outcome of an asynchronous computation. Create
// one with New or FromFunc; it settles exactly once through Complete, Fail
// or Cancel, and every later settlement is silently ignored.
type Future[T any] struct {
	done      atomic.Bool
	completed chan struct{}

	value T
	err   error
}

// New returns an unsettled Future. The caller settles it by calling
// Complete, Fail or Cancel.
func New[T any]() *Future[T] {
	return &Future[T]{
		completed: make(chan struct{}),
	}
}

// FromFunc runs do in a new goroutine and settles the returned Future with
// its outcome.
func FromFunc[T any](do Func[T]) *Future[T] {
	f := New[T]()

	go func() {
		v, err := do()
		if err != nil {
			f.Fail(err)
			return
		}
		f.Complete(v)
	}()

	return f
}

// Complete settles f with value.
func (f *Future[T]) Complete(value T) {
	f.settle(value, nil)
}

// Fail settles f with err.
func (f *Future[T]) Fail(err error) {
	var zero T
	f.settle(zero, err)
}

// Cancel settles f with ErrCanceled.
func (f *Future[T]) Cancel() {
	f.Fail(ErrCanceled)
}

func (f *Future[T]) settle(value T, err error) {
	if !f.done.CompareAndSwap(false, true) {
		return
	}
	f.value = value
	f.err = err
	close(f.completed)
}

// Get returns the settled outcome, blocking until f settles or ctx is
// done. All callers observe the same outcome. A done ctx only abandons the
// wait; the computation keeps running and f can still settle later.
func (f *Future[T]) Get(ctx context.Context) (T, error) {
	select {
	case <-f.completed:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
