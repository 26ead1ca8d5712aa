package outcome

import (
	"time"

	"github.com/google/uuid"
)

type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	isOk      bool
}

func Ok[T any](v T) Result[T] {
	return Result[T]{
		value:     v,
		err:       nil,
		isOk:      true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Err[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		isOk:      false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// ErrFrom rebuilds a failed Result under a new payload type, keeping the
// error, identity and creation time of the original.
func ErrFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		err:       from.err,
		isOk:      false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (r Result[T]) Value() T {
	return r.value
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) IsOk() bool {
	return r.isOk
}

func (r Result[T]) IsError() bool {
	return !r.isOk
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) IsEmpty() bool {
	return !r.isOk && r.err == nil
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

// Map applies f to the payload of a successful Result and wraps the output
// in a new Ok. A failed Result is returned unchanged and f is not called.
func (r Result[T]) Map(f func(v T) T) Result[T] {
	if !r.isOk {
		return r
	}
	return Ok(f(r.value))
}

// Map transforms the payload of a successful Result into a new type. A
// failed input short-circuits: f is not called and the error, identity and
// creation time carry over.
func Map[In, Out any](r Result[In], f func(v In) Out) Result[Out] {
	if r.isOk {
		return Ok(f(r.value))
	}
	return ErrFrom[In, Out](r)
}
