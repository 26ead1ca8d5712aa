package settle

import (
	"context"
	"fmt"

	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/rpc"
)

// Handler transforms a classified failure into the caller's own Result. A
// nil Handler stands for the default Err wrapping. Handlers never see an
// already-built failed Result recovered from a panic; that one passes
// through untouched.
type Handler[T any] func(err error) outcome.Result[T]

// PanicError carries a recovered panic value that is not itself an error.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Try settles a computation that yields its outcome immediately, without a
// suspension point. The value path: an already-built Result[T] passes
// through unchanged, anything else wraps as Ok. The failure path, in the
// plain-tier order: a panic carrying a failed Result[T] passes through
// unchanged; any other returned error or panic goes to onError when
// supplied, else into Err. happy runs exactly once.
func Try[T any](happy func() (T, error), onError Handler[T]) (res outcome.Result[T]) {
	defer func() {
		if pv := recover(); pv != nil {
			res = recoverPlain(pv, onError)
		}
	}()

	v, err := happy()
	if err != nil {
		return fail(err, onError)
	}
	return classifyValue(v)
}

// TryCtx settles a computation with a suspension point: happy blocks on
// ctx the way transport or queue calls do. Values classify like Try.
// Failures classify in the suspension-tier order: a failure recognized as
// a JSON-RPC error payload is handed to onError (else Err) in its
// extracted *rpc.ErrorObject form first; a panic carrying a failed
// Result[T] passes through unchanged; anything else goes to onError/Err.
func TryCtx[T any](ctx context.Context,
	happy func(ctx context.Context) (T, error), onError Handler[T]) (res outcome.Result[T]) {

	defer func() {
		if pv := recover(); pv != nil {
			res = recoverSettled(pv, onError)
		}
	}()

	v, err := happy(ctx)
	if err != nil {
		return classifyFailure(err, onError)
	}
	return classifyValue(v)
}

// classifyValue wraps a settled value. A value that already is a Result[T]
// passes through unchanged, which is reachable only when T is an interface
// type; a concrete T cannot hold a Result.
func classifyValue[T any](v T) outcome.Result[T] {
	if r, ok := any(v).(outcome.Result[T]); ok {
		return r
	}
	return outcome.Ok(v)
}

// classifyFailure applies the suspension-tier failure order: a recognized
// reply error payload is handed over extracted, anything else as-is.
func classifyFailure[T any](err error, onError Handler[T]) outcome.Result[T] {
	if obj, ok := rpc.AsErrorObject(err); ok {
		return fail(obj, onError)
	}
	return fail(err, onError)
}

// recoverPlain classifies a panic in the plain-tier order: a failed
// Result[T] passes through, everything else fails.
func recoverPlain[T any](pv any, onError Handler[T]) outcome.Result[T] {
	if r, ok := pv.(outcome.Result[T]); ok && r.IsError() {
		return r
	}
	return fail(panicError(pv), onError)
}

// recoverSettled classifies a panic in the suspension-tier order: reply
// error payloads first, then the failed Result[T] pass-through, then the
// default.
func recoverSettled[T any](pv any, onError Handler[T]) outcome.Result[T] {
	if obj, ok := rpc.AsErrorObject(pv); ok {
		return fail(obj, onError)
	}
	if r, ok := pv.(outcome.Result[T]); ok && r.IsError() {
		return r
	}
	return fail(panicError(pv), onError)
}

// fail applies the caller's failure transform, defaulting to Err.
func fail[T any](err error, onError Handler[T]) outcome.Result[T] {
	if onError != nil {
		return onError(err)
	}
	return outcome.Err[T](err)
}

// panicError adapts a recovered value into an error, wrapping non-error
// values in PanicError.
func panicError(pv any) error {
	if err, ok := pv.(error); ok {
		return err
	}
	return &PanicError{Value: pv}
}
