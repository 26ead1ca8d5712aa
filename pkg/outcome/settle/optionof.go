package settle

import (
	"context"
	"reflect"

	"github.com/ib-77/outcome/pkg/outcome"
)

// OptionOf settles a computation into an Option. Any returned error or
// panic is swallowed into None; a produced value classifies through the
// emptiness rules, first match wins: nil-shaped values, zero-length slices
// and arrays and empty strings are None; a value that already is an
// Option[T] is returned as-is, not re-wrapped; a foreign Option reporting
// IsNone collapses to None; everything else wraps as Some. Zero values are
// not empty: 0 and false come back present.
func OptionOf[T any](fn func() (T, error)) (o outcome.Option[T]) {
	defer func() {
		if recover() != nil {
			o = outcome.None[T]()
		}
	}()

	v, err := fn()
	if err != nil {
		return outcome.None[T]()
	}
	return classifyOption(v)
}

// OptionOfCtx is OptionOf for a computation with a suspension point.
func OptionOfCtx[T any](ctx context.Context,
	fn func(ctx context.Context) (T, error)) (o outcome.Option[T]) {

	defer func() {
		if recover() != nil {
			o = outcome.None[T]()
		}
	}()

	v, err := fn(ctx)
	if err != nil {
		return outcome.None[T]()
	}
	return classifyOption(v)
}

// OptionFrom settles a computation that already produces an Option: the
// produced Option is returned as-is, never re-wrapped; errors and panics
// are swallowed into None.
func OptionFrom[T any](fn func() (outcome.Option[T], error)) (o outcome.Option[T]) {
	defer func() {
		if recover() != nil {
			o = outcome.None[T]()
		}
	}()

	v, err := fn()
	if err != nil {
		return outcome.None[T]()
	}
	return v
}

// classifyOption applies the emptiness rules in their fixed order.
func classifyOption[T any](v T) outcome.Option[T] {
	av := any(v)

	if outcome.IsNil(av) {
		return outcome.None[T]()
	}
	if isEmptySequence(av) {
		return outcome.None[T]()
	}
	if isEmptyString(av) {
		return outcome.None[T]()
	}
	if o, ok := av.(outcome.Option[T]); ok {
		return o
	}
	if foreign, ok := av.(interface{ IsNone() bool }); ok && foreign.IsNone() {
		return outcome.None[T]()
	}
	return outcome.Some(v)
}

func isEmptySequence(v any) bool {
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Slice, reflect.Array:
		return rv.Len() == 0
	default:
		return false
	}
}

func isEmptyString(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.String && rv.Len() == 0
}
