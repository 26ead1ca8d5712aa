package outcome

// Option holds a value that may be absent. The zero value is None, so an
// empty Option costs nothing and needs no shared sentinel.
type Option[T any] struct {
	value T
	some  bool
}

// Some wraps v as a present Option. Zero values count as present: Some(0)
// and Some(false) are not None.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, some: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

func (o Option[T]) IsSome() bool {
	return o.some
}

func (o Option[T]) IsNone() bool {
	return !o.some
}

// Value returns the payload and whether it is present.
func (o Option[T]) Value() (T, bool) {
	return o.value, o.some
}

// Or returns the payload of a present Option, or fallback for None.
func (o Option[T]) Or(fallback T) T {
	if o.some {
		return o.value
	}
	return fallback
}

// Map applies f to the payload of a present Option. None is returned
// unchanged and f is not called.
func (o Option[T]) Map(f func(v T) T) Option[T] {
	if !o.some {
		return o
	}
	return Some(f(o.value))
}

// MapOption transforms the payload of a present Option into a new type.
// None short-circuits without calling f.
func MapOption[In, Out any](o Option[In], f func(v In) Out) Option[Out] {
	if !o.some {
		return None[Out]()
	}
	return Some(f(o.value))
}
