package outcome

// Match dispatches on the Result tag: onOk receives the payload of a
// success, onErr the error of a failure. Exactly one handler runs.
func (r Result[T]) Match(onOk func(v T), onErr func(err error)) {
	if r.isOk {
		onOk(r.value)
		return
	}
	onErr(r.err)
}

// Match dispatches on the Option tag. Exactly one handler runs.
func (o Option[T]) Match(onSome func(v T), onNone func()) {
	if o.some {
		onSome(o.value)
		return
	}
	onNone()
}

// MatchResult reduces a Result to a value of another type via per-tag
// handlers.
func MatchResult[T, Out any](r Result[T],
	onOk func(v T) Out,
	onErr func(err error) Out) Out {

	if r.isOk {
		return onOk(r.value)
	}
	return onErr(r.err)
}

// MatchOption reduces an Option to a value of another type via per-tag
// handlers.
func MatchOption[T, Out any](o Option[T],
	onSome func(v T) Out,
	onNone func() Out) Out {

	if o.some {
		return onSome(o.value)
	}
	return onNone()
}
