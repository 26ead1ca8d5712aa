package settle

import (
	"context"

	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/future"
)

// Future awaits f and settles its outcome exactly like TryCtx: values
// classify through the value rules, failures through the suspension-tier
// order. A ctx that ends first abandons only the wait; the failure path
// then receives ctx's error.
func Future[T any](ctx context.Context, f *future.Future[T], onError Handler[T]) outcome.Result[T] {
	v, err := f.Get(ctx)
	if err != nil {
		return classifyFailure(err, onError)
	}
	return classifyValue(v)
}
