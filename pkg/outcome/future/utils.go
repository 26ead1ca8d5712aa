package future

import (
	"context"

	"github.com/ib-77/outcome/pkg/outcome"
)

// ResolveAll waits for every future and collects its outcome into a Result
// at the matching index: Ok for a completed future, Err for a failed or
// canceled one. When ctx ends before all futures settle, the partial
// results are dropped and ctx's error is returned.
func ResolveAll[T any](ctx context.Context, fs []*Future[T]) ([]outcome.Result[T], error) {
	res := make([]outcome.Result[T], 0, len(fs))

	for _, f := range fs {
		v, err := f.Get(ctx)
		if err != nil {
			res = append(res, outcome.Err[T](err))
		} else {
			res = append(res, outcome.Ok(v))
		}

		// ctx is checked after the append so a cancellation racing the
		// final Get still yields that future's settled outcome.
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}

	return res, nil
}
