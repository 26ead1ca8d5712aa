package settle

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/ib-77/outcome/pkg/outcome"
)

// All settles every computation concurrently, at most limit at a time
// (limit <= 0 runs all at once). Result i belongs to computation i. Each
// computation classifies through TryCtx with the default wrapping, so a
// failure is absorbed into its own Err and never cancels the others; ctx
// is handed to every computation as given.
func All[T any](ctx context.Context, limit int,
	happies ...func(ctx context.Context) (T, error)) []outcome.Result[T] {

	results := make([]outcome.Result[T], len(happies))

	var eg errgroup.Group
	if limit > 0 {
		eg.SetLimit(limit)
	}

	for i, happy := range happies {
		i, happy := i, happy
		eg.Go(func() error {
			results[i] = TryCtx(ctx, happy, nil)
			return nil
		})
	}

	// the closures never return an error; Wait only joins them
	_ = eg.Wait()

	return results
}
