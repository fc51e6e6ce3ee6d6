// Package workerpool provides simple concurrent processing utilities.
package workerpool

import (
	"context"
	"sync"
)

// Result pairs an item's output with its error.
type Result[R any] struct {
	Value R
	Err   error
}

// Collect runs fn over items on workerCount goroutines and returns one result
// per item, in input order. A failing item does not stop the others. Items not
// started before ctx is canceled report ctx.Err().
func Collect[T, R any](
	ctx context.Context,
	workerCount int,
	items []T,
	fn func(context.Context, T) (R, error),
) []Result[R] {
	if workerCount < 1 {
		workerCount = 1
	}

	results := make([]Result[R], len(items))
	tasks := make(chan int, workerCount)
	wg := sync.WaitGroup{}
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range tasks {
				if err := ctx.Err(); err != nil {
					results[idx].Err = err
					continue
				}
				value, err := fn(ctx, items[idx])
				results[idx] = Result[R]{Value: value, Err: err}
			}
		}()
	}

	for idx := range items {
		tasks <- idx
	}
	close(tasks)
	wg.Wait()

	return results
}
