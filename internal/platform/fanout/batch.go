package fanout

import (
	"context"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
)

// RunBatch resolves every key through fetch on an ants pool of maxWorkers.
// Each key writes only its own slot, and one failing key never aborts the
// others. The returned error is reserved for pool setup failures.
func RunBatch[K comparable, V any](ctx context.Context, keys []K, maxWorkers int, fetch func(ctx context.Context, key K) Outcome[V]) (map[K]Outcome[V], error) {
	out := make(map[K]Outcome[V], len(keys))
	if len(keys) == 0 {
		return out, nil
	}
	if maxWorkers <= 0 {
		maxWorkers = DefaultMaxWorkers
	}

	p, err := ants.NewPool(min(maxWorkers, len(keys)))
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer p.Release()

	var (
		mu      sync.Mutex
		workers sync.WaitGroup
	)
	for _, key := range keys {
		key := key
		workers.Add(1)
		if err := p.Submit(func() {
			defer workers.Done()

			var result Outcome[V]
			if ctxErr := ctx.Err(); ctxErr != nil {
				result = Failed[V](ctxErr)
			} else {
				result = fetch(ctx, key)
			}

			mu.Lock()
			out[key] = result
			mu.Unlock()
		}); err != nil {
			workers.Done()
			mu.Lock()
			out[key] = Failed[V](fmt.Errorf("submit task to worker pool: %w", err))
			mu.Unlock()
		}
	}
	workers.Wait()

	return out, nil
}
