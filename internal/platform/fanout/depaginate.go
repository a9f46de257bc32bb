package fanout

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sourcegraph/conc/pool"
)

const DefaultMaxWorkers = 10

// Page is one response of a paginated collection endpoint.
type Page[T any] struct {
	Items          []T `json:"items"`
	PageCurrent    int `json:"pageCurrent"`
	PageTotal      int `json:"pageTotal"`
	ItemCountPage  int `json:"itemCountPage"`
	ItemCountTotal int `json:"itemCountTotal"`
}

// PartialError lists the pages that could not be fetched during a merge.
// The merged page returned alongside it is an undercount.
type PartialError struct {
	FailedPages []int
	Errs        map[int]error
}

func (e *PartialError) Error() string {
	parts := make([]string, 0, len(e.FailedPages))
	for _, page := range e.FailedPages {
		parts = append(parts, fmt.Sprintf("page %d: %v", page, e.Errs[page]))
	}
	return "depaginate partial result: " + strings.Join(parts, "; ")
}

// Depaginate fetches page 1 and, when more pages exist, fetches the rest
// with at most maxWorkers in flight, returning one logical page. A failure
// on page 1 is returned as is. Failures on later pages do not cancel
// siblings; they are reported through *PartialError next to the merged page.
func Depaginate[T any](ctx context.Context, fetch func(ctx context.Context, page int) (Page[T], error), maxWorkers int) (Page[T], error) {
	first, err := fetch(ctx, 1)
	if err != nil {
		return Page[T]{}, err
	}
	if first.PageTotal <= 1 {
		return first, nil
	}
	if maxWorkers <= 0 {
		maxWorkers = DefaultMaxWorkers
	}

	rest := make([][]T, first.PageTotal-1)
	errs := make([]error, first.PageTotal-1)

	workers := pool.New().WithMaxGoroutines(maxWorkers)
	for page := 2; page <= first.PageTotal; page++ {
		page := page
		workers.Go(func() {
			resp, fetchErr := fetch(ctx, page)
			if fetchErr != nil {
				errs[page-2] = fetchErr
				return
			}
			rest[page-2] = resp.Items
		})
	}
	workers.Wait()

	merged := make([]T, 0, len(first.Items)+len(first.Items)*len(rest))
	merged = append(merged, first.Items...)
	for _, items := range rest {
		merged = append(merged, items...)
	}

	out := Page[T]{
		Items:          merged,
		PageCurrent:    1,
		PageTotal:      1,
		ItemCountPage:  len(merged),
		ItemCountTotal: len(merged),
	}

	var partial *PartialError
	for i, fetchErr := range errs {
		if fetchErr == nil {
			continue
		}
		if partial == nil {
			partial = &PartialError{Errs: make(map[int]error)}
		}
		partial.FailedPages = append(partial.FailedPages, i+2)
		partial.Errs[i+2] = fetchErr
	}
	if partial != nil {
		sort.Ints(partial.FailedPages)
		return out, partial
	}
	return out, nil
}
