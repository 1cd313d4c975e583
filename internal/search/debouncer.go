// Package search implements the header's search-as-you-type: per visitor,
// only the latest query typed within the debounce window reaches the API.
package search

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/wichananm65/fashion-storefront/internal/metrics"
)

var ErrSuperseded = errors.New("search superseded by a newer query")

// LookupFunc runs the actual search once the query has settled.
type LookupFunc[T any] func(ctx context.Context, query string) ([]T, error)

type pending struct {
	cancel context.CancelCauseFunc
}

type Debouncer[T any] struct {
	interval time.Duration
	lookup   LookupFunc[T]

	mu      sync.Mutex
	pending map[string]*pending
}

func NewDebouncer[T any](interval time.Duration, lookup LookupFunc[T]) *Debouncer[T] {
	return &Debouncer[T]{interval: interval, lookup: lookup, pending: map[string]*pending{}}
}

// Search waits out the debounce interval and then looks query up. A newer
// call for the same key makes this one return ErrSuperseded, whether it is
// still waiting or already in flight. An empty query returns an empty
// result at once and cancels whatever is pending for key.
func (d *Debouncer[T]) Search(ctx context.Context, key, query string) ([]T, error) {
	query = strings.TrimSpace(query)

	d.mu.Lock()
	if prev, ok := d.pending[key]; ok {
		prev.cancel(ErrSuperseded)
		delete(d.pending, key)
	}
	if query == "" {
		d.mu.Unlock()
		return []T{}, nil
	}
	ctx, cancel := context.WithCancelCause(ctx)
	p := &pending{cancel: cancel}
	d.pending[key] = p
	d.mu.Unlock()

	defer d.done(key, p)

	timer := time.NewTimer(d.interval)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return nil, d.cause(ctx)
	case <-timer.C:
	}

	results, err := d.lookup(ctx, query)
	// a response for a query the visitor already replaced is dropped
	if errors.Is(context.Cause(ctx), ErrSuperseded) {
		return nil, d.cause(ctx)
	}
	return results, err
}

func (d *Debouncer[T]) cause(ctx context.Context) error {
	err := context.Cause(ctx)
	if errors.Is(err, ErrSuperseded) {
		metrics.SearchesSuperseded.Inc()
	}
	return err
}

func (d *Debouncer[T]) done(key string, p *pending) {
	d.mu.Lock()
	if d.pending[key] == p {
		delete(d.pending, key)
	}
	d.mu.Unlock()
	p.cancel(context.Canceled)
}

// Pending reports how many visitors have a search waiting.
func (d *Debouncer[T]) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.pending)
}
