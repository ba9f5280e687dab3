package listsource

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/filtex/listmatcher"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// BuildFunc turns a fetched snapshot into a replacement matcher.
type BuildFunc func(name string, payload []byte) (listmatcher.Matcher, error)

// ApplyFunc publishes a rebuilt matcher, typically by swapping it into an
// execution context. It is called at most once per list per refresh.
type ApplyFunc func(name string, m listmatcher.Matcher) error

type refresherOptions struct {
	interval    time.Duration
	rateLimit   rate.Limit
	burst       int
	parallelism int
}

// RefresherOption configures a Refresher.
type RefresherOption func(*refresherOptions)

// WithInterval sets the period between refresh rounds in Run.
func WithInterval(d time.Duration) RefresherOption {
	return func(o *refresherOptions) {
		o.interval = d
	}
}

// WithRateLimit caps fetches per second across all lists. The default is
// unlimited.
func WithRateLimit(limit rate.Limit, burst int) RefresherOption {
	return func(o *refresherOptions) {
		o.rateLimit = limit
		o.burst = burst
	}
}

// WithParallelism bounds how many lists are fetched concurrently.
func WithParallelism(n int) RefresherOption {
	return func(o *refresherOptions) {
		o.parallelism = n
	}
}

// Refresher keeps a set of lists in sync with a Source. Each refresh
// builds fresh matchers off to the side and only then publishes them, so
// concurrent readers always see either the old or the new list, never a
// partially populated one.
type Refresher struct {
	source  Source
	lists   []string
	build   BuildFunc
	apply   ApplyFunc
	limiter *rate.Limiter

	interval    time.Duration
	parallelism int
}

// NewRefresher creates a refresher for the named lists.
func NewRefresher(source Source, lists []string, build BuildFunc, apply ApplyFunc, optFns ...RefresherOption) *Refresher {
	o := refresherOptions{
		interval:    time.Minute,
		rateLimit:   rate.Inf,
		burst:       1,
		parallelism: 4,
	}
	for _, fn := range optFns {
		fn(&o)
	}

	return &Refresher{
		source:      source,
		lists:       lists,
		build:       build,
		apply:       apply,
		limiter:     rate.NewLimiter(o.rateLimit, o.burst),
		interval:    o.interval,
		parallelism: o.parallelism,
	}
}

// RefreshOnce fetches and republishes every list once. Lists are fetched
// concurrently; the first failure cancels the remaining fetches and is
// returned. Lists already applied before the failure stay applied.
func (r *Refresher) RefreshOnce(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.parallelism)

	for _, name := range r.lists {
		g.Go(func() error {
			if err := r.limiter.Wait(ctx); err != nil {
				return err
			}

			payload, err := r.source.Fetch(ctx, name)
			if err != nil {
				return fmt.Errorf("fetch list %q: %w", name, err)
			}

			m, err := r.build(name, payload)
			if err != nil {
				return fmt.Errorf("build list %q: %w", name, err)
			}

			if err := r.apply(name, m); err != nil {
				return fmt.Errorf("apply list %q: %w", name, err)
			}
			return nil
		})
	}

	return g.Wait()
}

// Run refreshes immediately and then on every interval tick until the
// context is canceled. A failed round is returned and stops the loop;
// callers that want to tolerate transient failures should wrap Run and
// restart it.
func (r *Refresher) Run(ctx context.Context) error {
	if err := r.RefreshOnce(ctx); err != nil {
		return err
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := r.RefreshOnce(ctx); err != nil {
				return err
			}
		}
	}
}
