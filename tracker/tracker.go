// Package tracker fetches and resolves many shows concurrently and returns
// them in display order.
package tracker

import (
	"context"
	"fmt"
	"sync"

	"github.com/nextep-cli/nextep/log"
	"github.com/nextep-cli/nextep/show"
	"github.com/nextep-cli/nextep/source"
	"github.com/nextep-cli/nextep/util"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency applies when Options.Concurrency is not positive.
const DefaultConcurrency = 8

type Options struct {
	// Concurrency bounds the number of pages fetched at once.
	Concurrency int

	// Progress, when set, is called with the page URL before each fetch.
	// Calls may come from several goroutines.
	Progress func(url string)
}

// Track fetches the page of every identifier, resolves each into a Show and
// sorts the collection. Per-show failures are carried by the shows and never
// stop the run. Duplicate identifiers are tracked once, at their first position.
func Track(ctx context.Context, fetcher source.Fetcher, ids []string, opts Options) []*show.Show {
	ids = lo.Uniq(ids)

	var (
		mu      sync.Mutex
		results = make(map[string]*show.Show, len(ids))
	)

	var group errgroup.Group
	group.SetLimit(lo.Ternary(opts.Concurrency > 0, opts.Concurrency, DefaultConcurrency))

	for _, id := range ids {
		group.Go(func() error {
			url := fetcher.URL(id)
			if opts.Progress != nil {
				opts.Progress(url)
			}

			markup, err := fetcher.Fetch(ctx, id)
			resolved := show.Resolve(id, markup, err)

			entry := log.WithField("show", id)
			if resolved.Err != nil {
				entry.Warnf("unresolved: %s", resolved.Err)
			} else {
				entry.Debugf("previous %q, next %q", resolved.Previous, resolved.Next)
			}

			mu.Lock()
			results[id] = resolved
			mu.Unlock()
			return nil
		})
	}

	_ = group.Wait()

	shows := lo.Map(ids, func(id string, _ int) *show.Show {
		return results[id]
	})
	show.Sort(shows)
	return shows
}

// ProgressLine returns a Progress callback that keeps a single erasable
// "Fetching info from ..." line on stderr, and the function that clears it.
func ProgressLine() (progress func(url string), done func()) {
	var (
		mu    sync.Mutex
		erase func()
	)

	progress = func(url string) {
		mu.Lock()
		defer mu.Unlock()
		if erase != nil {
			erase()
		}
		erase = util.PrintErasable(fmt.Sprintf("Fetching info from %s ...", url))
	}

	done = func() {
		mu.Lock()
		defer mu.Unlock()
		if erase != nil {
			erase()
			erase = nil
		}
	}

	return progress, done
}

// Summary describes the outcome of a run, e.g. "Fetched 3 shows, 1 failed".
func Summary(shows []*show.Show) string {
	failed := lo.CountBy(shows, func(s *show.Show) bool { return s.Err != nil })
	summary := "Fetched " + util.Quantify(len(shows), "show", "shows")
	if failed > 0 {
		summary += fmt.Sprintf(", %d failed", failed)
	}
	return summary
}
