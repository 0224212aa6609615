package tracker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/nextep-cli/nextep/show"
	"github.com/nextep-cli/nextep/source"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

type fakeFetcher struct {
	pages  map[string]string
	delay  time.Duration
	calls  atomic.Int32
	active atomic.Int32
	peak   atomic.Int32
}

func (f *fakeFetcher) URL(id string) string {
	return "https://example.test/" + id
}

func (f *fakeFetcher) Fetch(_ context.Context, id string) ([]byte, error) {
	f.calls.Add(1)
	now := f.active.Add(1)
	defer f.active.Add(-1)
	for {
		peak := f.peak.Load()
		if now <= peak || f.peak.CompareAndSwap(peak, now) {
			break
		}
	}
	time.Sleep(f.delay)

	page, ok := f.pages[id]
	if !ok {
		return nil, &source.FetchError{ID: id, URL: f.URL(id), Status: 404}
	}
	return []byte(page), nil
}

func next(date string) string {
	return fmt.Sprintf(`<div id="next_episode">Date: %s<br>Season: 1<br>Episode: 1</div>`, date)
}

func previous(date string) string {
	return fmt.Sprintf(`<div id="previous_episode">Date: %s<br>Season: 1<br>Episode: 1</div>`, date)
}

func ids(shows []*show.Show) []string {
	return lo.Map(shows, func(s *show.Show, _ int) string { return s.ID })
}

func TestTrack(t *testing.T) {
	Convey("Given a source with several shows", t, func() {
		fetcher := &fakeFetcher{pages: map[string]string{
			"a":     next("Mar 10, 2024"),
			"b":     next("Mar 5, 2024"),
			"c":     previous("Mar 1, 2024"),
			"ended": `<div id="next_episode">Canceled/Ended</div>`,
		}}

		Convey("Shows come back resolved and sorted", func() {
			shows := Track(context.Background(), fetcher, []string{"ended", "missing", "a", "c", "b"}, Options{})
			So(ids(shows), ShouldResemble, []string{"b", "a", "c", "ended", "missing"})

			missing := shows[4]
			var fetchErr *source.FetchError
			So(errors.As(missing.Err, &fetchErr), ShouldBeTrue)
			So(missing.Next.String(), ShouldEqual, "")
		})

		Convey("Duplicates are fetched once", func() {
			shows := Track(context.Background(), fetcher, []string{"a", "b", "a"}, Options{Concurrency: 1})
			So(ids(shows), ShouldResemble, []string{"b", "a"})
			So(fetcher.calls.Load(), ShouldEqual, 2)
		})

		Convey("Progress is reported for every page", func() {
			var (
				mu   sync.Mutex
				urls []string
			)
			Track(context.Background(), fetcher, []string{"a", "b"}, Options{Progress: func(url string) {
				mu.Lock()
				urls = append(urls, url)
				mu.Unlock()
			}})
			So(urls, ShouldHaveLength, 2)
			So(urls, ShouldContain, "https://example.test/a")
			So(urls, ShouldContain, "https://example.test/b")
		})

		Convey("An empty list yields no shows", func() {
			So(Track(context.Background(), fetcher, nil, Options{}), ShouldBeEmpty)
		})
	})

	Convey("Given a concurrency limit", t, func() {
		fetcher := &fakeFetcher{pages: map[string]string{}, delay: 10 * time.Millisecond}
		list := lo.Times(12, func(i int) string { return fmt.Sprintf("show-%d", i) })

		shows := Track(context.Background(), fetcher, list, Options{Concurrency: 3})

		Convey("No more pages than the limit are fetched at once", func() {
			So(shows, ShouldHaveLength, 12)
			So(fetcher.peak.Load(), ShouldBeLessThanOrEqualTo, 3)
			So(ids(shows), ShouldResemble, list)
		})
	})
}

func TestSummary(t *testing.T) {
	Convey("Summary", t, func() {
		ok := &show.Show{ID: "a"}
		So(Summary([]*show.Show{ok}), ShouldEqual, "Fetched 1 show")
		So(Summary([]*show.Show{ok, show.Failed("b", errors.New("x"))}), ShouldEqual, "Fetched 2 shows, 1 failed")
	})
}
