// Package query remembers the show identifiers passed on the command line and
// suggests them back for shell completion.
package query

import (
	"io"
	"os"
	"sync"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/nextep-cli/nextep/filesystem"
	"github.com/nextep-cli/nextep/key"
	"github.com/nextep-cli/nextep/watchlist"
	"github.com/nextep-cli/nextep/where"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

// registryFs lets gache store the registry on the afero backend.
type registryFs struct{}

func (registryFs) OpenFile(name string, flag int, perm os.FileMode) (io.ReadWriteCloser, error) {
	return filesystem.API().OpenFile(name, flag, perm)
}

func (registryFs) MkdirAll(path string, perm os.FileMode) error {
	return filesystem.API().MkdirAll(path, perm)
}

type record struct {
	Rank int    `json:"rank"`
	ID   string `json:"id"`
}

var (
	mu     sync.Mutex
	cacher *gache.Cache[map[string]*record]
)

func records() *gache.Cache[map[string]*record] {
	if cacher == nil {
		cacher = gache.New[map[string]*record](&gache.Options{
			Path:       where.Queries(),
			FileSystem: registryFs{},
		})
	}
	return cacher
}

// Remember bumps the rank of every identifier by weight.
func Remember(weight int, ids ...string) error {
	mu.Lock()
	defer mu.Unlock()

	cached, expired, err := records().Get()
	if expired || err != nil || cached == nil {
		cached = make(map[string]*record)
	}

	for _, id := range watchlist.NormalizeAll(ids) {
		if r, ok := cached[id]; ok {
			r.Rank += weight
		} else {
			cached[id] = &record{Rank: weight, ID: id}
		}
	}

	return records().Set(cached)
}

// SuggestMany returns the remembered identifiers fuzzy matching partial,
// highest ranked first. It is empty when search.show_query_suggestions is off.
func SuggestMany(partial string) []string {
	if !viper.GetBool(key.SearchShowQuerySuggestions) {
		return []string{}
	}

	mu.Lock()
	cached, expired, err := records().Get()
	mu.Unlock()
	if err != nil || expired || cached == nil {
		return []string{}
	}

	partial = watchlist.Normalize(partial)
	matches := lo.Filter(lo.Values(cached), func(r *record, _ int) bool {
		return fuzzy.Match(partial, r.ID)
	})

	slices.SortFunc(matches, func(a, b *record) int {
		if a.Rank != b.Rank {
			return b.Rank - a.Rank
		}
		if a.ID < b.ID {
			return -1
		}
		return 1
	})

	return lo.Map(matches, func(r *record, _ int) string { return r.ID })
}

// reset drops the in-memory cache handle so the next call reopens the file.
func reset() {
	mu.Lock()
	defer mu.Unlock()
	cacher = nil
}
