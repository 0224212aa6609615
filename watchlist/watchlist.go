// Package watchlist persists the identifiers of the shows tracked when none
// are given on the command line. The file holds one identifier per line.
package watchlist

import (
	"errors"
	"os"
	"regexp"
	"strings"

	"github.com/nextep-cli/nextep/filesystem"
	"github.com/nextep-cli/nextep/log"
	"github.com/nextep-cli/nextep/where"
	"github.com/samber/lo"
)

var whitespace = regexp.MustCompile(`\s+`)

// Normalize turns user input such as " The Expanse " into the identifier form "the-expanse".
func Normalize(id string) string {
	return whitespace.ReplaceAllString(strings.ToLower(strings.TrimSpace(id)), "-")
}

// NormalizeAll normalizes ids, dropping blanks and duplicates.
func NormalizeAll(ids []string) []string {
	normalized := lo.Map(ids, func(id string, _ int) string { return Normalize(id) })
	return lo.Uniq(lo.Compact(normalized))
}

// Parse reads watchlist contents. Blank lines and lines starting with # are skipped.
func Parse(contents string) []string {
	lines := lo.Filter(strings.Split(contents, "\n"), func(line string, _ int) bool {
		return !strings.HasPrefix(strings.TrimSpace(line), "#")
	})
	return NormalizeAll(lines)
}

// Load returns the saved identifiers. A missing file is an empty watchlist.
func Load() ([]string, error) {
	contents, err := filesystem.API().ReadFile(where.Shows())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []string{}, nil
		}
		return nil, err
	}

	return Parse(string(contents)), nil
}

func save(ids []string) error {
	log.WithField("path", where.Shows()).Infof("saving %d shows", len(ids))

	var b strings.Builder
	for _, id := range ids {
		b.WriteString(id)
		b.WriteByte('\n')
	}
	return filesystem.WriteAtomic(where.Shows(), []byte(b.String()), 0o644)
}

// Add appends ids to the watchlist and returns the ones that were not there yet.
func Add(ids ...string) (added []string, err error) {
	saved, err := Load()
	if err != nil {
		return nil, err
	}

	added, _ = lo.Difference(NormalizeAll(ids), saved)
	if len(added) == 0 {
		return added, nil
	}

	return added, save(append(saved, added...))
}

// Remove deletes ids from the watchlist and returns the ones that were present.
func Remove(ids ...string) (removed []string, err error) {
	saved, err := Load()
	if err != nil {
		return nil, err
	}

	removed = lo.Intersect(NormalizeAll(ids), saved)
	if len(removed) == 0 {
		return removed, nil
	}

	return removed, save(lo.Without(saved, removed...))
}
