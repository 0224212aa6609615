// Package release models the previous or next episode of a show as it was
// scraped from the source site, and turns raw section text into that model.
//
// A Release is one of four variants: Empty when the section holds nothing
// usable, Scheduled for a concrete season/episode/date, IndirectStatus for a
// quoted third-party statement, and Failed when a recognized block could not
// be parsed.
package release

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/samber/mo"
)

// DateLayout is the canonical rendering of a release date.
const DateLayout = "2006-01-02"

// Release is the sum of the release variants. Implementations are immutable values.
type Release interface {
	fmt.Stringer

	// AirDate returns the calendar date of the release when it is known.
	AirDate() mo.Option[time.Time]

	isRelease()
}

// Empty means the section yielded no information. It renders as an empty string.
type Empty struct{}

func (Empty) String() string                { return "" }
func (Empty) AirDate() mo.Option[time.Time] { return mo.None[time.Time]() }
func (Empty) isRelease()                    {}

// Scheduled is a concrete episode with a known air date.
type Scheduled struct {
	Season  string
	Episode Episode
	Name    string
	Date    time.Time
}

func (s Scheduled) String() string {
	return fmt.Sprintf("%s S%s %s", s.Date.Format(DateLayout), s.Season, s.Episode.Label())
}

func (s Scheduled) AirDate() mo.Option[time.Time] { return mo.Some(s.Date) }
func (Scheduled) isRelease()                      {}

// IndirectStatus carries a statement about the show quoted from another site.
type IndirectStatus struct {
	Site       string
	SourceDate string
	Quote      string
}

// Source joins the site and the date of the quoted statement.
func (s IndirectStatus) Source() string {
	parts := make([]string, 0, 2)
	for _, p := range []string{s.Site, s.SourceDate} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

func (s IndirectStatus) String() string {
	source := s.Source()
	if source == "" {
		return s.Quote
	}
	if s.Quote == "" {
		return "(" + source + ")"
	}
	return fmt.Sprintf("%s (%s)", s.Quote, source)
}

func (IndirectStatus) AirDate() mo.Option[time.Time] { return mo.None[time.Time]() }
func (IndirectStatus) isRelease()                    {}

// Failed records why a recognized section could not be turned into a release.
type Failed struct {
	Err error
}

func (f Failed) String() string {
	if f.Err == nil {
		return "unknown error"
	}
	return f.Err.Error()
}

func (Failed) AirDate() mo.Option[time.Time] { return mo.None[time.Time]() }
func (Failed) isRelease()                    {}

// Err returns the parse error of a Failed release and nil for every other variant.
func Err(r Release) error {
	if f, ok := r.(Failed); ok {
		return f.Err
	}
	return nil
}

// IsEmpty reports whether r carries no information at all.
func IsEmpty(r Release) bool {
	if r == nil {
		return true
	}
	_, ok := r.(Empty)
	return ok
}

var digits = regexp.MustCompile(`^\d+$`)

// Episode is the episode label exactly as the site prints it. It is never
// converted to a number: it may be "5", a list such as "3, 4, 5", or a
// title like "Special".
type Episode string

// Numbers returns the episode numbers when the label is a single number or
// a comma separated list of numbers.
func (e Episode) Numbers() ([]string, bool) {
	parts := strings.Split(string(e), ",")
	numbers := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if !digits.MatchString(p) {
			return nil, false
		}
		numbers = append(numbers, p)
	}
	return numbers, true
}

// Label renders the episode as E5, E3-5 for a list, or a quoted title.
func (e Episode) Label() string {
	if e == "" {
		return ""
	}

	numbers, ok := e.Numbers()
	switch {
	case !ok:
		return fmt.Sprintf("%q", string(e))
	case len(numbers) == 1:
		return "E" + numbers[0]
	default:
		return fmt.Sprintf("E%s-%s", numbers[0], numbers[len(numbers)-1])
	}
}
