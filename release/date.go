package release

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// ErrNoMonth is wrapped by DateFormatError when the text names no month.
var ErrNoMonth = errors.New("no month name found")

// DateFormatError reports a date value the normalizer could not read.
type DateFormatError struct {
	Text string
	Err  error
}

func (e *DateFormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("unrecognized date %q: %v", e.Text, e.Err)
	}
	return fmt.Sprintf("unrecognized date %q", e.Text)
}

func (e *DateFormatError) Unwrap() error {
	return e.Err
}

var months = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// monthPatterns match a month by its first three letters, abbreviated or not.
var monthPatterns = func() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(months))
	for i, m := range months {
		patterns[i] = regexp.MustCompile(`\b` + m[:3] + `[a-z]*\.?`)
	}
	return patterns
}()

var year = regexp.MustCompile(`\b\d{4}\b`)

// dateLayouts are the date phrases observed on the source site, after month expansion.
var dateLayouts = []string{
	"January 2, 2006",
	"Mon January 2, 2006",
	"Monday January 2, 2006",
	"Mon, January 2, 2006",
	"Monday, January 2, 2006",
	"January 2 2006",
	"2 January 2006",
}

// Normalize reads a free-text date such as "Mon Jan 05, 2024" or
// "Aired: Friday March 8, 2024 at 9pm" into a calendar date in UTC.
// Words in front of the date are dropped one at a time until a layout
// matches; anything after the year is ignored.
func Normalize(text string) (time.Time, error) {
	phrase, ok := expandMonth(text)
	if !ok {
		return time.Time{}, &DateFormatError{Text: text, Err: ErrNoMonth}
	}

	words := strings.Fields(phrase)
	for len(words) > 0 {
		candidate := strings.Join(words, " ")
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, candidate); err == nil {
				return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
			}
		}
		words = words[1:]
	}

	return time.Time{}, &DateFormatError{Text: text}
}

// expandMonth replaces the earliest month token with its full name and cuts
// the phrase after the year that follows it.
func expandMonth(text string) (string, bool) {
	month, start, end := -1, len(text), 0
	for i, pattern := range monthPatterns {
		if loc := pattern.FindStringIndex(text); loc != nil && loc[0] < start {
			month, start, end = i, loc[0], loc[1]
		}
	}
	if month < 0 {
		return "", false
	}

	tail := text[end:]
	if y := year.FindStringIndex(tail); y != nil {
		tail = tail[:y[1]]
	}
	return text[:start] + months[month] + tail, true
}
