// Package show assembles the previous and next releases of one show and
// orders a collection of shows for display.
package show

import (
	"github.com/nextep-cli/nextep/page"
	"github.com/nextep-cli/nextep/release"
	"github.com/samber/mo"
)

// Show is the outcome of tracking one identifier.
// When Err is set, Previous and Next are both release.Empty.
type Show struct {
	ID       string
	Previous release.Release
	Next     release.Release
	Err      error
}

// Failed builds the Show for an identifier whose page could not be used.
func Failed(id string, err error) *Show {
	return &Show{
		ID:       id,
		Previous: release.Empty{},
		Next:     release.Empty{},
		Err:      err,
	}
}

// Resolve builds a Show from the fetch outcome for id. A fetch error or
// markup that cannot be interpreted yields a failed Show; otherwise each
// section is parsed on its own and a missing section is empty.
func Resolve(id string, markup []byte, fetchErr error) *Show {
	if fetchErr != nil {
		return Failed(id, fetchErr)
	}

	sections, err := page.Locate(markup)
	if err != nil {
		return Failed(id, err)
	}

	return &Show{
		ID:       id,
		Previous: parse(sections.Previous),
		Next:     parse(sections.Next),
	}
}

func parse(text mo.Option[string]) release.Release {
	if raw, ok := text.Get(); ok {
		return release.Parse(raw)
	}
	return release.Empty{}
}

// Status is the text shown in the "next" column: the error when the show
// failed, the next release otherwise.
func (s *Show) Status() string {
	if s.Err != nil {
		return s.Err.Error()
	}
	return s.Next.String()
}
