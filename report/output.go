package report

import (
	"reflect"

	"github.com/invopop/jsonschema"
	"github.com/nextep-cli/nextep/release"
	"github.com/nextep-cli/nextep/show"
	"github.com/nextep-cli/nextep/util"
	"github.com/samber/lo"
)

// Release kinds in JSON output.
const (
	KindEmpty     = "empty"
	KindScheduled = "scheduled"
	KindIndirect  = "indirect"
	KindFailed    = "failed"
)

// Output is the document written by the json format.
type Output struct {
	Shows []*ShowOutput `json:"shows" jsonschema:"description=Tracked shows in display order."`
}

type ShowOutput struct {
	ID       string         `json:"id" jsonschema:"description=Normalized show identifier."`
	Title    string         `json:"title" jsonschema:"description=Humanized identifier."`
	Previous *ReleaseOutput `json:"previous"`
	Next     *ReleaseOutput `json:"next"`
	Error    string         `json:"error,omitempty" jsonschema:"description=Why the show page could not be used. Releases are empty when set."`
}

type ReleaseOutput struct {
	Kind    string `json:"kind" jsonschema:"enum=empty,enum=scheduled,enum=indirect,enum=failed"`
	Text    string `json:"text" jsonschema:"description=Release as rendered in tables."`
	Season  string `json:"season,omitempty"`
	Episode string `json:"episode,omitempty" jsonschema:"description=Episode label as printed by the site. May be a list or a title."`
	Name    string `json:"name,omitempty"`
	Date    string `json:"date,omitempty" jsonschema:"format=date"`

	Site       string `json:"site,omitempty" jsonschema:"description=Site a quoted status comes from."`
	SourceDate string `json:"sourceDate,omitempty"`
	Quote      string `json:"quote,omitempty"`

	Error string `json:"error,omitempty"`
}

// NewOutput converts shows into the json document.
func NewOutput(shows []*show.Show) *Output {
	return &Output{
		Shows: lo.Map(shows, func(s *show.Show, _ int) *ShowOutput {
			out := &ShowOutput{
				ID:       s.ID,
				Title:    util.Humanize(s.ID),
				Previous: newReleaseOutput(s.Previous),
				Next:     newReleaseOutput(s.Next),
			}
			if s.Err != nil {
				out.Error = s.Err.Error()
			}
			return out
		}),
	}
}

func newReleaseOutput(r release.Release) *ReleaseOutput {
	out := &ReleaseOutput{Kind: KindEmpty}
	if r == nil {
		return out
	}
	out.Text = r.String()

	switch r := r.(type) {
	case release.Scheduled:
		out.Kind = KindScheduled
		out.Season = r.Season
		out.Episode = string(r.Episode)
		out.Name = r.Name
		out.Date = r.Date.Format(release.DateLayout)
	case release.IndirectStatus:
		out.Kind = KindIndirect
		out.Site = r.Site
		out.SourceDate = r.SourceDate
		out.Quote = r.Quote
	case release.Failed:
		out.Kind = KindFailed
		out.Error = r.String()
	}
	return out
}

// Schema describes Output as a JSON schema.
func Schema() *jsonschema.Schema {
	reflector := new(jsonschema.Reflector)
	reflector.Anonymous = true
	pkg := reflect.TypeOf(Output{}).PkgPath()
	reflector.Namer = func(t reflect.Type) string {
		name := t.Name()
		if name == "" || t.PkgPath() != pkg {
			return name
		}
		return "report." + name
	}
	return reflector.Reflect(&Output{})
}
