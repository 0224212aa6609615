package release

import (
	"fmt"
	"strings"

	"github.com/nextep-cli/nextep/constant"
)

// Labels of the key-value layout.
const (
	LabelSeason    = "Season"
	LabelEpisode   = "Episode"
	LabelName      = "Name"
	LabelDate      = "Date"
	LabelLocalDate = "Local Date"
)

// sentinels mark sections the site explicitly has nothing to report for.
var sentinels = []string{
	constant.NoInfoSentinel,
	constant.EndedSentinel,
}

// MissingLabelError reports a dated key-value block lacking a required label.
type MissingLabelError struct {
	Label string
}

func (e *MissingLabelError) Error() string {
	return fmt.Sprintf("release block has a date but no %s", e.Label)
}

// Parse turns the text of one episode section into a Release. It never
// fails: problems with a recognized block are returned as a Failed release.
//
// Layouts are tried in order: sentinel phrases, the indirect-status quote,
// and the key-value block. Text matching none of them is Empty.
func Parse(raw string) Release {
	for _, sentinel := range sentinels {
		if strings.Contains(raw, sentinel) {
			return Empty{}
		}
	}

	if strings.Contains(raw, constant.IndirectStatusMarker) {
		return parseIndirect(raw)
	}

	return parseBlock(raw)
}

// parseIndirect reads `<marker> <site>, <date>: <quote>`.
func parseIndirect(raw string) Release {
	_, rest, _ := strings.Cut(raw, constant.IndirectStatusMarker)

	head, quote, found := strings.Cut(rest, ":")
	opening := strings.TrimSpace(head)
	if !found || strings.HasPrefix(opening, `"`) || strings.HasPrefix(opening, "“") {
		head, quote = "", rest
	}

	site, date, _ := strings.Cut(head, ",")
	status := IndirectStatus{
		Site:       squash(site),
		SourceDate: squash(date),
		Quote:      unquote(quote),
	}

	if status == (IndirectStatus{}) {
		return Empty{}
	}
	return status
}

// parseBlock reads the `Label: value` layout. Either every field is read or
// the block fails as a whole.
func parseBlock(raw string) Release {
	fields := Fields(raw)

	dateText, ok := fields[LabelDate]
	if !ok {
		dateText, ok = fields[LabelLocalDate]
	}
	if !ok {
		return Empty{}
	}

	date, err := Normalize(dateText)
	if err != nil {
		return Failed{Err: err}
	}

	for _, label := range []string{LabelSeason, LabelEpisode} {
		if fields[label] == "" {
			return Failed{Err: &MissingLabelError{Label: label}}
		}
	}

	return Scheduled{
		Season:  fields[LabelSeason],
		Episode: Episode(fields[LabelEpisode]),
		Name:    fields[LabelName],
		Date:    date,
	}
}

// Fields maps the labels of every `Label: value` line to their values.
// Lines are split on the first colon only; the first occurrence of a label wins.
func Fields(raw string) map[string]string {
	fields := make(map[string]string)
	for _, line := range strings.Split(raw, "\n") {
		label, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}

		label = strings.TrimSpace(label)
		if label == "" {
			continue
		}

		if _, seen := fields[label]; !seen {
			fields[label] = strings.TrimSpace(value)
		}
	}
	return fields
}

func squash(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func unquote(s string) string {
	return strings.Trim(squash(s), `"'“”`)
}
