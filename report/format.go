package report

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Format names an output format.
type Format string

const (
	Pretty   Format = "pretty"
	Markdown Format = "markdown"
	CSV      Format = "csv"
	TSV      Format = "tsv"
	HTML     Format = "html"
	JSON     Format = "json"
)

// Formats lists every supported format.
var Formats = []Format{Pretty, Markdown, CSV, TSV, HTML, JSON}

// UnknownFormatError reports an output format nextep cannot render.
type UnknownFormatError struct {
	Name string
}

func (e *UnknownFormatError) Error() string {
	names := lo.Map(Formats, func(f Format, _ int) string { return string(f) })
	return fmt.Sprintf("unknown output format %q, expected one of: %s", e.Name, strings.Join(names, ", "))
}

// ParseFormat resolves a format name, ignoring case and surrounding space.
func ParseFormat(name string) (Format, error) {
	format := Format(strings.ToLower(strings.TrimSpace(name)))
	if !lo.Contains(Formats, format) {
		return "", &UnknownFormatError{Name: name}
	}
	return format, nil
}
