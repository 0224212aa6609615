// Package report renders tracked shows as a table or as JSON.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/muesli/reflow/wordwrap"
	"github.com/nextep-cli/nextep/color"
	"github.com/nextep-cli/nextep/log"
	"github.com/nextep-cli/nextep/release"
	"github.com/nextep-cli/nextep/show"
	"github.com/nextep-cli/nextep/style"
	"github.com/nextep-cli/nextep/util"
	"github.com/samber/lo"
)

// Options tune the rendering.
type Options struct {
	// Wrap is the width long cells are word wrapped at in the pretty table. 0 disables wrapping.
	Wrap int

	// Titles replaces identifiers with humanized titles in the show column.
	Titles bool

	// Colored colors the release cells of the pretty table.
	Colored bool

	// Width caps the pretty table row length. 0 means unlimited.
	Width int
}

var header = table.Row{"Show", "Previous", "Next"}

// Render writes shows, already in display order, to w.
func Render(w io.Writer, shows []*show.Show, format Format, opts Options) error {
	log.WithField("format", format).Debugf("rendering %d shows", len(shows))

	if format == JSON {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(NewOutput(shows))
	}

	if format == CSV {
		return writeCSV(w, shows, opts)
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.AppendHeader(header)

	pretty := format == Pretty
	for _, s := range shows {
		tw.AppendRow(row(s, opts, pretty))
	}

	switch format {
	case Pretty:
		tw.SetStyle(table.StyleRounded)
		tw.SetColumnConfigs([]table.ColumnConfig{
			{Number: 1, AlignHeader: text.AlignLeft},
			{Number: 2, AlignHeader: text.AlignLeft},
			{Number: 3, AlignHeader: text.AlignLeft},
		})
		if opts.Width > 0 {
			tw.SetAllowedRowLength(opts.Width)
		}
		tw.Render()
	case Markdown:
		tw.RenderMarkdown()
	case TSV:
		tw.RenderTSV()
	case HTML:
		tw.RenderHTML()
	default:
		return &UnknownFormatError{Name: string(format)}
	}

	return nil
}

// writeCSV quotes cells the RFC 4180 way. go-pretty escapes commas with a backslash instead.
func writeCSV(w io.Writer, shows []*show.Show, opts Options) error {
	cw := csv.NewWriter(w)
	rows := append([]table.Row{header}, lo.Map(shows, func(s *show.Show, _ int) table.Row {
		return row(s, opts, false)
	})...)

	for _, r := range rows {
		record := lo.Map(r, func(cell any, _ int) string { return fmt.Sprint(cell) })
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func row(s *show.Show, opts Options, pretty bool) table.Row {
	name := s.ID
	if opts.Titles {
		name = util.Humanize(s.ID)
	}

	previous, next := s.Previous.String(), s.Status()
	if !pretty {
		return table.Row{name, previous, next}
	}

	if opts.Wrap > 0 {
		previous = wordwrap.String(previous, opts.Wrap)
		next = wordwrap.String(next, opts.Wrap)
	}

	if opts.Colored {
		previous = paint(previous, s.Previous, color.Aired)
		if s.Err != nil {
			next = style.Fg(color.Failed)(next)
		} else {
			next = paint(next, s.Next, color.Upcoming)
		}
	}

	return table.Row{name, previous, next}
}

func paint(cell string, r release.Release, dated lipgloss.Color) string {
	switch r.(type) {
	case release.Scheduled:
		return style.Fg(dated)(cell)
	case release.Failed:
		return style.Fg(color.Failed)(cell)
	case release.IndirectStatus:
		return style.Italic(cell)
	default:
		return cell
	}
}
