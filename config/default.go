package config

import (
	"fmt"
	"strconv"
	"text/template"

	"github.com/nextep-cli/nextep/color"
	"github.com/nextep-cli/nextep/icon"
	"github.com/nextep-cli/nextep/key"
	"github.com/nextep-cli/nextep/report"
	"github.com/nextep-cli/nextep/style"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// Default maps every key to its field.
var Default = make(map[string]Field)

// EnvExposed lists the keys bound to environment variables, in registration order.
var EnvExposed []string

// OutputFormats lists the values accepted by output.format.
var OutputFormats = lo.Map(report.Formats, func(f report.Format, _ int) string { return string(f) })

var logLevels = []string{"panic", "fatal", "error", "warn", "info", "debug", "trace"}

var fields = []Field{
	{Key: key.SourceBaseURL, Value: "https://next-episode.net/", Description: "Base URL of the episode source site.\nThe show identifier is appended to it"},

	{Key: key.FetchConcurrency, Value: 8, Min: mo.Some(1), Description: "Number of show pages fetched in parallel"},
	{Key: key.FetchTimeout, Value: 30, Min: mo.Some(1), Description: "Timeout of a single page request, in seconds"},
	{Key: key.FetchRetries, Value: 2, Min: mo.Some(0), Description: "Retries for a page request that failed with a transport error or a 5xx status"},
	{Key: key.FetchSpoofTLS, Value: false, Description: "Use a browser-like TLS fingerprint when talking to the source site"},

	{Key: key.OutputFormat, Value: string(report.Pretty), Allowed: OutputFormats, Description: "Output format"},
	{Key: key.OutputWrap, Value: 60, Min: mo.Some(0), Description: "Wrap table cells longer than this many characters. 0 disables wrapping"},
	{Key: key.OutputTitles, Value: false, Description: "Show humanized titles instead of identifiers in the show column"},
	{Key: key.OutputColored, Value: true, Description: "Color release cells in the pretty table"},

	{Key: key.SearchShowQuerySuggestions, Value: true, Description: "Suggest previously queried shows in shell completion"},
	{Key: key.IconsVariant, Value: "plain", Allowed: icon.AvailableVariants(), Description: "Icons variant. nerd requires a nerd font"},

	{Key: key.LogsWrite, Value: false, Description: "Write logs"},
	{Key: key.LogsLevel, Value: "info", Allowed: logLevels, Description: "Log level, from least to most verbose"},
	{Key: key.LogsJson, Value: false, Description: "Use json format for logs"},

	{Key: key.CliColored, Value: true, Description: "Enable colored CLI output"},
}

func init() {
	for _, field := range fields {
		if _, exists := Default[field.Key]; exists {
			panic("duplicate config key: " + field.Key)
		}
		Default[field.Key] = field
		EnvExposed = append(EnvExposed, field.Key)
	}
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":  style.Faint,
	"purple": style.Fg(color.Purple),
	"blue":   style.Fg(color.Blue),
	"value":  func(k string) any { return viper.Get(k) },
	"hl": func(v any) string {
		switch value := v.(type) {
		case bool:
			b := strconv.FormatBool(value)
			if value {
				return style.Fg(color.Green)(b)
			}
			return style.Fg(color.Red)(b)
		case string:
			return style.Fg(color.Yellow)(value)
		default:
			return fmt.Sprint(value)
		}
	},
}).Parse(`{{ faint .Description }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl (value .Key) }}
{{ blue "Default:" }} {{ hl .Value }}
{{ blue "Type:" }}    {{ .Type }}{{ with .Allowed }}
{{ blue "Allowed:" }} {{ range $i, $v := . }}{{ if $i }}, {{ end }}{{ $v }}{{ end }}{{ end }}`))
