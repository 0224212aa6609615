// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Source Site - these keys locate the pages the episode data is scraped from.
const (
	SourceBaseURL = "source.base_url"
)

// Fetching - these keys tune how show pages are downloaded.
const (
	FetchConcurrency = "fetch.concurrency"
	FetchTimeout     = "fetch.timeout"
	FetchRetries     = "fetch.retries"
	FetchSpoofTLS    = "fetch.spoof_tls"
)

// Output - these keys shape the rendered release table.
const (
	OutputFormat  = "output.format"
	OutputWrap    = "output.wrap"
	OutputTitles  = "output.titles"
	OutputColored = "output.colored"
)

// Search Interaction - these keys define shell completion behaviour.
const (
	SearchShowQuerySuggestions = "search.show_query_suggestions"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these settings govern command-line presentation.
const (
	CliColored = "cli.colored"
)
