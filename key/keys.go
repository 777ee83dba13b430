// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Upstream A (OMDb) - title and IMDb-ID based metadata.
const (
	OMDbAPIKey  = "omdb.api_key"
	OMDbBaseURL = "omdb.base_url"
)

// Upstream B (TMDb) - discovery and recommendation metadata.
const (
	TMDbAPIKey   = "tmdb.api_key"
	TMDbBaseURL  = "tmdb.base_url"
	TMDbLanguage = "tmdb.language"
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

// CLI Execution Environment - these settings govern the non-server application behavior.
const (
	CliColored = "cli.colored"
)
