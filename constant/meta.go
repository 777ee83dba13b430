// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

import _ "embed"

const (
	// App is the canonical application identifier used for filesystem paths, env prefixes and CLI branding.
	App = "cinemcp"

	// Version is the current application semantic version string.
	Version = "1.0.0"

	// ServerName is the name announced to MCP clients during initialization.
	ServerName = "movie-search-server"

	// UserAgent is the HTTP User-Agent string sent to the metadata upstreams.
	UserAgent = App + "/" + Version
)

// Build metadata, overridden with -ldflags at release time.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)

// AsciiArtLogo is the banner shown in the root command help.
//
//go:embed ascii.txt
var AsciiArtLogo string
