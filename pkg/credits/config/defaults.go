package config

// Default configuration values.
const (
	// DefaultPeriod is the reporting window shown on first launch.
	DefaultPeriod = "90d"

	// DefaultFormat is the output format for non-interactive commands.
	DefaultFormat = "pretty"

	// DefaultOrgID is the demo org rendered when none is configured.
	DefaultOrgID = "00D4J0000001wpEUAQ"
)
