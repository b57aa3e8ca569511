// Package config provides configuration loading and defaults for ideation.
package config

// DefaultConfigDir is the default location for user-wide configuration.
const DefaultConfigDir = "~/.config/ideation"

// DefaultConfigFile is the filename for the user-wide YAML config.
const DefaultConfigFile = "config.yaml"

// ProjectConfigFile is looked up in the analysed root before the user-wide
// file.
const ProjectConfigFile = ".ideation.yaml"

// EnvPrefix prefixes environment overrides, e.g. IDEATION_MAX_FILES.
const EnvPrefix = "IDEATION"

// DefaultFocus analyses all four categories.
const DefaultFocus = "all"

// DefaultMaxFiles caps discovery per run.
const DefaultMaxFiles = 500

// DefaultConcurrency is how many analyzers may run at once.
const DefaultConcurrency = 4

// DefaultIgnorePatterns skip dependency, build and VCS directories.
var DefaultIgnorePatterns = []string{
	"**/node_modules/**",
	"**/.git/**",
	"**/dist/**",
	"**/build/**",
	"**/coverage/**",
	"**/vendor/**",
	"**/*.min.js",
}

// DefaultOutput holds the default terminal output preferences.
var DefaultOutput = Output{
	Color: true,
	Width: 100,
}

// DefaultReport holds the default report settings.
var DefaultReport = Report{
	Format: "markdown",
}
