// Package config provides configuration management for gntraits.
//
// This package has no I/O dependencies (no file operations, no network
// calls). Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml >
// defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config stays in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - BacDive: user, password, api_url, token_url, pacing_ms, use_cache
//   - Input: lineage_column
//   - Log: level, format, destination
//
// Runtime-only fields (CLI flags only):
//   - Input.AbundanceFile, Output.*, Limit, ShowProgress (per-command)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use GNTRAITS_ prefix with underscores for nesting:
//
//	GNTRAITS_BACDIVE_USER=me@example.org
//	GNTRAITS_BACDIVE_PASSWORD=secret
//	GNTRAITS_LOG_LEVEL=info
package config

// Config represents the complete gntraits configuration.
type Config struct {
	// BacDive contains credentials and connection settings for the
	// BacDive/DSMZ API.
	BacDive BacDiveConfig `mapstructure:"bacdive" yaml:"bacdive"`

	// Input contains settings for the species-name acquisition step.
	Input InputConfig `mapstructure:"input" yaml:"input"`

	// Output contains settings for result export.
	Output OutputConfig `mapstructure:"output" yaml:"output"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// Limit caps the number of species processed. Zero means no limit.
	// Runtime-only, set by the --limit flag.
	Limit int

	// ShowProgress enables the console progress bar during a harvest.
	ShowProgress bool

	// HomeDir determines where config, cache and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// BacDiveConfig contains BacDive/DSMZ API connection parameters.
type BacDiveConfig struct {
	// User is the DSMZ account email registered for BacDive API access.
	User string `mapstructure:"user" yaml:"user"`

	// Password is the DSMZ account password.
	Password string `mapstructure:"password" yaml:"password"`

	// APIURL is the base URL of the BacDive REST API.
	APIURL string `mapstructure:"api_url" yaml:"api_url"`

	// TokenURL is the DSMZ SSO endpoint used for password-grant tokens.
	TokenURL string `mapstructure:"token_url" yaml:"token_url"`

	// PacingMs is the minimal delay between API calls in milliseconds.
	// BacDive asks clients not to hammer the service; one request every
	// few hundred milliseconds is a good citizen.
	PacingMs int `mapstructure:"pacing_ms" yaml:"pacing_ms"`

	// UseCache enables the local cache of fetched candidate sets, so
	// repeated runs do not re-query BacDive for the same species.
	UseCache bool `mapstructure:"use_cache" yaml:"use_cache"`
}

// InputConfig contains settings for reading the relative-abundance table.
type InputConfig struct {
	// AbundanceFile is the path of the MetaPhlAn-style merged abundance
	// profile the species list is taken from. Runtime-only.
	AbundanceFile string

	// LineageColumn is the header of the column holding pipe-delimited
	// taxonomic lineages.
	LineageColumn string `mapstructure:"lineage_column" yaml:"lineage_column"`
}

// OutputConfig contains result export destinations. All runtime-only.
type OutputConfig struct {
	// CSVFile is the path of the long-format CSV output.
	CSVFile string

	// SQLiteFile, when non-empty, additionally writes the table into a
	// SQLite database at this path.
	SQLiteFile string
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		BacDive: BacDiveConfig{
			APIURL:   "https://api.bacdive.dsmz.de",
			TokenURL: "https://sso.dsmz.de/auth/realms/dsmz/protocol/openid-connect/token",
			PacingMs: 500,
			UseCache: true,
		},
		Input: InputConfig{
			LineageColumn: "clade_name",
		},
		Output: OutputConfig{
			CSVFile: "gntraits.csv",
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		ShowProgress: true,
	}
	return res
}
