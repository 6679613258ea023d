// Package config provides configuration management for GNzoo.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Input: names_path, arrivals_path
//   - Report: path, format, sqlite_path
//   - Log: level, format, destination
//   - General: with_progress
//
// Runtime-only fields:
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use GNZOO_ prefix with underscores for nesting:
//
//	GNZOO_INPUT_NAMES_PATH=data/animalNames.txt
//	GNZOO_REPORT_FORMAT=json
//	GNZOO_LOG_LEVEL=info
//	GNZOO_WITH_PROGRESS=true
package config

// Config represents the complete GNzoo configuration.
type Config struct {
	// Input contains locations of the files read by a report run.
	Input InputConfig `mapstructure:"input" yaml:"input"`

	// Report contains settings of the produced population report.
	Report ReportConfig `mapstructure:"report" yaml:"report"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// WithProgress shows a progress bar while arrivals are processed.
	WithProgress bool `mapstructure:"with_progress" yaml:"with_progress"`

	// HomeDir determines where config and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// InputConfig contains paths to the input text files.
type InputConfig struct {
	// NamesPath points to lines like "hyena: Kamari, Simba".
	NamesPath string `mapstructure:"names_path" yaml:"names_path"`

	// ArrivalsPath points to the list of arriving animals, one per line.
	ArrivalsPath string `mapstructure:"arrivals_path" yaml:"arrivals_path"`
}

// ReportConfig contains settings for the population report.
type ReportConfig struct {
	// Path of the text report. The file is overwritten on every run.
	Path string `mapstructure:"path" yaml:"path"`

	// Format can be 'text', 'json' or 'yaml'. JSON and YAML add a
	// structured copy next to the text report.
	Format string `mapstructure:"format" yaml:"format"`

	// SQLitePath enables export of animals to an SQLite file when not
	// empty. The table is recreated on every run.
	SQLitePath string `mapstructure:"sqlite_path" yaml:"sqlite_path"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
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
		Input: InputConfig{
			NamesPath:    "data/animalNames.txt",
			ArrivalsPath: "data/arrivingAnimals.txt",
		},
		Report: ReportConfig{
			Path:   "zooPopulation.txt",
			Format: "text",
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
	}

	return res
}
