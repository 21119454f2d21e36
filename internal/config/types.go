// Package config loads the optional styleseer.yaml tool configuration.
// Flags override the file; the file overrides the built-in defaults.
package config

import "time"

// Config is the full styleseer.yaml document.
type Config struct {
	Collector CollectorConfig `yaml:"collector,omitempty"`
	Output    OutputConfig    `yaml:"output,omitempty"`
	History   HistoryConfig   `yaml:"history,omitempty"`
	Logging   LoggingConfig   `yaml:"logging,omitempty"`
}

// CollectorConfig tunes page retrieval. Timeout and SettleDelay are in
// seconds.
type CollectorConfig struct {
	ViewportWidth  int    `yaml:"viewport_width,omitempty" validate:"omitempty,min=320,max=7680"`
	ViewportHeight int    `yaml:"viewport_height,omitempty" validate:"omitempty,min=240,max=4320"`
	Timeout        int    `yaml:"timeout,omitempty" validate:"omitempty,min=1,max=600"`
	SettleDelay    int    `yaml:"settle_delay,omitempty" validate:"min=0,max=60"`
	UserAgent      string `yaml:"user_agent,omitempty" validate:"omitempty,max=512"`
	ChromiumPath   string `yaml:"chromium_path,omitempty"`
	Static         bool   `yaml:"static,omitempty"`
}

// TimeoutDuration returns the navigation timeout.
func (c CollectorConfig) TimeoutDuration() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

// SettleDuration returns the post-load settle delay.
func (c CollectorConfig) SettleDuration() time.Duration {
	return time.Duration(c.SettleDelay) * time.Second
}

// OutputConfig sets artifact and console preferences.
type OutputConfig struct {
	Format   string `yaml:"format,omitempty" validate:"omitempty,oneof=json yaml"`
	AIView   bool   `yaml:"ai_view"`
	Snippets bool   `yaml:"snippets"`
	Docs     bool   `yaml:"docs"`
	Plain    bool   `yaml:"plain,omitempty"`
}

// HistoryConfig controls the run archive. An empty Path means the
// default location under the user's home directory.
type HistoryConfig struct {
	Path    string `yaml:"path,omitempty"`
	Archive bool   `yaml:"archive,omitempty"`
}

// LoggingConfig tunes diagnostic output.
type LoggingConfig struct {
	Level  string `yaml:"level,omitempty" validate:"omitempty,oneof=trace debug info warn error"`
	Format string `yaml:"format,omitempty" validate:"omitempty,oneof=console json"`
}

// Default returns the built-in configuration. Load unmarshals over it, so
// keys absent from the file keep these values.
func Default() Config {
	return Config{
		Collector: CollectorConfig{
			ViewportWidth:  1920,
			ViewportHeight: 1080,
			Timeout:        30,
			SettleDelay:    5,
		},
		Output: OutputConfig{
			Format:   "json",
			AIView:   true,
			Snippets: true,
			Docs:     true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
