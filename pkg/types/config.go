// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// AIConfig holds settings for the summarization service call.
type AIConfig struct {
	// Model is the chat-completions model identifier (default "sonar-pro").
	Model string `json:"model" yaml:"model"`

	// APIKey is the bearer token for the summarization API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// Temperature is the sampling temperature (default 0.3, favoring
	// deterministic output).
	Temperature float64 `json:"temperature" yaml:"temperature"`

	// MaxTokens bounds the response length (default 1500).
	MaxTokens int `json:"max_tokens" yaml:"max_tokens"`

	// Timeout is the HTTP request timeout for the API call (default 60s).
	// The original tool relied on the transport default; an explicit bound
	// keeps one stuck call from stalling a whole batch.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// ProcessConfig holds settings for one conversion run.
type ProcessConfig struct {
	AIConfig `yaml:",inline"`

	// BaseFolder is the directory scanned recursively for source PDFs.
	// Output is written beneath it under OutDirName.
	BaseFolder string `json:"base_folder" yaml:"base_folder"`

	// OutDirName is the name of the output directory created under
	// BaseFolder (default "out").
	OutDirName string `json:"out_dir_name" yaml:"out_dir_name"`

	// Year is the fixed year prefix for output folder and file names
	// (default "2025").
	Year string `json:"year" yaml:"year"`
}

// Defaults used when config values are unset.
const (
	DefaultModel       = "sonar-pro"
	DefaultTemperature = 0.3
	DefaultMaxTokens   = 1500
	DefaultTimeout     = 60 * time.Second
	DefaultOutDirName  = "out"
	DefaultYear        = "2025"
)

// ApplyDefaults fills zero-valued fields with the package defaults.
func (c *ProcessConfig) ApplyDefaults() {
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.Temperature == 0 {
		c.Temperature = DefaultTemperature
	}
	if c.MaxTokens == 0 {
		c.MaxTokens = DefaultMaxTokens
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	if c.OutDirName == "" {
		c.OutDirName = DefaultOutDirName
	}
	if c.Year == "" {
		c.Year = DefaultYear
	}
}
