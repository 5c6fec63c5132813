// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ScanConfig holds settings for directory scanning.
type ScanConfig struct {
	// Extensions restricts the scan to these extensions (without dot).
	// Empty means the full AudioExtensions set.
	Extensions []string `json:"extensions" yaml:"extensions"`

	// Exclude lists glob patterns (doublestar syntax) matched against file
	// names; matching files are skipped.
	Exclude []string `json:"exclude" yaml:"exclude"`
}

// ConvertConfig holds defaults for the conversion stage.
type ConvertConfig struct {
	// Preset is the default quality preset ("high", "balanced", "small").
	Preset string `json:"preset" yaml:"preset"`

	// Normalize applies loudness normalization by default.
	Normalize bool `json:"normalize" yaml:"normalize"`

	// StripSubtitles drops subtitle streams by default.
	StripSubtitles bool `json:"strip_subtitles" yaml:"strip_subtitles"`

	// OutputDir is the default output directory; empty means alongside
	// the input.
	OutputDir string `json:"output_dir,omitempty" yaml:"output_dir,omitempty"`

	// PresetFile is an optional YAML file with user-defined presets.
	PresetFile string `json:"preset_file,omitempty" yaml:"preset_file,omitempty"`
}

// HistoryConfig holds settings for the conversion history store.
type HistoryConfig struct {
	// Path is the SQLite database file. Empty disables history.
	Path string `json:"path,omitempty" yaml:"path,omitempty"`

	// MaxResults is the default maximum number of listed records (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// ShellConfig holds settings for the interactive shell.
type ShellConfig struct {
	// MaxAttempts bounds how often an invalid prompt answer is retried
	// before the shell gives up (default 3).
	MaxAttempts int `json:"max_attempts" yaml:"max_attempts"`
}

// Config groups all stage configurations.
type Config struct {
	Scan    ScanConfig    `json:"scan" yaml:"scan"`
	Convert ConvertConfig `json:"convert" yaml:"convert"`
	History HistoryConfig `json:"history" yaml:"history"`
	Shell   ShellConfig   `json:"shell" yaml:"shell"`
}
