// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// ConversionStatus indicates the outcome of a single conversion.
type ConversionStatus string

const (
	ConversionDone    ConversionStatus = "converted"
	ConversionSkipped ConversionStatus = "skipped"
	ConversionFailed  ConversionStatus = "failed"
)

// Request is an ephemeral value holding everything needed for one
// conversion: the selected input file and the target format plus options.
// It is created from user input and consumed immediately.
type Request struct {
	// Input is the file to convert.
	Input FileEntry

	// Format is the target format token (e.g. "mp3"); must be one of
	// AudioExtensions.
	Format string

	// Preset names the quality preset ("high", "balanced", "small").
	Preset string

	// Normalize applies a loudness normalization filter.
	Normalize bool

	// StripSubtitles drops subtitle streams from the input.
	StripSubtitles bool

	// OutputDir overrides the output directory. Empty means the output is
	// written alongside the input file.
	OutputDir string
}

// Outcome describes the result of executing a Request.
type Outcome struct {
	// OutputPath is the path the converted file was written to.
	OutputPath string

	// Status is the terminal state of the conversion.
	Status ConversionStatus

	// Duration is the wall-clock time the external tool ran for.
	Duration time.Duration
}

// Record is a persisted conversion log entry.
type Record struct {
	ID        int64            `json:"id" yaml:"id"`
	Input     string           `json:"input" yaml:"input"`
	Output    string           `json:"output" yaml:"output"`
	Format    string           `json:"format" yaml:"format"`
	Preset    string           `json:"preset" yaml:"preset"`
	Status    ConversionStatus `json:"status" yaml:"status"`
	Error     string           `json:"error,omitempty" yaml:"error,omitempty"`
	Duration  time.Duration    `json:"duration" yaml:"duration"`
	CreatedAt time.Time        `json:"created_at" yaml:"created_at"`
}
