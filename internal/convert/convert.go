// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert turns audio files into a chosen target format by driving
// an external converter. The Converter interface keeps the external tool
// injectable; FFmpegConverter is the production implementation.
package convert

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/gehan/audioconv/internal/ffmpeg"
	"github.com/gehan/audioconv/internal/preset"
	"github.com/gehan/audioconv/pkg/types"
)

// Converter executes a single conversion request. Tests substitute a fake
// to assert on request construction without spawning processes.
type Converter interface {
	// Convert performs the conversion and returns its outcome. A failed
	// conversion returns both a failed Outcome and the error.
	Convert(req types.Request) (types.Outcome, error)
}

// Recorder persists conversion outcomes. The history store implements it;
// NopRecorder is used when history is disabled.
type Recorder interface {
	Record(rec types.Record) error
}

// NopRecorder discards all records.
type NopRecorder struct{}

func (NopRecorder) Record(types.Record) error { return nil }

// FFmpegConverter converts audio by invoking the resolved ffmpeg binary.
// The tool's console output is streamed unmodified to stdout/stderr.
type FFmpegConverter struct {
	tool       ffmpeg.Tool
	presetFile string
	stdout     io.Writer
	stderr     io.Writer
}

// NewFFmpegConverter creates a converter backed by the given tool.
// presetFile may be empty; built-in presets are always available.
func NewFFmpegConverter(tool ffmpeg.Tool, presetFile string, stdout, stderr io.Writer) *FFmpegConverter {
	return &FFmpegConverter{tool: tool, presetFile: presetFile, stdout: stdout, stderr: stderr}
}

// Convert builds the output path and ffmpeg arguments for req and runs the
// tool synchronously.
func (c *FFmpegConverter) Convert(req types.Request) (types.Outcome, error) {
	if !types.IsAudioExtension(req.Format) {
		return types.Outcome{Status: types.ConversionFailed},
			fmt.Errorf("unsupported format %q", req.Format)
	}

	p, err := preset.Resolve(req.Preset, c.presetFile)
	if err != nil {
		return types.Outcome{Status: types.ConversionFailed}, err
	}

	outDir := req.OutputDir
	if outDir == "" {
		outDir = filepath.Dir(req.Input.Path)
	}
	outPath, err := OutputPath(outDir, req.Input.Stem(), req.Format)
	if err != nil {
		return types.Outcome{Status: types.ConversionFailed}, err
	}

	args, err := Args(req.Input.Path, outPath, req.Format, p, req.Normalize, req.StripSubtitles)
	if err != nil {
		return types.Outcome{Status: types.ConversionFailed}, err
	}

	start := time.Now()
	runErr := c.tool.Run(args, c.stdout, c.stderr)
	outcome := types.Outcome{
		OutputPath: outPath,
		Duration:   time.Since(start),
	}
	if runErr != nil {
		outcome.Status = types.ConversionFailed
		return outcome, fmt.Errorf("converting %s: %w", req.Input.Name, runErr)
	}
	outcome.Status = types.ConversionDone
	return outcome, nil
}

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	Converted int
	Skipped   int
	Failed    int
}

// Total returns the total number of files processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Skipped + r.Failed
}

// HasFailures reports whether any file failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// ConvertFile converts a single file, writing a status line to w and
// recording the outcome. A recording failure is reported on w but does not
// change the conversion status.
func ConvertFile(c Converter, rec Recorder, req types.Request, w io.Writer) types.ConversionStatus {
	outcome, err := c.Convert(req)

	record := types.Record{
		Input:     req.Input.Path,
		Output:    outcome.OutputPath,
		Format:    strings.ToLower(req.Format),
		Preset:    req.Preset,
		Status:    outcome.Status,
		Duration:  outcome.Duration,
		CreatedAt: time.Now().UTC(),
	}

	if err != nil {
		record.Error = err.Error()
		fmt.Fprintf(w, "failed:    %s (%v)\n", req.Input.Name, err)
	} else {
		fmt.Fprintf(w, "converted: %s -> %s\n", req.Input.Name, filepath.Base(outcome.OutputPath))
	}

	if recErr := rec.Record(record); recErr != nil {
		fmt.Fprintf(w, "warning: could not record conversion: %v\n", recErr)
	}

	return outcome.Status
}

// ConvertBatch converts every entry to base.Format, skipping files already
// in the target format, printing per-file status to w and a summary line
// at the end. The base request supplies format, preset, and options; Input
// is filled per entry.
func ConvertBatch(c Converter, rec Recorder, entries []types.FileEntry, base types.Request, w io.Writer) BatchResult {
	var result BatchResult
	target := strings.ToLower(base.Format)

	for _, entry := range entries {
		if entry.Ext == target {
			fmt.Fprintf(w, "skipped:   %s (already %s)\n", entry.Name, target)
			result.Skipped++
			continue
		}

		req := base
		req.Input = entry
		switch ConvertFile(c, rec, req, w) {
		case types.ConversionDone:
			result.Converted++
		default:
			result.Failed++
		}
	}

	fmt.Fprintf(w, "\nBatch summary: %d converted, %d skipped, %d failed (total: %d)\n",
		result.Converted, result.Skipped, result.Failed, result.Total())
	return result
}
