// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package shell implements the interactive converter menu: scan a
// directory, render a numbered list, prompt for a selection and a target
// format, convert, and report. Input and output are injected so the loop
// can be driven from tests without a terminal.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gehan/audioconv/internal/convert"
	"github.com/gehan/audioconv/internal/scan"
	"github.com/gehan/audioconv/pkg/types"
)

// DefaultMaxAttempts bounds invalid answers per prompt before the shell
// gives up.
const DefaultMaxAttempts = 3

var (
	// ErrNoFiles is returned when the scanned directory holds no
	// recognized audio files.
	ErrNoFiles = errors.New("no audio files found")

	// ErrQuit is returned when the user quits at a prompt (q, empty
	// input, or end of input). Callers treat it as a graceful exit.
	ErrQuit = errors.New("user quit")

	// ErrTooManyAttempts is returned when a prompt's retry budget is
	// exhausted.
	ErrTooManyAttempts = errors.New("too many invalid answers")

	// ErrConversionFailed is returned when the external tool reported
	// failure; its diagnostics have already been streamed to the user.
	ErrConversionFailed = errors.New("conversion failed")
)

// Shell is the interactive converter loop.
type Shell struct {
	out         io.Writer
	scanner     *bufio.Scanner
	converter   convert.Converter
	recorder    convert.Recorder
	maxAttempts int
}

// New creates a Shell reading answers from in and writing prompts, menus,
// and reports to out. maxAttempts <= 0 means DefaultMaxAttempts.
func New(in io.Reader, out io.Writer, c convert.Converter, rec convert.Recorder, maxAttempts int) *Shell {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	if rec == nil {
		rec = convert.NopRecorder{}
	}
	return &Shell{
		out:         out,
		scanner:     bufio.NewScanner(in),
		converter:   c,
		recorder:    rec,
		maxAttempts: maxAttempts,
	}
}

// Run performs one scan-select-convert cycle over dir. The base request
// supplies preset and option defaults; input and format come from the
// prompts. Returns ErrNoFiles, ErrQuit, ErrTooManyAttempts, or
// ErrConversionFailed for the respective terminal states.
func (s *Shell) Run(dir string, scanCfg types.ScanConfig, base types.Request) error {
	entries, err := scan.Scan(dir, scanCfg)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintf(s.out, "No audio files found in %s.\n", dir)
		return ErrNoFiles
	}

	s.renderMenu(entries)

	idx, err := s.promptSelection(len(entries))
	if err != nil {
		return err
	}
	format, err := s.promptFormat()
	if err != nil {
		return err
	}

	req := base
	req.Input = entries[idx-1]
	req.Format = format

	fmt.Fprintf(s.out, "\nConverting %s to %s...\n", req.Input.Name, format)
	if convert.ConvertFile(s.converter, s.recorder, req, s.out) != types.ConversionDone {
		return ErrConversionFailed
	}
	return nil
}

func (s *Shell) renderMenu(entries []types.FileEntry) {
	fmt.Fprintf(s.out, "Found %d audio file(s):\n\n", len(entries))
	for i, e := range entries {
		fmt.Fprintf(s.out, "  %2d) %-40s %s\n", i+1, e.Name, humanBytes(e.Size))
	}
	fmt.Fprintln(s.out)
}

// promptSelection reads a 1-based menu index. Out-of-range or non-numeric
// answers are re-prompted up to the attempt budget.
func (s *Shell) promptSelection(n int) (int, error) {
	for attempt := 0; attempt < s.maxAttempts; attempt++ {
		fmt.Fprintf(s.out, "Select a file [1-%d] (q to quit): ", n)
		line, ok := s.readLine()
		if !ok || line == "" || strings.EqualFold(line, "q") {
			fmt.Fprintln(s.out)
			return 0, ErrQuit
		}
		i, err := strconv.Atoi(line)
		if err != nil || i < 1 || i > n {
			fmt.Fprintf(s.out, "Invalid selection %q: enter a number between 1 and %d.\n", line, n)
			continue
		}
		return i, nil
	}
	return 0, ErrTooManyAttempts
}

// promptFormat reads the target format token and validates it against the
// supported set.
func (s *Shell) promptFormat() (string, error) {
	supported := strings.Join(types.AudioExtensions, ", ")
	for attempt := 0; attempt < s.maxAttempts; attempt++ {
		fmt.Fprintf(s.out, "Target format (%s; q to quit): ", supported)
		line, ok := s.readLine()
		if !ok || line == "" || strings.EqualFold(line, "q") {
			fmt.Fprintln(s.out)
			return "", ErrQuit
		}
		format := strings.ToLower(strings.TrimPrefix(line, "."))
		if !types.IsAudioExtension(format) {
			fmt.Fprintf(s.out, "Unsupported format %q: choose one of %s.\n", line, supported)
			continue
		}
		return format, nil
	}
	return "", ErrTooManyAttempts
}

func (s *Shell) readLine() (string, bool) {
	if !s.scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.scanner.Text()), true
}

func humanBytes(n int64) string {
	if n < 1024 {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(1024), 0
	for m := n / 1024; m >= 1024 && exp < 3; m /= 1024 {
		div *= 1024
		exp++
	}
	unit := []string{"KB", "MB", "GB", "TB"}[exp]
	return fmt.Sprintf("%.1f %s", float64(n)/float64(div), unit)
}
