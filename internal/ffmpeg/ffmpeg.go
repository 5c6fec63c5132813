// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ffmpeg implements FFmpeg binary resolution and execution.
package ffmpeg

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

const binFFmpeg = "ffmpeg"

// ErrNotFound is returned when no usable ffmpeg binary can be resolved.
var ErrNotFound = errors.New("ffmpeg not found beside the executable or on PATH")

// Tool runs the ffmpeg binary. The resolution strategy and the process
// spawning live behind this interface so tests can substitute a fake.
type Tool interface {
	// Path returns the resolved ffmpeg binary path.
	Path() string

	// Version returns the first line of `ffmpeg -version` output.
	Version() (string, error)

	// Run executes ffmpeg with the given arguments, streaming its stdout
	// and stderr unmodified, and waits for completion. A non-zero exit
	// status is returned as an error.
	Run(args []string, stdout, stderr io.Writer) error
}

// executor abstracts command execution and binary lookup for testing.
type executor interface {
	LookPath(file string) (string, error)
	Executable() (string, error)
	FileExists(path string) bool
	RunOutput(name string, args ...string) (string, error)
	RunStreamed(name string, args []string, stdout, stderr io.Writer) error
}

// osExecutor is the production executor backed by os and os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) Executable() (string, error) {
	return os.Executable()
}

func (o *osExecutor) FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func (o *osExecutor) RunOutput(name string, args ...string) (string, error) {
	out, err := exec.Command(name, args...).Output()
	return string(out), err
}

func (o *osExecutor) RunStreamed(name string, args []string, stdout, stderr io.Writer) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}

type tool struct {
	bin  string
	exec executor
}

func (t *tool) Path() string { return t.bin }

func (t *tool) Version() (string, error) {
	out, err := t.exec.RunOutput(t.bin, "-version")
	if err != nil {
		return "", fmt.Errorf("querying ffmpeg version: %w", err)
	}
	line, _, _ := strings.Cut(out, "\n")
	return strings.TrimSpace(line), nil
}

func (t *tool) Run(args []string, stdout, stderr io.Writer) error {
	if err := t.exec.RunStreamed(t.bin, args, stdout, stderr); err != nil {
		return fmt.Errorf("ffmpeg: %w", err)
	}
	return nil
}

var defaultExec = &osExecutor{}

// Find resolves the ffmpeg binary: a binary placed beside the audioconv
// executable wins over one found on PATH. Returns ErrNotFound when neither
// exists.
func Find() (Tool, error) {
	return find(defaultExec)
}

func find(exec executor) (Tool, error) {
	name := binaryName()

	if self, err := exec.Executable(); err == nil {
		local := filepath.Join(filepath.Dir(self), name)
		if exec.FileExists(local) {
			return &tool{bin: local, exec: exec}, nil
		}
	}

	if path, err := exec.LookPath(binFFmpeg); err == nil {
		return &tool{bin: path, exec: exec}, nil
	}

	return nil, ErrNotFound
}

func binaryName() string {
	if runtime.GOOS == "windows" {
		return binFFmpeg + ".exe"
	}
	return binFFmpeg
}
