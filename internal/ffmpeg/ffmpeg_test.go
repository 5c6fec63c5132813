// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ffmpeg

import (
	"bytes"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"
)

// mockExecutor records calls and returns configured responses.
type mockExecutor struct {
	selfPath     string          // Executable result; "" means error
	files        map[string]bool // FileExists results
	pathBins     map[string]string // LookPath results
	runOutput    string
	runOutputErr error
	streamFunc   func(name string, args []string, stdout, stderr io.Writer) error

	lastName string
	lastArgs []string
}

func (m *mockExecutor) LookPath(file string) (string, error) {
	if p, ok := m.pathBins[file]; ok {
		return p, nil
	}
	return "", errors.New("not found: " + file)
}

func (m *mockExecutor) Executable() (string, error) {
	if m.selfPath == "" {
		return "", errors.New("unknown executable")
	}
	return m.selfPath, nil
}

func (m *mockExecutor) FileExists(path string) bool {
	return m.files[path]
}

func (m *mockExecutor) RunOutput(name string, args ...string) (string, error) {
	m.lastName = name
	m.lastArgs = args
	return m.runOutput, m.runOutputErr
}

func (m *mockExecutor) RunStreamed(name string, args []string, stdout, stderr io.Writer) error {
	m.lastName = name
	m.lastArgs = args
	if m.streamFunc != nil {
		return m.streamFunc(name, args, stdout, stderr)
	}
	return nil
}

func TestFind(t *testing.T) {
	local := filepath.Join("/opt", "audioconv", binaryName())

	tests := []struct {
		name     string
		exec     *mockExecutor
		wantPath string
		wantErr  bool
	}{
		{
			name: "local binary beside executable wins over PATH",
			exec: &mockExecutor{
				selfPath: filepath.Join("/opt", "audioconv", "audioconv"),
				files:    map[string]bool{local: true},
				pathBins: map[string]string{"ffmpeg": "/usr/bin/ffmpeg"},
			},
			wantPath: local,
		},
		{
			name: "PATH fallback when no local binary",
			exec: &mockExecutor{
				selfPath: filepath.Join("/opt", "audioconv", "audioconv"),
				pathBins: map[string]string{"ffmpeg": "/usr/bin/ffmpeg"},
			},
			wantPath: "/usr/bin/ffmpeg",
		},
		{
			name: "PATH works even when executable path is unknown",
			exec: &mockExecutor{
				pathBins: map[string]string{"ffmpeg": "/usr/local/bin/ffmpeg"},
			},
			wantPath: "/usr/local/bin/ffmpeg",
		},
		{
			name:    "neither local nor PATH",
			exec:    &mockExecutor{selfPath: "/opt/audioconv/audioconv"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tool, err := find(tt.exec)
			if tt.wantErr {
				if !errors.Is(err, ErrNotFound) {
					t.Fatalf("expected ErrNotFound, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tool.Path() != tt.wantPath {
				t.Errorf("got path %q, want %q", tool.Path(), tt.wantPath)
			}
		})
	}
}

func TestVersion(t *testing.T) {
	exec := &mockExecutor{
		pathBins:  map[string]string{"ffmpeg": "/usr/bin/ffmpeg"},
		runOutput: "ffmpeg version 6.1.1 Copyright (c) 2000-2023\nbuilt with gcc\n",
	}
	tool, err := find(exec)
	if err != nil {
		t.Fatal(err)
	}

	got, err := tool.Version()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "ffmpeg version 6.1.1 Copyright (c) 2000-2023"; got != want {
		t.Errorf("got version %q, want %q", got, want)
	}
	if exec.lastArgs[0] != "-version" {
		t.Errorf("expected -version argument, got %v", exec.lastArgs)
	}
}

func TestVersionError(t *testing.T) {
	exec := &mockExecutor{
		pathBins:     map[string]string{"ffmpeg": "/usr/bin/ffmpeg"},
		runOutputErr: errors.New("exec format error"),
	}
	tool, err := find(exec)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := tool.Version(); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestRun(t *testing.T) {
	t.Run("streams output and passes arguments", func(t *testing.T) {
		exec := &mockExecutor{
			pathBins: map[string]string{"ffmpeg": "/usr/bin/ffmpeg"},
			streamFunc: func(name string, args []string, stdout, stderr io.Writer) error {
				io.WriteString(stdout, "frame=1\n")
				io.WriteString(stderr, "size=42kB\n")
				return nil
			},
		}
		tool, err := find(exec)
		if err != nil {
			t.Fatal(err)
		}

		var out, errOut bytes.Buffer
		args := []string{"-y", "-i", "song.wav", "song.mp3"}
		if err := tool.Run(args, &out, &errOut); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if exec.lastName != "/usr/bin/ffmpeg" {
			t.Errorf("ran %q, want resolved binary", exec.lastName)
		}
		if strings.Join(exec.lastArgs, " ") != "-y -i song.wav song.mp3" {
			t.Errorf("got args %v", exec.lastArgs)
		}
		if out.String() != "frame=1\n" || errOut.String() != "size=42kB\n" {
			t.Errorf("output not streamed: stdout=%q stderr=%q", out.String(), errOut.String())
		}
	})

	t.Run("non-zero exit returns wrapped error", func(t *testing.T) {
		exec := &mockExecutor{
			pathBins: map[string]string{"ffmpeg": "/usr/bin/ffmpeg"},
			streamFunc: func(string, []string, io.Writer, io.Writer) error {
				return errors.New("exit status 1")
			},
		}
		tool, err := find(exec)
		if err != nil {
			t.Fatal(err)
		}
		err = tool.Run([]string{"-i", "bad.wav"}, io.Discard, io.Discard)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !strings.Contains(err.Error(), "ffmpeg") {
			t.Errorf("error should mention ffmpeg, got: %v", err)
		}
	})
}
