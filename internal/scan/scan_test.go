// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gehan/audioconv/pkg/types"
)

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func names(entries []types.FileEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

func TestScan(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, dir string)
		cfg   types.ScanConfig
		want  []string
	}{
		{
			name: "recognized audio extensions only",
			setup: func(t *testing.T, dir string) {
				writeFiles(t, dir, "a.mp3", "b.wav", "notes.txt", "cover.jpg", "c.FLAC")
			},
			want: []string{"a.mp3", "b.wav", "c.FLAC"},
		},
		{
			name: "empty directory is not an error",
			setup: func(t *testing.T, dir string) {},
			want:  []string{},
		},
		{
			name: "subdirectories are not entered",
			setup: func(t *testing.T, dir string) {
				if err := os.MkdirAll(filepath.Join(dir, "nested"), 0o755); err != nil {
					t.Fatal(err)
				}
				writeFiles(t, dir, "top.ogg")
				writeFiles(t, filepath.Join(dir, "nested"), "deep.mp3")
			},
			want: []string{"top.ogg"},
		},
		{
			name: "custom extension set",
			setup: func(t *testing.T, dir string) {
				writeFiles(t, dir, "a.mp3", "b.wav")
			},
			cfg:  types.ScanConfig{Extensions: []string{"wav"}},
			want: []string{"b.wav"},
		},
		{
			name: "exclude patterns skip matching names",
			setup: func(t *testing.T, dir string) {
				writeFiles(t, dir, "take1.wav", "take2.wav", "draft_take3.wav")
			},
			cfg:  types.ScanConfig{Exclude: []string{"draft_*"}},
			want: []string{"take1.wav", "take2.wav"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			tt.setup(t, dir)

			entries, err := Scan(dir, tt.cfg)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			got := names(entries)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("got %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestScanEntryFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Song.WAV")
	if err := os.WriteFile(path, []byte("wav data"), 0o644); err != nil {
		t.Fatal(err)
	}

	entries, err := Scan(dir, types.ScanConfig{})
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	e := entries[0]
	if e.Name != "Song.WAV" {
		t.Errorf("Name = %q", e.Name)
	}
	if e.Path != path {
		t.Errorf("Path = %q, want %q", e.Path, path)
	}
	if e.Ext != "wav" {
		t.Errorf("Ext = %q, want lowercase without dot", e.Ext)
	}
	if e.Size != int64(len("wav data")) {
		t.Errorf("Size = %d", e.Size)
	}
	if e.Stem() != "Song" {
		t.Errorf("Stem() = %q", e.Stem())
	}
}

func TestScanErrors(t *testing.T) {
	t.Run("missing directory", func(t *testing.T) {
		_, err := Scan(filepath.Join(t.TempDir(), "absent"), types.ScanConfig{})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("invalid exclude pattern", func(t *testing.T) {
		dir := t.TempDir()
		writeFiles(t, dir, "a.mp3")
		_, err := Scan(dir, types.ScanConfig{Exclude: []string{"[bad"}})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}
