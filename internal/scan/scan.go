// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scan discovers candidate audio files in a directory.
package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/gehan/audioconv/pkg/types"
)

// Scan lists the audio files directly inside dir, in directory-listing
// order (lexical on most platforms). The scan is non-recursive and only
// stats entries; it never reads file contents. An empty result is not an
// error; callers decide how to report it.
func Scan(dir string, cfg types.ScanConfig) ([]types.FileEntry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	exts := cfg.Extensions
	if len(exts) == 0 {
		exts = types.AudioExtensions
	}
	allowed := make(map[string]bool, len(exts))
	for _, e := range exts {
		allowed[strings.ToLower(strings.TrimPrefix(e, "."))] = true
	}

	files := make([]types.FileEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
		if !allowed[ext] {
			continue
		}

		skip, err := matchesAny(cfg.Exclude, name)
		if err != nil {
			return nil, err
		}
		if skip {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", name, err)
		}

		files = append(files, types.FileEntry{
			Name:    name,
			Path:    filepath.Join(dir, name),
			Ext:     ext,
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	return files, nil
}

func matchesAny(patterns []string, name string) (bool, error) {
	for _, pattern := range patterns {
		ok, err := doublestar.Match(pattern, name)
		if err != nil {
			return false, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}
