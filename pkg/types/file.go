// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"strings"
	"time"
)

// AudioExtensions lists the recognized audio file extensions (lowercase,
// without the leading dot). It doubles as the set of supported target
// formats for conversion.
var AudioExtensions = []string{"mp3", "opus", "wav", "flac", "m4a", "aac", "ogg", "wma"}

// IsAudioExtension reports whether ext (with or without a leading dot,
// any case) is a recognized audio extension.
func IsAudioExtension(ext string) bool {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	for _, e := range AudioExtensions {
		if e == ext {
			return true
		}
	}
	return false
}

// FileEntry is a candidate input file discovered during a directory scan.
type FileEntry struct {
	// Name is the base file name (e.g. "song.wav").
	Name string `json:"name" yaml:"name"`

	// Path is the full filesystem path to the file.
	Path string `json:"path" yaml:"path"`

	// Ext is the lowercase extension without the leading dot (e.g. "wav").
	Ext string `json:"ext" yaml:"ext"`

	// Size is the file size in bytes.
	Size int64 `json:"size" yaml:"size"`

	// ModTime is the file's last modification time.
	ModTime time.Time `json:"mod_time" yaml:"mod_time"`
}

// Stem returns the file name without its extension.
func (f FileEntry) Stem() string {
	if i := strings.LastIndex(f.Name, "."); i > 0 {
		return f.Name[:i]
	}
	return f.Name
}
