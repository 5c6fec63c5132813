// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package preset defines quality presets that map target formats to
// encoder bitrate settings. Built-in presets cover the common cases; a
// YAML preset file can add or override them.
package preset

import (
	"fmt"
	"sort"
	"strings"
)

// Preset names a quality level and the encoder settings it implies.
// Formats absent from Bitrates (wav, flac) are encoded without a bitrate
// argument.
type Preset struct {
	// Name identifies the preset (e.g. "balanced").
	Name string `yaml:"name"`

	// Bitrates maps a format token to the target audio bitrate (e.g.
	// "mp3" -> "192k").
	Bitrates map[string]string `yaml:"bitrates"`

	// VorbisQuality is the -q:a level used for ogg output instead of a
	// bitrate.
	VorbisQuality string `yaml:"vorbis_quality"`
}

// Bitrate returns the bitrate for format, or "" when the format is encoded
// without one.
func (p Preset) Bitrate(format string) string {
	return p.Bitrates[strings.ToLower(format)]
}

// Builtin returns the built-in presets keyed by name.
func Builtin() map[string]Preset {
	return map[string]Preset{
		"high": {
			Name: "high",
			Bitrates: map[string]string{
				"mp3":  "320k",
				"opus": "160k",
				"m4a":  "256k",
				"aac":  "256k",
				"wma":  "192k",
			},
			VorbisQuality: "6",
		},
		"balanced": {
			Name: "balanced",
			Bitrates: map[string]string{
				"mp3":  "192k",
				"opus": "128k",
				"m4a":  "192k",
				"aac":  "192k",
				"wma":  "192k",
			},
			VorbisQuality: "4",
		},
		"small": {
			Name: "small",
			Bitrates: map[string]string{
				"mp3":  "128k",
				"opus": "64k",
				"m4a":  "192k",
				"aac":  "192k",
				"wma":  "192k",
			},
			VorbisQuality: "4",
		},
	}
}

// DefaultName is the preset used when none is requested.
const DefaultName = "balanced"

// merged overlays the presets from the optional file at path on the
// built-ins.
func merged(path string) (map[string]Preset, error) {
	presets := Builtin()
	if path != "" {
		user, err := ReadFile(path)
		if err != nil {
			return nil, err
		}
		for _, p := range user {
			presets[strings.ToLower(p.Name)] = p
		}
	}
	return presets, nil
}

// All returns every available preset sorted by name, including any defined
// in the preset file at path.
func All(path string) ([]Preset, error) {
	presets, err := merged(path)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	out := make([]Preset, 0, len(names))
	for _, n := range names {
		out = append(out, presets[n])
	}
	return out, nil
}

// Resolve returns the preset with the given name, consulting the optional
// preset file at path first and the built-ins second. An empty name
// resolves to DefaultName.
func Resolve(name, path string) (Preset, error) {
	if name == "" {
		name = DefaultName
	}
	name = strings.ToLower(name)

	presets, err := merged(path)
	if err != nil {
		return Preset{}, err
	}

	p, ok := presets[name]
	if !ok {
		names := make([]string, 0, len(presets))
		for n := range presets {
			names = append(names, n)
		}
		sort.Strings(names)
		return Preset{}, fmt.Errorf("unknown preset %q (have: %s)", name, strings.Join(names, ", "))
	}
	return p, nil
}
