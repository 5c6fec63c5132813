// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package preset

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// presetFile is the on-disk representation of user-defined presets.
type presetFile struct {
	Presets []Preset `yaml:"presets"`
}

// ReadFile loads user presets from a YAML file. Presets without a name
// are rejected.
func ReadFile(path string) ([]Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading preset file: %w", err)
	}
	var f presetFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing preset file %s: %w", path, err)
	}
	for i, p := range f.Presets {
		if p.Name == "" {
			return nil, fmt.Errorf("preset file %s: preset %d has no name", path, i+1)
		}
	}
	return f.Presets, nil
}

// WriteFile saves presets to a YAML file. Used to seed a preset file the
// user can then edit.
func WriteFile(path string, presets []Preset) error {
	data, err := yaml.Marshal(&presetFile{Presets: presets})
	if err != nil {
		return fmt.Errorf("marshaling presets: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
