// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

const exportLimit = 100000

// ExportYAML writes the conversion history to a YAML file, newest first.
// It supports the same filters as Recent.
func (s *Store) ExportYAML(ctx context.Context, path string, opts QueryOptions) error {
	opts.Limit = exportLimit
	records, err := s.Recent(ctx, opts)
	if err != nil {
		return fmt.Errorf("querying for export: %w", err)
	}

	data, err := yaml.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
