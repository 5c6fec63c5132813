// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// OutputPath picks the destination file for a conversion: stem.format in
// dir, or the first free stem_N.format when that name is taken. Existing
// files are never overwritten.
func OutputPath(dir, stem, format string) (string, error) {
	format = strings.ToLower(format)

	candidate := filepath.Join(dir, stem+"."+format)
	if _, err := os.Stat(candidate); errors.Is(err, os.ErrNotExist) {
		return candidate, nil
	}

	for i := 1; i < 10000; i++ {
		candidate = filepath.Join(dir, fmt.Sprintf("%s_%d.%s", stem, i, format))
		if _, err := os.Stat(candidate); errors.Is(err, os.ErrNotExist) {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("no free output name for %s.%s in %s", stem, format, dir)
}
