// Package filelist loads batch input lists from JSONC documents.
package filelist

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"
)

// Load reads a JSONC file containing an array of file paths.
func Load(path string) ([]string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is from user-supplied config
	if err != nil {
		return nil, fmt.Errorf("reading file list %q: %w", path, err)
	}

	clean := jsonc.ToJSONInPlace(data)

	var files []string
	if err := json.Unmarshal(clean, &files); err != nil {
		return nil, fmt.Errorf("parsing file list %q: %w", path, err)
	}

	return files, nil
}
