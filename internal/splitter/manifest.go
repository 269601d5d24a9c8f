// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package splitter

import (
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pdfsplit/pkg/types"
)

// manifestFile is the run manifest written into the root output folder.
const manifestFile = "manifest.yaml"

// WriteManifest writes the run record as YAML into the root output folder,
// replacing any manifest from a previous run.
func WriteManifest(run types.RunRecord, rootDir string) error {
	data, err := yaml.Marshal(run)
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}
	path := filepath.Join(rootDir, manifestFile)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing manifest %s: %w", path, err)
	}
	return nil
}

// ReadManifest loads the manifest of a previous run from rootDir.
func ReadManifest(rootDir string) (types.RunRecord, error) {
	var run types.RunRecord
	data, err := os.ReadFile(filepath.Join(rootDir, manifestFile))
	if err != nil {
		return run, fmt.Errorf("reading manifest: %w", err)
	}
	if err := yaml.Unmarshal(data, &run); err != nil {
		return run, fmt.Errorf("parsing manifest: %w", err)
	}
	return run, nil
}
