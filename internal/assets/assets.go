package assets

import (
	_ "embed"
	"errors"
	"os"
	"path/filepath"
)

//go:embed default-extra.txt
var defaultManifest []byte

//go:embed manifest-schema.json
var manifestSchema []byte

// DefaultManifest returns the built-in optional-dependency manifest.
func DefaultManifest() []byte { return defaultManifest }

// ManifestSchema returns the JSON Schema for the exported requirement set.
func ManifestSchema() []byte { return manifestSchema }

// WriteDefaultManifestIfMissing writes requirements.txt to targetDir if it
// does not exist.
func WriteDefaultManifestIfMissing(targetDir string) error {
	if targetDir == "" {
		return errors.New("empty targetDir")
	}
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return err
	}
	p := filepath.Join(targetDir, "requirements.txt")
	if _, err := os.Stat(p); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return os.WriteFile(p, defaultManifest, 0o644)
}
