package config

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

var current Config

func Get() Config { return current }

// Default is the configuration used when no config files exist.
func Default() Config {
	return Config{
		Pip:      Command{Command: "python3 -m pip"},
		IndexURL: "https://pypi.org/pypi",
	}
}

// LoadFromFiles merges the YAML config files on top of the defaults.
// Later files (sorted by name) override scalars; manifest lists are
// appended, with duplicates reported against both declaring files.
func LoadFromFiles(files []string) (Config, error) {
	merged := Default()
	seen := map[string]string{}
	for _, f := range sortedYAML(files) {
		b, err := os.ReadFile(f)
		if err != nil {
			return Config{}, err
		}
		var part Config
		if err := yaml.Unmarshal(b, &part); err != nil {
			return Config{}, fmt.Errorf("%s: %w", f, err)
		}
		for _, m := range part.Manifests {
			if prev, ok := seen[m]; ok {
				return Config{}, fmt.Errorf("manifest '%s' listed in %s and %s", m, prev, f)
			}
			seen[m] = f
		}
		merged = merge(merged, part)
	}
	current = merged
	return merged, nil
}

func sortedYAML(files []string) []string {
	out := make([]string, 0, len(files))
	for _, f := range files {
		lf := strings.ToLower(f)
		if strings.HasSuffix(lf, ".yaml") || strings.HasSuffix(lf, ".yml") {
			out = append(out, f)
		}
	}
	sort.Strings(out)
	return out
}

func merge(base, overlay Config) Config {
	out := base
	out.Manifests = append(out.Manifests, overlay.Manifests...)
	if overlay.Pip.Command != "" {
		out.Pip = overlay.Pip
	}
	if overlay.IndexURL != "" {
		out.IndexURL = overlay.IndexURL
	}
	return out
}
