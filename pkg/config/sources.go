package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load builds a configuration from defaults overlaid with the given YAML
// files, in order. Missing paths are skipped; later files override earlier
// ones field by field. The merged result is validated before being returned.
func Load(paths ...string) (*Config, error) {
	config := Default()

	for _, path := range paths {
		if !fileExists(path) {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		// Unmarshal into the accumulated config: keys absent from the file
		// keep their current values.
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse YAML from %s: %w", path, err)
		}
	}

	if err := Validate(config); err != nil {
		return nil, err
	}

	return config, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
