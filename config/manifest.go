package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Manifest is the additive YAML batch-run form of §6: a list of RunSpecs
// executed as independent search.Run invocations.
type Manifest struct {
	Runs []RunSpec `yaml:"runs"`
}

// ParseManifest decodes a YAML batch manifest and validates every entry.
func ParseManifest(data []byte) (Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("config: parse manifest: %w", ErrArgument)
	}
	if len(m.Runs) == 0 {
		return Manifest{}, fmt.Errorf("config: manifest has no runs: %w", ErrArgument)
	}
	for i, r := range m.Runs {
		if err := r.Validate(); err != nil {
			return Manifest{}, fmt.Errorf("config: manifest run %d: %w", i, err)
		}
	}
	return m, nil
}
