package mapping

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a YAML override file from the given path.
func LoadFile(path string) (*OverrideFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read override file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into an OverrideFile.
func Parse(data []byte) (*OverrideFile, error) {
	var f OverrideFile

	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse override YAML: %w", err)
	}

	applyDefaults(&f)

	if err := Mapping(f.DimensionMapping).CheckPairs(); err != nil {
		return nil, err
	}

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *OverrideFile) {
	if f.Version == "" {
		f.Version = CurrentVersion
	}

	if f.DimensionMapping == nil {
		f.DimensionMapping = map[string]string{}
	}
}

// Marshal serializes a mapping as an override file, pinning every pair.
func Marshal(m Mapping, variable string) ([]byte, error) {
	return yaml.Marshal(&OverrideFile{
		Version:          CurrentVersion,
		Variable:         variable,
		DimensionMapping: m.Clone(),
	})
}

// WriteFile writes a mapping as an override file to the given path.
func WriteFile(m Mapping, variable, path string) error {
	data, err := Marshal(m, variable)
	if err != nil {
		return fmt.Errorf("failed to marshal mapping: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write override file %s: %w", path, err)
	}

	return nil
}
