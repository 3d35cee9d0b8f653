package schema

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// File is the YAML form of a schema document. It either lists the
// dimensions of a single variable or a table of variables.
//
//	dimensions: [longitude, latitude, plev19, time]
//
//	variables:
//	  ta:
//	    dimensions: [longitude, latitude, plev19, time]
//	  tos:
//	    dimensions: [longitude, latitude, time]
type File struct {
	Dimensions []string               `yaml:"dimensions,omitempty"`
	Variables  map[string]VariableDef `yaml:"variables,omitempty"`
}

// VariableDef declares the dimensions of one variable.
type VariableDef struct {
	Dimensions []string `yaml:"dimensions"`
}

// LoadFile loads and parses a YAML schema document from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse schema YAML: %w", err)
	}

	if len(f.Dimensions) == 0 && len(f.Variables) == 0 {
		return nil, errors.New("schema declares neither dimensions nor variables")
	}

	return &f, nil
}

// Schema returns the schema for the named variable. An empty variable name
// selects the top-level dimensions, or the only variable when the file
// declares exactly one.
func (f *File) Schema(variable string) (*Schema, error) {
	if variable == "" {
		if len(f.Dimensions) > 0 {
			return New(f.Dimensions...), nil
		}

		if len(f.Variables) == 1 {
			for _, v := range f.Variables {
				return New(v.Dimensions...), nil
			}
		}

		return nil, fmt.Errorf("schema declares %d variables, choose one of %v", len(f.Variables), f.VariableNames())
	}

	v, ok := f.Variables[variable]
	if !ok {
		return nil, fmt.Errorf("variable %q not found in schema, available: %v", variable, f.VariableNames())
	}

	return New(v.Dimensions...), nil
}

// VariableNames returns the declared variable names, sorted.
func (f *File) VariableNames() []string {
	names := make([]string, 0, len(f.Variables))
	for name := range f.Variables {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}
