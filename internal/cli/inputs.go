package cli

import (
	"errors"
	"fmt"

	"axis-mapper/internal/axis"
	"axis-mapper/internal/schema"
)

func loadDataset(path string) (*axis.Dataset, error) {
	if path == "" {
		return nil, errors.New("--dataset is required")
	}

	ds, err := axis.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}

	return ds, nil
}

// loadSchema reads the schema from a file, or from an inline list when
// dims is set ("time,lat,lon").
func loadSchema(path, variable, dims string) (*schema.Schema, error) {
	if dims != "" {
		return schema.FromList(dims), nil
	}

	if path == "" {
		return nil, errors.New("either --schema or --dims is required")
	}

	f, err := schema.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load schema: %w", err)
	}

	return f.Schema(variable)
}
