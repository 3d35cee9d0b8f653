// Package main provides the CLI entrypoint for axis-mapper.
//
// axis-mapper classifies the coordinate axes of a dataset and renames them to
// the dimension names a destination schema requires:
//   - Classifies axes by name, standard_name, axis attribute and value range
//   - Picks cardinality variants (plev8, plev19) from the axis length
//   - Validates mappings strictly or flexibly
//   - Saves mappings as reviewable YAML override files
package main

import (
	"os"

	"axis-mapper/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
