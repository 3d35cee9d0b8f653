package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"axis-mapper/internal/axis"
	"axis-mapper/internal/config"
	"axis-mapper/internal/mapping"
)

func newValidateCommand(a *app) *cobra.Command {
	var (
		mappingFile string
		schemaFile  string
		dims        string
		variable    string
		dataset     string
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a saved mapping against a schema",
		Long: `Validate an override file against the schema's dimension names.
Strict mode requires the target set to equal the schema; flexible mode only
compares counts. Duplicate targets are always an error. With --dataset every
source must also exist in the dataset.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if mappingFile == "" {
				return errors.New("--mapping is required")
			}

			of, err := mapping.LoadFile(mappingFile)
			if err != nil {
				return err
			}

			if variable == "" {
				variable = of.Variable
			}

			sch, err := loadSchema(schemaFile, variable, dims)
			if err != nil {
				return err
			}

			mode, err := mapping.ParseMode(a.cfg.ValidationMode)
			if err != nil {
				return err
			}

			opts := mapping.ValidateOptions{Mode: mode}

			if dataset != "" {
				var ds *axis.Dataset

				if ds, err = loadDataset(dataset); err != nil {
					return err
				}

				opts.Dataset = ds
			}

			rep := a.engine.Validate(of.Override(), sch, opts)

			if a.cfg.Output == config.OutputJSON {
				if err := renderJSON(cmd.OutOrStdout(), toJSONReport(rep)); err != nil {
					return err
				}
			} else {
				renderReport(cmd.OutOrStdout(), rep)
			}

			if !rep.Valid {
				return fmt.Errorf("mapping %s is invalid: %d problem(s)", mappingFile, len(rep.Errors))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&mappingFile, "mapping", "", "Override file to validate (YAML)")
	cmd.Flags().StringVar(&schemaFile, "schema", "", "Schema file (YAML)")
	cmd.Flags().StringVar(&dims, "dims", "", "Inline schema: comma-separated dimension names")
	cmd.Flags().StringVar(&variable, "variable", "", "Variable to select from the schema file (default: the mapping's variable)")
	cmd.Flags().StringVar(&dataset, "dataset", "", "Dataset descriptor; checks that every source exists")

	return cmd
}
