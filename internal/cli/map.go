package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"axis-mapper/internal/axis"
	"axis-mapper/internal/config"
	"axis-mapper/internal/engine"
	"axis-mapper/internal/mapping"
)

type mapFlags struct {
	dataset   string
	schema    string
	dims      string
	variable  string
	overrides string
	save      string
	write     string
}

// mapOutput is the JSON form of the map command.
type mapOutput struct {
	Skipped         bool              `json:"skipped"`
	Complete        bool              `json:"complete"`
	Mapping         map[string]string `json:"mapping"`
	Renamed         []string          `json:"renamed,omitempty"`
	UnmappedSources []string          `json:"unmapped_sources"`
	UnmappedTargets []string          `json:"unmapped_targets"`
	Decisions       []jsonDecision    `json:"decisions"`
	Diagnostics     []jsonDiagnostic  `json:"diagnostics"`
	Report          jsonReport        `json:"report"`
}

type jsonDecision struct {
	Source      string `json:"source"`
	Target      string `json:"target,omitempty"`
	Cardinality int    `json:"cardinality"`
	Category    string `json:"category"`
	Signal      string `json:"signal"`
	Origin      string `json:"origin"`
	Match       string `json:"match"`
}

func newMapCommand(a *app) *cobra.Command {
	var f mapFlags

	cmd := &cobra.Command{
		Use:   "map",
		Short: "Build a dimension mapping and rename the dataset axes",
		Long: `Classify every axis of the dataset, resolve it against the schema's
dimension names, validate the result and print the renaming.

Overrides from the config file (dimension_mapping) and from --overrides are
applied before auto-detection; --overrides wins on conflicts.`,
		Example: `  axis-mapper map --dataset ta.yaml --schema cmip6.yaml --variable ta
  axis-mapper map --dataset ta.yaml --dims time,plev19,lat,lon -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runMap(cmd, f)
		},
	}

	cmd.Flags().StringVar(&f.dataset, "dataset", "", "Dataset descriptor (YAML)")
	cmd.Flags().StringVar(&f.schema, "schema", "", "Schema file (YAML)")
	cmd.Flags().StringVar(&f.dims, "dims", "", "Inline schema: comma-separated dimension names")
	cmd.Flags().StringVar(&f.variable, "variable", "", "Variable to select from the schema file")
	cmd.Flags().StringVar(&f.overrides, "overrides", "", "Override file (YAML)")
	cmd.Flags().StringVar(&f.save, "save", "", "Write the resulting mapping as an override file")
	cmd.Flags().StringVar(&f.write, "write", "", "Write the renamed dataset descriptor")

	return cmd
}

func (a *app) runMap(cmd *cobra.Command, f mapFlags) error {
	ds, err := loadDataset(f.dataset)
	if err != nil {
		return err
	}

	sch, err := loadSchema(f.schema, f.variable, f.dims)
	if err != nil {
		return err
	}

	req, err := a.cfg.Request()
	if err != nil {
		return err
	}

	if f.overrides != "" {
		of, err := mapping.LoadFile(f.overrides)
		if err != nil {
			return err
		}

		for src, tgt := range of.Override() {
			req.Options.Overrides[src] = tgt
		}
	}

	out, procErr := a.engine.Process(ds, sch, req)

	if err := a.renderMap(cmd, out); err != nil {
		return err
	}

	if procErr != nil {
		return procErr
	}

	if f.save != "" && out.Applied != nil {
		if err := mapping.WriteFile(out.Applied, f.variable, f.save); err != nil {
			return err
		}

		a.logger.Info("saved mapping", zap.String("path", f.save))
	}

	if f.write != "" && out.Dataset != nil {
		data, err := axis.Marshal(out.Dataset)
		if err != nil {
			return fmt.Errorf("failed to marshal dataset: %w", err)
		}

		if err := os.WriteFile(f.write, data, 0o644); err != nil {
			return fmt.Errorf("failed to write dataset %s: %w", f.write, err)
		}
	}

	return nil
}

func (a *app) renderMap(cmd *cobra.Command, out *engine.Outcome) error {
	w := cmd.OutOrStdout()

	if a.cfg.Output == config.OutputJSON {
		return renderJSON(w, toMapOutput(out))
	}

	if out.Skipped {
		_, _ = fmt.Fprintln(w, "Dimension mapping is disabled; dataset left unchanged")
		return nil
	}

	renderDecisions(w, out.Result.Decisions)
	_, _ = fmt.Fprintf(w, "Unmapped sources: %s\n", joinOrDash(out.Result.UnmappedSources))
	_, _ = fmt.Fprintf(w, "Unmapped targets: %s\n", joinOrDash(out.Result.UnmappedTargets))

	if out.Result.Complete() {
		_, _ = fmt.Fprintln(w, "Every axis and schema name is mapped")
	}
	renderDiagnostics(w, out.Result.Diagnostics)
	renderReport(w, out.Report)

	if out.Dataset != nil {
		_, _ = fmt.Fprintf(w, "Renamed axes: %s\n", joinOrDash(out.Dataset.Names()))
	}

	return nil
}

func toMapOutput(out *engine.Outcome) mapOutput {
	mo := mapOutput{
		Skipped:         out.Skipped,
		Mapping:         map[string]string{},
		UnmappedSources: []string{},
		UnmappedTargets: []string{},
		Decisions:       []jsonDecision{},
		Diagnostics:     []jsonDiagnostic{},
		Report:          jsonReport{Valid: true, Errors: []string{}, Warnings: []string{}},
	}

	if out.Dataset != nil {
		mo.Renamed = out.Dataset.Names()
	}

	if out.Result == nil {
		return mo
	}

	if out.Applied != nil {
		mo.Mapping = out.Applied
	} else {
		mo.Mapping = out.Result.Mapping
	}

	mo.Complete = out.Result.Complete()
	mo.UnmappedSources = nonNil(out.Result.UnmappedSources)
	mo.UnmappedTargets = nonNil(out.Result.UnmappedTargets)
	mo.Diagnostics = toJSONDiagnostics(out.Result.Diagnostics)
	mo.Report = toJSONReport(out.Report)

	for _, d := range out.Result.Decisions {
		mo.Decisions = append(mo.Decisions, jsonDecision{
			Source:      d.Source,
			Target:      d.Target,
			Cardinality: d.Cardinality,
			Category:    d.Category.String(),
			Signal:      d.Signal.String(),
			Origin:      d.Origin.String(),
			Match:       d.Outcome.String(),
		})
	}

	return mo
}
